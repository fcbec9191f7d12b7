package application

import (
	"context"
	"time"

	"ats-sync-backend/db"
	applicationstore "ats-sync-backend/lib/application/store"
	filestorage "ats-sync-backend/lib/file-storage"
	"ats-sync-backend/models"
	applicantapimodels "ats-sync-backend/models/api/applicant"
	dbmodels "ats-sync-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	CreateFromSubmission(data applicantapimodels.SubmissionData, ip string) (id string, err error)
	AttachFile(ctx context.Context, id, slot, fileName, contentType string, file []byte) error
	GetByID(id string) (applicantapimodels.ApplicationView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: applicationstore.NewInstance(db.DB),
		files: filestorage.Instance,
	}
}

type impl struct {
	store applicationstore.Provider
	files filestorage.Provider
}

func (i impl) CreateFromSubmission(data applicantapimodels.SubmissionData, ip string) (string, error) {
	rec := dbmodels.Application{
		NamePrefix:      data.NamePrefix,
		FirstName:       data.FirstName,
		MiddleName:      data.MiddleName,
		LastName:        data.LastName,
		NameSuffix:      data.NameSuffix,
		Email:           data.Email,
		Phone:           data.Phone,
		Address1:        data.Address1,
		Address2:        data.Address2,
		City:            data.City,
		State:           data.State,
		Zip:             data.Zip,
		CountryID:       data.CountryID,
		Message:         data.Message,
		IP:              ip,
		PrivacyConsent:  data.PrivacyConsent,
		Categories:      data.Categories,
		BusinessSectors: data.BusinessSectors,
		Specialties:     data.Specialties,
		PrimarySkills:   data.PrimarySkills,
		SecondarySkills: data.SecondarySkills,
		SyncStatus:      models.SyncStatusPending,
	}
	if data.PrivacyConsent {
		now := time.Now()
		rec.PrivacyConsentAt = &now
	}
	for _, job := range data.Jobs {
		rec.Jobs = append(rec.Jobs, dbmodels.ApplicationJob{
			Title:       job.Title,
			LocalJobID:  job.LocalJobID,
			RemoteJobID: job.RemoteJobID,
		})
	}
	return i.store.Create(rec)
}

func (i impl) AttachFile(ctx context.Context, id, slot, fileName, contentType string, file []byte) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("отклик не найден")
	}
	key, err := i.files.Store(ctx, id, fileName, contentType, file)
	if err != nil {
		return err
	}
	_, err = i.store.CreateFile(dbmodels.ApplicationFile{
		ApplicationID: id,
		Slot:          slot,
		Name:          fileName,
		Path:          key,
		ContentType:   contentType,
	})
	return err
}

func (i impl) GetByID(id string) (applicantapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicantapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicantapimodels.ApplicationView{}, errors.New("отклик не найден")
	}
	return applicantapimodels.Convert(*rec), nil
}
