package applicantapimodels

import (
	"time"

	"ats-sync-backend/models"
	dbmodels "ats-sync-backend/models/db"

	"github.com/pkg/errors"
)

// SubmissionData — данные формы отклика.
type SubmissionData struct {
	NamePrefix string `json:"name_prefix"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	NameSuffix string `json:"name_suffix"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	CountryID  int    `json:"country_id"`
	Message    string `json:"message"`

	PrivacyConsent bool `json:"privacy_consent"`

	Categories      []string `json:"categories"`
	BusinessSectors []string `json:"business_sectors"`
	Specialties     []string `json:"specialties"`
	PrimarySkills   []string `json:"primary_skills"`
	SecondarySkills []string `json:"secondary_skills"`

	Jobs []SubmissionJob `json:"jobs"`
}

type SubmissionJob struct {
	Title       string `json:"title"`
	LocalJobID  string `json:"local_job_id"`
	RemoteJobID int    `json:"remote_job_id"`
}

func (s SubmissionData) Validate() error {
	if s.Email == "" && s.FirstName == "" && s.LastName == "" {
		return errors.New("не заполнены данные отклика")
	}
	return nil
}

type ApplicationView struct {
	ID         string            `json:"id"`
	FullName   string            `json:"full_name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	SyncStatus models.SyncStatus `json:"sync_status"`
	SyncStep   models.SyncStep   `json:"sync_step,omitempty"`
	SyncLog    string            `json:"sync_log,omitempty"`
	RemoteID   int               `json:"remote_id,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

func Convert(rec dbmodels.Application) ApplicationView {
	return ApplicationView{
		ID:         rec.ID,
		FullName:   rec.FullName(),
		Email:      rec.Email,
		Phone:      rec.Phone,
		SyncStatus: rec.SyncStatus,
		SyncStep:   rec.SyncStep,
		SyncLog:    rec.SyncLog,
		RemoteID:   rec.RemoteID,
		CreatedAt:  rec.CreatedAt,
	}
}
