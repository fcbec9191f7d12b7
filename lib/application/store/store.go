package applicationstore

import (
	"fmt"
	"time"

	"ats-sync-backend/models"
	dbmodels "ats-sync-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	CreateFile(rec dbmodels.ApplicationFile) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	Update(id string, updMap map[string]interface{}) error
	SetSyncState(id string, status models.SyncStatus, step models.SyncStep) error
	SetSyncStep(id string, step models.SyncStep) error
	AppendSyncLog(id string, line string) error
	SetJobSynced(jobID string) error
	SetFileSynced(fileID string) error
	SetRemoteID(id string, remoteID int) error
	ListForSync(limit int) (list []dbmodels.Application, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateFile(rec dbmodels.ApplicationFile) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) SetSyncState(id string, status models.SyncStatus, step models.SyncStep) error {
	updMap := map[string]interface{}{
		"sync_status": status,
	}
	// пустой шаг очищает контрольную точку
	if step == models.SyncStepNone {
		updMap["sync_step"] = nil
	} else {
		updMap["sync_step"] = step
	}
	return i.Update(id, updMap)
}

func (i impl) SetSyncStep(id string, step models.SyncStep) error {
	return i.Update(id, map[string]interface{}{
		"sync_step": step,
	})
}

func (i impl) AppendSyncLog(id string, line string) error {
	entry := fmt.Sprintf("%s %s\n", time.Now().Format(time.RFC3339), line)
	return i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Update("sync_log", gorm.Expr("concat(coalesce(sync_log, ''), ?::text)", entry)).
		Error
}

func (i impl) SetJobSynced(jobID string) error {
	return i.db.
		Model(&dbmodels.ApplicationJob{}).
		Where("id = ?", jobID).
		Update("synced", true).
		Error
}

func (i impl) SetFileSynced(fileID string) error {
	return i.db.
		Model(&dbmodels.ApplicationFile{}).
		Where("id = ?", fileID).
		Update("synced", true).
		Error
}

func (i impl) SetRemoteID(id string, remoteID int) error {
	return i.Update(id, map[string]interface{}{
		"remote_id": remoteID,
	})
}

func (i impl) ListForSync(limit int) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(dbmodels.Application{}).
		Where("sync_status in ?", []models.SyncStatus{models.SyncStatusPending, models.SyncStatusFailed, models.SyncStatusIncomplete}).
		Order("created_at").
		Limit(limit).
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("application_id = ?", id).
		Delete(&dbmodels.ApplicationJob{}).
		Error
	if err != nil {
		return err
	}
	err = i.db.
		Where("application_id = ?", id).
		Delete(&dbmodels.ApplicationFile{}).
		Error
	if err != nil {
		return err
	}
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Application{}).
		Error
}
