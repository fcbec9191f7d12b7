package syncsettingsstore

import (
	"ats-sync-backend/models"
	dbmodels "ats-sync-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.SyncSetting) error
	Update(code models.SyncSettingCode, value string) error
	List() (settingsList []dbmodels.SyncSetting, err error)
	GetValueByCode(code models.SyncSettingCode) (value string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SyncSetting) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) GetValueByCode(code models.SyncSettingCode) (value string, err error) {
	err = i.db.Model(dbmodels.SyncSetting{}).
		Select("value").
		Where("code = ?", code).
		First(&value).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (i impl) List() (settingsList []dbmodels.SyncSetting, err error) {
	err = i.db.Model(dbmodels.SyncSetting{}).
		Find(&settingsList).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return settingsList, nil
}

func (i impl) Update(code models.SyncSettingCode, value string) error {
	return i.db.
		Model(&dbmodels.SyncSetting{}).
		Where("code = ?", code).
		Update("value", value).
		Error
}
