package syncsettings

import (
	"github.com/pkg/errors"

	"ats-sync-backend/db"
	syncsettingsstore "ats-sync-backend/lib/settings/store"
	"ats-sync-backend/models"
	syncapimodels "ats-sync-backend/models/api/sync"
	dbmodels "ats-sync-backend/models/db"
)

type Provider interface {
	GetList() ([]syncapimodels.SyncSettingView, error)
	UpdateSettingValue(code, value string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: syncsettingsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store syncsettingsstore.Provider
}

func (i impl) GetList() ([]syncapimodels.SyncSettingView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка настроек синхронизации")
	}
	result := make([]syncapimodels.SyncSettingView, 0, len(list))
	for _, rec := range list {
		result = append(result, syncapimodels.ConvertSetting(rec))
	}
	return result, nil
}

func (i impl) UpdateSettingValue(code, value string) error {
	settingCode := models.SyncSettingCode(code)
	if _, ok := dbmodels.DefaultSettingsMap[settingCode]; !ok {
		return errors.Errorf("неизвестный код настройки (%v)", code)
	}
	return i.store.Update(settingCode, value)
}
