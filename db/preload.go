package db

import (
	syncsettingsstore "ats-sync-backend/lib/settings/store"
	dbmodels "ats-sync-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	fillSyncSettings()
}

// добавляем отсутствующие настройки синхронизации со значениями по умолчанию
func fillSyncSettings() {
	store := syncsettingsstore.NewInstance(DB)
	existing, err := store.List()
	if err != nil {
		log.WithError(err).Error("ошибка чтения настроек синхронизации")
		return
	}
	existingSet := map[string]bool{}
	for _, rec := range existing {
		existingSet[string(rec.Code)] = true
	}
	for code, defaultRec := range dbmodels.DefaultSettingsMap {
		if existingSet[string(code)] {
			continue
		}
		if err = store.Create(defaultRec); err != nil {
			log.WithError(err).Errorf("ошибка добавления настройки %v", code)
		}
	}
}
