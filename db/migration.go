package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "ats-sync-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationJob{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicationJob")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationFile{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicationFile")
	}
	if err := DB.AutoMigrate(&dbmodels.SyncSetting{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SyncSetting")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
