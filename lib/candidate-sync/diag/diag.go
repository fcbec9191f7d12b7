package syncdiag

import (
	"fmt"

	applicationstore "ats-sync-backend/lib/application/store"

	log "github.com/sirupsen/logrus"
)

// Provider — диагностический журнал синхронизации: структурная запись в лог
// сервиса и дописываемая строка в sync_log отклика.
type Provider interface {
	Log(applicationID string, level log.Level, code, message string)
}

func NewInstance(store applicationstore.Provider) Provider {
	return &impl{
		store: store,
	}
}

type impl struct {
	store applicationstore.Provider
}

func (i impl) Log(applicationID string, level log.Level, code, message string) {
	logger := log.
		WithField("integration", "ATS").
		WithField("application_id", applicationID).
		WithField("code", code)
	logger.Log(level, message)

	line := fmt.Sprintf("[%v] %v: %v", level, code, message)
	err := i.store.AppendSyncLog(applicationID, line)
	if err != nil {
		logger.WithError(err).Error("не удалось дописать журнал синхронизации")
	}
}
