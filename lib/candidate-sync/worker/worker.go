package syncworker

import (
	"context"
	"runtime/debug"
	"time"

	"ats-sync-backend/db"
	applicationstore "ats-sync-backend/lib/application/store"
	candidatesync "ats-sync-backend/lib/candidate-sync"
	synclease "ats-sync-backend/lib/candidate-sync/lease"
	"ats-sync-backend/lib/utils/helpers"

	log "github.com/sirupsen/logrus"
)

// Периодический проход по откликам, ожидающим синхронизации или упавшим
// на предыдущем запуске. Отклики обрабатываются по одному, под арендой.

const (
	firstRunDelay = 10 * time.Second
	handlePeriod  = 5 * time.Minute
	batchLimit    = 100
)

func StartWorker(ctx context.Context) {
	i := &impl{
		store:  applicationstore.NewInstance(db.DB),
		syncer: candidatesync.Instance,
		lease:  synclease.Instance,
	}
	go i.run(ctx)
}

type impl struct {
	store  applicationstore.Provider
	syncer candidatesync.Provider
	lease  synclease.Provider
}

func (i impl) getLogger() *log.Entry {
	return log.
		WithField("worker_name", "CandidateSyncJob")
}

func (i impl) run(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			i.getLogger().
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	period := firstRunDelay
	logger := i.getLogger()
	for {
		select {
		// проверяем не завершён ли ещё контекст и выходим, если завершён
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-time.After(period):
			logger.Info("Задача запущена")
			i.handle(ctx)
			logger.Info("Задача выполнена")
		}
		period = handlePeriod
	}
}

func (i impl) handle(ctx context.Context) {
	logger := i.getLogger()
	list, err := i.store.ListForSync(batchLimit)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка откликов на синхронизацию")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		recLogger := logger.WithField("application_id", rec.ID)
		ok, err := i.lease.Acquire(ctx, rec.ID)
		if err != nil {
			recLogger.WithError(err).Error("ошибка получения аренды синхронизации")
			continue
		}
		if !ok {
			recLogger.Debug("отклик уже синхронизируется")
			continue
		}
		i.syncer.Sync(ctx, rec.ID)
		if err = i.lease.Release(ctx, rec.ID); err != nil {
			recLogger.WithError(err).Error("ошибка освобождения аренды синхронизации")
		}
	}
}
