package initializers

import (
	"context"

	"ats-sync-backend/config"
	"ats-sync-backend/fiberlog"
	"ats-sync-backend/lib/application"
	atsclient "ats-sync-backend/lib/ats/client"
	candidatesync "ats-sync-backend/lib/candidate-sync"
	syncworker "ats-sync-backend/lib/candidate-sync/worker"
	syncsettings "ats-sync-backend/lib/settings"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	InitRedis()
	atsclient.NewProvider(config.Conf.Ats.Host, config.Conf.Ats.ClientID, config.Conf.Ats.ClientSecret,
		config.Conf.Ats.ApiUser, config.Conf.Ats.ApiPassword)
	application.NewHandler()
	syncsettings.NewHandler()
	candidatesync.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача синхронизации откликов с ATS
	syncworker.StartWorker(ctx)
}
