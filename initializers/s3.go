package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"ats-sync-backend/config"
	filestorage "ats-sync-backend/lib/file-storage"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	filestorage.NewInstance(minioClient)
	err = filestorage.Instance.MakeBucket(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось — не удалось проверить бакет")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
