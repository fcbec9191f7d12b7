package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"ats-sync-backend/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Provider — хранилище файлов откликов. Ключ объекта сохраняется
// в ApplicationFile.Path и используется пайплайном на шаге save-files.
type Provider interface {
	Store(ctx context.Context, applicationID, fileName, contentType string, file []byte) (key string, err error)
	GetFile(ctx context.Context, key string) ([]byte, error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) Store(ctx context.Context, applicationID, fileName, contentType string, file []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := fmt.Sprintf("applications/%s/%s%s", applicationID, uuid.NewString(), path.Ext(fileName))
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, key,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения файла в хранилище")
	}
	return key, nil
}

func (i impl) GetFile(ctx context.Context, key string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	defer object.Close()
	data, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return data, nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
