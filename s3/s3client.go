package s3client

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"hr-portal-backend/config"
)

const bucketLocation = "us-east-1"

type Provider interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, objectKey string, body []byte, contentType string) error
	Get(ctx context.Context, objectKey string) ([]byte, error)
	Remove(ctx context.Context, objectKey string) error
}

func NewClient(cfg *config.Configuration) (Provider, error) {
	minioClient, err := minio.New(cfg.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, ""),
		Secure: *cfg.S3.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка инициализации клиента s3")
	}
	return &impl{
		minioClient: minioClient,
		bucketName:  cfg.S3.BucketName,
	}, nil
}

type impl struct {
	minioClient *minio.Client
	bucketName  string
}

func (i impl) EnsureBucket(ctx context.Context) error {
	exists, err := i.minioClient.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.minioClient.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: bucketLocation})
}

func (i impl) Put(ctx context.Context, objectKey string, body []byte, contentType string) error {
	_, err := i.minioClient.PutObject(ctx, i.bucketName, objectKey,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (i impl) Get(ctx context.Context, objectKey string) ([]byte, error) {
	object, err := i.minioClient.GetObject(ctx, i.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}

func (i impl) Remove(ctx context.Context, objectKey string) error {
	return i.minioClient.RemoveObject(ctx, i.bucketName, objectKey, minio.RemoveObjectOptions{})
}
