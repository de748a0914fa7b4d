package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"phonebook-service/internal/app/config"
	"phonebook-service/internal/pkg/constvars"
	"phonebook-service/internal/pkg/exceptions"

	"github.com/disintegration/imaging"
	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	UseSSL      bool
}

// NewMinioStorage is the object-store backend, selected with STORAGE_DRIVER=minio.
func NewMinioStorage(minioClient *minio.Client, driverConfig *config.DriverConfig) Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  driverConfig.Minio.BucketName,
		UseSSL:      driverConfig.Minio.UseSSL,
	}
}

func (m *minioStorage) SaveAvatar(ctx context.Context, file io.Reader, fileName string) (string, error) {
	img, err := imaging.Decode(file)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	format, err := imaging.FormatFromFilename(fileName)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	resized := imaging.Resize(img, constvars.AvatarWidthPx, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return "", exceptions.ErrStorageSaveAvatar(err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	_, err = m.MinioClient.PutObject(ctx, m.BucketName, fileName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	scheme := "http"
	if m.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.MinioClient.EndpointURL().Host, m.BucketName, fileName), nil
}
