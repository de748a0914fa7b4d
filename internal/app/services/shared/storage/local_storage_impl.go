package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"phonebook-service/internal/app/config"
	"phonebook-service/internal/pkg/constvars"
	"phonebook-service/internal/pkg/exceptions"

	"github.com/disintegration/imaging"
)

type localStorage struct {
	tmpDir     string
	publicDir  string
	publicPath string
}

// NewLocalStorage keeps avatars on the local filesystem under a web-servable
// directory. The upload is staged in tmpDir, resized in place, and renamed
// into publicDir only once the whole pipeline succeeded.
func NewLocalStorage(internalConfig *config.InternalConfig) (Storage, error) {
	if err := os.MkdirAll(internalConfig.Avatar.TmpDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(internalConfig.Avatar.PublicDir, 0o755); err != nil {
		return nil, err
	}
	return &localStorage{
		tmpDir:     internalConfig.Avatar.TmpDir,
		publicDir:  internalConfig.Avatar.PublicDir,
		publicPath: internalConfig.Avatar.PublicPath,
	}, nil
}

func (s *localStorage) SaveAvatar(ctx context.Context, file io.Reader, fileName string) (string, error) {
	tmpFile, err := os.CreateTemp(s.tmpDir, "avatar-*"+filepath.Ext(fileName))
	if err != nil {
		return "", exceptions.ErrStorageSaveAvatar(err)
	}
	tmpPath := tmpFile.Name()

	_, err = io.Copy(tmpFile, file)
	closeErr := tmpFile.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return "", exceptions.ErrStorageSaveAvatar(err)
	}

	if err := resizeInPlace(tmpPath); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	finalPath := filepath.Join(s.publicDir, fileName)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", exceptions.ErrStorageSaveAvatar(err)
	}

	return s.publicPath + "/" + fileName, nil
}

func resizeInPlace(path string) error {
	img, err := imaging.Open(path)
	if err != nil {
		return exceptions.ErrImageValidation(err)
	}

	resized := imaging.Resize(img, constvars.AvatarWidthPx, 0, imaging.Lanczos)
	if err := imaging.Save(resized, path); err != nil {
		return exceptions.ErrStorageSaveAvatar(err)
	}
	return nil
}
