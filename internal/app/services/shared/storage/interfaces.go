package storage

import (
	"context"
	"io"
)

// Storage persists a resized avatar image and returns its public reference.
type Storage interface {
	SaveAvatar(ctx context.Context, file io.Reader, fileName string) (string, error)
}
