// Package storage stores generated documents such as payslips.
package storage

import (
	"context"
	"io"
	"time"
)

type FileStorage interface {
	// Upload writes content under path and returns the stored key.
	Upload(ctx context.Context, content io.Reader, size int64, path, contentType string) (string, error)

	// GetURL returns a URL the client can follow to fetch path.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	Delete(ctx context.Context, path string) error
}
