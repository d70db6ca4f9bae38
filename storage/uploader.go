package storage

import (
	"context"
	"io"
	"time"
)

type UploadResult struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	ETag     string `json:"etag,omitempty"`
}

// ObjectInfo describes a stored object returned by List.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Location     string    `json:"location"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	GetPublicURL(key string) string
}
