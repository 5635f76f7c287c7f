package storage

import "context"

// ImageStore persists uploaded post images. Save returns the stored
// filename to keep on the post record.
type ImageStore interface {
	Save(ctx context.Context, originalName string, data []byte) (string, error)
}
