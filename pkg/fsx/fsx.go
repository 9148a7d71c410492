package fsx

import "context"

// FileSystem abstracts blob storage for template sources and exported PDFs
type FileSystem interface {
	// Read returns the full contents of the object at key
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores data at key, overwriting any existing object
	Write(ctx context.Context, key string, data []byte, contentType string) error

	// Delete removes the object at key
	Delete(ctx context.Context, key string) error

	// Exists checks whether an object is stored at key
	Exists(ctx context.Context, key string) (bool, error)
}
