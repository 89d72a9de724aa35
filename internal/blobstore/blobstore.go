// Package blobstore is the object store client for resume files. The portal
// only ever writes objects and checks for their existence; stored metadata is
// read by humans through the storage console, never by this process.
package blobstore

import (
	"context"
)

// Store is the narrow surface the portal needs from an object store.
type Store interface {
	// Put uploads one object under key with its content type and
	// descriptive metadata. Overwrites silently if the key exists.
	Put(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error

	// Exists reports whether an object is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
}
