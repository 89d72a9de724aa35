package blobstore

import (
	"context"
	"sync"
)

type memoryObject struct {
	Data        []byte
	ContentType string
	Metadata    map[string]string
}

// MemoryStore keeps objects in a map. It backs local development when no S3
// credentials are configured, and doubles as the test stand-in for S3.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

func (m *MemoryStore) Put(_ context.Context, key string, data []byte, contentType string, metadata map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	m.objects[key] = memoryObject{Data: buf, ContentType: contentType, Metadata: metadata}
	return nil
}

func (m *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.objects[key]
	return ok, nil
}

// Keys returns the stored object keys, in no particular order.
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}

// Metadata returns the metadata stored with key, or nil if absent.
func (m *MemoryStore) Metadata(key string) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.objects[key].Metadata
}

// ContentType returns the content type stored with key.
func (m *MemoryStore) ContentType(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.objects[key].ContentType
}
