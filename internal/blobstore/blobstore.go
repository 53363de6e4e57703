package blobstore

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound signals that no blob exists under the requested key.
var ErrNotFound = errors.New("blobstore: key not found")

// Store is the persistent key-value contract the catalog writes through.
// One key holds one serialized collection; Save replaces it wholesale.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Ping(ctx context.Context) error
}

// Memory is an in-process store used in tests and the memory backend.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory builds an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: map[string][]byte{}}
}

// Load returns the blob stored under key.
func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

// Save replaces the blob stored under key.
func (m *Memory) Save(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(blob))
	copy(stored, blob)
	m.blobs[key] = stored
	return nil
}

// Ping always succeeds for the in-memory store.
func (m *Memory) Ping(context.Context) error {
	return nil
}
