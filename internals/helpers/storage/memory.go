// internals/helpers/storage/memory.go
package helper

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps blobs in process memory. Used by STORAGE_DRIVER=memory
// for local runs and by tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string]MemoryObject
	base    string
}

type MemoryObject struct {
	Data        []byte
	ContentType string
}

func NewMemoryStore(publicBase string) *MemoryStore {
	if publicBase == "" {
		publicBase = "memory://documents"
	}
	return &MemoryStore{objects: map[string]MemoryObject{}, base: strings.TrimRight(publicBase, "/")}
}

func (m *MemoryStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.objects[key]; exists {
		return fmt.Errorf("object %q already exists", key)
	}
	m.objects[key] = MemoryObject{Data: data, ContentType: contentType}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return m.base + "/" + strings.TrimLeft(key, "/")
}

func (m *MemoryStore) Get(key string) (MemoryObject, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.objects[key]
	return o, ok
}

func (m *MemoryStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.objects))
	for k := range m.objects {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
