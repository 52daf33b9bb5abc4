package documentstore

import (
	"context"
	"sort"
	"sync"

	"limpeza_xpto/internal/usecase/interfaces"
)

// MemoryStore keeps documents in process. It backs tests and local runs with
// STORE_DRIVER=memory.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ interfaces.IDocumentStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string][]byte{}}
}

func (s *MemoryStore) Get(ctx context.Context, path string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validatePath(path); err != nil {
		return nil, err
	}
	s.mu.RLock()
	raw, ok := s.docs[path]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decode(raw)
}

func (s *MemoryStore) Set(ctx context.Context, path string, fields map[string]any, mergeFields bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validatePath(path); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := fields
	if mergeFields {
		if raw, ok := s.docs[path]; ok {
			existing, err := decode(raw)
			if err != nil {
				return err
			}
			doc = merge(existing, fields)
		}
	}
	raw, err := encode(doc)
	if err != nil {
		return err
	}
	s.docs[path] = raw
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, path string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validatePath(path); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.docs[path]
	if !ok {
		return interfaces.ErrDocumentNotFound
	}
	existing, err := decode(raw)
	if err != nil {
		return err
	}
	raw, err = encode(merge(existing, fields))
	if err != nil {
		return err
	}
	s.docs[path] = raw
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validatePath(path); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.docs, path)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) List(ctx context.Context, collectionPath string) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateCollection(collectionPath); err != nil {
		return nil, err
	}
	s.mu.RLock()
	paths := make([]string, 0)
	for p := range s.docs {
		if isDirectChild(collectionPath, p) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	raws := make([][]byte, 0, len(paths))
	for _, p := range paths {
		raws = append(raws, s.docs[p])
	}
	s.mu.RUnlock()

	out := make([]map[string]any, 0, len(raws))
	for _, raw := range raws {
		doc, err := decode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}
