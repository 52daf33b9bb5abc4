package documentstore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"limpeza_xpto/internal/usecase/interfaces"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps documents in an embedded Badger database. Keys are the
// document paths and values are JSON.
type BadgerStore struct {
	db *badger.DB
}

var _ interfaces.IDocumentStore = (*BadgerStore)(nil)

func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

func (s *BadgerStore) Get(ctx context.Context, path string) (map[string]any, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}
	var doc map[string]any
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(path))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			d, err := decode(val)
			doc = d
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("badger get %s: %w", path, err)
	}
	return doc, nil
}

func (s *BadgerStore) Set(ctx context.Context, path string, fields map[string]any, mergeFields bool) error {
	if err := validatePath(path); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		doc := fields
		if mergeFields {
			existing, err := readTxn(txn, path)
			if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
			if existing != nil {
				doc = merge(existing, fields)
			}
		}
		raw, err := encode(doc)
		if err != nil {
			return err
		}
		return txn.Set([]byte(path), raw)
	})
}

func (s *BadgerStore) Update(ctx context.Context, path string, fields map[string]any) error {
	if err := validatePath(path); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		existing, err := readTxn(txn, path)
		if err != nil {
			return err
		}
		raw, err := encode(merge(existing, fields))
		if err != nil {
			return err
		}
		return txn.Set([]byte(path), raw)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return interfaces.ErrDocumentNotFound
	}
	return err
}

func (s *BadgerStore) Delete(ctx context.Context, path string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(path))
	})
}

func (s *BadgerStore) List(ctx context.Context, collectionPath string) ([]map[string]any, error) {
	if err := validateCollection(collectionPath); err != nil {
		return nil, err
	}
	prefix := []byte(collectionPath + "/")
	type entry struct {
		path string
		doc  map[string]any
	}
	var entries []entry

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			key := string(item.KeyCopy(nil))
			if !isDirectChild(collectionPath, key) {
				continue
			}
			err := item.Value(func(val []byte) error {
				doc, err := decode(val)
				if err != nil {
					return err
				}
				entries = append(entries, entry{path: key, doc: doc})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger list %s: %w", collectionPath, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].path < entries[j].path })
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.doc)
	}
	return out, nil
}

func readTxn(txn *badger.Txn, path string) (map[string]any, error) {
	item, err := txn.Get([]byte(path))
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	err = item.Value(func(val []byte) error {
		d, err := decode(val)
		doc = d
		return err
	})
	return doc, err
}
