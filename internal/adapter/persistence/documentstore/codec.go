package documentstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPath = errors.New("invalid document path")

// validatePath accepts "collection/id" pairs, possibly nested.
func validatePath(path string) error {
	segments := strings.Split(path, "/")
	if len(segments) < 2 || len(segments)%2 != 0 {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	for _, s := range segments {
		if s == "" {
			return fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}
	return nil
}

func validateCollection(collectionPath string) error {
	segments := strings.Split(collectionPath, "/")
	if len(segments)%2 != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidPath, collectionPath)
	}
	for _, s := range segments {
		if s == "" {
			return fmt.Errorf("%w: %q", ErrInvalidPath, collectionPath)
		}
	}
	return nil
}

// collectionOf returns the parent collection of a document path.
func collectionOf(path string) string {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return ""
	}
	return path[:i]
}

// isDirectChild reports whether path is a document directly under collectionPath.
func isDirectChild(collectionPath, path string) bool {
	prefix := collectionPath + "/"
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return !strings.Contains(path[len(prefix):], "/")
}

func encode(fields map[string]any) ([]byte, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return b, nil
}

func decode(raw []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

// normalize converts caller values (structs, typed slices, ints) into the
// JSON shapes every backend returns.
func normalize(fields map[string]any) (map[string]any, error) {
	raw, err := encode(fields)
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
