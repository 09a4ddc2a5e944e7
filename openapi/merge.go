package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// DeepMerge merges two JSON-like trees built from map[string]any, []any
// and scalars. When both sides are maps the keys are unioned and shared
// keys merge recursively; otherwise src wins. Sequences are replaced, not
// concatenated. Neither input is modified.
func DeepMerge(dst, src any) any {
	dm, dok := asPlainMap(dst)
	sm, sok := asPlainMap(src)
	if !dok || !sok {
		return cloneNode(src)
	}

	out := make(map[string]any, len(dm)+len(sm))
	for k, v := range dm {
		out[k] = cloneNode(v)
	}
	for k, v := range sm {
		if existing, ok := out[k]; ok {
			out[k] = DeepMerge(existing, v)
			continue
		}
		out[k] = cloneNode(v)
	}
	return out
}

// asPlainMap reports whether node is a JSON object.
func asPlainMap(node any) (map[string]any, bool) {
	m, ok := node.(map[string]any)
	return m, ok && m != nil
}

func cloneNode(node any) any {
	switch v := node.(type) {
	case map[string]any:
		if v == nil {
			return v
		}
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = cloneNode(item)
		}
		return out
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneNode(item)
		}
		return out
	default:
		return v
	}
}

// MergePaths folds route fragments left to right into one Paths value.
// Different paths and different methods under one path are unioned. When
// two fragments define the same path and method, their operations are deep
// merged: nested objects union, and scalars or lists from the later
// fragment win.
func MergePaths(fragments ...Paths) (Paths, error) {
	return mergePaths(discardLogger(), fragments)
}

func mergePaths(logger *slog.Logger, fragments []Paths) (Paths, error) {
	merged := make(Paths)

	for _, fragment := range fragments {
		for path, item := range fragment {
			target, ok := merged[path]
			if !ok {
				target = make(PathItem, len(item))
				merged[path] = target
			}

			for method, op := range item {
				if op == nil {
					continue
				}
				existing, ok := target[method]
				if !ok {
					target[method] = op
					continue
				}

				logger.Debug("merging duplicate operation", "path", path, "method", method)
				combined, err := mergeOperations(existing, op)
				if err != nil {
					return nil, fmt.Errorf("merge %s %s: %w", method, path, err)
				}
				target[method] = combined
			}
		}
	}

	return merged, nil
}

// mergeOperations deep merges two operations through their JSON form so
// that the result matches merging the serialized documents.
func mergeOperations(a, b *Operation) (*Operation, error) {
	left, err := toNode(a)
	if err != nil {
		return nil, err
	}
	right, err := toNode(b)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(DeepMerge(left, right))
	if err != nil {
		return nil, err
	}

	var op Operation
	if err := decodeJSON(data, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// toNode converts v into a JSON-like tree, keeping numbers as json.Number
// so they survive the round trip unchanged.
func toNode(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var node any
	if err := decodeJSON(data, &node); err != nil {
		return nil, err
	}
	return node, nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
