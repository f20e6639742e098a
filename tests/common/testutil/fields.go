//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap turns a request DTO into a JSON object map and applies muts, so a test
// can drop a field or send a raw value the DTO type cannot hold.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	for _, f := range muts {
		f(m)
	}
	return m
}

// a helper function for dynamically modifying map fields in tests
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// Null sets key to an explicit JSON null, unlike Field(key, nil) which removes it.
func Null(key string) func(m map[string]any) {
	return func(m map[string]any) {
		m[key] = nil
	}
}
