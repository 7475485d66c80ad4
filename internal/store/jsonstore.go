package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// JSONStore is a flat on-disk cache holding one JSON file per dataset.
// A refresh overwrites the whole file; there is no locking, so two
// processes racing on the same dataset may interleave (known gap for
// this single-operator tool).
type JSONStore struct {
	Root string // e.g. "data"
}

func NewJSONStore(root string) *JSONStore {
	return &JSONStore{Root: root}
}

// Path returns the on-disk location for a dataset name such as
// "bootstrap_static" or "fixtures".
func (s *JSONStore) Path(dataset string) string {
	return filepath.Join(s.Root, dataset+".json")
}

func (s *JSONStore) Exists(dataset string) bool {
	_, err := os.Stat(s.Path(dataset))
	return err == nil
}

// Write persists body for dataset, replacing any previous content
// wholesale. When pretty is set the JSON is re-indented if it parses;
// otherwise the raw bytes are written unchanged.
func (s *JSONStore) Write(dataset string, body []byte, pretty bool) error {
	path := s.Path(dataset)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if pretty {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			buf := &bytes.Buffer{}
			enc := json.NewEncoder(buf)
			enc.SetIndent("", "  ")
			_ = enc.Encode(v)
			body = buf.Bytes()
		}
	}

	return os.WriteFile(path, body, 0o644)
}

// Read returns the persisted bytes for dataset verbatim.
func (s *JSONStore) Read(dataset string) ([]byte, error) {
	return os.ReadFile(s.Path(dataset))
}
