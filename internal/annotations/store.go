package annotations

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// KeyPrefix is the directory prefix of every record filename.
const KeyPrefix = "img/"

// KeyExt is the file extension of every record filename.
const KeyExt = ".png"

// ErrAnnotationNotFound is returned when no record exists for an image id.
var ErrAnnotationNotFound = errors.New("annotation not found")

// ImageKey derives the record filename for an image id: "3" -> "img/3.png".
func ImageKey(imageID string) string {
	return KeyPrefix + imageID + KeyExt
}

// ImageID is the inverse of ImageKey. It strips the directory prefix and the
// extension, so "img/3.png" -> "3".
func ImageID(key string) string {
	base := path.Base(key)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Match is an annotation found by a store scan, along with the record
// filename it belongs to.
type Match struct {
	ImagePath  string     `json:"image_path"`
	Annotation Annotation `json:"annotation"`
}

// Store maps record filenames to image records for one scene.
//
// Iteration follows insertion order. A Store is not safe for concurrent
// mutation; each scene owns its own.
type Store struct {
	keys    []string
	records map[string]ImageRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]ImageRecord)}
}

// Load builds a store from decoded records. Duplicate filenames keep their
// first position and the last record's contents.
func Load(records []ImageRecord) *Store {
	s := &Store{
		keys:    make([]string, 0, len(records)),
		records: make(map[string]ImageRecord, len(records)),
	}
	for _, rec := range records {
		s.put(rec.Filename, rec)
	}
	return s
}

// Decode reads a JSON annotation file from r and builds a store.
func Decode(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read annotations: %w", err)
	}

	// Unmarshal rejects trailing data after the array
	var records []ImageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode annotations: %w", err)
	}
	return Load(records), nil
}

// ReadFile opens and decodes the annotation file at path.
func ReadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open annotations: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func (s *Store) put(key string, rec ImageRecord) {
	if _, ok := s.records[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.records[key] = rec
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.keys)
}

// Keys returns the record filenames in insertion order.
func (s *Store) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Records returns all records in insertion order.
func (s *Store) Records() []ImageRecord {
	out := make([]ImageRecord, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.records[k])
	}
	return out
}

// Get returns the record for an image id.
//
// # Errors
//
//   - ErrAnnotationNotFound if the store has no record for the id
func (s *Store) Get(imageID string) (ImageRecord, error) {
	key := ImageKey(imageID)
	rec, ok := s.records[key]
	if !ok {
		return ImageRecord{}, fmt.Errorf("%w: %s", ErrAnnotationNotFound, key)
	}
	return rec, nil
}

// Set inserts or replaces the record for an image id. The record's Filename
// is set to the key derived from imageID; there is no merge with an existing
// record.
func (s *Store) Set(imageID string, rec ImageRecord) {
	key := ImageKey(imageID)
	rec.Filename = key
	s.put(key, rec)
}

// FindByObjectPrefix returns every annotation whose id starts with prefix,
// in store order. Annotations without an id never match.
func (s *Store) FindByObjectPrefix(prefix string) []Match {
	var matches []Match
	for _, k := range s.keys {
		for _, a := range s.records[k].Annotations {
			if a.ID != nil && strings.HasPrefix(*a.ID, prefix) {
				matches = append(matches, Match{ImagePath: k, Annotation: a})
			}
		}
	}
	return matches
}

// Encode writes the store to w as an indented JSON array in insertion order.
// Each record is written under its store key.
func (s *Store) Encode(w io.Writer) error {
	records := make([]ImageRecord, 0, len(s.keys))
	for _, k := range s.keys {
		rec := s.records[k]
		rec.Filename = k
		if rec.Annotations == nil {
			rec.Annotations = []Annotation{}
		}
		records = append(records, rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode annotations: %w", err)
	}
	return nil
}

// WriteFile replaces the file at path with the encoded store.
func (s *Store) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write annotations: %w", err)
	}
	return nil
}
