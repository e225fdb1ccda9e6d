package travel

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Store loads JSON datasets and caches the parsed records per path.
// One Store is constructed at startup and shared by every tool, so each
// dataset is read and parsed at most once per process. The cache never
// evicts; the corpus is three small static files.
type Store struct {
	mu     sync.Mutex
	cache  map[string]any
	counts map[string]int
}

// NewStore creates an empty dataset store.
func NewStore() *Store {
	return &Store{
		cache:  make(map[string]any),
		counts: make(map[string]int),
	}
}

// Flights returns the flight records backed by path.
func (s *Store) Flights(path string) ([]Flight, error) {
	return load[Flight](s, path)
}

// Hotels returns the hotel records backed by path.
func (s *Store) Hotels(path string) ([]Hotel, error) {
	return load[Hotel](s, path)
}

// Places returns the place records backed by path.
func (s *Store) Places(path string) ([]Place, error) {
	return load[Place](s, path)
}

// CacheInfo reports the number of cached files and total cached records.
func (s *Store) CacheInfo() (files, records int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.counts {
		records += n
	}
	return len(s.counts), records
}

// ClearCache drops all cached datasets.
func (s *Store) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]any)
	s.counts = make(map[string]int)
}

func load[T any](s *Store, path string) ([]T, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[key]; ok {
		return cached.([]T), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNotFound, path)
		}
		return nil, errors.Wrapf(err, "read data file %s", path)
	}

	var records []T
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, errors.Wrapf(ErrParse, "%s: %v", path, err)
	}

	s.cache[key] = records
	s.counts[key] = len(records)
	return records, nil
}
