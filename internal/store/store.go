// Package store persists every player record as a single pretty-printed
// JSON document on disk, keyed by the decimal Telegram user ID. The store
// owns the in-memory map; every mutation rewrites the whole document.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/SM-TRIBE/Crismon/internal/models"
)

type Store struct {
	path string
	log  zerolog.Logger

	mu      sync.RWMutex
	players map[string]*models.Player
}

// Open loads the document at path. A missing file or unparseable content
// yields an empty store; both are logged, neither is an error.
func Open(path string, log zerolog.Logger) *Store {
	s := &Store{
		path:    path,
		log:     log,
		players: make(map[string]*models.Player),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Error().Err(err).Str("path", path).Msg("could not read player database")
		}
		return s
	}
	if err := json.Unmarshal(data, &s.players); err != nil {
		log.Error().Err(err).Str("path", path).Msg("player database is corrupt, starting empty")
		s.players = make(map[string]*models.Player)
	}
	return s
}

// Get returns the record for id, lazily inserting a fresh default record
// on first contact. The lazy insert is in-memory only; the first Update
// writes it to disk.
func (s *Store) Get(id int64) *models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strconv.FormatInt(id, 10)
	p, ok := s.players[key]
	if !ok {
		p = models.NewPlayer()
		s.players[key] = p
	}
	return p
}

// Lookup returns the record for id without creating one.
func (s *Store) Lookup(id int64) (*models.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[strconv.FormatInt(id, 10)]
	return p, ok
}

// Update replaces the record for id and rewrites the document.
func (s *Store) Update(id int64, p *models.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players[strconv.FormatInt(id, 10)] = p
	s.flush()
}

// Delete removes the record for id and rewrites the document. Only admin
// rejection of a pending player deletes records.
func (s *Store) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.players, strconv.FormatInt(id, 10))
	s.flush()
}

// Approved returns a snapshot of every approved record keyed by user ID.
func (s *Store) Approved() map[int64]*models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]*models.Player)
	for key, p := range s.players {
		if !p.Approved {
			continue
		}
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			s.log.Warn().Str("key", key).Msg("skipping record with non-numeric key")
			continue
		}
		out[id] = p
	}
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// flush rewrites the full document. A write failure is logged and the
// in-memory map keeps its mutated state, so disk can lag memory until the
// next successful write. Callers must hold mu.
func (s *Store) flush() {
	data, err := json.MarshalIndent(s.players, "", "    ")
	if err != nil {
		s.log.Error().Err(err).Msg("could not encode player database")
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("could not write player database")
	}
}
