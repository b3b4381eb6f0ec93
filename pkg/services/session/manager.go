package session

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
	"github.com/ev-tools/charge-atlas/pkg/services/analytics"
	"github.com/ev-tools/charge-atlas/pkg/services/dataset"
	"github.com/ev-tools/charge-atlas/pkg/services/ingest"
)

// ErrNotFound is returned for unknown session ids.
var ErrNotFound = errors.New("session not found")

// ErrInvalidFilter is returned when a filter value is not drawn from the
// distinct values present in the session's dataset.
var ErrInvalidFilter = errors.New("invalid filter value")

// Session is one exploration session: an immutable base dataset plus the
// mutable filter state driving it. Sessions never share mutable state.
type Session struct {
	ID string

	mu      sync.RWMutex
	stats   ingest.Stats
	dataset *dataset.Dataset
	filter  domain.FilterState
}

// Manager owns all live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create registers a new session over the given dataset with the default
// (ALL, ALL) filter.
func (m *Manager) Create(ds *dataset.Dataset, stats ingest.Stats) *Session {
	if ds == nil {
		ds = dataset.Empty()
	}
	s := &Session{
		ID:      uuid.NewString(),
		stats:   stats,
		dataset: ds,
		filter:  domain.DefaultFilter(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Dataset returns the session's current base dataset handle.
func (s *Session) Dataset() *dataset.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// Stats returns the ingest counters for the current dataset.
func (s *Session) Stats() ingest.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Filter returns the current filter state.
func (s *Session) Filter() domain.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SetFilter validates the selection against the dataset's distinct values
// and applies it.
func (s *Session) SetFilter(f domain.FilterState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dataset.HasStation(f.Station) {
		return fmt.Errorf("%w: station %q", ErrInvalidFilter, f.Station)
	}
	if !s.dataset.HasMonth(f.Month) {
		return fmt.Errorf("%w: month %d", ErrInvalidFilter, f.Month)
	}
	s.filter = f
	return nil
}

// Replace loads a new dataset from CSV data and swaps it in wholesale. On
// any parse failure the previous dataset and filter state stay untouched.
func (s *Session) Replace(r io.Reader) (ingest.Stats, error) {
	sessions, stats, err := ingest.Load(r)
	if err != nil {
		return ingest.Stats{}, fmt.Errorf("replace dataset: %w", err)
	}
	ds := dataset.New(sessions)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
	s.stats = stats
	// The old selection may not exist in the new dataset.
	s.filter = domain.DefaultFilter()
	return stats, nil
}

// Evaluate recomputes the full KPI and chart set for the current filter.
func (s *Session) Evaluate() (domain.KPISet, domain.ChartSet) {
	s.mu.RLock()
	ds, f := s.dataset, s.filter
	s.mu.RUnlock()
	return analytics.Evaluate(ds, f)
}

// Snapshot serializes the session's base dataset.
func (s *Session) Snapshot(w io.Writer) error {
	return dataset.EncodeSnapshot(s.Dataset(), w)
}

// Restore replaces the session's dataset from a snapshot, keeping the old
// dataset on decode failure.
func (s *Session) Restore(r io.Reader) error {
	ds, err := dataset.DecodeSnapshot(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
	// Snapshots carry no ingest counters; the restored dataset was already
	// clean when it was encoded.
	s.stats = ingest.Stats{}
	s.filter = domain.DefaultFilter()
	return nil
}
