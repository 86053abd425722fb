// Package state holds the viewer session shared between the UI and commands.
package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ulysse71/milky-way/internal/astro"
	"github.com/ulysse71/milky-way/internal/catalog"
	"github.com/ulysse71/milky-way/internal/projection"
	"github.com/ulysse71/milky-way/internal/render"
)

// ErrInvalidCutoff is returned for non-positive cutoffs.
var ErrInvalidCutoff = errors.New("cutoff must be positive")

// EventType represents the type of session change.
type EventType string

const (
	EventCameraMoved   EventType = "CAMERA_MOVED"
	EventCameraReset   EventType = "CAMERA_RESET"
	EventCutoffChanged EventType = "CUTOFF_CHANGED"
)

// Event records a session change.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Detail    string    `json:"detail,omitempty"`
}

// Config holds configuration for a session.
type Config struct {
	Cutoff    float64 // catalog units from the galactic center
	Scale     float64 // applied to projected points before display
	CacheSize int     // projections kept for cutoff changes
	MaxEvents int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Cutoff:    projection.DefaultCutoff,
		Scale:     1.0 / 1000, // parsecs to kiloparsecs
		CacheSize: 16,
		MaxEvents: 50,
	}
}

// Session is the state of one viewing session. It is safe for concurrent use.
type Session struct {
	mu sync.RWMutex

	catalog *catalog.Catalog
	frame   astro.Frame
	cache   *projection.Cache

	cutoff float64
	scale  float64
	camera render.Camera

	// Scaled points for pointsCutoff.
	points       []projection.Point
	pointsCutoff float64
	projectTime  time.Duration

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int
}

// NewSession creates a session over cat projected into frame.
func NewSession(cat *catalog.Catalog, frame astro.Frame, cfg Config) (*Session, error) {
	if cfg.Cutoff <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidCutoff, cfg.Cutoff)
	}
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 16
	}
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}

	cache, err := projection.NewCache(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Session{
		catalog:   cat,
		frame:     frame,
		cache:     cache,
		cutoff:    cfg.Cutoff,
		scale:     cfg.Scale,
		camera:    render.DefaultCamera(),
		maxEvents: maxEvents,
		events:    make([]Event, 0, maxEvents),
	}, nil
}

// Points returns the scaled projection for the current cutoff. The projection
// is recomputed only when the cutoff has changed. Callers must not modify the
// returned slice.
func (s *Session) Points() []projection.Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.points != nil && s.pointsCutoff == s.cutoff {
		return s.points
	}

	start := time.Now()
	raw := s.cache.Project(s.catalog, s.frame, s.cutoff)
	s.points = projection.Scale(raw, s.scale)
	if s.points == nil {
		s.points = []projection.Point{}
	}
	s.pointsCutoff = s.cutoff
	s.projectTime = time.Since(start)
	return s.points
}

// Cutoff returns the current distance cutoff.
func (s *Session) Cutoff() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cutoff
}

// SetCutoff changes the distance cutoff.
func (s *Session) SetCutoff(cutoff float64) error {
	if cutoff <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidCutoff, cutoff)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCutoffLocked(cutoff)
	return nil
}

// MultiplyCutoff scales the cutoff by factor and returns the new value.
func (s *Session) MultiplyCutoff(factor float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cutoff * factor
	if next <= 0 {
		return s.cutoff, fmt.Errorf("%w: %g", ErrInvalidCutoff, next)
	}
	s.setCutoffLocked(next)
	return next, nil
}

func (s *Session) setCutoffLocked(cutoff float64) {
	if cutoff == s.cutoff {
		return
	}
	s.cutoff = cutoff
	s.addEvent(Event{
		Type:      EventCutoffChanged,
		Timestamp: time.Now(),
		Detail:    fmt.Sprintf("%g", cutoff),
	})
}

// Camera returns the current camera.
func (s *Session) Camera() render.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.camera
}

// Move applies a camera action and returns the new camera.
func (s *Session) Move(a render.Action) render.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a == render.NoAction {
		return s.camera
	}
	s.camera = s.camera.Apply(a)
	s.addEvent(Event{
		Type:      EventCameraMoved,
		Timestamp: time.Now(),
		Detail:    a.String(),
	})
	return s.camera
}

// ResetCamera restores the default camera.
func (s *Session) ResetCamera() render.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.camera = render.DefaultCamera()
	s.addEvent(Event{Type: EventCameraReset, Timestamp: time.Now()})
	return s.camera
}

// addEvent adds an event to the ring buffer.
func (s *Session) addEvent(e Event) {
	if len(s.events) < s.maxEvents {
		s.events = append(s.events, e)
	} else {
		s.events[s.eventWriteAt] = e
		s.eventWriteAt = (s.eventWriteAt + 1) % s.maxEvents
	}
}

// Snapshot represents an immutable snapshot of the session.
type Snapshot struct {
	Camera      render.Camera
	Frame       astro.Frame
	Cutoff      float64
	Scale       float64
	Stars       int
	Points      int // points in the last projection
	ProjectTime time.Duration
	CacheHits   int64
	CacheMisses int64
	Events      []Event
}

// Snapshot returns a consistent snapshot of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hits, misses := s.cache.Stats()
	return Snapshot{
		Camera:      s.camera,
		Frame:       s.frame,
		Cutoff:      s.cutoff,
		Scale:       s.scale,
		Stars:       s.catalog.Len(),
		Points:      len(s.points),
		ProjectTime: s.projectTime,
		CacheHits:   hits,
		CacheMisses: misses,
		Events:      s.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (s *Session) getEventsOrdered() []Event {
	if len(s.events) == 0 {
		return nil
	}

	if len(s.events) < s.maxEvents {
		result := make([]Event, len(s.events))
		copy(result, s.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, s.maxEvents)
	for i := 0; i < s.maxEvents; i++ {
		result[i] = s.events[(s.eventWriteAt+i)%s.maxEvents]
	}
	return result
}

// RecentEvents returns the last n events.
func (s *Session) RecentEvents(n int) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}
