package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"

	"order-weather/internal/types"
)

// Service resolves the local time zone of a coordinate
type Service interface {
	// Name returns the IANA time zone name, e.g. "America/Santiago"
	Name(coords types.Coords) (string, error)
	// Location returns the loaded time zone for coords
	Location(coords types.Coords) (*time.Location, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// tzf.Finder keeps the whole polygon set in memory, so it is built once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

func (s *service) Name(coords types.Coords) (string, error) {
	if !coords.Valid() {
		return "", fmt.Errorf("invalid coordinates lat=%f, lon=%f", coords.Latitude, coords.Longitude)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", coords.Latitude, coords.Longitude)
	}

	return name, nil
}

func (s *service) Location(coords types.Coords) (*time.Location, error) {
	name, err := s.Name(coords)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}
