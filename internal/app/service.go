package app

import (
	"errors"
	"fmt"

	"github.com/attendify/attendify/internal/store"
)

// Service is the synchronous call surface the presentation layer talks to.
// It holds no per-user state: the acting user id is a parameter on every
// operation and nothing is cached between calls, so each call sees the
// latest committed state.
type Service struct {
	Config *Config
	Store  store.AttendanceStore
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := NewStore(config.Database.DSN, config.Database.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	return &Service{
		Config: config,
		Store:  st,
	}, nil
}

func (s *Service) Close() error {
	if err := s.Store.Close(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// translateStoreErr maps store sentinels onto the service's error kinds so
// storage details never leak past this package.
func translateStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrDuplicateUsername):
		return ErrDuplicateUsername
	case errors.Is(err, store.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return err
	}
}
