package config

import "github.com/guestwin/xwlbridge/internal/core"

type Driver interface {
	Exists() (bool, error)
	Write(config Config) error
	Read() (Config, error)
}

func NewStore(driver Driver) (Store, error) {
	exists, err := driver.Exists()
	if err != nil {
		return Store{}, err
	}
	if !exists {
		if err := driver.Write(defaultConfig); err != nil {
			return Store{}, err
		}
	}

	return Store{
		driver: driver,
	}, nil
}

type Store struct {
	driver Driver
}

func (s *Store) GetConfig() (Config, error) {
	cfg, err := s.driver.Read()
	if err != nil {
		return Config{}, err
	}
	return Normalize(cfg), nil
}

func (s *Store) UpdateConfig(fn func(cfg Config) (Config, error)) error {
	cfg, err := s.driver.Read()
	if err != nil {
		return err
	}

	cfg, err = fn(cfg)
	if err != nil {
		return err
	}

	return s.driver.Write(cfg)
}

// Normalize fills unset fields with defaults.
func Normalize(cfg Config) Config {
	if cfg.FrameColor == 0 {
		cfg.FrameColor = defaultConfig.FrameColor
	}
	if cfg.DarkFrameColor == 0 {
		cfg.DarkFrameColor = defaultConfig.DarkFrameColor
	}
	if cfg.FullscreenMode == "" {
		cfg.FullscreenMode = defaultConfig.FullscreenMode
	}
	if cfg.Scale <= 0 {
		cfg.Scale = defaultConfig.Scale
	}
	cfg.SuppressEmptyCommits = ptr(core.Optional(cfg.SuppressEmptyCommits, true))
	cfg.XWayland = ptr(core.Optional(cfg.XWayland, true))
	return cfg
}

func ptr[T any](t T) *T { return &t }
