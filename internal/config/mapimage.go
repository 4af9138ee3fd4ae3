package config

import (
	"os"
	"strconv"
)

const (
	mapImagePathEnv = "MAP_IMAGE_PATH"
	mapWidthEnv     = "MAP_WIDTH"
	mapHeightEnv    = "MAP_HEIGHT"

	defaultMapWidth  = 800
	defaultMapHeight = 600
)

// MapConfig locates the background map. Width and Height are used only when
// no image path is configured.
type MapConfig struct {
	ImagePath string
	Width     int
	Height    int
}

func LoadMapConfig() (*MapConfig, error) {
	cfg := &MapConfig{
		ImagePath: os.Getenv(mapImagePathEnv),
		Width:     defaultMapWidth,
		Height:    defaultMapHeight,
	}

	if v := os.Getenv(mapWidthEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrInvalidMapSize
		}
		cfg.Width = parsed
	}

	if v := os.Getenv(mapHeightEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrInvalidMapSize
		}
		cfg.Height = parsed
	}

	return cfg, nil
}

func (c *MapConfig) Validate() error {
	if c.ImagePath != "" {
		return nil
	}
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidMapSize
	}
	return nil
}
