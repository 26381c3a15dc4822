package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const maxResolutionDepthLimit = 10

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Selection.validate(); err != nil {
		return fmt.Errorf("selection: %w", err)
	}

	if err := c.Refresh.validate(); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	return nil
}

func (s *SelectionConfig) validate() error {
	if s.MaxResolutionDepth < 1 || s.MaxResolutionDepth > maxResolutionDepthLimit {
		return fmt.Errorf("max_resolution_depth must be in [1, %d] (got %d)", maxResolutionDepthLimit, s.MaxResolutionDepth)
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	return nil
}

func (r *RefreshConfig) validate() error {
	if !r.Enabled {
		return nil
	}

	if _, err := cron.ParseStandard(r.Schedule); err != nil {
		return fmt.Errorf("schedule %q: %w", r.Schedule, err)
	}

	return nil
}
