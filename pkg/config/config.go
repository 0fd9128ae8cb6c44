package config

import (
	"fmt"
	"time"

	"github.com/arthur-debert/filesort/pkg/output"
	"github.com/arthur-debert/filesort/pkg/types"
)

// Config is the complete set of settings
type Config struct {
	Sort   Sort   `koanf:"sort"`
	Output Output `koanf:"output"`
	Watch  Watch  `koanf:"watch"`
}

// Sort holds the defaults for sort and watch runs
type Sort struct {
	Recursive  bool                 `koanf:"recursive"`
	OnConflict types.ConflictPolicy `koanf:"on_conflict"`
	KeepGoing  bool                 `koanf:"keep_going"`
	Lock       bool                 `koanf:"lock"`
}

// Output selects how results are printed
type Output struct {
	Format output.Format    `koanf:"format"`
	Color  output.ColorMode `koanf:"color"`
}

// Watch tunes the watch command
type Watch struct {
	Debounce time.Duration `koanf:"debounce"`
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive, got %s", c.Watch.Debounce)
	}
	return nil
}
