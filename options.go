package hausdoc

import (
	"log"
	"time"

	"github.com/lvillar/hausdoc/catalog"
	"github.com/lvillar/hausdoc/config"
)

// Option is a functional option for configuring a Generator via New.
type Option func(*generatorConfig)

type generatorConfig struct {
	cfg       *config.Config
	outputDir string
	assetsDir string
	logger    *log.Logger
	catalog   catalog.Adapter
	now       func() time.Time
}

// WithConfig sets the configuration. Options applied after it override its
// fields.
func WithConfig(cfg *config.Config) Option {
	return func(c *generatorConfig) {
		c.cfg = cfg
	}
}

// WithOutputDir sets the directory reports are written to.
func WithOutputDir(dir string) Option {
	return func(c *generatorConfig) {
		c.outputDir = dir
	}
}

// WithAssetsDir sets the root against which image and drawing references are
// resolved.
func WithAssetsDir(dir string) Option {
	return func(c *generatorConfig) {
		c.assetsDir = dir
	}
}

// WithLogger sets the logger for diagnostics. The default writes to stderr.
func WithLogger(l *log.Logger) Option {
	return func(c *generatorConfig) {
		c.logger = l
	}
}

// WithCatalog sets the catalog variants are resolved from. Without it the
// catalog is loaded from the configured catalog path.
func WithCatalog(a catalog.Adapter) Option {
	return func(c *generatorConfig) {
		c.catalog = a
	}
}

// WithClock sets the time source used when a submission carries no
// timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *generatorConfig) {
		c.now = now
	}
}
