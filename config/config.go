// Package config handles hausdoc configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	OutputDir   string `yaml:"output_dir"`
	AssetsDir   string `yaml:"assets_dir"`
	CatalogPath string `yaml:"catalog_path"`
	FilePrefix  string `yaml:"file_prefix"`
	FileExt     string `yaml:"file_ext"`
	Watermark   string `yaml:"watermark"` // e.g. "ENTWURF"; empty disables it

	Company CompanyConfig `yaml:"company"`
	Layout  LayoutConfig  `yaml:"layout"`
}

// CompanyConfig holds the contact constants printed on the report and encoded
// into the closing-page QR codes.
type CompanyConfig struct {
	Name           string   `yaml:"name"`
	Tagline        string   `yaml:"tagline"`
	Website        string   `yaml:"website"`
	Email          string   `yaml:"email"`
	Phone          string   `yaml:"phone"`      // display form
	PhoneDial      string   `yaml:"phone_dial"` // tel: form, digits only
	Logo           string   `yaml:"logo"`       // relative to assets_dir
	HeroImage      string   `yaml:"hero_image"` // relative to assets_dir
	Certifications []string `yaml:"certifications"`
}

// LayoutConfig holds the tuned layout constants. All lengths are points on an
// A4 page of 595x842.
type LayoutConfig struct {
	NotesCharBudget   int     `yaml:"notes_char_budget"`
	NotesBottomLimit  float64 `yaml:"notes_bottom_limit"`
	ContentBottom     float64 `yaml:"content_bottom"`
	FloorCellWidth    float64 `yaml:"floor_cell_width"`
	FloorCellHeight   float64 `yaml:"floor_cell_height"`
	FloorGap          float64 `yaml:"floor_gap"`
	UValueCeiling     float64 `yaml:"u_value_ceiling"`
	UValueStandard    float64 `yaml:"u_value_standard"`
	UValueMinimum     float64 `yaml:"u_value_minimum"`
	SCOPMax           float64 `yaml:"scop_max"`
	MaxImageDimension int     `yaml:"max_image_dimension"` // pixels; larger photos are downscaled
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		OutputDir:   "./generated_pdfs",
		AssetsDir:   "./assets",
		CatalogPath: "./data/catalog.json",
		FilePrefix:  "Leistungsbeschreibung_",
		FileExt:     ".pdf",
		Company: CompanyConfig{
			Name:      "Lehner Haus GmbH & Co. KG",
			Tagline:   "schwäbisch gut seit über 60 Jahren",
			Website:   "https://www.lehner-haus.de",
			Email:     "info@lehner-haus.de",
			Phone:     "+49 (0) 7331 20 88 - 0",
			PhoneDial: "+4973312088",
			Logo:      "images/logo.png",
			HeroImage: "images/hero.jpg",
			Certifications: []string{
				"QDF-Qualitätsgemeinschaft Deutscher Fertigbau",
				"RAL-Gütezeichen Holzhausbau",
				"DIN EN ISO 9001 Qualitätsmanagement",
			},
		},
		Layout: LayoutConfig{
			NotesCharBudget:   420,
			NotesBottomLimit:  770,
			ContentBottom:     790,
			FloorCellWidth:    140,
			FloorCellHeight:   100,
			FloorGap:          15,
			UValueCeiling:     0.50,
			UValueStandard:    0.24,
			UValueMinimum:     0.40,
			SCOPMax:           6,
			MaxImageDimension: 1600,
		},
	}
}

// Load loads configuration from a file. Fields missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns the default if path is
// empty or does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: creating directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// Validate rejects layout constants that would break chart scaling.
func (c *Config) Validate() error {
	l := c.Layout
	switch {
	case l.UValueCeiling <= 0:
		return fmt.Errorf("layout.u_value_ceiling must be positive, got %v", l.UValueCeiling)
	case l.SCOPMax <= 0:
		return fmt.Errorf("layout.scop_max must be positive, got %v", l.SCOPMax)
	case l.FloorCellWidth <= 0 || l.FloorCellHeight <= 0:
		return fmt.Errorf("layout floor cells must be positive, got %vx%v", l.FloorCellWidth, l.FloorCellHeight)
	case l.NotesCharBudget < 0:
		return fmt.Errorf("layout.notes_char_budget must not be negative, got %d", l.NotesCharBudget)
	}
	return nil
}
