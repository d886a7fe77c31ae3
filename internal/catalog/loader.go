package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
	"github.com/yahna8/store-and-inventory-microservice/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrInvalidConfig     = errors.New("invalid catalog configuration")
	ErrDuplicateItemName = errors.New("duplicate item name")
)

// Config represents the JSON catalog definition file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def is a single item definition. Available defaults to true when omitted.
type Def struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Available   *bool  `json:"available,omitempty"`
}

// ToItem converts a definition into a catalog item
func (d Def) ToItem() domain.CatalogItem {
	available := true
	if d.Available != nil {
		available = *d.Available
	}
	return domain.CatalogItem{
		Name:        d.Name,
		Description: d.Description,
		Image:       d.Image,
		Price:       d.Price,
		Category:    d.Category,
		Available:   available,
	}
}

// Loader loads, validates and seeds catalog definitions
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Seed(ctx context.Context, config *Config, svc Service) (*domain.SeedResult, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &loader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads a catalog file and checks it against the embedded schema
func (l *loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.SchemaCatalog); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailed, err)
	}
	return &config, nil
}

// Validate checks rules the schema cannot express, such as unique names
func (l *loader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(config.Items))
	for i, def := range config.Items {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return fmt.Errorf(ErrFmtItemEmptyName, ErrInvalidConfig, i)
		}
		if names[name] {
			return fmt.Errorf(ErrFmtDuplicateItemName, ErrDuplicateItemName, name)
		}
		names[name] = true

		if strings.TrimSpace(def.Category) == "" {
			return fmt.Errorf(ErrFmtItemEmptyCategory, ErrInvalidConfig, name)
		}
		if def.Price < 0 {
			return fmt.Errorf(ErrFmtItemNegativePrice, ErrInvalidConfig, name)
		}
	}
	return nil
}

// Seed inserts every definition, skipping names already in the catalog
func (l *loader) Seed(ctx context.Context, config *Config, svc Service) (*domain.SeedResult, error) {
	if err := l.Validate(config); err != nil {
		return nil, err
	}

	items := make([]domain.CatalogItem, 0, len(config.Items))
	for _, def := range config.Items {
		items = append(items, def.ToItem())
	}

	result, err := svc.InsertBatch(ctx, items)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgSeedCompleted,
		"inserted", len(result.Inserted),
		"skipped", len(result.Skipped))
	return result, nil
}

// SeedFromFile loads, validates and seeds a catalog definition file
func SeedFromFile(ctx context.Context, path string, svc Service) (*domain.SeedResult, error) {
	l := NewLoader()
	config, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	return l.Seed(ctx, config, svc)
}
