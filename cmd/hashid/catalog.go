package main

import (
	"log/slog"

	"github.com/Veraticus/hashid/internal/classification"
	"github.com/Veraticus/hashid/internal/config"
	"github.com/spf13/afero"
)

// buildIdentifier returns an identifier over the built-in catalog, extended
// with or replaced by the patterns in cfg.File.
func buildIdentifier(fs afero.Fs, cfg config.CatalogConfig) (*classification.Identifier, error) {
	if cfg.File == "" {
		catalog, err := classification.DefaultCatalog()
		if err != nil {
			return nil, err
		}
		return classification.NewIdentifier(catalog), nil
	}

	patterns, err := classification.LoadPatternsFile(fs, cfg.File)
	if err != nil {
		return nil, err
	}

	if cfg.Replace {
		catalog, err := classification.NewCatalog(patterns)
		if err != nil {
			return nil, err
		}
		slog.Debug("Replaced built-in catalog", "file", cfg.File, "patterns", catalog.Len())
		return classification.NewIdentifier(catalog), nil
	}

	base, err := classification.DefaultCatalog()
	if err != nil {
		return nil, err
	}
	catalog, err := base.Extend(patterns)
	if err != nil {
		return nil, err
	}
	slog.Debug("Extended built-in catalog", "file", cfg.File, "patterns", catalog.Len())
	return classification.NewIdentifier(catalog), nil
}
