package classification

import (
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/hashid/internal/common"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Patterns []Pattern `yaml:"patterns"`
}

// LoadPatterns decodes a YAML catalog document and validates every entry.
//
//	patterns:
//	  - regex: '^[a-f0-9]{32}$'
//	    modes:
//	      - {name: MD5, hashcat: 0, john: raw-md5}
func LoadPatterns(r io.Reader) ([]Pattern, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no patterns defined", common.ErrInvalidCatalogFile)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidCatalogFile, err)
	}

	if len(file.Patterns) == 0 {
		return nil, fmt.Errorf("%w: no patterns defined", common.ErrInvalidCatalogFile)
	}

	for i, p := range file.Patterns {
		if _, err := compilePattern(p); err != nil {
			return nil, fmt.Errorf("%w: pattern %d: %w", common.ErrInvalidCatalogFile, i, err)
		}
	}

	return file.Patterns, nil
}

// LoadPatternsFile reads a YAML catalog from path on fs.
func LoadPatternsFile(fs afero.Fs, path string) ([]Pattern, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	patterns, err := LoadPatterns(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return patterns, nil
}
