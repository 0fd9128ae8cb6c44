package rules

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a rules file
type File struct {
	Rules []types.Rule `toml:"rules" yaml:"rules"`
}

// LoadFile reads a TOML (.toml) or YAML (.yaml, .yml) rules file. Unknown
// fields are rejected so a typo cannot silently drop a rule.
func LoadFile(fsys types.FS, path string) ([]types.Rule, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read rules file %s", path)
	}

	rf, err := ParseFile(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse rules file %s", path)
	}
	return rf.Rules, nil
}

// ParseFile decodes rules file content; ext selects the format
func ParseFile(data []byte, ext string) (*File, error) {
	var rf File

	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rf); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&rf); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported rules file extension %q (want .toml, .yaml or .yml)", ext)
	}

	return &rf, nil
}
