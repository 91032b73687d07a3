package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a configuration file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a user supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Decode strictly decodes r into cfg. Keys in r replace the values already in
// cfg; an environment entry in r replaces the whole entry of the same name.
// Unknown keys fail with ErrUnknownConfigField.
func Decode(r io.Reader, format Format, cfg *Config) error {
	base := cfg.Environments
	cfg.Environments = nil

	var err error
	switch format {
	case FormatTOML:
		err = decodeTOML(r, cfg)
	case FormatYAML:
		err = decodeYAML(r, cfg)
	case FormatJSON:
		err = decodeJSON(r, cfg)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		cfg.Environments = base
		return err
	}

	fromFile := cfg.Environments
	cfg.Environments = make(map[string]EnvironmentOverride, len(base)+len(fromFile))
	for name, env := range base {
		cfg.Environments[name] = env
	}
	// A file entry replaces the default entry with the same folded name.
	for _, name := range slices.Sorted(maps.Keys(fromFile)) {
		cfg.Environments[normalizeEnvironmentName(name)] = fromFile[name]
	}
	return nil
}

func decodeTOML(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	err := dec.Decode(cfg)
	if err == nil {
		return nil
	}
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) && len(strict.Errors) > 0 {
		key := strings.Join(strict.Errors[0].Key(), ".")
		return &FieldError{Key: key, Problem: "is not a recognized key", Err: ErrUnknownConfigField}
	}
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		if key := strings.Join(decodeErr.Key(), "."); key != "" {
			return &FieldError{Key: key, Problem: "invalid value", Err: err}
		}
	}
	return err
}

// decodeYAML validates every key path against the Config tags before the
// real decode, so errors name the full dotted key.
func decodeYAML(r io.Reader, cfg *Config) error {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := checkYAMLNode(&root, reflect.TypeOf(cfg), nil); err != nil {
		return err
	}
	return root.Decode(cfg)
}

func decodeJSON(r io.Reader, cfg *Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var doc any
	generic := json.NewDecoder(bytes.NewReader(data))
	generic.UseNumber()
	if err := generic.Decode(&doc); err != nil {
		return err
	}
	if err := checkJSONValue(doc, reflect.TypeOf(cfg), nil); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Encode writes cfg to w in the requested format.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
