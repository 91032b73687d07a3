package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"jekyllwind/internal/fileutil"
)

// WriteJSON encodes the record as indented JSON.
func (c *Config) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Export atomically writes the record as JSON to path. A tailwind.config.js
// can then use module.exports = require("./path.json").
func Export(ctx context.Context, cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := fileutil.WriteAtomic(ctx, path, 0o644, cfg.WriteJSON); err != nil {
		return fmt.Errorf("export theme: %w", err)
	}
	return nil
}

// ReadJSON decodes a previously exported record.
func ReadJSON(r io.Reader) (*Config, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	return &cfg, nil
}
