package config

// CSSOverride is a partial CSS record. A nil field is absent and keeps the
// base value when merged.
type CSSOverride struct {
	Input      *string        `toml:"input,omitempty" yaml:"input,omitempty" json:"input,omitempty"`
	Output     *string        `toml:"output,omitempty" yaml:"output,omitempty" json:"output,omitempty"`
	Watch      *CSSWatch      `toml:"watch,omitempty" yaml:"watch,omitempty" json:"watch,omitempty"`
	Production *CSSProduction `toml:"production,omitempty" yaml:"production,omitempty" json:"production,omitempty"`
	Minify     *bool          `toml:"minify,omitempty" yaml:"minify,omitempty" json:"minify,omitempty"`
	Purge      *bool          `toml:"purge,omitempty" yaml:"purge,omitempty" json:"purge,omitempty"`
	SourceMap  *bool          `toml:"sourceMap,omitempty" yaml:"sourceMap,omitempty" json:"sourceMap,omitempty"`
}

// MergeOverride returns base with every key present in override replaced.
//
// The merge is one level deep: a present Watch or Production replaces the
// whole sub-record, so sibling keys missing from the override take their
// zero value instead of the base value.
func MergeOverride(base CSS, override CSSOverride) CSS {
	merged := base
	if override.Input != nil {
		merged.Input = *override.Input
	}
	if override.Output != nil {
		merged.Output = *override.Output
	}
	if override.Watch != nil {
		merged.Watch = *override.Watch
	}
	if override.Production != nil {
		merged.Production = *override.Production
	}
	if override.Minify != nil {
		merged.Minify = *override.Minify
	}
	if override.Purge != nil {
		merged.Purge = *override.Purge
	}
	if override.SourceMap != nil {
		merged.SourceMap = *override.SourceMap
	}
	return merged
}

// Keys lists the css.* keys the override sets, in schema order.
func (o CSSOverride) Keys() []string {
	keys := make([]string, 0, 7)
	if o.Input != nil {
		keys = append(keys, "input")
	}
	if o.Output != nil {
		keys = append(keys, "output")
	}
	if o.Watch != nil {
		keys = append(keys, "watch")
	}
	if o.Production != nil {
		keys = append(keys, "production")
	}
	if o.Minify != nil {
		keys = append(keys, "minify")
	}
	if o.Purge != nil {
		keys = append(keys, "purge")
	}
	if o.SourceMap != nil {
		keys = append(keys, "sourceMap")
	}
	return keys
}

// IsEmpty reports whether the override sets no keys.
func (o CSSOverride) IsEmpty() bool {
	return len(o.Keys()) == 0
}

func (o CSSOverride) clone() CSSOverride {
	out := CSSOverride{}
	if o.Input != nil {
		v := *o.Input
		out.Input = &v
	}
	if o.Output != nil {
		v := *o.Output
		out.Output = &v
	}
	if o.Watch != nil {
		v := *o.Watch
		out.Watch = &v
	}
	if o.Production != nil {
		v := *o.Production
		out.Production = &v
	}
	if o.Minify != nil {
		out.Minify = boolPtr(*o.Minify)
	}
	if o.Purge != nil {
		out.Purge = boolPtr(*o.Purge)
	}
	if o.SourceMap != nil {
		out.SourceMap = boolPtr(*o.SourceMap)
	}
	return out
}
