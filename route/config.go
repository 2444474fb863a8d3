package route

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
	"github.com/xy-planning-network/mediaspa"
)

// A Config is the decoded form of a route table document.
type Config struct {
	// History selects how the host maps URLs onto route paths; defaults to Hash.
	History HistoryMode `toml:"history"`

	// Strict, when set, overrides whether trailing slashes are significant.
	Strict *bool `toml:"strict"`

	Routes []Route `toml:"routes"`
}

// Parse decodes a TOML route table document.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decoding routes: %s", mediaspa.ErrBadConfig, err)
	}

	if cfg.History == "" {
		cfg.History = Hash
	}

	h, err := ParseHistoryMode(cfg.History.String())
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", mediaspa.ErrBadConfig, err)
	}
	cfg.History = h

	if len(cfg.Routes) == 0 {
		return Config{}, fmt.Errorf("%w: no routes", mediaspa.ErrBadConfig)
	}

	return cfg, nil
}

// Load reads the file name from fsys and parses it.
func Load(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("%w: reading %s: %s", mediaspa.ErrBadConfig, name, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}

	return cfg, nil
}

// Table builds the Table the Config describes.
func (c Config) Table() (*Table, error) {
	var opts []TableOption
	if c.Strict != nil {
		opts = append(opts, WithStrict(*c.Strict))
	}

	return New(c.Routes, opts...)
}
