package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig holds defaults loaded from a --config file, like:
//
//	cells = 4096
//	eof = "unchanged"
type fileConfig struct {
	Cells *int       `toml:"cells"`
	EOF   *configEOF `toml:"eof"`
}

// configEOF decodes an eof value written either as a string, like "'\\n'",
// or as a bare integer, like 88 or -1.
type configEOF struct{ policy EOFPolicy }

func (ce *configEOF) UnmarshalTOML(value interface{}) (err error) {
	switch v := value.(type) {
	case string:
		ce.policy, err = ParseEOF(v)
	case int64:
		ce.policy, err = ParseEOF(strconv.FormatInt(v, 10))
	default:
		err = fmt.Errorf("invalid eof %v: %w", v, ErrEOFSyntax)
	}
	return err
}

func loadConfig(path string) (cfg fileConfig, err error) {
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("cannot load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cfg, fmt.Errorf("unknown config keys in %s: %v", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// applyTo sets any option that the command line left unset.
func (cfg fileConfig) applyTo(opts *cliOptions, changed func(name string) bool) {
	if cfg.Cells != nil && !changed("cells") {
		opts.cells = *cfg.Cells
	}
	if cfg.EOF != nil && !changed("eof") {
		opts.eof = cfg.EOF.policy
	}
}
