package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtree/btree"
	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/index"
)

// SearchPaths are tried in order by Load("").
var SearchPaths = []string{"lvtree.yaml", "configs/lvtree.yaml"}

// Config is the root of lvtree.yaml.
type Config struct {
	Index IndexConfig    `yaml:"index"` // which structure backs the shell
	Shell ShellConfig    `yaml:"shell"` // prompt and tracing
	Seed  []RecordConfig `yaml:"seed"`  // records inserted at startup, in order
}

// IndexConfig selects and sizes the index.
type IndexConfig struct {
	Kind  string `yaml:"kind"`  // avl | btree | bst | reference
	Order int    `yaml:"order"` // B-tree branching factor
}

// ShellConfig controls the interactive shell.
type ShellConfig struct {
	Prompt string `yaml:"prompt"` // written before every command
	Trace  bool   `yaml:"trace"`  // log rotations and splits
}

// RecordConfig is one record inserted before the shell starts.
type RecordConfig struct {
	Key   int    `yaml:"key"`
	Field string `yaml:"field"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Index: IndexConfig{
			Kind:  string(index.KindAVL),
			Order: btree.DefaultOrder,
		},
		Shell: ShellConfig{
			Prompt: "lvtree> ",
		},
	}
}

// Load reads configPath, or the first readable entry of SearchPaths when
// configPath is empty. Values missing from the file keep their defaults.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range SearchPaths {
			data, err := os.ReadFile(p)
			if errors.Is(err, fs.ErrNotExist) {
				continue // try the next location
			}
			if err != nil {
				return cfg, fmt.Errorf("config: %w", err)
			}
			return cfg, parse(cfg, data)
		}
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, parse(cfg, data)
}

func parse(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	applyDefaults(cfg)

	return cfg.Validate()
}

func applyDefaults(cfg *Config) {
	if cfg.Index.Kind == "" {
		cfg.Index.Kind = string(index.KindAVL)
	}
	if cfg.Index.Order <= 0 {
		cfg.Index.Order = btree.DefaultOrder
	}
	if cfg.Shell.Prompt == "" {
		cfg.Shell.Prompt = "lvtree> "
	}
}

// Validate checks the index kind, the B-tree order and every seed record.
func (c *Config) Validate() error {
	if _, err := index.ParseKind(c.Index.Kind); err != nil {
		return fmt.Errorf("config: index.kind: %w", err)
	}
	if c.Index.Order < btree.MinOrder {
		return fmt.Errorf("config: index.order: %w", btree.ErrBadOrder)
	}
	seen := make(map[int]bool, len(c.Seed))
	for i, r := range c.Seed {
		if _, err := core.NewRecord(r.Key, r.Field); err != nil {
			return fmt.Errorf("config: seed[%d]: %w", i, err)
		}
		if seen[r.Key] {
			return fmt.Errorf("config: seed[%d]: %w", i, core.DuplicateKey(r.Key))
		}
		seen[r.Key] = true
	}

	return nil
}

// Kind returns the parsed index kind. Call after Validate.
func (c *Config) Kind() index.Kind {
	k, _ := index.ParseKind(c.Index.Kind)
	return k
}
