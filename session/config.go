package session

import (
	"fmt"
	"os"
	"sort"

	"github.com/ghodss/yaml"
)

// Config is the configuration of a Session. It is typically loaded from a
// YAML document such as
//
//	slots:
//	  x: "1/3"
//	  y: "2.5"
//	history: 100
//	max_depth: 64
type Config struct {
	// Slots maps slot names to expressions giving their initial values.
	// Slots are evaluated in the order x, y, z, ans, so each may refer to
	// those before it.
	Slots map[string]string `json:"slots,omitempty"`
	// History is the history capacity. Zero selects DefaultHistory.
	History int `json:"history,omitempty"`
	// MaxDepth is the maximum parenthesis nesting depth. Zero selects
	// calculator.DefaultMaxDepth.
	MaxDepth int `json:"max_depth,omitempty"`
}

// ParseConfig parses a YAML configuration. Slot values may be quoted or
// plain scalars; numbers are read as their literal text. The slot name y
// may be written unquoted even though YAML 1.1 treats it as a boolean.
func ParseConfig(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("session: parsing config: %w", err)
	}
	if err := cfg.fixBoolKeys(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// fixBoolKeys restores the slot y. YAML 1.1 reads an unquoted y as the
// boolean true, which reaches the slots map as the key "true".
func (cfg *Config) fixBoolKeys() error {
	v, ok := cfg.Slots["true"]
	if !ok {
		return nil
	}
	if _, dup := cfg.Slots[SlotY]; dup {
		return fmt.Errorf("session: config: slot %s given twice", SlotY)
	}
	delete(cfg.Slots, "true")
	cfg.Slots[SlotY] = v
	return nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("session: reading config: %w", err)
	}
	return ParseConfig(b)
}

// Validate checks that every configured slot exists and that limits are not
// negative.
func (cfg *Config) Validate() error {
	// Sort so that the error for several bad names is deterministic.
	keys := make([]string, 0, len(cfg.Slots))
	for k := range cfg.Slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !IsSlot(k) {
			return fmt.Errorf("session: config: %w", &SlotError{Name: k})
		}
	}
	if cfg.History < 0 {
		return fmt.Errorf("session: config: history capacity %d is negative", cfg.History)
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("session: config: max depth %d is negative", cfg.MaxDepth)
	}
	return nil
}

// Marshal formats the configuration as YAML.
func (cfg *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}
