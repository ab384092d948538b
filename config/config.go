package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/input"
)

// DefaultPath is the config file looked up when none is given
const DefaultPath = "config.yaml"

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("config.schema.json", schemaJSON)
	})
	return schema, schemaErr
}

// Config is the user-tunable game setup
type Config struct {
	FrameIntervalMs int    `yaml:"frame_interval_ms"`
	Level           string `yaml:"level"`
	Game            Game   `yaml:"game"`
	Audio           Audio  `yaml:"audio"`
	Input           Input  `yaml:"input"`
	Render          Render `yaml:"render"`
}

type Game struct {
	Ammo      int     `yaml:"ammo"`
	RoundTime float32 `yaml:"round_time"`
}

type Audio struct {
	Mute   bool    `yaml:"mute"`
	Volume float64 `yaml:"volume"` // Linear master gain in [0,1]
}

type Input struct {
	HoldWindowMs  int `yaml:"hold_window_ms"`
	RepeatDelayMs int `yaml:"repeat_delay_ms"`

	// Controls overrides key names per action, actions left out keep their defaults
	Controls map[string][]string `yaml:"controls"`
}

type Render struct {
	BlockColor string `yaml:"block_color"`
	Shading    bool   `yaml:"shading"` // Darken lower layers
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FrameIntervalMs: int(constant.FrameUpdateInterval / time.Millisecond),
		Level:           "levels/antescher.txt",
		Game: Game{
			Ammo:      constant.StartingAmmo,
			RoundTime: constant.RoundTime,
		},
		Audio: Audio{Volume: 1},
		Input: Input{
			HoldWindowMs:  int(constant.InputHoldWindow / time.Millisecond),
			RepeatDelayMs: int(constant.InputRepeatDelay / time.Millisecond),
		},
		Render: Render{
			BlockColor: constant.DefaultBlockColor,
			Shading:    true,
		},
	}
}

// Load reads a YAML config over the defaults, validating it against the embedded schema
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data over the defaults
func Parse(raw []byte) (*Config, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return cfg, nil
}

// Validate checks YAML config data against the schema
// The document goes through JSON so numbers reach the validator as json.Number
func Validate(raw []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if doc == nil {
		// Empty file, defaults apply
		return nil
	}

	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(js))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if err := s.Validate(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// FrameInterval returns the update and render period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

// HoldWindows returns the first-event and repeat hold windows
func (c *Config) HoldWindows() (first, repeat time.Duration) {
	return time.Duration(c.Input.RepeatDelayMs) * time.Millisecond,
		time.Duration(c.Input.HoldWindowMs) * time.Millisecond
}

// Keymap builds the keymap from the default bindings with Controls applied on top
func (c *Config) Keymap() (*input.Keymap, error) {
	bindings := input.DefaultBindings()
	for action, keys := range c.Input.Controls {
		bindings[action] = keys
	}
	km, err := input.ParseKeymap(bindings)
	if err != nil {
		return nil, fmt.Errorf("controls: %w", err)
	}
	return km, nil
}
