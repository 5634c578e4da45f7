package osascript

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the executor options:
//
//	interpreter: /usr/bin/osascript
//	timeout: 30s
//	env:
//	  LANG: en_US.UTF-8
type Config struct {
	Interpreter string            `yaml:"interpreter"`
	Timeout     time.Duration     `yaml:"timeout"`
	Env         map[string]string `yaml:"env"`
}

// LoadConfig decodes YAML from r. Unknown keys are rejected; an empty
// document yields the zero Config.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode executor config: %w", err)
	}
	return &cfg, nil
}

// Options converts the config into executor options. Zero fields are skipped
// so the executor defaults apply.
func (c *Config) Options() []FunctionalOption {
	var opts []FunctionalOption
	if c.Interpreter != "" {
		opts = append(opts, WithInterpreter(c.Interpreter))
	}
	if c.Timeout != 0 {
		opts = append(opts, WithTimeout(c.Timeout))
	}
	if len(c.Env) > 0 {
		opts = append(opts, WithEnv(c.Env))
	}
	return opts
}
