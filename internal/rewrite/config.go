// Package rewrite implements the litgo source transform: it scans annotated
// functions for integer and string literals, validates each literal against
// the conformance registered for its target type, and emits generated files
// in which every validated literal has been rewritten into its dispatch
// call. A single invalid literal fails the whole run and nothing is written.
//
// Annotated source carries the `litgo` build constraint, so the pre-rewrite
// form (which is deliberately ill-typed at literal sites) is never seen by
// the compiler; the generated sibling files take its place in the build.
package rewrite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/litgo/internal/config"
)

// Config is the litgo.yaml configuration.
type Config struct {
	// Packages lists the package patterns to process (as accepted by
	// go/packages, e.g. "./..."). Defaults to ["./..."].
	Packages []string `yaml:"packages,omitempty"`

	// Tag is the build constraint marking annotated files.
	// Defaults to "litgo".
	Tag string `yaml:"tag,omitempty"`

	// Suffix is the generated file suffix replacing ".go".
	// Defaults to "_litgo.go".
	Suffix string `yaml:"suffix,omitempty"`
}

// DefaultConfig returns the configuration used when no litgo.yaml exists.
func DefaultConfig() Config {
	return Config{
		Packages: []string{"./..."},
		Tag:      config.BuildTag,
		Suffix:   config.GeneratedSuffix,
	}
}

// LoadConfig reads a litgo.yaml file. A missing file is not an error unless
// explicit is set: the default-path lookup tolerates absence and returns the
// defaults, but a path the user named must exist.
func LoadConfig(path string, explicit bool) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Packages) == 0 {
		c.Packages = []string{"./..."}
	}
	if c.Tag == "" {
		c.Tag = config.BuildTag
	}
	if c.Suffix == "" {
		c.Suffix = config.GeneratedSuffix
	}
}
