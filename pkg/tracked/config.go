// Package tracked loads the tracked-component configuration: which
// component names to measure and which import sources identify the
// tracked UI library.
package tracked

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnana997/propscope/pkg/lexer"
)

// DefaultPath is where propscope looks for project configuration.
const DefaultPath = ".propscope/config.yaml"

// Config is the on-disk tracked configuration.
type Config struct {
	Version string `yaml:"version"`
	// Library is a display name for the tracked UI library.
	Library string `yaml:"library"`
	// Components is the PascalCase allowlist of tracked exports.
	Components []string `yaml:"components"`
	// ImportSources are substrings an import source must contain.
	ImportSources []string `yaml:"import_sources"`
	// ExcludeSources are substrings that disqualify an import source
	// even when an ImportSources entry matches (e.g. theme subpaths).
	ExcludeSources []string `yaml:"exclude_sources"`
}

// Load reads configuration from path. A missing file returns the default
// configuration, not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tracked config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse tracked config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration can produce a usable tracked set.
func (c *Config) Validate() error {
	if len(c.Components) == 0 {
		return fmt.Errorf("tracked config: no components configured")
	}
	if len(c.ImportSources) == 0 {
		return fmt.Errorf("tracked config: no import sources configured")
	}
	for _, name := range c.Components {
		if name == "" || name[0] < 'A' || name[0] > 'Z' {
			return fmt.Errorf("tracked config: component %q is not PascalCase", name)
		}
	}
	return nil
}

// Set compiles the configuration into the lexer's tracked set. The
// derived name patterns are built here, once, and passed explicitly to
// scanner calls.
func (c *Config) Set() *lexer.TrackedSet {
	return lexer.NewTrackedSet(c.Components, c.ImportSources, c.ExcludeSources)
}

// Default returns the shipped Sanity UI tracked set.
func Default() *Config {
	return &Config{
		Version: "1",
		Library: "@sanity/ui",
		Components: []string{
			"Autocomplete", "Avatar", "Badge", "Box", "Breadcrumbs", "Button",
			"Card", "Checkbox", "Code", "Container", "Dialog", "Flex", "Grid",
			"Heading", "Inline", "KBD", "Label", "Layer", "Menu", "MenuButton",
			"MenuDivider", "MenuItem", "Popover", "Portal", "Radio", "Select",
			"Spinner", "Stack", "Switch", "Tab", "TabList", "TabPanel", "Text",
			"TextArea", "TextInput", "ToastProvider", "Tooltip", "Tree",
			"TreeItem",
		},
		ImportSources:  []string{"@sanity/ui"},
		ExcludeSources: []string{"@sanity/ui/theme"},
	}
}
