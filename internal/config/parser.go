package config

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	headlesserrors "github.com/alexisbeaulieu97/headless/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

//go:embed default.yaml
var defaultDocument []byte

// ParseConfig loads a widget document from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, headlesserrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a widget document. path only labels errors.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, headlesserrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in playground document.
func Default() (*Config, error) {
	return Parse(defaultDocument, "default.yaml")
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
