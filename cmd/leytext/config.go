package main

import (
	"os"

	"github.com/smendoza/leytext/pipeline"
	"gopkg.in/yaml.v3"
)

// Config carries the file-configurable defaults for the run command.
// Command-line flags always take precedence over the file.
type Config struct {
	URL            string `yaml:"url"`
	Mode           string `yaml:"mode"`
	OutDir         string `yaml:"out_dir"`
	Bucket         string `yaml:"bucket"`
	Prefix         string `yaml:"prefix"`
	ExpectedTotal  int    `yaml:"expected_total"`
	SkipValidation bool   `yaml:"skip_validation"`
	StrictChapters bool   `yaml:"strict_chapters"`
	Extractor      string `yaml:"extractor"`
	Timeout        string `yaml:"timeout"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		URL:           pipeline.DefaultURL,
		Mode:          "local",
		OutDir:        "data",
		ExpectedTotal: pipeline.DefaultExpectedTotal,
		Extractor:     "goquery",
		Timeout:       "30s",
	}
}

// LoadConfig reads a YAML config file over the built-in defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
