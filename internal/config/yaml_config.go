package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
type YAMLConfig struct {
	ExampleQueries []string `yaml:"example_queries"`
}

// DefaultExampleQueries are shown on the page when no config file lists any.
var DefaultExampleQueries = []string{
	"What are the outliers in therapeutic target validation?",
	"Show me findings from the APP/PS1 Alzheimer's model",
	"What spatial patterns exist in HER2+ breast cancer data?",
	"Summarize KRAS findings in the pancreatic cancer model",
	"Which targets have the highest validation scores?",
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// A missing file yields the defaults without error.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultYAMLConfig(), nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if len(cfg.ExampleQueries) == 0 {
		cfg.ExampleQueries = DefaultExampleQueries
	}

	return &cfg, nil
}

func defaultYAMLConfig() *YAMLConfig {
	return &YAMLConfig{ExampleQueries: DefaultExampleQueries}
}

// Examples returns the example queries, falling back to the defaults.
func (c *YAMLConfig) Examples() []string {
	if c == nil || len(c.ExampleQueries) == 0 {
		return DefaultExampleQueries
	}
	return c.ExampleQueries
}
