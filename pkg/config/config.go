package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Repo           string `yaml:"repo"`
	Branch         string `yaml:"branch"`
	PaceIntervalMS int    `yaml:"pace_interval_ms"`
	Token          string `yaml:"-"`
	Output         string `yaml:"-"`
	DryRun         bool   `yaml:"-"`

	// Derived from Repo by Validate.
	Owner string `yaml:"-"`
	Name  string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Branch:         "main",
		PaceIntervalMS: 2500,
		Output:         "table",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("repo"); err == nil && v != "" {
		cfg.Repo = v
	}
	if v, err := flags.GetString("branch"); err == nil && v != "" {
		cfg.Branch = v
	}
	if v, err := flags.GetString("github-token"); err == nil && v != "" {
		cfg.Token = v
	}
	if v, err := flags.GetInt("pace"); err == nil && flags.Changed("pace") {
		cfg.PaceIntervalMS = v
	}
	if v, err := flags.GetString("output"); err == nil && v != "" {
		cfg.Output = v
	}
	if v, err := flags.GetBool("dry-run"); err == nil {
		cfg.DryRun = v
	}
	return cfg
}

// Validate checks the merged configuration and derives Owner and Name from
// the owner/name repo slug.
func (c *Config) Validate() error {
	if c.Repo == "" {
		return fmt.Errorf("no repository configured; set --repo or GITHUB_REPOSITORY")
	}
	owner, name, err := splitRepo(c.Repo)
	if err != nil {
		return err
	}
	c.Owner, c.Name = owner, name

	if c.PaceIntervalMS < 0 {
		return fmt.Errorf("pace interval must not be negative, got %d", c.PaceIntervalMS)
	}
	return nil
}

func (c *Config) PaceInterval() time.Duration {
	return time.Duration(c.PaceIntervalMS) * time.Millisecond
}

func splitRepo(slug string) (owner, name string, err error) {
	slug = strings.TrimPrefix(slug, "https://")
	slug = strings.TrimPrefix(slug, "http://")
	slug = strings.TrimPrefix(slug, "github.com/")
	slug = strings.TrimSuffix(slug, ".git")
	slug = strings.TrimSuffix(slug, "/")

	parts := strings.SplitN(slug, "/", 3)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot parse owner/name from %q", slug)
	}
	return parts[0], parts[1], nil
}
