package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDocsURL = "https://doc.rust-lang.org/std/error/trait.Error.html"
	DefaultOutput  = "./src/error_ext_impl.rs"
	DefaultTrait   = "LambdaErrorExt"
	DefaultWrapper = "HandlerError"
)

type Config struct {
	DocsURL     string `yaml:"docs_url"`
	Output      string `yaml:"output"`
	TraitName   string `yaml:"trait_name"`
	WrapperType string `yaml:"wrapper_type"`

	UserAgent  string `yaml:"user_agent"`
	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	CFBypass   bool   `yaml:"cf_bypass"`

	Debug bool `yaml:"debug"`
}

type Options struct {
	IgnoreConfig bool
	Debug        bool
	DocsURL      string
	Output       string
	TraitName    string
	WrapperType  string
	UserAgent    string
	Cookie       string
	CookieFile   string
	CFBypass     bool
}

func DefaultConfig() *Config {
	return &Config{
		DocsURL:     DefaultDocsURL,
		Output:      DefaultOutput,
		TraitName:   DefaultTrait,
		WrapperType: DefaultWrapper,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `errgen config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.DocsURL != "" {
		c.DocsURL = o.DocsURL
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.TraitName != "" {
		c.TraitName = o.TraitName
	}
	if o.WrapperType != "" {
		c.WrapperType = o.WrapperType
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.CFBypass {
		c.CFBypass = true
	}
	if o.Debug {
		c.Debug = true
	}
}

func normalizeDefaults(c *Config) {
	if c.DocsURL == "" {
		c.DocsURL = DefaultDocsURL
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.TraitName == "" {
		c.TraitName = DefaultTrait
	}
	if c.WrapperType == "" {
		c.WrapperType = DefaultWrapper
	}
}

func (c *Config) Print() {
	fmt.Printf(" -docs_url: %s\n", c.DocsURL)
	fmt.Printf(" -output: %s\n", c.Output)
	fmt.Printf(" -trait_name: %s\n", c.TraitName)
	fmt.Printf(" -wrapper_type: %s\n", c.WrapperType)
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.Cookie != "" {
		fmt.Printf(" -cookie: (set)\n")
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.CFBypass {
		fmt.Printf(" -cf_bypass: %t\n", c.CFBypass)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
}
