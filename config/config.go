package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is used for the XDG config directory
const AppName = "e-minutasi"

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	Summary     SummaryConfig     `yaml:"summary"`
	Scan        ScanConfig        `yaml:"scan"`
	Attachments AttachmentsConfig `yaml:"attachments"`
	Minio       MinioConfig       `yaml:"minio"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SummaryConfig configures the text-generation service used for archive labels.
// An empty APIKey disables the service.
type SummaryConfig struct {
	APIKey         string `yaml:"api_key"`
	APIURL         string `yaml:"api_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type ScanConfig struct {
	DelayMS int `yaml:"delay_ms"`
}

// AttachmentsConfig selects where uploaded decision PDFs are held.
// Driver is "memory" (default) or "minio".
type AttachmentsConfig struct {
	Driver     string `yaml:"driver"`
	MaxItems   int    `yaml:"max_items"`
	TTLMinutes int    `yaml:"ttl_minutes"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
}

// MaxBytes is the upload size limit in bytes
func (a AttachmentsConfig) MaxBytes() int64 {
	return int64(a.MaxSizeMB) << 20
}

type MinioConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	Region     string `yaml:"region"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault loads path, or the first config found in the search path when
// path is empty. A missing file yields the defaults.
func LoadOrDefault(path string) (*Config, string, error) {
	if path == "" {
		path = Locate()
	}
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Locate returns ./config.yaml if present, else the XDG config file, else ""
func Locate() string {
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	if p, err := xdg.SearchConfigFile(filepath.Join(AppName, "config.yaml")); err == nil {
		return p
	}
	return ""
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Summary.APIKey == "" {
		c.Summary.APIKey = os.Getenv("API_KEY")
	}
	if c.Summary.APIURL == "" {
		c.Summary.APIURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gemini-3-flash-preview"
	}
	if c.Summary.TimeoutSeconds == 0 {
		c.Summary.TimeoutSeconds = 30
	}
	if c.Scan.DelayMS == 0 {
		c.Scan.DelayMS = 2000
	}
	if c.Attachments.Driver == "" {
		c.Attachments.Driver = "memory"
	}
	if c.Attachments.MaxItems == 0 {
		c.Attachments.MaxItems = 64
	}
	if c.Attachments.TTLMinutes == 0 {
		c.Attachments.TTLMinutes = 60
	}
	if c.Attachments.MaxSizeMB == 0 {
		c.Attachments.MaxSizeMB = 20
	}
	if c.Minio.Region == "" {
		c.Minio.Region = "us-east-1"
	}
	if c.Minio.ExpireDays == 0 {
		c.Minio.ExpireDays = 7
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 100
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
}
