package artpdf

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultUserAgent mimics a desktop Chrome so the article page is served
	// the same way it is served to a browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"

	RendererWkhtmltopdf = "wkhtmltopdf"
	RendererChrome      = "chrome"
)

// maxConfigSize limits the size of config file that will be parsed.
const maxConfigSize = 1 << 20

// Config is the configuration for a conversion. It is passed by value into
// every stage, so a stage never sees changes made after it started.
type Config struct {
	UserAgent           string
	RequestTimeout      time.Duration
	SkipTLSVerification bool

	ContentID      string // id of the element holding the article body
	TitleProperty  string // property of the meta tag holding the title
	DefaultTitle   string
	MaxTitleLength int // in characters, not bytes

	OutputDir     string
	MinOutputSize int64 // bytes; a failed render above this size still counts

	Renderer     string
	RendererPath string

	EnableLog        bool
	EnableVerboseLog bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		UserAgent:      DefaultUserAgent,
		RequestTimeout: 15 * time.Second,
		ContentID:      "js_content",
		TitleProperty:  "og:title",
		DefaultTitle:   "wechat_article",
		MaxTitleLength: 60,
		OutputDir:      "output",
		MinOutputSize:  1000,
		Renderer:       RendererWkhtmltopdf,
		EnableLog:      true,
	}
}

// withDefaults returns a copy of cfg where every zero field is replaced by
// its value from DefaultConfig.
func (cfg Config) withDefaults() Config {
	def := DefaultConfig()

	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = def.RequestTimeout
	}
	if cfg.ContentID == "" {
		cfg.ContentID = def.ContentID
	}
	if cfg.TitleProperty == "" {
		cfg.TitleProperty = def.TitleProperty
	}
	if cfg.DefaultTitle == "" {
		cfg.DefaultTitle = def.DefaultTitle
	}
	if cfg.MaxTitleLength <= 0 {
		cfg.MaxTitleLength = def.MaxTitleLength
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.MinOutputSize <= 0 {
		cfg.MinOutputSize = def.MinOutputSize
	}
	if cfg.Renderer == "" {
		cfg.Renderer = def.Renderer
	}

	return cfg
}

// fileConfig is the YAML representation of Config.
type fileConfig struct {
	UserAgent      string `yaml:"userAgent"`
	Timeout        int    `yaml:"timeout"` // seconds
	Insecure       *bool  `yaml:"insecure"`
	ContentID      string `yaml:"contentId"`
	TitleProperty  string `yaml:"titleProperty"`
	DefaultTitle   string `yaml:"defaultTitle"`
	MaxTitleLength int    `yaml:"maxTitleLength"`
	OutputDir      string `yaml:"outputDir"`
	MinOutputSize  int64  `yaml:"minOutputSize"`
	Renderer       string `yaml:"renderer"`
	RendererPath   string `yaml:"rendererPath"`
}

// LoadConfig reads a YAML config file and applies it on top of
// DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if len(data) > maxConfigSize {
		return cfg, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), maxConfigSize)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var fc fileConfig
	if err := yaml.UnmarshalWithOptions(data, &fc, yaml.Strict()); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.Timeout > 0 {
		cfg.RequestTimeout = time.Duration(fc.Timeout) * time.Second
	}
	if fc.Insecure != nil {
		cfg.SkipTLSVerification = *fc.Insecure
	}
	if fc.ContentID != "" {
		cfg.ContentID = fc.ContentID
	}
	if fc.TitleProperty != "" {
		cfg.TitleProperty = fc.TitleProperty
	}
	if fc.DefaultTitle != "" {
		cfg.DefaultTitle = fc.DefaultTitle
	}
	if fc.MaxTitleLength > 0 {
		cfg.MaxTitleLength = fc.MaxTitleLength
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}
	if fc.MinOutputSize > 0 {
		cfg.MinOutputSize = fc.MinOutputSize
	}
	if fc.Renderer != "" {
		cfg.Renderer = fc.Renderer
	}
	if fc.RendererPath != "" {
		cfg.RendererPath = fc.RendererPath
	}

	return cfg, nil
}
