package artpdf

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// Result is the outcome of a conversion.
type Result struct {
	URL        string
	Title      string
	OutputPath string
	Render     RenderResult
}

// Converter is the core of artpdf, which downloads an article page then
// saves it as PDF.
type Converter struct {
	cfg        Config
	engine     Engine
	httpClient *http.Client
}

// NewConverter creates a Converter. Zero fields of cfg are replaced by
// their default value. The engine is owned by the caller.
func NewConverter(cfg Config, engine Engine) *Converter {
	cfg = cfg.withDefaults()
	return &Converter{
		cfg:        cfg,
		engine:     engine,
		httpClient: newHTTPClient(cfg),
	}
}

// Config returns the configuration used by the converter.
func (c *Converter) Config() Config {
	return c.cfg
}

// Convert saves the article at url as <OutputDir>/<title>.pdf.
//
// Failures while fetching or extracting the page return an error before
// anything is written to disk. A fatal render returns an error wrapping
// ErrRender together with the result. Every failure is also logged.
func (c *Converter) Convert(ctx context.Context, url string) (*Result, error) {
	targetURL, err := parseTargetURL(url)
	if err != nil {
		c.errorf("invalid url: %v", err)
		return nil, err
	}

	c.logf("requesting %s", targetURL)
	pg, err := fetchPage(ctx, c.httpClient, targetURL, c.cfg.UserAgent)
	if err != nil {
		c.errorf("network error: %v", err)
		return nil, err
	}
	c.debugf("downloaded %d bytes from %s", len(pg.Body), pg.URL)

	article, err := ExtractArticle(bytes.NewReader(pg.Body), pg.URL, c.cfg)
	if err != nil {
		c.errorf("content error: %v", err)
		return nil, err
	}
	c.debugf("title resolved as %q", article.Title)

	SanitizeContent(article.Content, article.BaseURL)

	markup, err := AssembleDocument(article.Title, article.Content)
	if err != nil {
		c.errorf("failed to assemble document: %v", err)
		return nil, err
	}

	if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil { // #nosec G301 -- output directory is user-facing
		c.errorf("failed to create output directory: %v", err)
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	outputPath, err := filepath.Abs(filepath.Join(c.cfg.OutputDir, article.Title+".pdf"))
	if err != nil {
		c.errorf("failed to resolve output path: %v", err)
		return nil, fmt.Errorf("resolving output path: %w", err)
	}

	c.logf("generating PDF with %s: %s", c.engine.Name(), outputPath)
	render := RenderDocument(ctx, c.engine, markup, outputPath, c.cfg.MinOutputSize)

	result := &Result{
		URL:        targetURL.String(),
		Title:      article.Title,
		OutputPath: outputPath,
		Render:     render,
	}

	switch render.Status {
	case RenderSuccess:
		c.logDonef("saved %s", outputPath)
	case RenderSuccessWithWarnings:
		c.warnf("ignored non-fatal renderer error: %v", render.Err)
		c.logDonef("saved %s", outputPath)
	default:
		c.errorf("failed: %v", render.Err)
		return result, render.Err
	}

	return result, nil
}

// Convert saves the article at url as PDF using the renderer named in cfg.
// The renderer is started for this call only.
func Convert(ctx context.Context, url string, cfg Config) (*Result, error) {
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	defer engine.Close()

	return NewConverter(cfg, engine).Convert(ctx, url)
}
