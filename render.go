package artpdf

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Engine renders HTML markup into a PDF file.
type Engine interface {
	// Render writes the PDF for markup to outputPath. An engine may return
	// an error even though it wrote a usable file, e.g. when an image
	// failed to load.
	Render(ctx context.Context, markup, outputPath string) error
	Name() string
	Close() error
}

// Compile-time interface checks
var (
	_ Engine = (*WkhtmltopdfEngine)(nil)
	_ Engine = (*ChromeEngine)(nil)
)

// PageOptions is the layout used by every engine.
type PageOptions struct {
	PageSize              string
	PaperWidthInches      float64
	PaperHeightInches     float64
	MarginInches          float64
	Encoding              string
	Outline               bool
	EnableLocalFileAccess bool
	IgnoreLoadErrors      bool
}

// DefaultPageOptions returns A4 layout with 0.75 inch margins. Missing
// images and other sub-resources don't stop the rendering.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		PageSize:              "A4",
		PaperWidthInches:      8.27,
		PaperHeightInches:     11.69,
		MarginInches:          0.75,
		Encoding:              "UTF-8",
		Outline:               false,
		EnableLocalFileAccess: true,
		IgnoreLoadErrors:      true,
	}
}

// NewEngine creates the engine named in cfg.Renderer. It fails with
// ErrRendererNotFound when the renderer is not installed.
func NewEngine(cfg Config) (Engine, error) {
	cfg = cfg.withDefaults()

	switch cfg.Renderer {
	case RendererWkhtmltopdf:
		return NewWkhtmltopdfEngine(cfg.RendererPath)
	case RendererChrome:
		return NewChromeEngine(cfg.RendererPath, cfg.RequestTimeout)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, cfg.Renderer)
	}
}

// RenderStatus classifies the outcome of a render.
type RenderStatus int

const (
	RenderFatal RenderStatus = iota
	RenderSuccess
	RenderSuccessWithWarnings
)

func (s RenderStatus) String() string {
	switch s {
	case RenderSuccess:
		return "success"
	case RenderSuccessWithWarnings:
		return "success with warnings"
	default:
		return "fatal"
	}
}

// RenderResult is the outcome of RenderDocument.
type RenderResult struct {
	Status RenderStatus
	Path   string
	Size   int64
	Err    error // warning for RenderSuccessWithWarnings, cause for RenderFatal
}

// OK reports whether a usable PDF has been written.
func (r RenderResult) OK() bool {
	return r.Status != RenderFatal
}

// RenderDocument renders markup to outputPath and classifies the outcome.
//
// Engines report missing sub-resources the same way they report real
// failures, so an error alone doesn't decide the outcome: if the engine
// failed but left a file larger than minSize at outputPath, the render is
// treated as successful with warnings. This is a heuristic, a file of that
// size is only likely to be a complete document.
//
// Any file left at outputPath by earlier run is removed first, so it can't
// be mistaken for the output of this one. A fatal render doesn't leave a
// file behind.
func RenderDocument(ctx context.Context, engine Engine, markup, outputPath string, minSize int64) RenderResult {
	result := RenderResult{Status: RenderFatal, Path: outputPath}

	if err := os.Remove(outputPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		result.Err = fmt.Errorf("%w: removing old output: %v", ErrRender, err)
		return result
	}

	renderErr := engine.Render(ctx, markup, outputPath)
	result.Size = fileSize(outputPath)

	switch {
	case renderErr == nil && result.Size > 0:
		result.Status = RenderSuccess
	case renderErr == nil:
		result.Err = fmt.Errorf("%w: %s produced no output", ErrRender, engine.Name())
	case result.Size > minSize:
		result.Status = RenderSuccessWithWarnings
		result.Err = renderErr
	case errors.Is(renderErr, ErrRender):
		result.Err = renderErr
	default:
		result.Err = fmt.Errorf("%w: %v", ErrRender, renderErr)
	}

	if result.Status == RenderFatal && result.Size >= 0 {
		_ = os.Remove(outputPath)
		result.Size = -1
	}

	return result
}
