package artpdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const defaultLoadTimeout = 30 * time.Second

// ChromeEngine renders PDF with a locally installed Chrome or Chromium,
// driven through the DevTools protocol.
type ChromeEngine struct {
	bin         string
	loadTimeout time.Duration
	options     PageOptions

	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewChromeEngine locates Chrome, either at binPath, at ROD_BROWSER_BIN or
// in the usual install locations. The browser itself is started lazily on
// first render.
func NewChromeEngine(binPath string, loadTimeout time.Duration) (*ChromeEngine, error) {
	if binPath == "" {
		binPath = os.Getenv("ROD_BROWSER_BIN")
	}

	if binPath == "" {
		path, found := launcher.LookPath()
		if !found {
			return nil, fmt.Errorf("%w: Chrome/Chromium not found, install it or set ROD_BROWSER_BIN", ErrRendererNotFound)
		}
		binPath = path
	}

	bin, err := lookupBinary(binPath, "chrome")
	if err != nil {
		return nil, err
	}

	if loadTimeout <= 0 {
		loadTimeout = defaultLoadTimeout
	}

	return &ChromeEngine{
		bin:         bin,
		loadTimeout: loadTimeout,
		options:     DefaultPageOptions(),
	}, nil
}

func (e *ChromeEngine) Name() string {
	return RendererChrome
}

// ensureBrowser lazily launches and connects to the browser.
func (e *ChromeEngine) ensureBrowser() error {
	if e.browser != nil {
		return nil
	}

	l := launcher.New().Bin(e.bin).Headless(true)

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: launching browser: %v", ErrRender, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: connecting to browser: %v", ErrRender, err)
	}

	e.launcher = l
	e.browser = browser
	return nil
}

// Render opens the markup from a temporary file and prints it to PDF. If
// the page doesn't finish loading in time (usually a slow image), the PDF
// is still printed and written, and the load error is returned.
func (e *ChromeEngine) Render(ctx context.Context, markup, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := e.ensureBrowser(); err != nil {
		return err
	}

	tmpPath, cleanup, err := writeTempFile(markup, "html")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	defer cleanup()

	page, err := e.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return fmt.Errorf("%w: creating page: %v", ErrRender, err)
	}
	defer page.Close()

	var loadErr error
	if err := page.Timeout(e.loadTimeout).WaitLoad(); err != nil {
		loadErr = fmt.Errorf("page load incomplete: %w", err)
	}

	reader, err := page.PDF(e.printOptions())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: reading PDF stream: %v", ErrRender, err)
	}

	// #nosec G306 -- PDF output files are intended to be readable
	if err := os.WriteFile(outputPath, pdfBuf, 0o644); err != nil {
		return fmt.Errorf("%w: writing PDF: %v", ErrRender, err)
	}

	return loadErr
}

func (e *ChromeEngine) printOptions() *proto.PagePrintToPDF {
	opts := e.options
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(opts.PaperWidthInches),
		PaperHeight:     floatPtr(opts.PaperHeightInches),
		MarginTop:       floatPtr(opts.MarginInches),
		MarginBottom:    floatPtr(opts.MarginInches),
		MarginLeft:      floatPtr(opts.MarginInches),
		MarginRight:     floatPtr(opts.MarginInches),
		PrintBackground: true,
	}
}

// Close releases browser resources.
func (e *ChromeEngine) Close() error {
	var err error
	if e.browser != nil {
		err = e.browser.Close()
		e.browser = nil
	}

	if e.launcher != nil {
		e.launcher.Kill()
		e.launcher = nil
	}

	return err
}

func floatPtr(v float64) *float64 {
	return &v
}
