package artpdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, stdin io.Reader, name string, args ...string) (stdout string, stderr string, err error)
}

// execRunner implements CommandRunner using os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, stdin io.Reader, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- binary is located at startup

	var stdout, stderr bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// WkhtmltopdfEngine renders PDF by invoking the wkhtmltopdf CLI.
type WkhtmltopdfEngine struct {
	path    string
	runner  CommandRunner
	options PageOptions
}

// NewWkhtmltopdfEngine locates wkhtmltopdf, either at binPath or in PATH
// when binPath is empty.
func NewWkhtmltopdfEngine(binPath string) (*WkhtmltopdfEngine, error) {
	path, err := lookupBinary(binPath, "wkhtmltopdf")
	if err != nil {
		return nil, err
	}

	return newWkhtmltopdfEngineWith(path, execRunner{}), nil
}

// newWkhtmltopdfEngineWith creates an engine with custom runner (for testing).
func newWkhtmltopdfEngineWith(path string, runner CommandRunner) *WkhtmltopdfEngine {
	return &WkhtmltopdfEngine{
		path:    path,
		runner:  runner,
		options: DefaultPageOptions(),
	}
}

func (e *WkhtmltopdfEngine) Name() string {
	return RendererWkhtmltopdf
}

// Render pipes markup into wkhtmltopdf, which writes the PDF to outputPath.
func (e *WkhtmltopdfEngine) Render(ctx context.Context, markup, outputPath string) error {
	_, stderr, err := e.runner.Run(ctx, strings.NewReader(markup), e.path, e.args(outputPath)...)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("%w: %s: %v", ErrRender, msg, err)
		}
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	return nil
}

// Close is a no-op, there is no long-running process to release.
func (e *WkhtmltopdfEngine) Close() error {
	return nil
}

// args builds the command line for the page options. Input is read from
// stdin ("-").
func (e *WkhtmltopdfEngine) args(outputPath string) []string {
	opts := e.options
	margin := strconv.FormatFloat(opts.MarginInches, 'f', -1, 64) + "in"

	args := []string{
		"--quiet",
		"--page-size", opts.PageSize,
		"--margin-top", margin,
		"--margin-right", margin,
		"--margin-bottom", margin,
		"--margin-left", margin,
		"--encoding", opts.Encoding,
	}

	if !opts.Outline {
		args = append(args, "--no-outline")
	}

	if opts.EnableLocalFileAccess {
		args = append(args, "--enable-local-file-access")
	}

	if opts.IgnoreLoadErrors {
		args = append(args,
			"--load-error-handling", "ignore",
			"--load-media-error-handling", "ignore")
	}

	return append(args, "-", outputPath)
}

// lookupBinary returns explicitPath if it's an existing file, otherwise
// searches name in PATH.
func lookupBinary(explicitPath, name string) (string, error) {
	if explicitPath != "" {
		info, err := os.Stat(explicitPath)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%w: %s not found at %s", ErrRendererNotFound, name, explicitPath)
		}
		return explicitPath, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found in PATH", ErrRendererNotFound, name)
	}

	return path, nil
}
