package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-shiori/artpdf"
	"github.com/spf13/pflag"
)

func addFlags(flags *pflag.FlagSet) {
	def := artpdf.DefaultConfig()

	flags.StringP("output", "o", def.OutputDir, "directory to save the PDF in")
	flags.StringP("config", "c", "", "path to YAML config file")
	flags.StringP("renderer", "r", def.Renderer, "renderer to use (wkhtmltopdf or chrome)")
	flags.String("renderer-path", "", "path to renderer binary")

	flags.StringP("user-agent", "u", "", "set custom user agent")
	flags.IntP("timeout", "t", int(def.RequestTimeout/time.Second), "maximum time (in second) before request timeout")
	flags.Bool("insecure", false, "skip X.509 (TLS) certificate verification")

	flags.BoolP("quiet", "q", false, "only log errors")
	flags.Bool("verbose", false, "more verbose logging")
}

// configFromFlags builds the config from the config file, if any, then
// applies the flags that are set explicitly.
func configFromFlags(flags *pflag.FlagSet) (artpdf.Config, error) {
	cfg := artpdf.DefaultConfig()

	if configPath, _ := flags.GetString("config"); configPath != "" {
		var err error
		cfg, err = artpdf.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
	}

	if flags.Changed("output") {
		cfg.OutputDir, _ = flags.GetString("output")
	}
	if flags.Changed("renderer") {
		cfg.Renderer, _ = flags.GetString("renderer")
	}
	if flags.Changed("renderer-path") {
		cfg.RendererPath, _ = flags.GetString("renderer-path")
	}
	if flags.Changed("user-agent") {
		cfg.UserAgent, _ = flags.GetString("user-agent")
	}
	if flags.Changed("timeout") {
		timeout, _ := flags.GetInt("timeout")
		cfg.RequestTimeout = time.Duration(timeout) * time.Second
	}
	if flags.Changed("insecure") {
		cfg.SkipTLSVerification, _ = flags.GetBool("insecure")
	}

	quiet, _ := flags.GetBool("quiet")
	verbose, _ := flags.GetBool("verbose")
	cfg.EnableLog = !quiet
	cfg.EnableVerboseLog = !quiet && verbose

	return cfg, nil
}

// promptURL asks for the article URL and reads a single line from in.
func promptURL(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter article URL: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading url: %w", err)
	}

	return strings.TrimSpace(line), nil
}
