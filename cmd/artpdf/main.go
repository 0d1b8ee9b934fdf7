package main

import (
	"context"
	"strings"

	"github.com/go-shiori/artpdf"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	logrus.SetFormatter(&artpdf.PrefixFormatter{})

	// Prepare cmd
	cmd := newRootCmd()

	// Execute
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		logrus.Fatalln(err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "artpdf [url]",
		Short:         "CLI tool for saving an article page as PDF",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cmdHandler,
	}

	addFlags(cmd.Flags())
	return cmd
}

func cmdHandler(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	if cfg.EnableVerboseLog {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Renderer must be available before anything else is done
	engine, err := artpdf.NewEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	// Get URL from argument, or ask for it
	url := ""
	if len(args) > 0 {
		url = args[0]
	} else {
		url, err = promptURL(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}

	// Failures are already logged by converter, and they don't change
	// the exit status.
	converter := artpdf.NewConverter(cfg, engine)
	_, _ = converter.Convert(cmd.Context(), url)
	return nil
}
