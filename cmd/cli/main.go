// Command cli is the ReadyKit command line interface.
//
// Subcommands:
//
//	score   - score an answers file and print the results
//	export  - produce the PDF report via live dashboard capture
//	serve   - run the HTTP API server
//	version - print the version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/readykit/readykit/pkg/answers"
	"github.com/readykit/readykit/pkg/capture"
	"github.com/readykit/readykit/pkg/catalog"
	"github.com/readykit/readykit/pkg/config"
	"github.com/readykit/readykit/pkg/defaults"
	"github.com/readykit/readykit/pkg/duration"
	"github.com/readykit/readykit/pkg/export"
	"github.com/readykit/readykit/pkg/output/writers"
	"github.com/readykit/readykit/pkg/report"
	"github.com/readykit/readykit/pkg/risk"
	"github.com/readykit/readykit/pkg/scoring"
	"github.com/readykit/readykit/pkg/server"
	"github.com/readykit/readykit/pkg/ui"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(defaults.ExitUserError)
	}

	var err error
	switch os.Args[1] {
	case "score":
		err = runScore(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "version":
		fmt.Printf("readykit %s\n", defaults.Version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(defaults.ExitUserError)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(defaults.ExitRuntimeError)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `readykit - AI readiness assessment engine

Usage:
  readykit score  [-i answers.json] [-format dashboard|json|html] [-o out]
  readykit export [-i answers.json] [-o report.pdf] [-dashboard-url URL]
  readykit serve  [-addr :3000] [-dashboard-url URL]
  readykit version
`)
}

// loadAnswers reads and validates the submissions file.
func loadAnswers(cfg *config.Config) (answers.Set, *catalog.Catalog, error) {
	var data []byte
	var err error
	if cfg.InputFile == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(cfg.InputFile)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read answers: %w", err)
	}

	set, err := answers.ParseSubmissions(data)
	if err != nil {
		return nil, nil, err
	}
	c := catalog.Default()
	if err := set.Validate(c); err != nil {
		return nil, nil, err
	}
	return set, c, nil
}

// openOutput returns the destination writer and a closer.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func runScore(args []string) error {
	cfg := config.Default()
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	cfg.RegisterScoreFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate("score"); err != nil {
		return err
	}

	set, c, err := loadAnswers(cfg)
	if err != nil {
		return err
	}
	result := scoring.Score(c, set)
	profile := risk.Extract(c, set)

	out, closeOut, err := openOutput(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer closeOut()

	switch cfg.Format {
	case "json":
		return writers.NewJSONWriter().Write(out, result)
	case "html":
		data := report.BuildHTMLData(result, profile, nil)
		return report.RenderHTML(out, data)
	default:
		_, err := fmt.Fprintln(out, ui.RenderDashboard(result, profile))
		return err
	}
}

func runExport(args []string) error {
	cfg := config.Default()
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	cfg.RegisterExportFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate("export"); err != nil {
		return err
	}

	set, c, err := loadAnswers(cfg)
	if err != nil {
		return err
	}
	result := scoring.Score(c, set)

	template := report.DefaultTemplateConfig()
	if cfg.TemplateFile != "" {
		template, err = report.LoadTemplateConfig(cfg.TemplateFile)
		if err != nil {
			return err
		}
		if err := report.ValidateConfig(template); err != nil {
			return err
		}
	}
	template.Export.DPI = cfg.DPI

	dashboardURL := cfg.DashboardURL
	if dashboardURL == "" {
		dashboardURL = fmt.Sprintf("http://localhost:%d/dashboard?renderMode=pdf", defaults.PortHTTP)
	}

	seed, err := export.Seed(result)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration.ExportTotal)
	defer cancel()

	capCfg := capture.DefaultConfig()
	capCfg.DashboardURL = dashboardURL
	capturer := capture.NewChromeCapturer(capCfg)
	if err := capturer.Start(ctx, seed); err != nil {
		return err
	}
	defer capturer.Close()

	res, err := export.New(capturer, template).Run(ctx, result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.OutputFile, res.PDF, 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d pages)\n", cfg.OutputFile, res.Pages)
	for _, title := range res.Skipped {
		fmt.Fprintf(os.Stderr, "warning: section skipped: %s\n", title)
	}
	return nil
}

func runServe(args []string) error {
	cfg := config.Default()
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfg.RegisterServeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate("serve"); err != nil {
		return err
	}

	template := report.DefaultTemplateConfig()
	if cfg.TemplateFile != "" {
		var err error
		template, err = report.LoadTemplateConfig(cfg.TemplateFile)
		if err != nil {
			return err
		}
		if err := report.ValidateConfig(template); err != nil {
			return err
		}
	}

	srv := server.New(server.Config{
		Addr:         cfg.Addr,
		DashboardURL: cfg.DashboardURL,
		FeedbackPath: cfg.FeedbackPath,
		Retention:    cfg.RetentionDays,
		Template:     template,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("listening on %s\n", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}
