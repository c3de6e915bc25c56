package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/testmanifest/internal/lint"
	"github.com/quantmind-br/testmanifest/internal/manifest"
)

var errNoManifest = errors.New("no manifest configured (use --manifest or TESTMANIFEST_MANIFEST_PATH)")

func newLintCmd(a *app) *cobra.Command {
	var (
		strict bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Validate a disabled-test manifest",
		Long: `Validate a manifest file. Every pattern is compiled with the configured
regex engine, and suspicious entries are reported:
  - patterns that do not compile (error)
  - lines that fail to parse (error)
  - keys without patterns, empty patterns and repeated keys (warning)
  - patterns that match only part of --platform (warning)

Examples:
  testmanifest lint --manifest disabled_manifest.txt
  testmanifest lint --manifest disabled_manifest.txt --platform cuda --strict
  testmanifest lint --manifest disabled_manifest.txt --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.lint()
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), format, report); err != nil {
				return err
			}
			if report.Failed(strict) {
				return fmt.Errorf("%s: %d error(s), %d warning(s)", report.Path, report.Errors(), report.Warnings())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json, yaml")
	return cmd
}

// lint loads the configured manifest strictly and checks it. A line that
// fails to parse becomes an error issue rather than aborting.
func (a *app) lint() (*lint.Report, error) {
	path := a.cfg.Manifest.Path
	if path == "" {
		return nil, errNoManifest
	}
	mt, err := a.cfg.NewMatcher()
	if err != nil {
		return nil, err
	}

	doc, err := manifest.NewLoader(a.log).LoadDocument(path, true)
	if err != nil {
		var lineErr *manifest.LineError
		if !errors.As(err, &lineErr) {
			return nil, err
		}
		return &lint.Report{Path: path, Issues: []lint.Issue{{
			Severity: lint.SeverityError,
			Line:     lineErr.Line,
			Message:  fmt.Sprintf("%v: %q", lineErr.Err, lineErr.Text),
		}}}, nil
	}

	return lint.Check(doc, mt, a.cfg.Platform), nil
}

func writeReport(w io.Writer, format string, r *lint.Report) error {
	if ok, err := writeStructured(w, format, r); ok {
		return err
	}
	for _, i := range r.Issues {
		fmt.Fprintf(w, "%s:%s\n", r.Path, i)
	}
	if len(r.Issues) == 0 {
		fmt.Fprintf(w, "%s: ok\n", r.Path)
	}
	return nil
}
