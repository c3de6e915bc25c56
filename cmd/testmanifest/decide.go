package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/testmanifest/internal/disable"
	"github.com/quantmind-br/testmanifest/internal/manifest"
)

func newDecideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decide <suite> <test>",
		Short: "Print the registration name of a test",
		Long: `Print the name a test should be registered under on the configured
platform: the test name with any shard suffix ("/3") removed, prefixed with
DISABLED_ when the manifest disables it.

Examples:
  testmanifest decide DotTest Square --manifest disabled_manifest.txt --platform cuda
  XLA_PLATFORM=cpu testmanifest decide ConvTest Big/2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.decider()
			if err != nil {
				return err
			}
			name, err := d.Decide(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func newExplainCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "explain <suite> <test>",
		Short: "Show which manifest rule applies to a test",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.decider()
			if err != nil {
				return err
			}
			dec, err := d.Explain(args[0], args[1])
			if err != nil {
				return err
			}
			if err := a.locateRule(&dec); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if ok, err := writeStructured(w, format, dec); ok {
				return err
			}

			fmt.Fprintf(w, "test:     %s.%s\n", dec.Suite, dec.Test)
			fmt.Fprintf(w, "platform: %q\n", dec.Platform)
			switch {
			case dec.Disabled:
				fmt.Fprintf(w, "result:   disabled by %s (line %d, pattern %q)\n", dec.Rule, dec.Line, dec.Pattern)
			case dec.Rule != "":
				fmt.Fprintf(w, "result:   enabled (rule %s on line %d has no pattern matching the platform)\n", dec.Rule, dec.Line)
			default:
				fmt.Fprintln(w, "result:   enabled (no rule)")
			}
			fmt.Fprintf(w, "name:     %s\n", dec.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json, yaml")
	return cmd
}

// locateRule fills in the line that declares the rule behind dec.
func (a *app) locateRule(dec *disable.Decision) error {
	if dec.Rule == "" {
		return nil
	}
	doc, err := manifest.NewLoader(a.log).LoadDocument(a.cfg.Manifest.Path, a.cfg.Manifest.Strict)
	if err != nil {
		return err
	}
	if e, ok := doc.Lookup(dec.Rule); ok {
		dec.Line = e.Line
	}
	return nil
}
