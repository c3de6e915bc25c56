package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/testmanifest/internal/manifest"
)

func newDumpCmd(a *app) *cobra.Command {
	var (
		format   string
		sortKeys bool
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the parsed manifest",
		Long: `Print the manifest as the decision logic sees it: comments removed,
repeated keys merged, one entry per key in declaration order (or sorted by
key with --sort).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := manifest.NewLoader(a.log).LoadDocument(a.cfg.Manifest.Path, a.cfg.Manifest.Strict)
			if err != nil {
				return err
			}

			if sortKeys {
				doc = sortedDocument(doc)
			}

			w := cmd.OutOrStdout()
			if ok, err := writeStructured(w, format, doc); ok {
				return err
			}
			for _, e := range doc.Entries {
				fmt.Fprintln(w, strings.Join(append([]string{e.Key}, e.Patterns...), " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&sortKeys, "sort", false, "Order entries by key instead of declaration order")
	return cmd
}

func sortedDocument(doc *manifest.Document) *manifest.Document {
	out := &manifest.Document{Path: doc.Path}
	for _, key := range doc.Manifest().Keys() {
		e, _ := doc.Lookup(key)
		out.Entries = append(out.Entries, e)
	}
	return out
}
