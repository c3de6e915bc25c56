package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/testmanifest/internal/disable"
	"github.com/quantmind-br/testmanifest/internal/utils"
)

// testID is one "Suite.Test" line of batch input.
type testID struct {
	line  int
	suite string
	test  string
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		onlyDisabled bool
		progress     bool
		jobs         int
	)
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Decide a list of tests",
		Long: `Read test identifiers ("Suite.Test", one per line) from a file or stdin
and print "Suite.<name>" for each, where <name> is what decide would print.
Output keeps input order. Blank lines and lines starting with # are ignored.

Examples:
  testmanifest batch tests.txt --platform gpu
  ./all_tests --gtest_list_tests_flat | testmanifest batch --only-disabled`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open test list: %w", err)
				}
				defer f.Close()
				in = f
			}

			ids, err := readTestIDs(in)
			if err != nil {
				return err
			}

			d, err := a.decider()
			if err != nil {
				return err
			}
			decisions, err := a.runBatch(cmd, d, ids, jobs, progress)
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()
			for i, dec := range decisions {
				if onlyDisabled && !dec.Disabled {
					continue
				}
				fmt.Fprintf(out, "%s.%s\n", ids[i].suite, dec.Name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&onlyDisabled, "only-disabled", false, "Print only disabled tests")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar on stderr")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "Number of tests evaluated concurrently")
	return cmd
}

// runBatch evaluates every id. Each evaluation reads the manifest afresh,
// exactly like a single decide call.
func (a *app) runBatch(cmd *cobra.Command, d *disable.Decider, ids []testID, jobs int, progress bool) ([]disable.Decision, error) {
	var bar interface{ Add(int) error }
	if progress {
		pb := utils.NewProgressBar(cmd.ErrOrStderr(), len(ids), utils.DescEvaluating)
		defer pb.Finish()
		bar = pb
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	decisions := make([]disable.Decision, len(ids))
	errs := utils.ParallelForEach(ctx, ids, jobs, func(ctx context.Context, i int, id testID) error {
		dec, err := d.Explain(id.suite, id.test)
		if err != nil {
			cancel()
			return fmt.Errorf("line %d: %w", id.line, err)
		}
		decisions[i] = dec
		if bar != nil {
			_ = bar.Add(1)
		}
		return nil
	})
	if err := firstCause(errs); err != nil {
		return nil, err
	}

	disabled := 0
	for _, dec := range decisions {
		if dec.Disabled {
			disabled++
		}
	}
	a.log.Debug().
		Str("platform", d.Platform()).
		Int("tests", len(ids)).
		Int("disabled", disabled).
		Msg("Batch complete")
	return decisions, nil
}

// firstCause prefers a real failure over the cancellations it triggered.
func firstCause(errs []error) error {
	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return utils.FirstError(errs)
}

func readTestIDs(r io.Reader) ([]testID, error) {
	var ids []testID
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		suite, test, ok := strings.Cut(line, ".")
		if !ok || suite == "" || test == "" {
			return nil, fmt.Errorf("line %d: expected Suite.Test, got %q", n, line)
		}
		ids = append(ids, testID{line: n, suite: suite, test: test})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read test list: %w", err)
	}
	return ids, nil
}
