package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jeschkies/go-rawmatch/internal/logging"
	"github.com/jeschkies/go-rawmatch/pkg/search"
)

// errNoMatch is returned when the needle does not occur in the haystack. It
// maps to exit status 1.
var errNoMatch = errors.New("no match")

type findOptions struct {
	needle       string
	needleHex    string
	haystack     string
	haystackHex  string
	haystackFile string

	zeroBased bool
	context   int
	noColor   bool
	verbose   bool

	log *slog.Logger
}

// newRootCmd builds the command tree. Running the root command without a
// subcommand is the same as running find.
func newRootCmd() *cobra.Command {
	o := &findOptions{}

	rootCmd := &cobra.Command{
		Use:   "rawmatch",
		Short: "Find the first occurrence of a byte sequence",
		Long: `rawmatch prints the 1-based position of the first occurrence of a needle
inside a haystack. Nothing is printed and the exit status is 1 when there is
no match. An empty needle or haystack never matches.

The haystack is read from stdin unless --haystack, --haystack-hex or
--haystack-file is given.

Examples:
  # Search a file for a hex pattern
  rawmatch --needle-hex 4142 --haystack-file dump.bin

  # Show the match with 8 bytes of context
  printf 'xxABxx' | rawmatch --needle AB --context 8`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			o.log = logging.Init(cmd.ErrOrStderr(), o.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, o)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.needle, "needle", "", "Needle as literal text")
	flags.StringVar(&o.needleHex, "needle-hex", "", "Needle as hex, e.g. 0a4142")
	flags.StringVar(&o.haystack, "haystack", "", "Haystack as literal text")
	flags.StringVar(&o.haystackHex, "haystack-hex", "", "Haystack as hex")
	flags.StringVar(&o.haystackFile, "haystack-file", "", "Read the haystack from a file")
	flags.BoolVar(&o.zeroBased, "zero-based", false, "Print the 0-based offset instead of the 1-based position")
	flags.IntVar(&o.context, "context", -1, "Dump the match with N bytes of context around it")
	flags.BoolVar(&o.noColor, "no-color", false, "Do not highlight the match in --context output")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "find",
		Short: "Find the first occurrence of the needle (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, o)
		},
	})

	return rootCmd
}

func runFind(cmd *cobra.Command, o *findOptions) error {
	given := cmd.Flags().Changed
	needle, err := o.readNeedle(given)
	if err != nil {
		return err
	}
	haystack, err := o.readHaystack(given, cmd.InOrStdin())
	if err != nil {
		return err
	}

	o.log.Debug("searching", "needle_len", len(needle), "haystack_len", len(haystack))
	pos, ok := search.Rawmatch(needle, haystack)
	if !ok {
		o.log.Debug("needle not found")
		return errNoMatch
	}
	o.log.Debug("needle found", "pos", pos)

	out := cmd.OutOrStdout()
	if o.zeroBased {
		fmt.Fprintln(out, pos-1)
	} else {
		fmt.Fprintln(out, pos)
	}

	if o.context >= 0 {
		c := color.New(color.FgRed, color.Bold)
		if o.noColor {
			c.DisableColor()
		}
		writeDump(out, haystack, pos-1, len(needle), o.context, c)
	}
	return nil
}
