package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gobeaver/linekit"
)

// Exit codes, one per error kind, so scripts can discriminate causes.
const (
	exitInvalidPattern = 1
	exitOpenFailed     = 2
	exitIOFailure      = 3
	exitBinaryInput    = 4
)

type hlOptions struct {
	ignoreCase bool
	forceText  bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// The runtime keeps SIGPIPE at its default disposition for writes to
	// stdout, which would kill the process before the write returns. With
	// the signal ignored the write surfaces EPIPE instead, and Scan
	// converts that to clean termination.
	signal.Ignore(syscall.SIGPIPE)

	cmd := newHlCommand()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		printError(err)
		return exitCode(err)
	}
	return 0
}

func newHlCommand() *cobra.Command {
	options := hlOptions{}

	cmd := cobra.Command{
		Use:   "hl <pattern> [filename]",
		Short: "Highlights lines that match the given regular expression",
		Long: `hl copies its input to stdout unchanged, except that lines matching the
given regular expression are highlighted with a terminal color.

The pattern is not anchored; if anchoring is desired it should be done
manually with ^ or $. If no filename is given, input is read from stdin.

A pattern that begins with a hyphen must be separated from the flags
with --, for example: hl -- -foo access.log`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return options.run(cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&options.ignoreCase, "ignore-case", "i", false,
		"Ignore case when performing matching. If not specified, the matching is case-sensitive.")
	cmd.Flags().BoolVarP(&options.forceText, "force-text", "b", false,
		"Treat the given input file as text, even if it may be a binary file")

	return &cmd
}

func (o *hlOptions) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := linekit.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags the user did not touch must not clobber the ambient defaults
	// loaded from the environment.
	opts := []linekit.Option{linekit.WithConfig(cfg)}
	if cmd.Flags().Changed("ignore-case") {
		opts = append(opts, linekit.WithIgnoreCase(o.ignoreCase))
	}
	if cmd.Flags().Changed("force-text") {
		opts = append(opts, linekit.WithForceText(o.forceText))
	}

	scanner, err := linekit.NewScanner(args[0], opts...)
	if err != nil {
		return err
	}

	input, err := openInput(args)
	if err != nil {
		return &linekit.ScanError{Op: "open", Err: err}
	}
	defer input.Close()

	return scanner.Scan(ctx, input, os.Stdout)
}

// openInput opens the optional filename argument, or hands back stdin.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) < 2 {
		return os.Stdin, nil
	}

	file, err := os.Open(args[1])
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%s: %w", args[1], linekit.ErrIsDir)
	}

	return file, nil
}

func printError(err error) {
	msg := err.Error()
	if linekit.IsBinaryInput(err) {
		msg = "input may be a binary file. Pass -b to ignore this and scan anyway."
	}

	prefix := color.New(color.FgHiRed).Sprint("error:")
	fmt.Fprintf(os.Stderr, "%s %s\n", prefix, msg)
}

func exitCode(err error) int {
	var scanErr *linekit.ScanError
	switch {
	case linekit.IsInvalidPattern(err):
		return exitInvalidPattern
	case linekit.IsBinaryInput(err):
		return exitBinaryInput
	case errors.As(err, &scanErr) && scanErr.Op == "open":
		return exitOpenFailed
	default:
		return exitIOFailure
	}
}
