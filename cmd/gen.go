package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"randgen/random"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Flags struct {
	Kind     string
	Min      float64
	Max      float64
	Count    int
	Examples bool
	Verbose  bool
}

var flags Flags

func init() {
	flags = Flags{
		Kind:  "int",
		Min:   0,
		Max:   100,
		Count: 1,
	}

	rootCmd.Flags().StringVar(&flags.Kind, "kind", flags.Kind, "Type of number to generate (int or float)")
	rootCmd.Flags().Float64Var(&flags.Min, "min", flags.Min, "Minimum value (inclusive)")
	rootCmd.Flags().Float64Var(&flags.Max, "max", flags.Max, "Maximum value (inclusive for ints)")
	rootCmd.Flags().IntVarP(&flags.Count, "count", "c", flags.Count, "How many numbers to generate")
	rootCmd.Flags().BoolVar(&flags.Examples, "examples", false, "Print a few example outputs")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
}

func run(cmd *cobra.Command) error {
	if flags.Examples {
		return printExamples(cmd.OutOrStdout())
	}

	kind, err := random.ParseKind(flags.Kind)
	if err != nil {
		return err
	}

	logger.Debug("Generating numbers",
		zap.Stringer("kind", kind),
		zap.Float64("min", flags.Min),
		zap.Float64("max", flags.Max),
		zap.String("count", humanize.Comma(int64(flags.Count))),
	)

	numbers, err := random.Many(kind, flags.Count, flags.Min, flags.Max)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, n := range numbers {
		fmt.Fprintln(w, n)
	}
	return w.Flush()
}

func printExamples(out io.Writer) error {
	label := color.New(color.FgHiCyan, color.Bold)

	fmt.Fprintf(out, "Examples:\n\n")
	fmt.Fprintf(out, "%s %d\n", label.Sprint("Single int [1, 10]:"), random.Int(1, 10))
	fmt.Fprintf(out, "%s %s\n", label.Sprint("Single float [0.0, 1.0]:"), random.Number{Kind: random.KindFloat, Float: random.Float(0.0, 1.0)})

	ints, err := random.Many(random.KindInt, 5, 10, 20)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n", label.Sprint("Five ints [10, 20]:"), joinNumbers(ints))

	floats, err := random.Many(random.KindFloat, 5, 1.5, 2.5)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n", label.Sprint("Five floats [1.5, 2.5]:"), joinNumbers(floats))

	return nil
}

func joinNumbers(numbers []random.Number) string {
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, " ")
}
