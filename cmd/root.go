package cmd

import (
	"os"

	"github.com/spf13/cobra"
	prettyconsole "github.com/thessem/zap-prettyconsole"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:           "randgen",
	Short:         "Generate random integers and floats within a range",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flags.Verbose {
			logger = prettyconsole.NewLogger(zap.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("Exit with error", zap.Error(err))
		os.Exit(1)
	}
}

func init() {
	logger = prettyconsole.NewLogger(zap.InfoLevel)
}
