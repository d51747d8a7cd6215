package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/feo/internal/config"
	"github.com/Dicklesworthstone/feo/internal/errors"
)

// Version info, set from main via SetVersionInfo.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const compatibilityBanner = "Compatibility issue. FeO is designed to run on Linux. " +
	"GPU temperature monitor option only works for Raspberry Pi."

var rootCmd = &cobra.Command{
	Use:   "feo",
	Short: "Simple system resource monitor for Linux",
	Long: `Simple system resource monitoring CLI tool for Linux systems,
with GPU temperature monitoring for Raspberry Pi.

Shows CPU (and optionally GPU) temperature, per-core CPU load, RAM and swap
usage, and uptime, redrawn in place every few seconds. Stop with Ctrl+C.

Settings can also come from FEO_DELAY, FEO_GPU and FEO_COLOR.

Examples:
  feo
  feo --delay 5
  feo -g -c w`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		return monitorCommand(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
}

// SetVersionInfo records build metadata shown by --version.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// Execute runs the root command until interrupted and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err for the user. Host-related failures get the
// compatibility banner first.
func printError(w io.Writer, err error) {
	if errors.IsCode(err, errors.ErrSource) ||
		errors.IsCode(err, errors.ErrParse) ||
		errors.IsCode(err, errors.ErrEncoding) {
		fmt.Fprintln(w, compatibilityBanner)
	}
	fmt.Fprint(w, err.Error())
}
