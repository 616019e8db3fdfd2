// sortvis records a sorting algorithm's element accesses and replays them
// as a terminal animation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/kevinxiao27/sortvis/internal/config"
	"github.com/kevinxiao27/sortvis/sorts"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// CLI flags
var (
	configPath  string
	algorithm   string
	size        int
	order       string
	seed        uint64
	opsPerFrame int
	fps         int
	headless    bool

	dumpRaw   bool
	dumpLimit int
	dumpSeq   int
)

func main() {
	defer glog.Flush()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sortvis",
	Short: "Record a sort and replay it step by step",
	Long: `sortvis runs a sorting algorithm over an instrumented sequence, recording
every element read and write, then replays the recording in the terminal.

Run without a subcommand to play with the configured defaults.`,
	Version:      fmt.Sprintf("%s (%s)", version, commit),
	SilenceUsage: true,
	RunE:         runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Record a sort and animate its replay",
	Long: `Record a sort and animate its replay.

Keys: space pauses, q or Esc quits.

Examples:
  sortvis play -a merge -n 128
  sortvis play -a bubble --order reversed --fps 30 --ops 10
  sortvis play --headless -n 4096`,
	RunE: runPlay,
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a sort and print a summary of its log",
	RunE:  runRecord,
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the recorded operations",
	Long: `Print the recorded operations one per line.

With --raw the whole recording is printed as a Go value.`,
	RunE: runDump,
}

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List available algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range sorts.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file with the defaults",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultFile
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	// glog registers its flags on the standard flag set.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ./"+config.DefaultFile+")")

	for _, cmd := range []*cobra.Command{rootCmd, playCmd, recordCmd, dumpCmd} {
		cmd.Flags().StringVarP(&algorithm, "algorithm", "a", sorts.Default, "Algorithm (bubble, cocktail, merge)")
		cmd.Flags().IntVarP(&size, "size", "n", 64, "Number of elements")
		cmd.Flags().StringVar(&order, "order", "shuffled", "Initial order (shuffled, reversed, sorted)")
		cmd.Flags().Uint64Var(&seed, "seed", 0, "Shuffle seed (0 = random)")
	}
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().IntVar(&opsPerFrame, "ops", 30, "Operations replayed per frame")
		cmd.Flags().IntVar(&fps, "fps", 60, "Frames per second (0 = unpaced)")
		cmd.Flags().BoolVar(&headless, "headless", false, "Replay without drawing, showing progress only")
	}

	dumpCmd.Flags().BoolVar(&dumpRaw, "raw", false, "Dump the recording as a Go value")
	dumpCmd.Flags().IntVar(&dumpSeq, "seq", -1, "Only print operations on this sequence id (-1 = all)")
	dumpCmd.Flags().IntVar(&dumpLimit, "limit", 0, "Print at most this many operations (0 = all)")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(playCmd, recordCmd, dumpCmd, algorithmsCmd, configCmd)
}

// loadConfig reads the config file, then applies any flag the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("order") {
		cfg.Order = order
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("ops") {
		cfg.Replay.OpsPerFrame = opsPerFrame
	}
	if flags.Changed("fps") {
		cfg.Replay.FPS = fps
	}
	if flags.Changed("headless") {
		cfg.Replay.Headless = headless
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
