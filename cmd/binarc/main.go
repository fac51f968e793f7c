package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gameres/binarc"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "binarc",
	Short: "Inspect and edit game resource archives (Chasm: The Rift bin and friends)",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable debug logging")
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if rootVerbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
}

// newProgress returns an archive option that renders operation progress as
// a terminal bar, one bar per stage.
func newProgress() binarc.Option {
	var (
		bar   *progressbar.ProgressBar
		stage binarc.ProgressStage
	)
	return binarc.WithProgress(func(ev binarc.ProgressEvent) {
		if bar == nil || stage != ev.Stage {
			bar = progressbar.Default(int64(ev.Total), ev.Stage.String())
			stage = ev.Stage
		}
		bar.Set(ev.Done) //nolint:errcheck // display only
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
