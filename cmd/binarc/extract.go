package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gameres/binarc"
)

var extractOut string

var extractCmd = &cobra.Command{
	Use:   "extract <archive> [entry...]",
	Short: "Extract entries to a directory",
	Long: `Extract writes entry payloads as individual files. With no entry
arguments every entry is extracted. Nameless entries are written under
their directory index.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := binarc.OpenFile(args[0], binarc.WithLogger(newLogger()), newProgress())
		if err != nil {
			return err
		}

		wanted := map[string]bool{}
		for _, name := range args[1:] {
			wanted[name] = true
		}

		if err := os.MkdirAll(extractOut, 0o750); err != nil {
			return err
		}

		for i, e := range a.Dir().Entries() {
			if len(wanted) > 0 && !wanted[e.Name()] {
				continue
			}
			if err := a.LoadEntryData(e); err != nil {
				return fmt.Errorf("load %q: %w", e.Name(), err)
			}
			name := e.Name()
			if name == "" {
				name = fmt.Sprintf("entry_%04d", i)
			}
			if err := os.WriteFile(filepath.Join(extractOut, name), e.Data(), 0o644); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", ".", "output directory")
	rootCmd.AddCommand(extractCmd)
}
