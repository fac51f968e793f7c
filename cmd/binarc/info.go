package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gameres/binarc"
)

var infoCmd = &cobra.Command{
	Use:   "info <archive>",
	Short: "Show archive format and summary statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		format, ok := binarc.DetectFile(path)
		if ok {
			fmt.Printf("format:  %s\n", format.Name())
		}

		a, err := binarc.OpenFile(path, binarc.WithLogger(newLogger()))
		if err != nil {
			return err
		}
		if !ok {
			// Compressed wrapper; the format only shows after unwrapping.
			fmt.Printf("format:  %s (compressed)\n", a.Format().Name())
		}

		var total uint64
		types := map[string]int{}
		for _, e := range a.Dir().Entries() {
			total += uint64(e.Size())
			types[e.Type()]++
		}
		fmt.Printf("entries: %d\n", a.Dir().Len())
		fmt.Printf("data:    %d bytes\n", total)
		for t, n := range types {
			fmt.Printf("  %-10s %d\n", t, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
