package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gameres/binarc"
)

var listCmd = &cobra.Command{
	Use:   "list <archive>",
	Short: "List the entries of an archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := binarc.OpenFile(args[0], binarc.WithLogger(newLogger()))
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tTYPE\tOFFSET")
		for _, e := range a.Dir().Entries() {
			fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", e.Name(), e.Size(), e.Type(), e.SourceOffset())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
