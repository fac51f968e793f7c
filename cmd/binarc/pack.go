package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/gameres/binarc"
)

var packCompress bool

var packCmd = &cobra.Command{
	Use:   "pack <dir> <archive>",
	Short: "Build a Chasm bin archive from the files in a directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, target := args[0], args[1]

		names, err := listFiles(dir)
		if err != nil {
			return err
		}

		a := binarc.New(binarc.ChasmBin{}, binarc.WithLogger(newLogger()), newProgress())
		for _, name := range names {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			a.AddEntry(binarc.NewEntry(name, data))
		}

		if !packCompress {
			return a.WriteFile(target)
		}

		data, err := a.Write(true)
		if err != nil {
			return err
		}
		out, err := os.Create(target)
		if err != nil {
			return err
		}
		enc, err := zstd.NewWriter(out)
		if err != nil {
			out.Close()
			return err
		}
		if _, err := enc.Write(data); err != nil {
			enc.Close()
			out.Close()
			return err
		}
		if err := enc.Close(); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	},
}

// listFiles returns the regular files directly under dir, sorted by name.
func listFiles(dir string) ([]string, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, d := range dirents {
		if d.Type().IsRegular() {
			names = append(names, d.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no files in %s", dir)
	}
	sort.Strings(names)
	return names, nil
}

func init() {
	packCmd.Flags().BoolVar(&packCompress, "compress", false, "zstd-compress the output archive")
	rootCmd.AddCommand(packCmd)
}
