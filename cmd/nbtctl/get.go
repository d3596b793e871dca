package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anvilfile/nbtkit/internal/fsio"
	"github.com/anvilfile/nbtkit/nbt"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <dotted.path>",
		Short: "Get a single value from an NBT file by compound path",
		Long: `The get command decodes an NBT file and prints the value found by
walking a dot-separated sequence of compound keys from the root.

Example:
  nbtctl get level.dat Data.LevelName
  nbtctl get level.dat Data.Version.Id --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path, keyPath := args[0], args[1]
	printVerbose("Reading %s\n", path)

	data, err := fsio.Load(path)
	if err != nil {
		return err
	}

	root, err := nbt.Decode(data, nil)
	if err != nil && root == nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	keys := strings.Split(keyPath, ".")
	target, ok := root.Path(keys...)
	if !ok {
		return fmt.Errorf("path %q not found", keyPath)
	}

	if jsonOut {
		return printJSON(nodeToJSON(target))
	}

	if v, ok := describeScalar(target); ok {
		printInfo("%v\n", v)
		return nil
	}
	printNode(target, 0)
	return nil
}
