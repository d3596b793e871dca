package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/anvilfile/nbtkit/internal/fsio"
	"github.com/anvilfile/nbtkit/nbt"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate that a file decodes as well-formed NBT",
		Long: `The validate command decodes an NBT file and reports whether it is
well-formed. Trailing bytes after a complete root tag are reported as a
warning, not a failure.

Example:
  nbtctl validate level.dat
  nbtctl validate level.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	path := args[0]
	printVerbose("Validating %s\n", path)

	data, err := fsio.Load(path)
	if err != nil {
		return err
	}

	root, decErr := nbt.Decode(data, nil)

	result := map[string]interface{}{
		"file":  path,
		"valid": decErr == nil || (root != nil && errors.Is(decErr, nbt.ErrLeftoverData)),
	}
	if decErr != nil {
		result["warning"] = decErr.Error()
	}

	if jsonOut {
		return printJSON(result)
	}

	printInfo("Validating %s...\n", path)
	switch {
	case decErr == nil:
		printInfo("  valid: no errors\n")
	case root != nil && errors.Is(decErr, nbt.ErrLeftoverData):
		printInfo("  valid: %v\n", decErr)
	default:
		printInfo("  invalid: %v\n", decErr)
		return decErr
	}
	return nil
}
