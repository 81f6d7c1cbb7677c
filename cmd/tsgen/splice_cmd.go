package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/risor-io/tsgen"
	"github.com/risor-io/tsgen/internal/samples"
	"github.com/risor-io/tsgen/splice"
)

func newSpliceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splice <file>",
		Short: "Insert a sample's statements at the top of a function in a JavaScript file",
		Args:  cobra.ExactArgs(1),
		RunE:  spliceHandler,
	}
	cmd.Flags().String("func", "", "Name of the function to splice into")
	cmd.Flags().String("sample", "", "Name of the sample to splice")
	cmd.Flags().BoolP("write", "w", false, "Write result to source file")
	cmd.MarkFlagRequired("func")
	cmd.MarkFlagRequired("sample")
	viper.BindPFlag("func", cmd.Flags().Lookup("func"))
	viper.BindPFlag("sample", cmd.Flags().Lookup("sample"))
	viper.BindPFlag("write", cmd.Flags().Lookup("write"))
	return cmd
}

func spliceHandler(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sample, err := samples.Get(viper.GetString("sample"))
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr())
	stmts, err := tsgen.Statements(sample.Program, tsgen.WithLogger(logger))
	if err != nil {
		return err
	}
	result, err := splice.Into(src, viper.GetString("func"), stmts)
	if err != nil {
		return err
	}

	if !viper.GetBool("write") {
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(result), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Debug().Str("file", path).Str("sample", sample.Name).Msg("spliced")
	return nil
}
