package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/risor-io/tsgen"
	"github.com/risor-io/tsgen/internal/samples"
)

var backendsCompletion = []string{"text", "js"}

func newExamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "examples [name]",
		Aliases: []string{"ex"},
		Short:   "List sample programs or render one",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return samples.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: examplesHandler,
	}
	cmd.Flags().StringP("backend", "b", "text", "Rendering backend: text or js")
	cmd.Flags().Bool("validate", false, "Validate the program before rendering")
	cmd.RegisterFlagCompletionFunc("backend", cobra.FixedCompletions(backendsCompletion, cobra.ShellCompDirectiveNoFileComp))
	viper.BindPFlag("backend", cmd.Flags().Lookup("backend"))
	viper.BindPFlag("validate", cmd.Flags().Lookup("validate"))
	return cmd
}

func examplesHandler(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, s := range samples.All() {
			fmt.Fprintf(out, "%s %s\n", cyan(fmt.Sprintf("%-14s", s.Name)), s.Description)
		}
		return nil
	}
	sample, err := samples.Get(args[0])
	if err != nil {
		return err
	}
	rendered, err := render(sample, viper.GetString("backend"), renderOptions(cmd)...)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rendered)
	return nil
}

func renderOptions(cmd *cobra.Command) []tsgen.Option {
	opts := []tsgen.Option{tsgen.WithLogger(newLogger(cmd.ErrOrStderr()))}
	if viper.GetBool("validate") {
		opts = append(opts, tsgen.WithValidation())
	}
	return opts
}

func render(s samples.Sample, backend string, opts ...tsgen.Option) (string, error) {
	switch strings.ToLower(backend) {
	case "", "text":
		return tsgen.Text(s.Program, opts...)
	case "js":
		return tsgen.JS(s.Program, opts...)
	default:
		return "", fmt.Errorf("unknown backend: %s", backend)
	}
}
