package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/funvibe/litgo/internal/config"
	"github.com/funvibe/litgo/internal/diagnostics"
	"github.com/funvibe/litgo/internal/rewrite"
)

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "litgo",
		Short:         "Build-time validation and rewriting of overloaded literals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "path to litgo.yaml")

	generate := &cobra.Command{
		Use:   "generate [packages]",
		Short: "Validate literals and write generated files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, args, true)
		},
	}

	check := &cobra.Command{
		Use:   "check [packages]",
		Short: "Validate literals without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, args, false)
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the litgo version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "litgo "+config.Version)
		},
	}

	root.AddCommand(generate, check, version)
	return root
}

func run(cmd *cobra.Command, configPath string, patterns []string, write bool) error {
	cfg, err := rewrite.LoadConfig(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "litgo:", err)
		return err
	}
	res, err := rewrite.New(cfg).Run(patterns)
	if err != nil {
		fmt.Fprintln(os.Stderr, "litgo:", err)
		return err
	}
	if !res.OK() {
		diagnostics.Print(os.Stderr, res.Diags)
		err := fmt.Errorf("%d invalid literal(s)", len(res.Diags))
		fmt.Fprintln(os.Stderr, "litgo:", err)
		return err
	}
	if write {
		if err := res.Write(); err != nil {
			fmt.Fprintln(os.Stderr, "litgo:", err)
			return err
		}
		for _, f := range res.Files {
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", f.Path)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d literal site(s) validated in %d file(s)\n", res.Sites, len(res.Files))
	return nil
}
