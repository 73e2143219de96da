package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resolver/internal/app"
	"resolver/internal/core"
)

func newSatisfyCommand() *cobra.Command {
	var oneline bool
	cmd := &cobra.Command{
		Use:   "satisfy <package> <version>",
		Short: "Resolve a setup installing a package version and its dependencies",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSatisfy(cmd, args[0], args[1], oneline)
		},
	}
	cmd.Flags().BoolVar(&oneline, "oneline", false, "Print the reduced setup as a single comma-joined line")
	return cmd
}

func runSatisfy(cmd *cobra.Command, packageName string, versionArg string, oneline bool) error {
	mode, err := currentMode()
	if err != nil {
		return err
	}

	version, err := core.ParseVersion(versionArg)
	if err != nil {
		return err
	}

	result, err := app.NewService().Satisfy(cmd.Context(), app.SatisfyRequest{
		IndexPath: viper.GetString("index"),
		Mode:      mode,
		Package:   packageName,
		Version:   version,
		Oneline:   oneline,
	})
	if err != nil {
		return err
	}

	if !result.Satisfiable {
		fmt.Println(result.Message)
		return nil
	}
	if oneline {
		fmt.Println(result.Oneline)
		return nil
	}
	fmt.Println("This package can be satisfied with following packages:")
	fmt.Print(result.Tree)
	return nil
}
