package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resolver/internal/app"
)

func newLatestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "latest <package>",
		Short: "Print the latest known version of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLatest(args[0])
		},
	}
}

func runLatest(packageName string) error {
	mode, err := currentMode()
	if err != nil {
		return err
	}

	result, err := app.NewService().Latest(app.LatestRequest{
		IndexPath: viper.GetString("index"),
		Mode:      mode,
		Package:   packageName,
	})
	if err != nil {
		return err
	}

	if !result.Found {
		fmt.Println(result.Message)
		return nil
	}
	fmt.Println(result.Version)
	return nil
}
