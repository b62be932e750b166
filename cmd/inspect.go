package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-initfield/pkg/app"
	"github.com/deploymenttheory/go-initfield/pkg/app/inspect"
)

var (
	inspectModel  string
	inspectParent string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [initial-field-file]",
	Short: "Read an initial field file and report its records",
	Long: `Read an initial field file into a model definition and report every record,
whether it passed validation and which spatial operation it became.

Examples:
  # Inspect against an empty model
  initfield inspect model/initialFields.ini

  # Inspect against a model definition, data files next to the .mdu
  initfield inspect model/initialFields.ini --model model.yaml --parent model/flow.mdu

  # Machine readable output
  initfield inspect model/initialFields.ini -o json`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectModel, "model", "m", "", "model definition (yaml, json or toml)")
	inspectCmd.Flags().StringVarP(&inspectParent, "parent", "p", "", "model file the data files are relative to (default: the initial field file)")
}

func runInspect(filePath string) error {
	ctx := newAppContext()
	ctx, cancel := ctx.WithTimeout(ctx.DefaultTimeout)
	defer cancel()

	request := &inspect.Request{
		Target: app.FileTarget{
			FilePath:       filePath,
			ParentFilePath: inspectParent,
		},
		ModelPath: inspectModel,
	}

	response, err := inspect.Handle(ctx, request)
	if err != nil {
		return err
	}

	return inspect.FormatOutput(ctx.Out, response, ctx.OutputFormat)
}
