package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-initfield/pkg/app"
	"github.com/deploymenttheory/go-initfield/pkg/app/rewrite"
)

var (
	rewriteModel     string
	rewriteParent    string
	rewriteOut       string
	rewriteOutParent string
	rewriteSwitchTo  bool
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [initial-field-file]",
	Short: "Read an initial field file and write it to a new location",
	Long: `Read an initial field file into a model definition and write the model back out,
copying imported data files and regenerating polygon, sample and 1D field files.
Data file names of the source are kept.

Examples:
  # Copy a model's initial fields to a new directory
  initfield rewrite old/initialFields.ini --out new/initialFields.ini

  # Write data files next to the new .mdu and point imports at the copies
  initfield rewrite old/initialFields.ini --model model.yaml \
      --out new/initialFields.ini --out-parent new/flow.mdu --switch-to`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("switch-to") {
			rewriteSwitchTo = cfg.SwitchTo
		}
		return runRewrite(args[0])
	},
}

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().StringVarP(&rewriteModel, "model", "m", "", "model definition (yaml, json or toml)")
	rewriteCmd.Flags().StringVarP(&rewriteParent, "parent", "p", "", "model file the source data files are relative to")
	rewriteCmd.Flags().StringVar(&rewriteOut, "out", "", "initial field file to write")
	rewriteCmd.Flags().StringVar(&rewriteOutParent, "out-parent", "", "model file the written data files are placed next to")
	rewriteCmd.Flags().BoolVar(&rewriteSwitchTo, "switch-to", false, "point imported operations at the copied data files")
	rewriteCmd.MarkFlagRequired("out")
}

func runRewrite(filePath string) error {
	ctx := newAppContext()
	ctx, cancel := ctx.WithTimeout(ctx.DefaultTimeout)
	defer cancel()

	request := &rewrite.Request{
		Source: app.FileTarget{
			FilePath:       filePath,
			ParentFilePath: rewriteParent,
		},
		Target: app.FileTarget{
			FilePath:       rewriteOut,
			ParentFilePath: rewriteOutParent,
		},
		ModelPath: rewriteModel,
		SwitchTo:  rewriteSwitchTo,
	}

	response, err := rewrite.Handle(ctx, request)
	if err != nil {
		return err
	}

	return rewrite.FormatOutput(ctx.Out, response, ctx.OutputFormat)
}
