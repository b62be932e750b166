package inspect

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/deploymenttheory/go-initfield/pkg/app"
)

// FormatOutput formats inspection results according to output format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		return app.WriteJSON(w, response)
	case "yaml":
		return app.WriteYAML(w, response)
	case "table":
		return formatTable(w, response)
	default:
		return app.ValidateOutputFormat(format)
	}
}

// formatTable formats results as a table
func formatTable(w io.Writer, response *Response) error {
	if len(response.Records) == 0 {
		fmt.Fprintf(w, "No records found in %s.\n", response.File)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "GROUP\tQUANTITY\tDATA FILE\tTYPE\tINTERPOLATION\tOPERAND\tSTATUS\n")
	fmt.Fprintf(tw, "-----\t--------\t---------\t----\t-------------\t-------\t------\n")
	for _, r := range response.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Group, r.Quantity, r.DataFile, r.DataFileType, dash(r.Interpolation), dash(r.Operand), r.Status())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d initial conditions, %d parameters, %d imported, %d invalid\n",
		response.InitialConditions, response.Parameters, response.Imported, response.Invalid)
	fmt.Fprintf(w, "Model: friction %s, 2D initial condition %s, 1D initial condition %s = %g\n",
		response.Model.FrictionType, response.Model.InitialCondition2D,
		response.Model.InitialCondition1D, response.Model.InitialValue1D)

	for _, r := range response.Records {
		if r.Reason != "" {
			fmt.Fprintf(w, "  %s (%s): %s\n", r.DataFile, r.Quantity, r.Reason)
		}
	}

	app.WriteReportTable(w, response.Report)
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
