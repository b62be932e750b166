package rewrite

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/deploymenttheory/go-initfield/pkg/app"
)

// FormatOutput formats rewrite results according to output format
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

func formatTable(w io.Writer, response *Response) error {
	if response.Skipped {
		fmt.Fprintf(w, "Nothing to write: %s holds no supported spatial operations.\n", response.Source)
		app.WriteReportTable(w, response.ReadReport)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "GROUP\tQUANTITY\tDATA FILE\tTYPE\tOPERATION\n")
	fmt.Fprintf(tw, "-----\t--------\t---------\t----\t---------\n")
	for _, r := range response.Records {
		op := r.Operation
		if op == "" {
			op = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Group, r.Quantity, r.DataFile, r.DataFileType, op)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nWrote %d records to %s\n", len(response.Records), response.Target)
	for _, s := range response.Switched {
		fmt.Fprintf(w, "  %s now reads %s\n", s.Operation, s.To)
	}

	app.WriteReportTable(w, response.ReadReport)
	return nil
}
