package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

type exportOptions struct {
	format string
	from   string
	to     string
	out    string
}

func newExportCmd(a *app) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries as JSON or YAML",
		Example: "  journal export --format yaml --out journal.yaml\n" +
			"  journal export --from 2024-01-01 --to 2024-01-31",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExport(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", string(models.ExportJSON), "output format: json or yaml")
	f.StringVar(&opts.from, "from", "", "first day to export")
	f.StringVar(&opts.to, "to", "", "last day to export")
	f.StringVarP(&opts.out, "out", "o", "", "output file (default: stdout)")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}

func (a *app) runExport(cmd *cobra.Command, opts *exportOptions) (err error) {
	format, err := models.ParseExportFormat(opts.format)
	if err != nil {
		return err
	}

	dateRange, err := a.exportRange(opts)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.out != "" {
		file, createErr := os.Create(opts.out)
		if createErr != nil {
			return fmt.Errorf("error creating export file: %w", createErr)
		}
		defer func() {
			err = errors.Join(err, file.Close())
		}()
		w = file
	}

	n, err := a.services().Export.Export(cmd.Context(), w, format, dateRange)
	if err != nil {
		logger.FromContext(cmd.Context()).Err(err).Str("func", "app.runExport").Msg("export failed")
		return withTraceID(cmd.Context(), err)
	}

	if opts.out != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries to %s\n", n, opts.out)
	}
	return nil
}

// exportRange returns nil when no bounds are given.
func (a *app) exportRange(opts *exportOptions) (*models.DateRange, error) {
	if opts.from == "" && opts.to == "" {
		return nil, nil
	}
	if opts.from == "" || opts.to == "" {
		return nil, ErrIncompleteRange
	}

	from, err := a.parseDay(opts.from)
	if err != nil {
		return nil, err
	}
	to, err := a.parseDay(opts.to)
	if err != nil {
		return nil, err
	}
	return &models.DateRange{From: from, To: to}, nil
}
