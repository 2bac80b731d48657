package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal/models"
)

func newShowCmd(a *app) *cobra.Command {
	var copyContent bool

	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Show the entry for a day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := a.dayArg(args)
			if err != nil {
				return err
			}

			entry, found, err := a.services().Journal.GetEntry(cmd.Context(), day)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: %s", ErrEntryNotFound, models.DateKey(day))
			}

			newPrinter(cmd.OutOrStdout()).entry(entry)

			if copyContent {
				if err = a.copyText(entry.ContentHTML); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Content copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyContent, "copy", false, "copy the entry content to the clipboard")

	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date>",
		Short: "Delete the entry for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := a.parseDay(args[0])
			if err != nil {
				return err
			}

			deleted, err := a.services().Journal.DeleteEntry(cmd.Context(), day)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("%w: %s", ErrEntryNotFound, models.DateKey(day))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry for %s\n", models.DateKey(day))
			return nil
		},
	}
}
