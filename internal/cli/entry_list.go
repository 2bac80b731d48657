package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal/models"
)

func bindPageFlags(cmd *cobra.Command, page *models.PageRequest) {
	cmd.Flags().IntVar(&page.Offset, "offset", 0, "number of entries to skip")
	cmd.Flags().IntVarP(&page.Limit, "limit", "n", 0, "number of entries to show (default: configured page size)")
}

func newListCmd(a *app) *cobra.Command {
	var page models.PageRequest

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.services().Journal.ListPage(cmd.Context(), page)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).page(result)
			return nil
		},
	}
	bindPageFlags(cmd, &page)

	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		filter models.SearchFilter
		page   models.PageRequest
	)

	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Search entries by text, mood and tag",
		Long: "Search entries, newest first. Text matches the title or the content,\n" +
			"--mood matches the primary mood exactly and --tag matches part of a tag.\n" +
			"All given criteria must match.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				filter.Search = args[0]
			}

			result, err := a.services().Journal.Search(cmd.Context(), filter, page)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).page(result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter.Mood, "mood", "m", "", "primary mood")
	cmd.Flags().StringVar(&filter.Tag, "tag", "", "tag or part of a tag")
	bindPageFlags(cmd, &page)

	return cmd
}

func newRangeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "range <from> <to>",
		Short: "List entries between two days, oldest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.parseDay(args[0])
			if err != nil {
				return err
			}
			to, err := a.parseDay(args[1])
			if err != nil {
				return err
			}

			entries, err := a.services().Journal.EntriesInRange(cmd.Context(), models.DateRange{From: from, To: to})
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).entries(entries)
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show writing streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := a.services().Journal.StreakStats(cmd.Context())
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).stats(stats)
			return nil
		},
	}
}
