package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-journal/models"
)

type writeOptions struct {
	title    string
	content  string
	markdown string
	mood     string
	moods    []string
	tags     []string
}

func newWriteCmd(a *app) *cobra.Command {
	opts := &writeOptions{}

	cmd := &cobra.Command{
		Use:   "write [date]",
		Short: "Create or update the entry for a day",
		Long: "Create or update the entry for a day (today by default).\n" +
			"Only the fields given as flags change; the rest keep their stored values.",
		Example: "  journal write --title \"Long walk\" --mood happy --tags outdoors,friends\n" +
			"  journal write 2024-03-05 --markdown notes.md",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWrite(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.title, "title", "t", "", "entry title")
	f.StringVar(&opts.content, "content", "", "entry content as an HTML fragment")
	f.StringVar(&opts.markdown, "markdown", "", "read entry content from a Markdown file (- for stdin)")
	f.StringVarP(&opts.mood, "mood", "m", "", "primary mood")
	f.StringSliceVar(&opts.moods, "moods", nil, "secondary moods, comma separated")
	f.StringSliceVar(&opts.tags, "tags", nil, "tags, comma separated")
	cmd.MarkFlagsMutuallyExclusive("content", "markdown")

	return cmd
}

func (a *app) runWrite(cmd *cobra.Command, args []string, opts *writeOptions) error {
	ctx := cmd.Context()
	journal := a.services().Journal

	day, err := a.dayArg(args)
	if err != nil {
		return err
	}

	existing, found, err := journal.GetEntry(ctx, day)
	if err != nil {
		return err
	}

	var input models.EntryInput
	if found {
		input = existing.Input()
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		input.Title = opts.title
	}
	if flags.Changed("content") {
		input.ContentHTML = opts.content
	}
	if flags.Changed("markdown") {
		if input.ContentHTML, err = a.readMarkdown(cmd, opts.markdown); err != nil {
			return err
		}
	}
	if flags.Changed("mood") {
		input.PrimaryMood = opts.mood
	}
	if flags.Changed("moods") {
		input.SecondaryMoods = cleanList(opts.moods)
	}
	if flags.Changed("tags") {
		input.Tags = cleanList(opts.tags)
	}

	entry, err := journal.SaveEntry(ctx, day, input)
	if err != nil {
		return err
	}

	verb := "Created"
	if found {
		verb = "Updated"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s entry for %s\n", verb, entry.EntryDateKey)
	return nil
}

// readMarkdown renders the Markdown file at path, or stdin for "-".
func (a *app) readMarkdown(cmd *cobra.Command, path string) (string, error) {
	var (
		src []byte
		err error
	)
	if path == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("error reading markdown: %w", err)
	}

	return a.markdown.ToHTML(src)
}
