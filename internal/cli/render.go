package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-journal/models"
)

// printer renders journal values for a terminal. Styles degrade to plain
// text when w is not a terminal.
type printer struct {
	w io.Writer

	titleStyle lipgloss.Style
	dateStyle  lipgloss.Style
	labelStyle lipgloss.Style
	helpStyle  lipgloss.Style
	boxStyle   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:          w,
		titleStyle: r.NewStyle().Bold(true),
		dateStyle:  r.NewStyle().Foreground(lipgloss.Color("6")),
		labelStyle: r.NewStyle().Faint(true),
		helpStyle:  r.NewStyle().Faint(true),
		boxStyle:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
	}
}

// entry prints a full entry.
func (p *printer) entry(e models.JournalEntry) {
	fmt.Fprintln(p.w, p.dateStyle.Render(e.EntryDateKey)+"  "+p.titleStyle.Render(titleOrPlaceholder(e.Title)))
	if e.PrimaryMood != "" {
		fmt.Fprintln(p.w, p.labelStyle.Render("mood:")+" "+e.PrimaryMood)
	}
	if len(e.SecondaryMoods) > 0 {
		fmt.Fprintln(p.w, p.labelStyle.Render("also:")+" "+strings.Join(e.SecondaryMoods, ", "))
	}
	if len(e.Tags) > 0 {
		fmt.Fprintln(p.w, p.labelStyle.Render("tags:")+" "+hashTags(e.Tags))
	}
	if e.ContentHTML != "" {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, e.ContentHTML)
	}
	fmt.Fprintln(p.w, p.helpStyle.Render(fmt.Sprintf("updated %s", e.UpdatedAt.Local().Format("2006-01-02 15:04"))))
}

// entryLine prints a one-line summary of e.
func (p *printer) entryLine(e models.JournalEntry) {
	parts := []string{p.dateStyle.Render(e.EntryDateKey), titleOrPlaceholder(e.Title)}
	if e.PrimaryMood != "" {
		parts = append(parts, "["+e.PrimaryMood+"]")
	}
	if len(e.Tags) > 0 {
		parts = append(parts, hashTags(e.Tags))
	}
	fmt.Fprintln(p.w, strings.Join(parts, "  "))
}

func (p *printer) entries(entries []models.JournalEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(p.w, p.helpStyle.Render("no entries"))
		return
	}
	for _, e := range entries {
		p.entryLine(e)
	}
}

// page prints a listing window followed by its position in the whole listing.
func (p *printer) page(page models.Page) {
	p.entries(page.Entries)
	if len(page.Entries) == 0 {
		return
	}

	footer := fmt.Sprintf("%d-%d of %d", page.Offset+1, page.Offset+len(page.Entries), page.Total)
	if page.HasNext() {
		footer += fmt.Sprintf(" (next: --offset %d)", page.Offset+len(page.Entries))
	}
	fmt.Fprintln(p.w, p.helpStyle.Render(footer))
}

func (p *printer) stats(s models.StreakStats) {
	lines := []string{
		p.titleStyle.Render("Streaks"),
		"",
		fmt.Sprintf("%s %d", p.labelStyle.Render("current:"), s.Current),
		fmt.Sprintf("%s %d", p.labelStyle.Render("longest:"), s.Longest),
		fmt.Sprintf("%s %d", p.labelStyle.Render("missed: "), s.Missed),
	}
	fmt.Fprintln(p.w, p.boxStyle.Render(strings.Join(lines, "\n")))
}

func titleOrPlaceholder(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func hashTags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}
