package cli

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/models"
)

// parseDay accepts a YYYY-MM-DD key, "today" or "yesterday".
func (a *app) parseDay(s string) (time.Time, error) {
	today := models.CalendarDay(a.now())

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}
	return service.ParseDate(s)
}

// dayArg returns the day named by the first positional argument, or today.
func (a *app) dayArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		return a.parseDay("")
	}
	return a.parseDay(args[0])
}

// cleanList trims every item and drops blank ones.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
