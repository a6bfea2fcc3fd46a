package web

import (
	"embed"
	"html/template"
	"io"

	"example.com/timelog/internal/domain"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var dayTemplate = template.Must(template.ParseFS(templateFiles, "templates/day.html.tmpl"))

// DayView is the full input of the day page renderer.
type DayView struct {
	Slots     []SlotView
	Nav       domain.DayNav
	Dashboard []domain.DashboardRow
}

// SlotView pairs one of the 96 quarter-hour labels with its stored entry, if
// any. Entry is nil for slots nothing was ever saved to.
type SlotView struct {
	Label string
	Entry *domain.TimeLogEntry
}

// BuildDayView assembles the page model from stored entries and navigation
// dates. The slot list always covers the whole day regardless of what is
// stored.
func BuildDayView(nav domain.DayNav, entries map[string]domain.TimeLogEntry, dashboard []domain.DashboardRow) DayView {
	labels := domain.DaySlots()
	slots := make([]SlotView, 0, len(labels))
	for _, label := range labels {
		slot := SlotView{Label: label}
		if entry, ok := entries[label]; ok {
			slot.Entry = &entry
		}
		slots = append(slots, slot)
	}
	return DayView{Slots: slots, Nav: nav, Dashboard: dashboard}
}

// RenderDay writes the day page as HTML. User-supplied text is escaped by
// html/template.
func RenderDay(w io.Writer, view DayView) error {
	return dayTemplate.Execute(w, view)
}
