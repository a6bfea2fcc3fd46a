// Package web exposes the HTML surface of the time log service.
package web

import (
	"log"
	"net/http"
	"net/url"

	"example.com/timelog/internal/domain"
	"example.com/timelog/internal/observability"
)

const errorPage = `<h1>Database Connection Error</h1><p>Could not reach the database. Please check the server log and verify the DB_* environment variables.</p>`

// Handler coordinates HTTP requests with the entry repository.
type Handler struct {
	repo domain.EntryRepository
}

// NewHandler builds a Handler.
func NewHandler(repo domain.EntryRepository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.dayView)
	mux.HandleFunc("POST /save_entry", h.saveEntry)
	mux.HandleFunc("GET /healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// dayView renders the daily log plus the cumulative dashboard. A missing or
// malformed date parameter silently falls back to today.
func (h *Handler) dayView(w http.ResponseWriter, r *http.Request) {
	day := domain.ParseDayOrToday(r.URL.Query().Get("date"))
	nav := domain.NewDayNav(day)

	entries, err := h.repo.ListByDate(r.Context(), nav.Current)
	if err != nil {
		h.storeError(w, "list entries", err)
		return
	}

	totals, err := h.repo.CategoryTotals(r.Context())
	if err != nil {
		h.storeError(w, "category totals", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := RenderDay(w, BuildDayView(nav, entries, totals)); err != nil {
		log.Printf("render day %s: %v", nav.Current, err)
	}
}

// saveEntry upserts one slot and redirects back to the day it belongs to.
// Date and slot values are handed to the store as-is; a malformed pair comes
// back as a store error.
func (h *Handler) saveEntry(w http.ResponseWriter, r *http.Request) {
	entry := domain.TimeLogEntry{
		Date:     r.FormValue("entry_date"),
		Slot:     r.FormValue("time_slot"),
		Activity: r.FormValue("activity"),
		Category: r.FormValue("category"),
		Priority: r.FormValue("priority"),
		Notes:    r.FormValue("notes"),
	}

	if err := h.repo.Upsert(r.Context(), entry); err != nil {
		h.storeError(w, "save entry", err)
		return
	}

	http.Redirect(w, r, "/?date="+url.QueryEscape(entry.Date), http.StatusSeeOther)
}

// storeError converts any store-level failure into the generic 500 page.
func (h *Handler) storeError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	observability.RecordStoreError()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(errorPage))
}
