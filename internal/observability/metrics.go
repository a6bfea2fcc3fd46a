package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	entryPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "timelog",
		Subsystem: "persistence",
		Name:      "last_entry_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent entry upserted to Postgres.",
	})
	entriesUpsertedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timelog",
		Subsystem: "persistence",
		Name:      "entries_upserted_total",
		Help:      "Number of time log entries written since process start.",
	})
	pageErrorCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "timelog",
		Subsystem: "web",
		Name:      "store_errors_total",
		Help:      "Number of requests answered with the database error page.",
	})
)

func init() {
	prometheus.MustRegister(entryPersistGauge, entriesUpsertedCounter, pageErrorCounter)
}

// RecordEntryPersisted updates the persistence watermark gauge and counter.
func RecordEntryPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	entryPersistGauge.Set(float64(ts.Unix()))
	entriesUpsertedCounter.Inc()
}

// RecordStoreError counts a request that fell back to the error page.
func RecordStoreError() {
	pageErrorCounter.Inc()
}
