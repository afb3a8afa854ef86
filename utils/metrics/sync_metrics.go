package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rss_reader"

var (
	syncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_runs_total",
		Help:      "Sync runs by trigger and outcome",
	}, []string{"trigger", "outcome"})

	feedsProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feeds_processed_total",
		Help:      "Feeds processed per sync step outcome",
	}, []string{"outcome"})

	entriesInsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_inserted_total",
		Help:      "Entries inserted after deduplication",
	})

	indexFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_index_failures_total",
		Help:      "Search indexing calls that failed after entry insertion",
	})

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_fetch_duration_seconds",
		Help:      "Feed fetch latency by result",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
	}, []string{"result"})
)

// Fetch results.
const (
	FetchResultOK          = "ok"
	FetchResultNotModified = "not_modified"
	FetchResultError       = "error"
)

// Feed step outcomes.
const (
	FeedOutcomeSuccess = "success"
	FeedOutcomeError   = "error"
)

func RecordSyncRun(trigger, outcome string) {
	syncRunsTotal.WithLabelValues(trigger, outcome).Inc()
}

func RecordFeedProcessed(outcome string) {
	feedsProcessedTotal.WithLabelValues(outcome).Inc()
}

func RecordEntriesInserted(n int) {
	if n > 0 {
		entriesInsertedTotal.Add(float64(n))
	}
}

func RecordIndexFailure() {
	indexFailuresTotal.Inc()
}

func RecordFetch(result string, elapsed time.Duration) {
	fetchDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}
