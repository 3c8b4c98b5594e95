package txs

import "github.com/gulfstream/seashell/metrics"

const (
	subsystem = "txs"

	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

var (
	submitted = metrics.NewCounter(
		"submitted",
		subsystem,
		"number of submitted transactions by kind and outcome",
		[]string{"kind", "outcome"},
	)

	submitLatency = metrics.NewHistogramWithBuckets(
		"submit_duration_seconds",
		subsystem,
		"duration from blockheight lookup to node acknowledgement",
		[]string{"kind"},
		[]float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	)

	decodeFailures = metrics.NewCounter(
		"history_decode_failures",
		subsystem,
		"number of history entries with an undecodable msg",
		[]string{},
	).WithLabelValues()

	cacheHits = metrics.NewCounter(
		"history_cache",
		subsystem,
		"decoded history cache lookups",
		[]string{"result"},
	)
)
