package blockwatch

import "github.com/gulfstream/seashell/metrics"

const subsystem = "blockwatch"

var (
	pollFailures = metrics.NewCounter(
		"poll_failures",
		subsystem,
		"number of failed latest block polls",
		[]string{},
	).WithLabelValues()

	latestIndex = metrics.NewGauge(
		"latest_index",
		subsystem,
		"index of the latest observed block",
		[]string{},
	).WithLabelValues()
)
