package client

import (
	"time"

	"google.golang.org/grpc/status"

	"github.com/gulfstream/seashell/metrics"
)

const subsystem = "node_client"

var callLatency = metrics.NewHistogramWithBuckets(
	"call_duration_seconds",
	subsystem,
	"duration of calls to the node",
	[]string{"method", "code"},
	[]float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
)

func observeCall(method string, start time.Time, err error) {
	callLatency.WithLabelValues(method, status.Code(err).String()).Observe(time.Since(start).Seconds())
}
