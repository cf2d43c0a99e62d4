package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	inspectPackets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kadwire",
			Subsystem: "inspect",
			Name:      "packets_total",
			Help:      "Packets inspected, by decoded message kind.",
		},
		[]string{"kind"},
	)
	inspectFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kadwire",
			Subsystem: "inspect",
			Name:      "failures_total",
			Help:      "Packets that failed to decode, by failure reason.",
		},
		[]string{"reason"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(inspectPackets, inspectFailures)
	})
}

func RecordPacket(kind string) {
	RegisterMetrics()
	inspectPackets.WithLabelValues(kind).Inc()
}

func RecordDecodeFailure(reason string) {
	RegisterMetrics()
	inspectFailures.WithLabelValues(reason).Inc()
}
