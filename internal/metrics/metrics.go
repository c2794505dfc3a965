package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	registry *prometheus.Registry

	EncodedMessages   prometheus.Counter
	EncodedCharacters prometheus.Counter
	EncodeErrors      prometheus.Counter
	EncodeDurations   prometheus.Histogram
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,
		EncodedMessages: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "encode_messages_total",
			Help: "The total number of messages encoded",
		}),
		EncodedCharacters: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "encode_characters_total",
			Help: "The total number of characters pushed through the signal path",
		}),
		EncodeErrors: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "encode_errors_total",
			Help: "The total number of rejected encode requests",
		}),
		EncodeDurations: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name: "encode_duration_seconds",
			Help: "The time spent encoding a message",
		}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}
