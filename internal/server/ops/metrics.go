// Package ops serves the operational HTTP endpoints of the chat server:
// /health and the Prometheus /metrics page.
package ops

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "minichat"

// Metrics exports chat service events. It implements chat.Recorder.
type Metrics struct {
	registry *prometheus.Registry
	joins    *prometheus.CounterVec
	posts    prometheus.Counter
	rejected *prometheus.CounterVec
	members  prometheus.Gauge
	messages prometheus.Gauge
}

// NewMetrics registers the chat collectors, plus the Go runtime and process
// collectors, on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		joins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "joins_total",
			Help:      "Join attempts by result.",
		}, []string{"result"}),
		posts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_total",
			Help:      "Messages appended to the log.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Rejected requests by operation and reason.",
		}, []string{"op", "reason"}),
		members: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "members",
			Help:      "Registered members.",
		}),
		messages: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "messages",
			Help:      "Messages in the log.",
		}),
	}

	m.registry.MustRegister(
		m.joins, m.posts, m.rejected, m.members, m.messages,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Joined(accepted bool) {
	result := "denied"
	if accepted {
		result = "accepted"
	}
	m.joins.WithLabelValues(result).Inc()
}

func (m *Metrics) Posted() {
	m.posts.Inc()
}

func (m *Metrics) Rejected(op, reason string) {
	m.rejected.WithLabelValues(op, reason).Inc()
}

func (m *Metrics) Size(members, messages int) {
	m.members.Set(float64(members))
	m.messages.Set(float64(messages))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
