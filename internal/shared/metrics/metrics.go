package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rhplus"

var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by method, route and status code.",
}, []string{"method", "route", "status"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by method and route.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// PayrollOperationsTotal counts payroll state changes. result is "ok" or the
// apperror code the operation failed with.
var PayrollOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "payroll",
	Name:      "operations_total",
	Help:      "Payroll operations by name and result.",
}, []string{"operation", "result"})

var OutboxEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "outbox",
	Name:      "events_total",
	Help:      "Outbox events processed by the publisher, by result.",
}, []string{"result"})

var ConsumedMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "consumer",
	Name:      "messages_total",
	Help:      "Kafka messages handled by consumer and result.",
}, []string{"consumer", "result"})
