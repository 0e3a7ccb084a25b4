package services

import (
	"github.com/localnerve/daycare-data/internal/analytics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var analyticsOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "daycare",
	Name:      "analytics_operations_total",
	Help:      "Aggregation requests by collection, operation and outcome.",
}, []string{"collection", "operation", "outcome"})

func observe(op analytics.Operation, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	analyticsOperations.WithLabelValues(operationCollection(op), op.String(), outcome).Inc()
}

func operationCollection(op analytics.Operation) string {
	if op.DailyLog() {
		return CollectionDailyLogs
	}
	return CollectionHealthRecords
}
