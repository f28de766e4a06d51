package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	invocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "actiongate_invocations_total",
			Help: "Endpoint and webhook invocations by surface and response status.",
		},
		[]string{"surface", "status"},
	)

	actionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "actiongate_actions_total",
			Help: "Executed pipeline actions by type and result.",
		},
		[]string{"type", "result"},
	)
)

func Initialize() {
	once.Do(func() {
		prometheus.MustRegister(invocationsTotal, actionsTotal)
	})
}

func RecordInvocation(surface string, status int) {
	invocationsTotal.WithLabelValues(surface, strconv.Itoa(status)).Inc()
}

func RecordAction(actionType, result string) {
	actionsTotal.WithLabelValues(actionType, result).Inc()
}
