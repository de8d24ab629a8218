package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestMetrics_NilSafe проверяет, что выключенные метрики не паникуют
func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/x", 200, time.Millisecond)
		m.IncRequestSubmitted("q")
		m.IncBookingConfirmed("q")
		m.IncConfirmConflict()
		m.ObserveReconcile(nil, 1, 1)
		m.SetOperatorSessions(1)
		m.ObserveDBStats(sql.DBStats{})
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.IncRequestSubmitted("Опасная зона")
	m.IncRequestSubmitted("Опасная зона")
	m.IncConfirmConflict()
	m.ObserveReconcile(nil, 3, 1)
	m.ObserveReconcile(errors.New("down"), 0, 0)
	m.SetOperatorSessions(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsSubmitted.WithLabelValues("Опасная зона")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.confirmConflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reconcileTicks.WithLabelValues(ReconcileResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reconcileTicks.WithLabelValues(ReconcileResultError)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.indexEntries.WithLabelValues("requests")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.operatorSessions))
}
