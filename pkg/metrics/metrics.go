// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ReconcileResultOK    = "ok"
	ReconcileResultError = "error"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передаётся nil
type Metrics struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	requestsSubmitted *prometheus.CounterVec
	bookingsConfirmed *prometheus.CounterVec
	confirmConflicts  prometheus.Counter
	reconcileTicks    *prometheus.CounterVec
	indexEntries      *prometheus.GaugeVec
	operatorSessions  prometheus.Gauge
	dbConnections     *prometheus.GaugeVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		requestsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_requests_submitted_total",
			Help:        "Visitor booking requests appended to the request log",
			ConstLabels: labels,
		}, []string{"quest"}),
		bookingsConfirmed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_confirmed_total",
			Help:        "Bookings confirmed by the operator",
			ConstLabels: labels,
		}, []string{"quest"}),
		confirmConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_confirm_conflicts_total",
			Help:        "Confirmations rejected because the slot was already confirmed",
			ConstLabels: labels,
		}),
		reconcileTicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reconcile_ticks_total",
			Help:        "Availability index refreshes by result",
			ConstLabels: labels,
		}, []string{"result"}),
		indexEntries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "availability_index_entries",
			Help:        "Entries in the latest availability index",
			ConstLabels: labels,
		}, []string{"log"}),
		operatorSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "operator_sessions_active",
			Help:        "Active operator sessions",
			ConstLabels: labels,
		}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: labels,
		}, []string{"state"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.requestsSubmitted,
		m.bookingsConfirmed,
		m.confirmConflicts,
		m.reconcileTicks,
		m.indexEntries,
		m.operatorSessions,
		m.dbConnections,
	)

	return m
}

// ObserveHTTP учитывает один HTTP запрос
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) IncRequestSubmitted(quest string) {
	if m == nil {
		return
	}
	m.requestsSubmitted.WithLabelValues(quest).Inc()
}

func (m *Metrics) IncBookingConfirmed(quest string) {
	if m == nil {
		return
	}
	m.bookingsConfirmed.WithLabelValues(quest).Inc()
}

func (m *Metrics) IncConfirmConflict() {
	if m == nil {
		return
	}
	m.confirmConflicts.Inc()
}

// ObserveReconcile учитывает один проход цикла обновления индекса
func (m *Metrics) ObserveReconcile(err error, requests, confirmed int) {
	if m == nil {
		return
	}
	if err != nil {
		m.reconcileTicks.WithLabelValues(ReconcileResultError).Inc()
		return
	}
	m.reconcileTicks.WithLabelValues(ReconcileResultOK).Inc()
	m.indexEntries.WithLabelValues("requests").Set(float64(requests))
	m.indexEntries.WithLabelValues("confirmed").Set(float64(confirmed))
}

func (m *Metrics) SetOperatorSessions(n int) {
	if m == nil {
		return
	}
	m.operatorSessions.Set(float64(n))
}

// ObserveDBStats копирует состояние пула соединений в gauges
func (m *Metrics) ObserveDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(stats.Idle))
}

// CollectDBStats периодически снимает db.Stats(), пока не закрыт stop
func (m *Metrics) CollectDBStats(db *sql.DB, interval time.Duration, stop <-chan struct{}) {
	if m == nil || db == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.ObserveDBStats(db.Stats())
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.ObserveDBStats(db.Stats())
		}
	}
}
