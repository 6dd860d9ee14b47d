package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Команды к хранилищу бронирований
	CommandsTotal      *prometheus.CounterVec
	CommandDuration    *prometheus.HistogramVec
	CapacityRejections *prometheus.CounterVec
	PriceDrift         *prometheus.CounterVec

	// Кэш сущностей
	CacheRequests      *prometheus.CounterVec
	CacheInvalidations prometheus.Counter

	// Пул соединений БД журнала команд
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge
	DBWaitCount       prometheus.Gauge
	DBQueryDuration   *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_commands_total",
			Help:        "Total number of mutating commands sent to the reservation store",
			ConstLabels: labels,
		}, []string{"command", "outcome"}),

		CommandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "reservation_command_duration_seconds",
			Help:        "Duration of mutating commands in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"command"}),

		CapacityRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_capacity_rejections_total",
			Help:        "Capacity rejections by source (local pre-check or store)",
			ConstLabels: labels,
		}, []string{"source"}),

		PriceDrift: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_price_drift_total",
			Help:        "Bookings whose stored price differs from the tier price recomputed locally",
			ConstLabels: labels,
		}, []string{"command"}),

		CacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "entity_cache_requests_total",
			Help:        "Entity cache lookups by entity and result",
			ConstLabels: labels,
		}, []string{"entity", "result"}),

		CacheInvalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "entity_cache_invalidated_keys_total",
			Help:        "Total number of invalidated cache keys",
			ConstLabels: labels,
		}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),

		DBInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),

		DBIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),

		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CommandsTotal,
		m.CommandDuration,
		m.CapacityRejections,
		m.PriceDrift,
		m.CacheRequests,
		m.CacheInvalidations,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.DBQueryDuration,
	)

	return m
}

// Методы ниже безопасны для nil: при выключенных метриках сервис передает nil

// ObserveCommand фиксирует результат и длительность команды
func (m *Metrics) ObserveCommand(command, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(command, outcome).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// IncCapacityRejection учитывает отказ по вместимости (source: local или store)
func (m *Metrics) IncCapacityRejection(source string) {
	if m == nil {
		return
	}
	m.CapacityRejections.WithLabelValues(source).Inc()
}

// IncPriceDrift учитывает расхождение цены хранилища с локальным пересчетом
func (m *Metrics) IncPriceDrift(command string) {
	if m == nil {
		return
	}
	m.PriceDrift.WithLabelValues(command).Inc()
}

// IncCacheRequest учитывает обращение к кэшу (result: hit, miss или error)
func (m *Metrics) IncCacheRequest(entity, result string) {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues(entity, result).Inc()
}

// AddCacheInvalidations учитывает количество сброшенных ключей
func (m *Metrics) AddCacheInvalidations(n int) {
	if m == nil {
		return
	}
	m.CacheInvalidations.Add(float64(n))
}
