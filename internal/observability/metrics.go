// Package observability holds Prometheus metric definitions shared
// across the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheRequests counts project cache lookups by outcome (hit or miss).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_cache_requests_total",
		Help: "Total number of cache lookups by outcome",
	}, []string{"outcome"})

	// MailRelay counts contact notification delivery attempts by outcome.
	MailRelay = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_mail_relay_total",
		Help: "Total number of contact notification mail attempts by outcome",
	}, []string{"outcome"})
)
