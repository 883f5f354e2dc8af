package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gymhum_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// FriendRequestsTotal counts friendship transitions by outcome.
	FriendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gymhum_friend_requests_total",
		Help: "Total number of friend request operations by outcome",
	}, []string{"outcome"})

	// PostLikesTotal counts post like operations.
	PostLikesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gymhum_post_likes_total",
		Help: "Total number of post like operations",
	})
)

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus middleware for the given service name.
// The underlying collectors register against the default registry, so the
// instance is created once and shared.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}

// MetricsMiddleware wraps the fiberprometheus middleware as a Fiber handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
