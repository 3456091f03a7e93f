package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostsCreated counts posts accepted for publication.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rare_posts_created_total",
		Help: "Total number of posts created",
	})

	// CommentsCreated counts comments accepted.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rare_comments_created_total",
		Help: "Total number of comments created",
	})

	// RateLimitRejections counts requests rejected by the rate limiter, by resource.
	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rare_rate_limit_rejections_total",
		Help: "Total number of requests rejected by the rate limiter",
	}, []string{"resource"})
)
