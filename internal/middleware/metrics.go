package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Metrics records request counts and latencies per route
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lw, r)

		route := RouteLabel(r.URL.Path)
		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(lw.statusCode)).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// RouteLabel replaces record ids in path with {id} to bound label cardinality.
func RouteLabel(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if primitive.IsValidObjectID(seg) {
			segments[i] = "{id}"
		}
	}
	return strings.Join(segments, "/")
}
