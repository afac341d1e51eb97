package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"video-list-api/internal/metrics"
)

func setupMetricsRouter(m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics(m))
	return router
}

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))
	return metric.GetCounter().GetValue()
}

func TestMetricsMiddlewareRecordsRequests(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	router := setupMetricsRouter(m)
	router.GET("/api/lists/:listId/videos", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/lists/123/videos", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	// Recorded under the route pattern with a status category, not the raw path
	counter := m.HTTPRequestsTotal.WithLabelValues("GET", "/api/lists/:listId/videos", "2xx")
	assert.Equal(t, float64(3), counterValue(t, counter))
}

func TestMetricsMiddlewareCategorizesStatus(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	router := setupMetricsRouter(m)
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	router.GET("/broken", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	tests := []struct {
		path     string
		status   int
		category string
	}{
		{"/missing", http.StatusNotFound, "4xx"},
		{"/broken", http.StatusInternalServerError, "5xx"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, tt.status, w.Code)

			counter := m.HTTPRequestsTotal.WithLabelValues("GET", tt.path, tt.category)
			assert.Equal(t, float64(1), counterValue(t, counter))
		})
	}
}

func TestMetricsMiddlewareSkipsOperationalEndpoints(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	router := setupMetricsRouter(m)

	excluded := []string{"/metrics", "/health", "/api/lists/metrics", "/api/lists/health"}
	for _, path := range excluded {
		router.GET(path, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	}

	for _, path := range excluded {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)

			counter := m.HTTPRequestsTotal.WithLabelValues("GET", path, "2xx")
			assert.Equal(t, float64(0), counterValue(t, counter))
		})
	}
}
