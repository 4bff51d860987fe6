package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(requests int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(requests, window))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doRequest(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BlocksAfterBudget(t *testing.T) {
	// Window panjang supaya token tidak sempat terisi ulang di tengah test
	r := newLimitedRouter(3, time.Hour)

	for i := 0; i < 3; i++ {
		rec := doRequest(r, "10.0.0.1")
		assert.Equal(t, http.StatusOK, rec.Code, "request ke-%d harusnya lolos", i+1)
	}

	rec := doRequest(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests, please try again later.")
	assert.Contains(t, rec.Body.String(), `"fail"`)
}

func TestRateLimit_PerIP(t *testing.T) {
	r := newLimitedRouter(1, time.Hour)

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "10.0.0.1").Code)

	// IP lain punya jatah sendiri
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.2").Code)
}

func TestGetLimiter_ReusesPerIP(t *testing.T) {
	l := NewIPRateLimiter(1, 1)

	first := l.GetLimiter("10.0.0.1")
	second := l.GetLimiter("10.0.0.1")
	other := l.GetLimiter("10.0.0.2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}
