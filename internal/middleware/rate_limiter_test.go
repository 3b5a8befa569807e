package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func requestFrom(e *echo.Echo, handler echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(1, 3)
	handler := limiter.Middleware()(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, requestFrom(e, handler, "192.168.1.2").Code, "request %d", i)
	}

	rec := requestFrom(e, handler, "192.168.1.2")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_PerIP(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(1, 1)
	handler := limiter.Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, requestFrom(e, handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(e, handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, requestFrom(e, handler, "10.0.0.2").Code)
	assert.Equal(t, 2, limiter.visitorCount())
}

func TestRateLimiter_Concurrent(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(1000, 1000)
	handler := limiter.Middleware()(okHandler)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				requestFrom(e, handler, "172.16.0.1")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, limiter.visitorCount())
}

func TestRateLimiter_CleanupEvictsIdleVisitors(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(5, 5)
	now := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	handler := limiter.Middleware()(okHandler)

	requestFrom(e, handler, "10.0.0.1")
	now = now.Add(2 * time.Minute)
	requestFrom(e, handler, "10.0.0.2")

	now = now.Add(2 * time.Minute)
	limiter.cleanup()

	require.Equal(t, 1, limiter.visitorCount())
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewRateLimiter(1, 1).Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
