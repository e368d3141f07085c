package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"receptionist/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func stubBundle() *handlers.HandlerBundle {
	ok := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) { c.String(http.StatusOK, name) }
	}
	return &handlers.HandlerBundle{
		GetBusinessHandler:         ok("business"),
		GetServicesHandler:         ok("services"),
		GetSlotsHandler:            ok("slots"),
		ScheduleHandler:            ok("schedule"),
		ListAppointmentsHandler:    ok("appointments"),
		SaveCustomResponseHandler:  ok("save"),
		GetCustomResponseHandler:   ok("get"),
		ListCustomResponsesHandler: ok("list"),
		AskAIHandler:               ok("ask"),
		AskAIVoiceHandler:          ok("voice"),
		HealthHandler:              ok("health"),
	}
}

func newTestRouter(t *testing.T, hb *handlers.HandlerBundle, perMin int, proxies []string) *gin.Engine {
	t.Helper()
	r, err := NewRouter(hb, perMin, proxies, zap.NewNop())
	require.NoError(t, err)
	return r
}

func TestRegisterRoutes(t *testing.T) {
	r := newTestRouter(t, stubBundle(), 0, nil)

	tests := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/business", "business"},
		{http.MethodGet, "/services", "services"},
		{http.MethodGet, "/slots", "slots"},
		{http.MethodPost, "/schedule", "schedule"},
		{http.MethodGet, "/appointments", "appointments"},
		{http.MethodPost, "/admin/custom-response", "save"},
		{http.MethodGet, "/admin/custom-response", "list"},
		{http.MethodGet, "/admin/custom-response/greeting", "get"},
		{http.MethodPost, "/ai/ask-ai", "ask"},
		{http.MethodPost, "/ai/ask-ai/voice", "voice"},
		{http.MethodGet, "/health", "health"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, stubBundle(), 0, nil)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/business", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestPanicRecovery(t *testing.T) {
	hb := stubBundle()
	hb.GetBusinessHandler = func(c *gin.Context) { panic("boom") }
	r := newTestRouter(t, hb, 0, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/business", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestNewRouter_InvalidTrustedProxy(t *testing.T) {
	_, err := NewRouter(stubBundle(), 0, []string{"not-an-ip"}, zap.NewNop())
	assert.Error(t, err)
}

func getFrom(r *gin.Engine, remoteAddr, forwardedFor string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/business", nil)
	req.RemoteAddr = remoteAddr
	req.Header.Set("X-Forwarded-For", forwardedFor)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_RotatingForwardedForFromUntrustedPeer(t *testing.T) {
	r := newTestRouter(t, stubBundle(), 1, nil)

	var codes []int
	for i := 1; i <= 5; i++ {
		codes = append(codes, getFrom(r, "203.0.113.7:40000", fmt.Sprintf("198.51.100.%d", i)))
	}
	assert.Equal(t, []int{200, 429, 429, 429, 429}, codes)
}

func TestRateLimit_TrustedProxyForwardsClientIP(t *testing.T) {
	r := newTestRouter(t, stubBundle(), 1, []string{"10.0.0.1"})

	assert.Equal(t, http.StatusOK, getFrom(r, "10.0.0.1:5000", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, getFrom(r, "10.0.0.1:5000", "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, getFrom(r, "10.0.0.1:5000", "198.51.100.1"))
}
