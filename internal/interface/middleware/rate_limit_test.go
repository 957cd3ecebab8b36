package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(remoteAddr string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/refresh", nil)
	c.Request.RemoteAddr = remoteAddr
	return c
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()

	cases := []struct {
		ip   string
		want bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"192.168.0.5", true},
		{"172.20.0.9", true},
		{"8.8.8.8", false},
		{"2001:4860:4860::8888", false},
		{"not-an-ip", false},
	}
	for _, tc := range cases {
		c := testContext("9.9.9.9:1234")
		c.Set("real_ip", tc.ip)
		assert.Equal(t, tc.want, allow(c), tc.ip)
	}
}

func TestKeyByIP(t *testing.T) {
	c := testContext("203.0.113.7:51000")
	assert.Equal(t, "rl:ip:203.0.113.7", KeyByIP()(c))
}

func TestKeyByIPAndPathSeparatesBuckets(t *testing.T) {
	c := testContext("203.0.113.7:51000")
	key := KeyByIPAndPath()(c)
	assert.Equal(t, "rl:path:/api/v1/auth/refresh:ip:203.0.113.7", key)
	assert.NotEqual(t, KeyByIP()(c), key)
}

func TestKeyByUserID(t *testing.T) {
	c := testContext("203.0.113.7:51000")
	assert.Equal(t, "rl:user:anon:ip:203.0.113.7", KeyByUserID()(c), "no session falls back to IP")

	c.Set("user_id", int64(42))
	assert.Equal(t, "rl:user:42", KeyByUserID()(c))
}

func TestRateLimitWithoutRedisIsNoOp(t *testing.T) {
	r := gin.New()
	r.GET("/ping", RateLimit(nil, 1, 0, KeyByIP(), nil), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}
