package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/user/tasks", nil)
	req.RemoteAddr = addr + ":40000"
	return req
}

func asUser(r *http.Request, id string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), CtxKeyUserID, id))
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "peer address", want: "10.0.0.7"},
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": " 203.0.113.9 , 10.0.0.1"}, want: "203.0.113.9"},
		{name: "real ip header", headers: map[string]string{"X-Real-IP": "198.51.100.4"}, want: "198.51.100.4"},
		{name: "blank forwarded header", headers: map[string]string{"X-Forwarded-For": " ", "X-Real-IP": "198.51.100.4"}, want: "198.51.100.4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := requestFrom("10.0.0.7")
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tc.want, ClientIP(req))
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "unix-socket"
	require.Equal(t, "unix-socket", ClientIP(req))
}

func TestBodyField(t *testing.T) {
	const body = `{"email":"  Ana@Mail.com ","password":"hunter22"}`

	t.Run("folds the value and leaves the body readable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		require.Equal(t, "ana@mail.com", BodyField("email")(req))

		rest, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		require.Equal(t, body, string(rest))
	})

	t.Run("body larger than the peek window survives", func(t *testing.T) {
		big := `{"userId":"01J","pad":"` + strings.Repeat("x", maxPeekBody) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
		require.Empty(t, BodyField("userId")(req))

		rest, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		require.Equal(t, big, string(rest))
	})

	for name, in := range map[string]string{
		"missing field":  `{"password":"x"}`,
		"non-string":     `{"email":42}`,
		"not json":       `email=ana@mail.com`,
		"empty document": ``,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(in))
			require.Empty(t, BodyField("email")(req))
		})
	}
}

func TestKeyCombinators(t *testing.T) {
	fixed := func(v string) KeyFunc { return func(*http.Request) string { return v } }
	req := requestFrom("10.0.0.7")

	require.Equal(t, "a|c", JoinKeys(fixed("a"), fixed(""), fixed("c"))(req))
	require.Empty(t, JoinKeys(fixed(""))(req))
	require.Equal(t, "b", FirstKey(fixed(""), fixed("b"), fixed("c"))(req))
	require.Empty(t, FirstKey()(req))

	require.Empty(t, AuthenticatedUser(req))
	require.Equal(t, "01JUSER", AuthenticatedUser(asUser(req, "01JUSER")))
}

func TestRateLimitMiddleware(t *testing.T) {
	one := RateLimitConfig{Requests: 1, Window: time.Minute, Burst: 1}

	t.Run("empties the bucket then answers 429", func(t *testing.T) {
		cfg := RateLimitConfig{Requests: 3, Window: time.Minute, Burst: 3}
		h := RateLimitByIP(cfg)(okHandler())
		for i := range cfg.Burst {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, requestFrom("10.0.0.7"))
			require.Equal(t, http.StatusNoContent, w.Code, "request %d", i+1)
		}

		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestFrom("10.0.0.7"))
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		require.Equal(t, "20", w.Header().Get("Retry-After"))
		require.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", w.Header().Get("X-RateLimit-Window"))
		require.JSONEq(t, `{"error":"rate_limited","error_description":"too many requests, try again later"}`, w.Body.String())

		w = httptest.NewRecorder()
		h.ServeHTTP(w, requestFrom("10.0.0.8"))
		require.Equal(t, http.StatusNoContent, w.Code, "other clients keep their own bucket")
	})

	t.Run("separate middlewares count separately", func(t *testing.T) {
		for _, h := range []http.Handler{RateLimitByIP(one)(okHandler()), RateLimitByIP(one)(okHandler())} {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, requestFrom("10.0.0.7"))
			require.Equal(t, http.StatusNoContent, w.Code)
		}
	})

	t.Run("requests without a key pass through", func(t *testing.T) {
		h := RateLimitMiddleware(one, BodyField("email"))(okHandler())
		for range 3 {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
			require.Equal(t, http.StatusNoContent, w.Code)
		}
	})

	t.Run("user limit follows the account across addresses", func(t *testing.T) {
		h := RateLimitByUser(one)(okHandler())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, asUser(requestFrom("10.0.0.7"), "01JUSER"))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.NewRecorder()
		h.ServeHTTP(w, asUser(requestFrom("10.0.0.99"), "01JUSER"))
		require.Equal(t, http.StatusTooManyRequests, w.Code)

		w = httptest.NewRecorder()
		h.ServeHTTP(w, requestFrom("10.0.0.99"))
		require.Equal(t, http.StatusNoContent, w.Code, "anonymous requests fall back to the address")
	})

	t.Run("address and field share a bucket only when both match", func(t *testing.T) {
		h := RateLimitByIPAndField(one, "email")(okHandler())
		login := func(addr, email string) int {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"`+email+`"}`))
			req.RemoteAddr = addr + ":40000"
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			return w.Code
		}

		require.Equal(t, http.StatusNoContent, login("10.0.0.7", "ana@mail.com"))
		require.Equal(t, http.StatusTooManyRequests, login("10.0.0.7", "ANA@mail.com"))
		require.Equal(t, http.StatusNoContent, login("10.0.0.7", "ravi@mail.com"))
		require.Equal(t, http.StatusNoContent, login("10.0.0.8", "ana@mail.com"))
	})

	t.Run("field limit ignores the claimed address", func(t *testing.T) {
		h := RateLimitByField(one, "userId")(okHandler())
		verify := func(hop, userID string) int {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-2fa-login", strings.NewReader(`{"userId":"`+userID+`"}`))
			req.Header.Set("X-Forwarded-For", hop)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			return w.Code
		}

		require.Equal(t, http.StatusNoContent, verify("203.0.113.1", "01JUSER"))
		require.Equal(t, http.StatusTooManyRequests, verify("203.0.113.2", "01JUSER"))
		require.Equal(t, http.StatusNoContent, verify("203.0.113.2", "01JOTHER"))
	})
}

func TestKeyedLimiterRefillAndSweep(t *testing.T) {
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	kl := newKeyedLimiter(RateLimitConfig{Requests: 2, Window: time.Minute, Burst: 2})
	kl.now = func() time.Time { return clock }
	kl.nextSweep = clock.Add(sweepEvery)

	for range 2 {
		ok, _ := kl.take("a")
		require.True(t, ok)
	}
	ok, wait := kl.take("a")
	require.False(t, ok)
	require.InDelta(t, 30, wait.Seconds(), 0.01)

	clock = clock.Add(31 * time.Second)
	ok, _ = kl.take("a")
	require.True(t, ok, "a token refills every half minute")

	clock = clock.Add(sweepEvery + time.Second)
	_, _ = kl.take("b")
	require.NotContains(t, kl.buckets, "a")
	require.Contains(t, kl.buckets, "b")
}

func TestLimitFromEnv(t *testing.T) {
	def := RateLimitConfig{Requests: 5, Window: time.Minute, Burst: 5}

	require.Equal(t, def, LimitFromEnv("UNSET_PROFILE", def))

	t.Setenv("RATELIMIT_CUSTOM_REQUESTS", "1000")
	t.Setenv("RATELIMIT_CUSTOM_WINDOW_SEC", "10")
	t.Setenv("RATELIMIT_CUSTOM_BURST", "50")
	require.Equal(t, RateLimitConfig{Requests: 1000, Window: 10 * time.Second, Burst: 50}, LimitFromEnv("CUSTOM", def))

	t.Setenv("RATELIMIT_BAD_REQUESTS", "-1")
	t.Setenv("RATELIMIT_BAD_WINDOW_SEC", "soon")
	t.Setenv("RATELIMIT_BAD_BURST", "0")
	require.Equal(t, def, LimitFromEnv("BAD", def))
}

func TestProfilesTighten(t *testing.T) {
	require.Less(t, StrictLimit.Requests, ModerateLimit.Requests)
	require.Less(t, ModerateLimit.Requests, LenientLimit.Requests)
}
