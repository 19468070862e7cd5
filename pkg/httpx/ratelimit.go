package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/careerhub/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig describes a token bucket holding Burst tokens and refilled
// at Requests per Window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	Burst    int
}

func (c RateLimitConfig) limit() rate.Limit {
	return rate.Limit(float64(c.Requests) / c.Window.Seconds())
}

// refill is how long an emptied bucket takes to fill up again.
func (c RateLimitConfig) refill() time.Duration {
	return c.Window * time.Duration(c.Burst) / time.Duration(c.Requests)
}

// Route profiles. Each can be overridden with RATELIMIT_<NAME>_REQUESTS,
// RATELIMIT_<NAME>_WINDOW_SEC and RATELIMIT_<NAME>_BURST.
var (
	// StrictLimit guards password and code submission.
	StrictLimit = LimitFromEnv("STRICT", RateLimitConfig{Requests: 5, Window: time.Minute, Burst: 5})

	// ModerateLimit covers writes made by signed-in users and admins.
	ModerateLimit = LimitFromEnv("MODERATE", RateLimitConfig{Requests: 20, Window: time.Minute, Burst: 20})

	// LenientLimit covers reads and health probes.
	LenientLimit = LimitFromEnv("LENIENT", RateLimitConfig{Requests: 100, Window: time.Minute, Burst: 100})
)

// LimitFromEnv applies RATELIMIT_<name>_* overrides to def. Values that are
// unset, malformed or not positive keep the default.
func LimitFromEnv(name string, def RateLimitConfig) RateLimitConfig {
	prefix := "RATELIMIT_" + name + "_"
	def.Requests = positiveEnv(prefix+"REQUESTS", def.Requests)
	def.Burst = positiveEnv(prefix+"BURST", def.Burst)
	if sec := positiveEnv(prefix+"WINDOW_SEC", 0); sec > 0 {
		def.Window = time.Duration(sec) * time.Second
	}
	return def
}

func positiveEnv(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// KeyFunc picks the bucket a request is charged to. An empty key means the
// request is not counted.
type KeyFunc func(*http.Request) string

// ClientIP keys on the first X-Forwarded-For hop, then X-Real-IP, then the
// peer address.
func ClientIP(r *http.Request) string {
	if first, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ","); strings.TrimSpace(first) != "" {
		return strings.TrimSpace(first)
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// AuthenticatedUser keys on the subject stored by AuthnMiddleware.
func AuthenticatedUser(r *http.Request) string {
	id, _ := UserIDFromContext(r.Context())
	return id
}

// JoinKeys charges a request to the combination of every non-empty key.
func JoinKeys(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if k := fn(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, "|")
	}
}

// FirstKey uses the first of fns that yields a key.
func FirstKey(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		for _, fn := range fns {
			if k := fn(r); k != "" {
				return k
			}
		}
		return ""
	}
}

// maxPeekBody caps how much of a request body BodyField buffers.
const maxPeekBody = 64 << 10

// BodyField keys on a top-level string of a JSON body, trimmed and
// lower-cased so "Ana@Mail.com " and "ana@mail.com" share a bucket. The
// handler still sees the complete body.
func BodyField(name string) KeyFunc {
	return func(r *http.Request) string {
		if r.Body == nil || r.Body == http.NoBody {
			return ""
		}
		orig := r.Body
		head, err := io.ReadAll(io.LimitReader(orig, maxPeekBody))
		r.Body = struct {
			io.Reader
			io.Closer
		}{io.MultiReader(bytes.NewReader(head), orig), orig}
		if err != nil {
			return ""
		}

		var doc map[string]json.RawMessage
		if json.Unmarshal(head, &doc) != nil {
			return ""
		}
		var v string
		if json.Unmarshal(doc[name], &v) != nil {
			return ""
		}
		return strings.ToLower(strings.TrimSpace(v))
	}
}

// sweepEvery is the minimum gap between passes that drop idle buckets.
const sweepEvery = 5 * time.Minute

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// keyedLimiter keeps one bucket per key. A bucket idle long enough to have
// refilled is indistinguishable from a new one, so sweeps drop it.
type keyedLimiter struct {
	cfg RateLimitConfig
	now func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	nextSweep time.Time
}

func newKeyedLimiter(cfg RateLimitConfig) *keyedLimiter {
	return &keyedLimiter{
		cfg:       cfg,
		now:       time.Now,
		buckets:   make(map[string]*bucket),
		nextSweep: time.Now().Add(sweepEvery),
	}
}

// take spends one token from key's bucket. When the bucket is empty it
// reports how long until the next token.
func (k *keyedLimiter) take(key string) (bool, time.Duration) {
	now := k.now()

	k.mu.Lock()
	defer k.mu.Unlock()

	if now.After(k.nextSweep) {
		k.sweep(now)
	}
	b, ok := k.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(k.cfg.limit(), k.cfg.Burst)}
		k.buckets[key] = b
	}
	b.lastSeen = now

	if b.lim.AllowN(now, 1) {
		return true, 0
	}
	res := b.lim.ReserveN(now, 1)
	wait := res.DelayFrom(now)
	res.CancelAt(now)
	return false, wait
}

func (k *keyedLimiter) sweep(now time.Time) {
	idle := k.cfg.refill()
	for key, b := range k.buckets {
		if now.Sub(b.lastSeen) >= idle {
			delete(k.buckets, key)
		}
	}
	k.nextSweep = now.Add(sweepEvery)
}

// RateLimitMiddleware charges each request to the bucket chosen by key and
// answers 429 with Retry-After once that bucket is empty. Each call owns its
// buckets, so two routes sharing a profile are counted separately.
func RateLimitMiddleware(cfg RateLimitConfig, key KeyFunc) Middleware {
	kl := newKeyedLimiter(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				slogx.FromContext(r.Context()).Warn("rate limit key missing, request not counted", "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := kl.take(k)
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			secs := max(int(math.Ceil(wait.Seconds())), 1)
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
			w.Header().Set("X-RateLimit-Window", cfg.Window.String())
			slogx.FromContext(r.Context()).Warn("rate limited", "key", k, "path", r.URL.Path, "retry_after_sec", secs)
			WriteJSON(w, http.StatusTooManyRequests, map[string]string{
				"error":             "rate_limited",
				"error_description": "too many requests, try again later",
			})
		})
	}
}

// RateLimitByIP counts requests per client address.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, ClientIP)
}

// RateLimitByUser counts requests per signed-in user, falling back to the
// client address on unauthenticated requests.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, FirstKey(AuthenticatedUser, ClientIP))
}

// RateLimitByIPAndField counts requests per client address and JSON body
// field, e.g. login attempts per address and email.
func RateLimitByIPAndField(cfg RateLimitConfig, field string) Middleware {
	return RateLimitMiddleware(cfg, JoinKeys(ClientIP, BodyField(field)))
}

// RateLimitByField counts requests per JSON body field alone, so an account
// keeps a single budget whichever address the requests claim to come from.
func RateLimitByField(cfg RateLimitConfig, field string) Middleware {
	return RateLimitMiddleware(cfg, BodyField(field))
}
