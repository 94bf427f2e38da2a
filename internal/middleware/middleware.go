// Package middleware holds the HTTP middleware wrapped around every response.
package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/debemdeboas/grocery-store/internal/cache"
	"github.com/debemdeboas/grocery-store/internal/config"
)

type Middleware func(http.Handler) http.Handler

// Chain applies mws so that the first one is outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// RequestID reuses a client supplied X-Request-Id when it parses as a UUID,
// otherwise generates one. The id is echoed in the response and added to the
// request logger.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(config.HRequestID)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(config.HRequestID, id)
			log := zerolog.Ctx(r.Context())
			log.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("request_id", id)
			})

			next.ServeHTTP(w, r)
		})
	}
}

// Logging attaches l to each request context and writes one access log line
// per response.
func Logging(l zerolog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("Request")
		})
		return hlog.NewHandler(l)(access(next))
	}
}

func SecureHeaders() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Frame-Options", "deny")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Referrer-Policy", "same-origin")

			next.ServeHTTP(w, r)
		})
	}
}

// CacheHeaders marks responses as revalidated on every request, except static
// files with a known content hash, which get a public max-age and their ETag.
func CacheHeaders(hashes *cache.StaticHashes) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(config.HCacheControl, "no-cache")
			w.Header().Add("Vary", "Cookie")

			if hashes != nil {
				if hash, ok := hashes.Get(r.URL.Path); ok {
					w.Header().Set(config.HCacheControl, "public, max-age=3600")
					w.Header().Set(config.HETag, hash)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
