package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/punchamoorthee/bankapi/internal/domain"
)

// SessionCookie carries the session token for browser clients; the
// Authorization header takes precedence when both are present.
const SessionCookie = "BANK_AUTH"

type contextKey int

const identityKey contextKey = iota

func withIdentity(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, identityKey, user)
}

// identityFrom returns the authenticated caller, or nil when the request
// never passed the authentication middleware.
func identityFrom(ctx context.Context) *domain.User {
	user, _ := ctx.Value(identityKey).(*domain.User)
	return user
}

// authenticate resolves the caller identity before any resource is touched.
// A missing credential is a distinct failure from an invalid one.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				token = cookie.Value
			}
		}
		if token == "" {
			respondWithError(w, http.StatusUnauthorized, "missing credential")
			return
		}

		user, err := s.auth.ResolveSession(r.Context(), token)
		if err != nil {
			s.renderError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), user)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// instrument records request metrics and a completion log line, keyed by the
// matched route template rather than the raw path.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" || r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		endpoint := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tmpl
			}
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		httpRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(rec.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, endpoint).Observe(elapsed.Seconds())

		s.log.Info().
			Str("method", r.Method).
			Str("endpoint", endpoint).
			Int("status", rec.status).
			Dur("duration", elapsed).
			Msg("request")
	})
}
