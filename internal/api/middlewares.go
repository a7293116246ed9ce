package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/pkg/logger"
)

// Authenticator resolves a bearer token to its user.
type Authenticator interface {
	AuthenticateToken(ctx context.Context, accessToken string) (entity.User, error)
}

type Middleware struct {
	auth Authenticator
}

func NewMiddleware(auth Authenticator) *Middleware {
	return &Middleware{
		auth: auth,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetRequestID(r.Context(), uuid.Must(uuid.NewV4()).String())

		headers := ""

		for k, v := range r.Header {
			if k == "Authorization" {
				continue
			}

			headers += fmt.Sprintf("%s: %s,\n", k, v)
		}

		slog.InfoContext(ctx, "incoming request", "method", r.Method, "url", r.URL.String(), "headers", headers, "user_ip", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), entity.CtxKeyIP{}, r.RemoteAddr)
		ctx = logger.SetIP(ctx, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accessToken, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Missing bearer token")
			return
		}

		user, err := m.auth.AuthenticateToken(ctx, accessToken)
		if err != nil {
			SendServiceErr(ctx, w, err)
			return
		}

		ctx = logger.SetUserID(ctx, user.ID.String())
		ctx = entity.SetUserToContext(ctx, user)
		ctx = entity.SetTokenToContext(ctx, accessToken)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
