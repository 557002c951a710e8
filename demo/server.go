package demo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"

	"github.com/cruddals/cruddals/logging"
)

// ServerConfig configures the demo HTTP server.
type ServerConfig struct {
	Schema graphql.Schema
	Logger *slog.Logger

	// JWTSecret enables bearer-token auth on /graphql when non-empty. The
	// token's sub claim ends up in the request context under
	// logging.UserIDKey.
	JWTSecret string

	// GraphiQL serves the GraphiQL IDE on GET /graphql.
	GraphiQL bool
}

// NewServer assembles the demo router: the GraphQL endpoint, a health check,
// optional JWT auth and request logging.
func NewServer(cfg ServerConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = logging.ProdLogger
	}

	gql := gqlhandler.New(&gqlhandler.Config{
		Schema:   &cfg.Schema,
		Pretty:   true,
		GraphiQL: cfg.GraphiQL,
	})

	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Route("/graphql", func(r chi.Router) {
		if cfg.JWTSecret != "" {
			r.Use(bearerAuth(cfg.JWTSecret))
		}
		r.Handle("/", gql)
	})

	return logging.Decorate([]string{"/health"}, cfg.Logger, r)
}

// bearerAuth validates an optional Authorization: Bearer token and attaches
// the subject claim to the request context. A missing header passes through
// anonymously; an invalid token is rejected.
func bearerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			header := req.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, req)
				return
			}
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				http.Error(w, "malformed authorization header", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if sub, err := token.Claims.GetSubject(); err == nil && sub != "" {
				req = req.WithContext(context.WithValue(req.Context(), logging.UserIDKey, sub))
			}
			next.ServeHTTP(w, req)
		})
	}
}
