package auth

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/rs/zerolog"
)

type MiddlewareHandler func(http.Handler) http.Handler

type contextKey int

const ContextUserKey contextKey = 1

func GetUser(ctx context.Context) *service.User {
	user := ctx.Value(ContextUserKey)
	if user == nil {
		return nil
	}

	return user.(*service.User)
}

func SetUser(ctx context.Context, user *service.User) context.Context {
	return context.WithValue(ctx, ContextUserKey, user)
}

// NewMiddleware resolves the session cookie into a user on the request
// context. Requests without a valid session pass through anonymous, the
// endpoints decide what requires a user.
func NewMiddleware(cookieName string, log zerolog.Logger) MiddlewareHandler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := r.Cookie(cookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := GetSession(ctx, cookie.Value)
			if err != nil {
				if !errors.Is(err, sql.ErrNoRows) {
					log.Error().Err(err).Msg("retrieving session")
					http.Error(w, `{"error": "Unable to retrieve session."}`, http.StatusInternalServerError)
					return
				}

				next.ServeHTTP(w, r)
				return
			}

			user := &service.User{
				ID:       sess.UserID,
				Username: sess.Username,
				Name:     sess.Name,
				Expiry:   sess.Expires,
			}

			next.ServeHTTP(w, r.WithContext(SetUser(ctx, user)))
		})
	}
}
