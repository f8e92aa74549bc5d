package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	authsvc "github.com/heartmarshall/yatube-backend/internal/service/auth"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

type sessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (authsvc.Identity, error)
}

// Session returns middleware that resolves the session cookie to an author
// and stores the identity in the context. Requests without a valid cookie
// continue anonymously and a stale cookie is cleared. A failing session
// store is answered through fallback; nil writes a plain 500.
func Session(logger *slog.Logger, authenticator sessionAuthenticator, cookieName string, fallback http.Handler) Middleware {
	fallback = orPlainServerError(fallback)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			identity, err := authenticator.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					logger.ErrorContext(r.Context(), "session lookup failed", slog.String("error", err.Error()))
					fallback.ServeHTTP(w, r)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					HttpOnly: true,
				})
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), identity.Author.ID)
			ctx = ctxutil.WithUsername(ctx, identity.Author.Username)
			ctx = ctxutil.WithSessionID(ctx, identity.SessionID)
			recordIdentity(ctx, identity.Author.ID.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoginRequired returns a guard that redirects anonymous requests to
// loginPath with the requested path in the next query parameter.
func LoginRequired(loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				http.Redirect(w, r, LoginURL(loginPath, r.URL.RequestURI()), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoginURL builds the login redirect target carrying next. Slashes in next
// are left unescaped.
func LoginURL(loginPath, next string) string {
	return loginPath + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}
