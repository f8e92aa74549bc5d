// Package web serves the server-rendered HTML site.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/schema"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	authsvc "github.com/heartmarshall/yatube-backend/internal/service/auth"
	"github.com/heartmarshall/yatube-backend/internal/service/feed"
	postsvc "github.com/heartmarshall/yatube-backend/internal/service/post"
	"github.com/heartmarshall/yatube-backend/internal/transport/middleware"
)

// feedService defines the read operations needed by web handlers.
type feedService interface {
	Index(ctx context.Context, page int) (domain.Page[domain.Post], error)
	Group(ctx context.Context, slug string, page int) (*feed.GroupPage, error)
	Profile(ctx context.Context, username string, page int) (*feed.ProfilePage, error)
	Followed(ctx context.Context, page int) (domain.Page[domain.Post], error)
	PostDetail(ctx context.Context, username string, postID uuid.UUID) (*feed.PostPage, error)
}

// postService defines the post mutations needed by web handlers.
type postService interface {
	Create(ctx context.Context, input postsvc.PostInput) (domain.Post, error)
	GetForEdit(ctx context.Context, username string, postID uuid.UUID) (domain.Post, error)
	Edit(ctx context.Context, username string, postID uuid.UUID, input postsvc.PostInput) (domain.Post, error)
	AddComment(ctx context.Context, username string, postID uuid.UUID, input postsvc.CommentInput) (domain.Comment, error)
	Groups(ctx context.Context) ([]domain.Group, error)
}

// followService defines the follow graph operations needed by web handlers.
type followService interface {
	Follow(ctx context.Context, username string) error
	Unfollow(ctx context.Context, username string) error
}

// authService defines the account operations needed by web handlers.
type authService interface {
	Signup(ctx context.Context, input authsvc.SignupInput) (*authsvc.Result, error)
	Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.Result, error)
	Logout(ctx context.Context) error
}

// Options holds cookie and upload settings for the handler.
type Options struct {
	CookieName     string
	CookieSecure   bool
	LoginPath      string
	MaxUploadBytes int64
}

// Handler serves every HTML page of the site.
type Handler struct {
	log        *slog.Logger
	feed       feedService
	posts      postService
	follows    followService
	auth       authService
	render     *Renderer
	decoder    *schema.Decoder
	opts       Options
	guard      middleware.Middleware
	loginLimit middleware.Middleware
}

// NewHandler creates a Handler. loginLimit guards login and sign-up
// submissions; nil disables it.
func NewHandler(
	logger *slog.Logger,
	feeds feedService,
	posts postService,
	follows followService,
	auth authService,
	renderer *Renderer,
	opts Options,
	loginLimit middleware.Middleware,
) *Handler {
	if loginLimit == nil {
		loginLimit = middleware.Chain()
	}
	return &Handler{
		log:        logger.With("handler", "web"),
		feed:       feeds,
		posts:      posts,
		follows:    follows,
		auth:       auth,
		render:     renderer,
		decoder:    newDecoder(),
		opts:       opts,
		guard:      middleware.LoginRequired(opts.LoginPath),
		loginLimit: loginLimit,
	}
}

// page renders name and turns a template failure into the server error page.
func (h *Handler) page(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := h.render.Render(w, r, status, name, data); err != nil {
		h.log.ErrorContext(r.Context(), "render page", slog.String("page", name), slog.String("error", err.Error()))
		h.serverError(w, r)
	}
}

// fail maps a service error to a response: not found page, login redirect
// or server error page.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.notFound(w, r)
	case errors.Is(err, domain.ErrUnauthorized):
		http.Redirect(w, r, middleware.LoginURL(h.opts.LoginPath, r.URL.RequestURI()), http.StatusFound)
	case errors.Is(err, context.Canceled):
		h.log.InfoContext(r.Context(), "request canceled", slog.String("path", r.URL.Path))
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		h.serverError(w, r)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if err := h.render.Render(w, r, http.StatusNotFound, "404", nil); err != nil {
		h.log.ErrorContext(r.Context(), "render 404", slog.String("error", err.Error()))
		http.NotFound(w, r)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request) {
	if err := h.render.Render(w, r, http.StatusInternalServerError, "500", nil); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// ServerError is the fallback used by the recovery middleware.
func (h *Handler) ServerError() http.Handler {
	return http.HandlerFunc(h.serverError)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// methods rejects requests whose method is not listed with 405.
func methods(h http.HandlerFunc, allowed ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, m := range allowed {
			if r.Method == m || (m == http.MethodGet && r.Method == http.MethodHead) {
				h(w, r)
				return
			}
		}
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func postURL(username string, postID uuid.UUID) string {
	return "/" + username + "/" + postID.String() + "/"
}

func profileURL(username string) string {
	return "/" + username + "/"
}

// safeNext returns next if it is a local absolute path, otherwise "/".
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
