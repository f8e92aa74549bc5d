package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// follow and unfollow redirect to the profile when the edge changed and to
// the index when the request was a no-op (self, duplicate or missing edge).
func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	h.changeFollow(w, r, h.follows.Follow)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	h.changeFollow(w, r, h.follows.Unfollow)
}

func (h *Handler) changeFollow(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, username string) error) {
	username := r.PathValue("username")

	err := op(r.Context(), username)
	switch {
	case err == nil:
		http.Redirect(w, r, profileURL(username), http.StatusFound)
	case errors.Is(err, domain.ErrConflict):
		http.Redirect(w, r, "/", http.StatusFound)
	default:
		h.fail(w, r, err)
	}
}
