package web

import (
	"net/http"

	"github.com/google/uuid"
)

// Register mounts every page on mux. Patterns carry no method so that the
// literal routes (new, follow, group, auth, about) stay more specific than
// the username routes; handlers check methods themselves.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/{$}", methods(h.index, http.MethodGet))
	mux.Handle("/new/{$}", h.guard.ThenFunc(methods(h.newPost, http.MethodGet, http.MethodPost)))
	mux.Handle("/follow/{$}", h.guard.ThenFunc(methods(h.followIndex, http.MethodGet)))
	mux.HandleFunc("/group/{slug}/{$}", methods(h.group, http.MethodGet))

	mux.HandleFunc("/about/author/{$}", methods(h.aboutAuthor, http.MethodGet))
	mux.HandleFunc("/about/tech/{$}", methods(h.aboutTech, http.MethodGet))

	mux.Handle("/auth/signup/{$}", h.loginLimit.ThenFunc(methods(h.signup, http.MethodGet, http.MethodPost)))
	mux.Handle("/auth/login/{$}", h.loginLimit.ThenFunc(methods(h.login, http.MethodGet, http.MethodPost)))
	mux.HandleFunc("/auth/logout/{$}", methods(h.logout, http.MethodGet, http.MethodPost))

	mux.HandleFunc("/{username}/{$}", methods(h.profile, http.MethodGet))
	mux.HandleFunc("/{username}/{segment}/{$}", h.userSegment)
	mux.Handle("/{username}/{post_id}/edit/{$}", h.guard.ThenFunc(methods(h.editPost, http.MethodGet, http.MethodPost)))
	mux.Handle("/{username}/{post_id}/comment/{$}", h.guard.ThenFunc(h.addComment))

	mux.HandleFunc("/", h.notFound)
}

// userSegment dispatches /{username}/{segment}/ between the follow actions
// and the post detail page.
func (h *Handler) userSegment(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("segment") {
	case "follow":
		h.guard.ThenFunc(methods(h.follow, http.MethodGet, http.MethodPost)).ServeHTTP(w, r)
	case "unfollow":
		h.guard.ThenFunc(methods(h.unfollow, http.MethodGet, http.MethodPost)).ServeHTTP(w, r)
	default:
		methods(h.postDetail, http.MethodGet)(w, r)
	}
}

// postID parses the post_id (or segment) path value. ok is false when the
// value is not a post id, which callers answer with 404.
func postID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
