package web

import (
	"net/http"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

type feedView struct {
	Page  domain.Page[domain.Post]
	Group *domain.Group
}

// authorCard is the author summary shown on profile and post pages.
type authorCard struct {
	Author    domain.Author
	Stats     domain.FollowStats
	PostCount int
	Viewer    bool
	Own       bool
	Following bool
}

type profileView struct {
	Card authorCard
	Page domain.Page[domain.Post]
}

type postView struct {
	Card     authorCard
	Post     domain.Post
	Comments []domain.Comment
	Form     *Form
}

func newAuthorCard(r *http.Request, author domain.Author, stats domain.FollowStats, postCount int) authorCard {
	viewerID, ok := ctxutil.UserIDFromCtx(r.Context())
	return authorCard{
		Author:    author,
		Stats:     stats,
		PostCount: postCount,
		Viewer:    ok,
		Own:       ok && viewerID == author.ID,
		Following: stats.IsFollowing,
	}
}

func pageNumber(r *http.Request) int {
	return domain.ParsePageNumber(r.URL.Query().Get("page"))
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	page, err := h.feed.Index(r.Context(), pageNumber(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "index", feedView{Page: page})
}

func (h *Handler) group(w http.ResponseWriter, r *http.Request) {
	result, err := h.feed.Group(r.Context(), r.PathValue("slug"), pageNumber(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "group", feedView{Page: result.Posts, Group: &result.Group})
}

func (h *Handler) followIndex(w http.ResponseWriter, r *http.Request) {
	page, err := h.feed.Followed(r.Context(), pageNumber(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "follow", feedView{Page: page})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	result, err := h.feed.Profile(r.Context(), r.PathValue("username"), pageNumber(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "profile", profileView{
		Card: newAuthorCard(r, result.Author, result.Stats, result.PostCount),
		Page: result.Posts,
	})
}

func (h *Handler) postDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r, "segment")
	if !ok {
		h.notFound(w, r)
		return
	}

	result, err := h.feed.PostDetail(r.Context(), r.PathValue("username"), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "post", postView{
		Card:     newAuthorCard(r, result.Post.Author, result.Stats, result.PostCount),
		Post:     result.Post,
		Comments: result.Comments,
		Form:     newForm(nil),
	})
}
