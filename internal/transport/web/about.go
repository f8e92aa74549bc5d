package web

import "net/http"

func (h *Handler) aboutAuthor(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "about_author", nil)
}

func (h *Handler) aboutTech(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "about_tech", nil)
}
