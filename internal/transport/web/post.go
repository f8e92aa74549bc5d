package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	postsvc "github.com/heartmarshall/yatube-backend/internal/service/post"
)

// multipartOverhead is extra room for the text fields of an upload form.
const multipartOverhead = 1 << 20

type postFormView struct {
	Form    *Form
	Groups  []domain.Group
	Action  string
	Editing bool
	Post    *domain.Post
}

func (h *Handler) newPost(w http.ResponseWriter, r *http.Request) {
	view := postFormView{Form: newForm(nil), Action: "/new/"}

	if r.Method == http.MethodPost {
		form, err := h.submitPost(w, r, func(in postsvc.PostInput) error {
			_, err := h.posts.Create(r.Context(), in)
			return err
		})
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if form == nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		view.Form = form
	}

	h.renderPostForm(w, r, view)
}

// editPost lets the author rewrite a post. Anyone else is sent to the
// read-only post page.
func (h *Handler) editPost(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	id, ok := postID(r, "post_id")
	if !ok {
		h.notFound(w, r)
		return
	}
	detail := postURL(username, id)

	current, err := h.posts.GetForEdit(r.Context(), username, id)
	if errors.Is(err, domain.ErrForbidden) {
		http.Redirect(w, r, detail, http.StatusFound)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	view := postFormView{
		Form:    newForm(url.Values{"text": {current.Text}}),
		Action:  detail + "edit/",
		Editing: true,
		Post:    &current,
	}
	if current.Group != nil {
		view.Form.Values.Set("group", current.Group.ID.String())
	}

	if r.Method == http.MethodPost {
		form, err := h.submitPost(w, r, func(in postsvc.PostInput) error {
			_, err := h.posts.Edit(r.Context(), username, id, in)
			return err
		})
		switch {
		case errors.Is(err, domain.ErrForbidden), err == nil && form == nil:
			http.Redirect(w, r, detail, http.StatusFound)
			return
		case err != nil:
			h.fail(w, r, err)
			return
		}
		view.Form = form
	}

	h.renderPostForm(w, r, view)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	id, ok := postID(r, "post_id")
	if !ok {
		h.notFound(w, r)
		return
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			h.fail(w, r, fmt.Errorf("parse comment form: %w", err))
			return
		}
		var form commentForm
		if err := h.decode(&form, r.PostForm); err != nil {
			h.fail(w, r, err)
			return
		}

		_, err := h.posts.AddComment(r.Context(), username, id, postsvc.CommentInput{Text: form.Text})
		if err != nil && !errors.Is(err, domain.ErrValidation) {
			h.fail(w, r, err)
			return
		}
	}

	http.Redirect(w, r, postURL(username, id), http.StatusFound)
}

func (h *Handler) renderPostForm(w http.ResponseWriter, r *http.Request, view postFormView) {
	groups, err := h.posts.Groups(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	view.Groups = groups
	h.page(w, r, http.StatusOK, "new_post", view)
}

// submitPost parses a post form and hands it to save. It returns the form
// with messages when the input was rejected, nil when save succeeded, and an
// error for anything that is not a validation failure.
func (h *Handler) submitPost(w http.ResponseWriter, r *http.Request, save func(postsvc.PostInput) error) (*Form, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes+multipartOverhead)

	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			form := newForm(nil)
			form.Errors["image"] = []string{fmt.Sprintf("Upload a file of at most %d bytes.", h.opts.MaxUploadBytes)}
			return form, nil
		case errors.Is(err, http.ErrNotMultipart):
			if err := r.ParseForm(); err != nil {
				return nil, fmt.Errorf("parse post form: %w", err)
			}
		default:
			return nil, fmt.Errorf("parse post form: %w", err)
		}
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll() //nolint:errcheck
	}

	form := newForm(r.PostForm)

	var fields postForm
	if err := h.decode(&fields, r.PostForm); err != nil {
		return nil, err
	}

	input := postsvc.PostInput{Text: fields.Text}
	if fields.Group != "" {
		groupID, err := uuid.Parse(fields.Group)
		if err != nil {
			form.Errors["group"] = []string{invalidChoice}
			return form, nil
		}
		input.GroupID = &groupID
	}

	if r.MultipartForm != nil {
		file, header, err := r.FormFile("image")
		switch {
		case errors.Is(err, http.ErrMissingFile):
		case err != nil:
			return nil, fmt.Errorf("read image: %w", err)
		default:
			defer file.Close()
			if header.Size > 0 {
				input.Image = file
			}
		}
	}

	if err := save(input); err != nil {
		if bindErrors(form, err) {
			return form, nil
		}
		return nil, err
	}
	return nil, nil
}

const invalidChoice = "Select a valid choice. That choice is not one of the available choices."

// bindErrors copies the field messages of a validation error into form.
// It reports false for any other error.
func bindErrors(form *Form, err error) bool {
	msgs, ok := domain.FieldMessages(err)
	if !ok {
		return false
	}
	for field, m := range msgs {
		form.Errors[field] = append(form.Errors[field], m...)
	}
	return true
}
