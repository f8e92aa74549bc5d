package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	authsvc "github.com/heartmarshall/yatube-backend/internal/service/auth"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

const invalidLogin = "Please enter a correct username and password. Note that both fields may be case-sensitive."

type authFormView struct {
	Form   *Form
	Next   string
	Fields []formField
}

// formField describes a plain input of a form rendered field by field.
type formField struct {
	Name  string
	Label string
	Type  string
}

var signupFields = []formField{
	{Name: "first_name", Label: "First name", Type: "text"},
	{Name: "last_name", Label: "Last name", Type: "text"},
	{Name: "username", Label: "Username", Type: "text"},
	{Name: "email", Label: "Email address", Type: "email"},
	{Name: "password1", Label: "Password", Type: "password"},
	{Name: "password2", Label: "Password confirmation", Type: "password"},
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	view := authFormView{Form: newForm(nil), Fields: signupFields}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			h.fail(w, r, fmt.Errorf("parse signup form: %w", err))
			return
		}
		var form signupForm
		if err := h.decode(&form, r.PostForm); err != nil {
			h.fail(w, r, err)
			return
		}
		view.Form = newForm(r.PostForm)

		result, err := h.auth.Signup(r.Context(), authsvc.SignupInput{
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Username:  form.Username,
			Email:     form.Email,
			Password1: form.Password1,
			Password2: form.Password2,
		})
		if err == nil {
			h.setSessionCookie(w, result.Token, result.ExpiresAt)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		if !bindErrors(view.Form, err) {
			h.fail(w, r, err)
			return
		}
	}

	h.page(w, r, http.StatusOK, "signup", view)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	view := authFormView{Form: newForm(nil), Next: r.URL.Query().Get("next")}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			h.fail(w, r, fmt.Errorf("parse login form: %w", err))
			return
		}
		var form loginForm
		if err := h.decode(&form, r.PostForm); err != nil {
			h.fail(w, r, err)
			return
		}
		view.Form = newForm(url.Values{"username": {form.Username}})
		if form.Next != "" {
			view.Next = form.Next
		}

		result, err := h.auth.Login(r.Context(), authsvc.LoginInput{Username: form.Username, Password: form.Password})
		switch {
		case err == nil:
			h.setSessionCookie(w, result.Token, result.ExpiresAt)
			http.Redirect(w, r, safeNext(view.Next), http.StatusFound)
			return
		case errors.Is(err, domain.ErrUnauthorized):
			view.Form.Errors[nonFieldErrors] = []string{invalidLogin}
		case !bindErrors(view.Form, err):
			h.fail(w, r, err)
			return
		}
	}

	h.page(w, r, http.StatusOK, "login", view)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil && !errors.Is(err, domain.ErrUnauthorized) {
		h.fail(w, r, err)
		return
	}
	h.clearSessionCookie(w)
	r = r.WithContext(ctxutil.WithUsername(r.Context(), ""))
	h.page(w, r, http.StatusOK, "logged_out", nil)
}
