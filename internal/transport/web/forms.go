package web

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
)

// Form is a submitted (or initial) form as seen by templates: the raw values
// to re-fill the inputs with and the messages to show next to them.
type Form struct {
	Values url.Values
	Errors map[string][]string
}

func newForm(values url.Values) *Form {
	if values == nil {
		values = url.Values{}
	}
	return &Form{Values: values, Errors: map[string][]string{}}
}

// Get returns the submitted value of field.
func (f *Form) Get(field string) string {
	return f.Values.Get(field)
}

// ErrorsFor returns the messages of field.
func (f *Form) ErrorsFor(field string) []string {
	return f.Errors[field]
}

// NonField returns messages not bound to an input.
func (f *Form) NonField() []string {
	return f.Errors[nonFieldErrors]
}

// HasErrors reports whether any message is set.
func (f *Form) HasErrors() bool {
	return len(f.Errors) > 0
}

const nonFieldErrors = "__all__"

type postForm struct {
	Text  string `schema:"text"`
	Group string `schema:"group"`
}

type commentForm struct {
	Text string `schema:"text"`
}

type signupForm struct {
	FirstName string `schema:"first_name"`
	LastName  string `schema:"last_name"`
	Username  string `schema:"username"`
	Email     string `schema:"email"`
	Password1 string `schema:"password1"`
	Password2 string `schema:"password2"`
}

type loginForm struct {
	Username string `schema:"username"`
	Password string `schema:"password"`
	Next     string `schema:"next"`
}

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	return d
}

func (h *Handler) decode(dst any, values url.Values) error {
	if err := h.decoder.Decode(dst, values); err != nil {
		return fmt.Errorf("decode form: %w", err)
	}
	return nil
}
