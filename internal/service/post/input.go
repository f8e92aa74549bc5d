package post

import (
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// PostInput is the submitted post form. GroupID nil files the post under no
// group. Image nil keeps the current image on edit.
type PostInput struct {
	Text    string
	GroupID *uuid.UUID
	Image   io.Reader
}

// Validate checks the fields that need no store lookup.
func (i *PostInput) Validate() error {
	i.Text = strings.TrimSpace(i.Text)

	if i.Text == "" {
		return domain.NewValidationError("text", "This field is required.")
	}
	return nil
}

// CommentInput is the submitted comment form.
type CommentInput struct {
	Text string
}

// Validate checks the comment text.
func (i *CommentInput) Validate() error {
	i.Text = strings.TrimSpace(i.Text)

	if i.Text == "" {
		return domain.NewValidationError("text", "This field is required.")
	}
	return nil
}
