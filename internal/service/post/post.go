package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// Create stores a new post written by the authenticated author. Nothing is
// written when the input is invalid.
func (s *Service) Create(ctx context.Context, input PostInput) (domain.Post, error) {
	authorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Post{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Post{}, err
	}

	group, err := s.resolveGroup(ctx, input.GroupID)
	if err != nil {
		return domain.Post{}, fmt.Errorf("post.Create: %w", err)
	}

	image, err := s.saveImage(ctx, input)
	if err != nil {
		return domain.Post{}, fmt.Errorf("post.Create: %w", err)
	}

	created, err := s.posts.Create(ctx, domain.Post{
		Text:   input.Text,
		Image:  image,
		Author: domain.Author{ID: authorID, Username: ctxutil.UsernameFromCtx(ctx)},
		Group:  group,
	})
	if err != nil {
		s.discardImage(ctx, image)
		return domain.Post{}, fmt.Errorf("post.Create: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("user_id", authorID.String()),
		slog.String("post_id", created.ID.String()))

	return created, nil
}

// GetForEdit returns the post for the edit form. Only its author may edit it;
// anyone else gets ErrForbidden.
func (s *Service) GetForEdit(ctx context.Context, username string, postID uuid.UUID) (domain.Post, error) {
	authorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Post{}, domain.ErrUnauthorized
	}

	p, err := s.getOwned(ctx, authorID, username, postID)
	if err != nil {
		return domain.Post{}, fmt.Errorf("post.GetForEdit: %w", err)
	}
	return p, nil
}

// Edit rewrites the text, group and optionally the image of a post owned by
// the authenticated author. Author and creation time never change.
func (s *Service) Edit(ctx context.Context, username string, postID uuid.UUID, input PostInput) (domain.Post, error) {
	authorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Post{}, domain.ErrUnauthorized
	}

	p, err := s.getOwned(ctx, authorID, username, postID)
	if err != nil {
		return domain.Post{}, fmt.Errorf("post.Edit: %w", err)
	}

	if err := input.Validate(); err != nil {
		return domain.Post{}, err
	}

	group, err := s.resolveGroup(ctx, input.GroupID)
	if err != nil {
		return domain.Post{}, fmt.Errorf("post.Edit: %w", err)
	}

	image, err := s.saveImage(ctx, input)
	if err != nil {
		return domain.Post{}, fmt.Errorf("post.Edit: %w", err)
	}

	previous := p.Image
	p.Text = input.Text
	p.Group = group
	if image != nil {
		p.Image = image
	}

	if err := s.posts.Update(ctx, p); err != nil {
		s.discardImage(ctx, image)
		return domain.Post{}, fmt.Errorf("post.Edit: %w", err)
	}
	if image != nil {
		s.discardImage(ctx, previous)
	}

	s.log.InfoContext(ctx, "post edited",
		slog.String("user_id", authorID.String()),
		slog.String("post_id", p.ID.String()))

	return p, nil
}

// Groups returns every group a post can be filed under.
func (s *Service) Groups(ctx context.Context) ([]domain.Group, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("post.Groups: %w", err)
	}
	return groups, nil
}

// getOwned loads the post addressed by username and postID and checks that
// authorID owns it.
func (s *Service) getOwned(ctx context.Context, authorID uuid.UUID, username string, postID uuid.UUID) (domain.Post, error) {
	p, err := s.lookup(ctx, username, postID)
	if err != nil {
		return domain.Post{}, err
	}
	if !p.IsOwnedBy(authorID) {
		return domain.Post{}, domain.ErrForbidden
	}
	return p, nil
}

// lookup loads a post and checks that it was written by username.
func (s *Service) lookup(ctx context.Context, username string, postID uuid.UUID) (domain.Post, error) {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return domain.Post{}, err
	}
	if p.Author.Username != username {
		return domain.Post{}, fmt.Errorf("post %s by %q: %w", postID, username, domain.ErrNotFound)
	}
	return p, nil
}

func (s *Service) resolveGroup(ctx context.Context, id *uuid.UUID) (*domain.Group, error) {
	if id == nil {
		return nil, nil
	}
	g, err := s.groups.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("group", "Select a valid choice. That choice is not one of the available choices.")
		}
		return nil, err
	}
	return &g, nil
}

func (s *Service) saveImage(ctx context.Context, input PostInput) (*string, error) {
	if input.Image == nil {
		return nil, nil
	}
	ref, err := s.images.SaveImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (s *Service) discardImage(ctx context.Context, ref *string) {
	if ref == nil {
		return
	}
	if err := s.images.Remove(*ref); err != nil {
		s.log.WarnContext(ctx, "remove image", slog.String("image", *ref), slog.String("error", err.Error()))
	}
}
