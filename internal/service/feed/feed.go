package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// Index returns the requested page of the global feed. Pages are served from
// the index cache while fresh, so new or deleted posts may appear late.
func (s *Service) Index(ctx context.Context, page int) (domain.Page[domain.Post], error) {
	if s.index != nil {
		if cached, ok := s.index.Get(page); ok {
			return cached, nil
		}
	}

	var result domain.Page[domain.Post]
	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		var err error
		result, err = s.paginate(txCtx, domain.PostFilter{}, page)
		return err
	})
	if err != nil {
		return domain.Page[domain.Post]{}, fmt.Errorf("feed.Index: %w", err)
	}

	if s.index != nil {
		s.index.Set(page, result)
		s.log.DebugContext(ctx, "index page cached", slog.Int("page", page), slog.Int("total", result.Total))
	}

	return result, nil
}

// Group returns the requested page of posts filed under slug.
func (s *Service) Group(ctx context.Context, slug string, page int) (*GroupPage, error) {
	var result GroupPage
	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		group, err := s.groups.GetBySlug(txCtx, slug)
		if err != nil {
			return err
		}
		result.Group = group

		result.Posts, err = s.paginate(txCtx, domain.PostFilter{GroupID: &group.ID}, page)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("feed.Group: %w", err)
	}
	return &result, nil
}

// Profile returns an author's feed with post count, follow counts and whether
// the current viewer follows them. Everything is read in one snapshot.
func (s *Service) Profile(ctx context.Context, username string, page int) (*ProfilePage, error) {
	viewerID := viewer(ctx)

	var result ProfilePage
	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		author, err := s.authors.GetByUsername(txCtx, username)
		if err != nil {
			return err
		}
		result.Author = author

		result.Posts, err = s.paginate(txCtx, domain.PostFilter{AuthorID: &author.ID}, page)
		if err != nil {
			return err
		}
		result.PostCount = result.Posts.Total

		result.Stats, err = s.follows.Stats(txCtx, viewerID, author.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("feed.Profile: %w", err)
	}
	return &result, nil
}

// Followed returns the requested page of posts written by authors the
// current viewer follows. A viewer who follows nobody gets one empty page.
func (s *Service) Followed(ctx context.Context, page int) (domain.Page[domain.Post], error) {
	viewerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.Post]{}, domain.ErrUnauthorized
	}

	var result domain.Page[domain.Post]
	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		var err error
		result, err = s.paginate(txCtx, domain.PostFilter{FollowedBy: &viewerID}, page)
		return err
	})
	if err != nil {
		return domain.Page[domain.Post]{}, fmt.Errorf("feed.Followed: %w", err)
	}
	return result, nil
}

// PostDetail returns a post with its comments, newest first. The post must
// belong to username; otherwise ErrNotFound is returned.
func (s *Service) PostDetail(ctx context.Context, username string, postID uuid.UUID) (*PostPage, error) {
	viewerID := viewer(ctx)

	var result PostPage
	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		post, err := s.posts.GetByID(txCtx, postID)
		if err != nil {
			return err
		}
		if post.Author.Username != username {
			return fmt.Errorf("post %s by %q: %w", postID, username, domain.ErrNotFound)
		}
		result.Post = post

		result.Comments, err = s.comments.ListByPost(txCtx, post.ID)
		if err != nil {
			return err
		}

		result.PostCount, err = s.posts.Count(txCtx, domain.PostFilter{AuthorID: &post.Author.ID})
		if err != nil {
			return err
		}

		result.Stats, err = s.follows.Stats(txCtx, viewerID, post.Author.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("feed.PostDetail: %w", err)
	}
	return &result, nil
}

// paginate counts the rows matching f, resolves the requested page and loads
// only that page.
func (s *Service) paginate(ctx context.Context, f domain.PostFilter, requested int) (domain.Page[domain.Post], error) {
	total, err := s.posts.Count(ctx, f)
	if err != nil {
		return domain.Page[domain.Post]{}, fmt.Errorf("count posts: %w", err)
	}

	window := domain.Paginate(requested, total, s.pageSize)

	var items []domain.Post
	if total > 0 {
		items, err = s.posts.List(ctx, f, window.Limit, window.Offset)
		if err != nil {
			return domain.Page[domain.Post]{}, fmt.Errorf("list posts: %w", err)
		}
	}

	return domain.NewPage(window, total, items), nil
}

func viewer(ctx context.Context) uuid.UUID {
	id, _ := ctxutil.UserIDFromCtx(ctx)
	return id
}
