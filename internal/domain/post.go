package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Group is an admin-managed topic that posts may optionally belong to.
type Group struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Description string
}

// Post is a text entry written by exactly one Author and filed under at most
// one Group. CreatedAt is set once on insert and never changes.
type Post struct {
	ID        uuid.UUID
	Text      string
	Image     *string
	CreatedAt time.Time
	Author    Author
	Group     *Group
}

// IsOwnedBy reports whether authorID owns the post. Ownership is the only
// access-control rule for editing.
func (p Post) IsOwnedBy(authorID uuid.UUID) bool {
	return authorID != uuid.Nil && p.Author.ID == authorID
}

// GroupID returns the post's group id or nil.
func (p Post) GroupID() *uuid.UUID {
	if p.Group == nil {
		return nil
	}
	id := p.Group.ID
	return &id
}

// Excerpt returns the first line of the text cut to at most n runes.
func (p Post) Excerpt(n int) string {
	text := strings.TrimSpace(p.Text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n]) + "…"
}

// Comment is a text reply to a Post. Deleting the post deletes its comments.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	Author    Author
	Text      string
	CreatedAt time.Time
}

// Follow is a directed edge: Follower sees Author's posts in the followed feed.
type Follow struct {
	FollowerID uuid.UUID
	AuthorID   uuid.UUID
	CreatedAt  time.Time
}

// FollowStats is a consistent snapshot of an author's follow relations as
// seen by a viewer.
type FollowStats struct {
	Following   int
	Followers   int
	IsFollowing bool
}

// PostFilter narrows a post query. Nil fields are not applied; FollowedBy
// selects posts written by authors that the given author follows.
type PostFilter struct {
	AuthorID   *uuid.UUID
	GroupID    *uuid.UUID
	FollowedBy *uuid.UUID
}
