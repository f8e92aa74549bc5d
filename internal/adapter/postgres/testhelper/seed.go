package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// seededPasswordHash is stored for seeded authors. It verifies no password.
const seededPasswordHash = "$2a$04$seeded.author.cannot.log.in.with.any.password.value"

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAuthor creates an author with a unique username and email.
func SeedAuthor(t *testing.T, pool *pgxpool.Pool) domain.Author {
	t.Helper()

	suffix := uniqueSuffix()
	author := domain.Author{
		ID:        uuid.New(),
		Username:  "author-" + suffix,
		Name:      "Test Author " + suffix,
		Email:     "author-" + suffix + "@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO authors (id, username, name, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		author.ID, author.Username, author.Name, author.Email, seededPasswordHash, author.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAuthor: %v", err)
	}

	return author
}

// SeedGroup creates a group with a unique slug.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()

	suffix := uniqueSuffix()
	group := domain.Group{
		ID:          uuid.New(),
		Title:       "Group " + suffix,
		Slug:        "g-" + suffix,
		Description: "Seeded group " + suffix,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO groups (id, title, slug, description) VALUES ($1, $2, $3, $4)`,
		group.ID, group.Title, group.Slug, group.Description,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}

	return group
}

// SeedPost creates a post by author, optionally in group, with the given
// creation time. A zero createdAt means now.
func SeedPost(t *testing.T, pool *pgxpool.Pool, author domain.Author, group *domain.Group, createdAt time.Time) domain.Post {
	t.Helper()

	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	post := domain.Post{
		ID:        uuid.New(),
		Text:      "Post text " + uniqueSuffix(),
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
		Author:    author,
		Group:     group,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO posts (id, text, author_id, group_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		post.ID, post.Text, author.ID, post.GroupID(), post.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}

	return post
}

// SeedFollow creates a follow edge follower -> author.
func SeedFollow(t *testing.T, pool *pgxpool.Pool, followerID, authorID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO follows (follower_id, author_id) VALUES ($1, $2)`,
		followerID, authorID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFollow: %v", err)
	}
}
