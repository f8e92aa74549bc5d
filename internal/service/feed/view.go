package feed

import "github.com/heartmarshall/yatube-backend/internal/domain"

// GroupPage is the group feed.
type GroupPage struct {
	Group domain.Group
	Posts domain.Page[domain.Post]
}

// ProfilePage is an author's feed together with their follow relations as
// seen by the viewer. Stats and Posts come from the same snapshot.
type ProfilePage struct {
	Author    domain.Author
	PostCount int
	Stats     domain.FollowStats
	Posts     domain.Page[domain.Post]
}

// PostPage is a single post with its comments and author summary.
type PostPage struct {
	Post      domain.Post
	PostCount int
	Stats     domain.FollowStats
	Comments  []domain.Comment
}
