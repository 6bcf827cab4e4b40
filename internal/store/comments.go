package store

import (
	"akademix/internal/util"
	"akademix/pkg/domain"
)

// Comments returns the comments on a post in insertion order.
func (m *MemoryStore) Comments(postID string) []domain.Comment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Comment{}, m.comments[postID]...)
}

// AddComment records content against postID, attributed to the session user
// as it is at call time. The matching feed or user post gets its comment
// counter bumped; a comment on an unknown post is still kept, as an orphan.
// Content is stored verbatim.
func (m *MemoryStore) AddComment(postID, content string) domain.Comment {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := domain.Comment{
		ID:      util.NewID(),
		PostID:  postID,
		Content: content,
		Date:    DateNow,
	}
	if m.user != nil {
		c.UserID = m.user.ID
		c.UserName = m.user.Name
	}
	m.comments[postID] = append(m.comments[postID], c)

	if p, ok := m.posts[postID]; ok {
		p.Comments++
		m.posts[postID] = p
	} else if p, ok := m.userPosts[postID]; ok {
		p.Comments++
		m.userPosts[postID] = p
	} else {
		m.log.Warn().Str("post_id", postID).Str("comment_id", c.ID).Msg("comment recorded for unknown post")
	}
	return c
}
