package store

import (
	"akademix/internal/util"
	"akademix/pkg/domain"
)

// UserPosts returns the session user's posts, newest first.
func (m *MemoryStore) UserPosts() []domain.Post {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Post, 0, len(m.userPostOrder))
	for _, id := range m.userPostOrder {
		if p, ok := m.userPosts[id]; ok {
			res = append(res, p)
		}
	}
	return res
}

// AddUserPost publishes np as the session user's newest post. Fields are taken
// as given; checking them is the caller's job.
func (m *MemoryStore) AddUserPost(np domain.NewPost) domain.Post {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := domain.Post{
		ID:          util.NewID(),
		Author:      np.Author,
		Affiliation: np.Affiliation,
		Title:       np.Title,
		Abstract:    np.Abstract,
		Type:        np.Type,
		Venue:       np.Venue,
		Date:        np.Date,
		PDFURL:      np.PDFURL,
		Image:       np.Image,
	}
	if m.user != nil {
		p.AuthorID = m.user.ID
	}
	m.userPosts[p.ID] = p
	m.userPostOrder = append([]string{p.ID}, m.userPostOrder...)

	m.log.Info().Str("post_id", p.ID).Str("author_id", p.AuthorID).Str("type", string(p.Type)).Msg("user post published")
	return p
}
