package store

import "akademix/pkg/domain"

// Posts returns the shared feed in stored order.
func (m *MemoryStore) Posts() []domain.Post {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Post, 0, len(m.postOrder))
	for _, id := range m.postOrder {
		if p, ok := m.posts[id]; ok {
			res = append(res, p)
		}
	}
	return res
}

// Post looks up a feed post by ID.
func (m *MemoryStore) Post(id string) (domain.Post, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.posts[id]
	return p, ok
}

// ToggleLike flips the liked flag and moves the like counter with it.
func (m *MemoryStore) ToggleLike(postID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[postID]
	if !ok {
		return false
	}
	p.IsLiked = !p.IsLiked
	if p.IsLiked {
		p.Likes++
	} else {
		p.Likes--
	}
	m.posts[postID] = p
	return true
}

// ToggleShare flips the shared flag. Sharing has no counter.
func (m *MemoryStore) ToggleShare(postID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[postID]
	if !ok {
		return false
	}
	p.IsShared = !p.IsShared
	m.posts[postID] = p
	return true
}
