package store

import (
	"strings"

	"akademix/pkg/domain"
)

// Academics returns the directory in stored order.
func (m *MemoryStore) Academics() []domain.Academic {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.academicsLocked()
}

func (m *MemoryStore) academicsLocked() []domain.Academic {
	res := make([]domain.Academic, 0, len(m.academicOrder))
	for _, id := range m.academicOrder {
		if a, ok := m.academics[id]; ok {
			res = append(res, a)
		}
	}
	return res
}

// Academic looks up a directory entry by ID.
func (m *MemoryStore) Academic(id string) (domain.Academic, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.academics[id]
	return a, ok
}

// ToggleFollow flips the followed flag.
func (m *MemoryStore) ToggleFollow(academicID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.academics[academicID]
	if !ok {
		return false
	}
	a.IsFollowing = !a.IsFollowing
	m.academics[academicID] = a
	return true
}

// FollowingCount rescans the directory on every call.
func (m *MemoryStore) FollowingCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, a := range m.academics {
		if a.IsFollowing {
			n++
		}
	}
	return n
}

// SearchAcademics applies FilterAcademics to the live directory.
func (m *MemoryStore) SearchAcademics(query string) []domain.Academic {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return FilterAcademics(m.academicsLocked(), query)
}

// FilterAcademics keeps the academics whose name, affiliation or department
// contains query, ignoring case. A blank query returns academics unchanged.
func FilterAcademics(academics []domain.Academic, query string) []domain.Academic {
	if strings.TrimSpace(query) == "" {
		return academics
	}
	q := strings.ToLower(query)
	res := make([]domain.Academic, 0, len(academics))
	for _, a := range academics {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Affiliation), q) ||
			strings.Contains(strings.ToLower(a.Department), q) {
			res = append(res, a)
		}
	}
	return res
}
