package store

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akademix/pkg/domain"
)

func countFollowing(academics []domain.Academic) int {
	n := 0
	for _, a := range academics {
		if a.IsFollowing {
			n++
		}
	}
	return n
}

func TestFollowingCountMatchesSeed(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, 3, s.FollowingCount())
	assert.Equal(t, countFollowing(s.Academics()), s.FollowingCount())
}

func TestFollowingCountTracksAnyToggleSequence(t *testing.T) {
	s := newTestStore(t)
	ids := []string{"2", "3", "4", "5", "6", "7", "missing"}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		id := ids[rng.Intn(len(ids))]
		s.ToggleFollow(id)
		require.Equal(t, countFollowing(s.Academics()), s.FollowingCount(), "after toggle %d on %q", i, id)
	}
}

func TestToggleFollow(t *testing.T) {
	s := newTestStore(t)

	require.True(t, s.ToggleFollow("5"))
	a, _ := s.Academic("5")
	assert.True(t, a.IsFollowing)
	assert.Equal(t, 4, s.FollowingCount())

	require.True(t, s.ToggleFollow("5"))
	a, _ = s.Academic("5")
	assert.False(t, a.IsFollowing)
	assert.Equal(t, 3, s.FollowingCount())
}

func TestToggleFollowUnknownIsNoop(t *testing.T) {
	s := newTestStore(t)
	before := s.Academics()

	assert.False(t, s.ToggleFollow("42"))
	assert.Equal(t, before, s.Academics())
	assert.Equal(t, 3, s.FollowingCount())
}

func TestFilterAcademicsByAffiliation(t *testing.T) {
	s := newTestStore(t)

	got := FilterAcademics(s.Academics(), "istanbul")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
	assert.Contains(t, got[0].Affiliation, "İstanbul")

	assert.Equal(t, got, FilterAcademics(s.Academics(), "İSTANBUL"))
}

func TestFilterAcademicsBlankQueryReturnsAll(t *testing.T) {
	s := newTestStore(t)
	all := s.Academics()

	assert.Len(t, FilterAcademics(all, ""), 6)
	assert.Len(t, FilterAcademics(all, "   \t"), 6)
	assert.Equal(t, all, s.SearchAcademics(""))
}

func TestFilterAcademicsMatchesEachField(t *testing.T) {
	s := newTestStore(t)

	byName := s.SearchAcademics("fatma")
	require.Len(t, byName, 1)
	assert.Equal(t, "3", byName[0].ID)

	byDepartment := s.SearchAcademics("FİZİK")
	require.Len(t, byDepartment, 1)
	assert.Equal(t, "6", byDepartment[0].ID)

	byAffiliation := s.SearchAcademics("odtü")
	require.Len(t, byAffiliation, 1)
	assert.Equal(t, "6", byAffiliation[0].ID)

	assert.Empty(t, s.SearchAcademics("harvard"))
}

func TestFilterAcademicsDoesNotDuplicate(t *testing.T) {
	academics := []domain.Academic{
		{ID: "x", Name: "Ekonomi Hoca", Affiliation: "Ekonomi Üniversitesi", Department: "Ekonomi"},
		{ID: "y", Name: "Başka", Affiliation: "Başka", Department: "Fizik"},
	}
	got := FilterAcademics(academics, "ekonomi")
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].ID)
}

func TestFilterAcademicsKeepsOrder(t *testing.T) {
	s := newTestStore(t)

	got := s.SearchAcademics("prof")
	var ids []string
	for _, a := range got {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"2", "4", "6"}, ids)
}
