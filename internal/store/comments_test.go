package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akademix/pkg/domain"
)

func TestAddCommentBumpsFeedCounter(t *testing.T) {
	s := newTestStore(t)

	for _, p := range s.Posts() {
		before := len(s.Comments(p.ID))
		s.AddComment(p.ID, "x")

		assert.Len(t, s.Comments(p.ID), before+1, "post %s", p.ID)
		after, _ := s.Post(p.ID)
		assert.Equal(t, p.Comments+1, after.Comments, "post %s", p.ID)
	}
}

func TestAddCommentAppendsInOrder(t *testing.T) {
	s := newTestStore(t)

	first := s.AddComment("1", "birinci")
	second := s.AddComment("1", "ikinci")

	comments := s.Comments("1")
	require.Len(t, comments, 4)
	assert.Equal(t, "1", comments[0].ID)
	assert.Equal(t, "2", comments[1].ID)
	assert.Equal(t, first, comments[2])
	assert.Equal(t, second, comments[3])
	assert.NotEqual(t, first.ID, second.ID)

	_, err := uuid.Parse(first.ID)
	assert.NoError(t, err)
}

func TestAddCommentAttribution(t *testing.T) {
	s := newTestStore(t)

	c := s.AddComment("2", "Harika bir tez.")
	assert.Equal(t, "1", c.UserID)
	assert.Equal(t, "Dr. Ali Yılmaz", c.UserName)
	assert.Equal(t, "2", c.PostID)
	assert.Equal(t, "Harika bir tez.", c.Content)
	assert.Equal(t, DateNow, c.Date)

	require.True(t, s.Login(context.Background(), "user@example.com", "123456"))
	c = s.AddComment("2", "again")
	assert.Equal(t, "1", c.UserID)
}

func TestAddCommentWithoutUserHasEmptyAuthor(t *testing.T) {
	s, err := New(Config{Fixtures: []byte("posts:\n  - id: \"p\"\n    type: article\n")})
	require.NoError(t, err)

	c := s.AddComment("p", "anonim")
	assert.Empty(t, c.UserID)
	assert.Empty(t, c.UserName)
	p, _ := s.Post("p")
	assert.Equal(t, 1, p.Comments)
}

func TestAddCommentKeepsContentVerbatim(t *testing.T) {
	s := newTestStore(t)

	c := s.AddComment("3", "  boşluklu  \n")
	assert.Equal(t, "  boşluklu  \n", c.Content)
	empty := s.AddComment("3", "")
	assert.Empty(t, empty.Content)
	assert.Len(t, s.Comments("3"), 2)
}

func TestAddCommentOnUserPost(t *testing.T) {
	s := newTestStore(t)
	p := s.AddUserPost(samplePost())

	s.AddComment(p.ID, "kendi yazıma yorum")

	assert.Len(t, s.Comments(p.ID), 1)
	assert.Equal(t, 1, s.UserPosts()[0].Comments)
}

func TestAddCommentOrphanIsRecordedWithoutCounter(t *testing.T) {
	s := newTestStore(t)
	feedBefore := s.Posts()

	c := s.AddComment("ghost", "kimse yok mu?")

	assert.Equal(t, []string{c.ID}, commentIDs(s.Comments("ghost")))
	assert.Equal(t, feedBefore, s.Posts())
	assert.Empty(t, s.UserPosts())
}

func TestCommentsForUnknownPostIsEmpty(t *testing.T) {
	s := newTestStore(t)

	got := s.Comments("nope")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func commentIDs(comments []domain.Comment) []string {
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	return ids
}
