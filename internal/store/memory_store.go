package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"akademix/pkg/auth"
	"akademix/pkg/domain"
)

const (
	DefaultLoginLatency  = time.Second
	DefaultLoginEmail    = "user@example.com"
	DefaultLoginPassword = "123456"

	// DateNow is the display date given to comments and posts created at runtime.
	DateNow = "now"
)

// Config holds construction options for MemoryStore.
type Config struct {
	// Fixtures is a YAML seed dataset; nil selects the embedded default.
	Fixtures []byte
	// LoginLatency is the simulated delay before a login resolves. Zero disables it.
	LoginLatency  time.Duration
	LoginEmail    string
	LoginPassword string
	Logger        *zerolog.Logger
}

// MemoryStore keeps the whole dataset in-process. Reads return copies; every
// mutation goes through a method.
type MemoryStore struct {
	mu sync.RWMutex

	user *domain.User

	posts     map[string]domain.Post
	postOrder []string

	academics     map[string]domain.Academic
	academicOrder []string

	comments map[string][]domain.Comment // key: post ID

	userPosts     map[string]domain.Post
	userPostOrder []string // newest first

	loginEmail   string
	passwordHash string
	loginLatency time.Duration
	logins       singleflight.Group

	log zerolog.Logger
}

var _ Store = (*MemoryStore)(nil)

// New builds a store seeded with cfg.Fixtures.
func New(cfg Config) (*MemoryStore, error) {
	if cfg.Fixtures == nil {
		cfg.Fixtures = defaultFixtures
	}
	if cfg.LoginEmail == "" {
		cfg.LoginEmail = DefaultLoginEmail
	}
	if cfg.LoginPassword == "" {
		cfg.LoginPassword = DefaultLoginPassword
	}
	if cfg.LoginLatency < 0 {
		cfg.LoginLatency = 0
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	fx, err := ParseFixtures(cfg.Fixtures)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(cfg.LoginPassword)
	if err != nil {
		return nil, fmt.Errorf("hash login password: %w", err)
	}

	m := &MemoryStore{
		posts:        make(map[string]domain.Post, len(fx.Posts)),
		academics:    make(map[string]domain.Academic, len(fx.Academics)),
		comments:     make(map[string][]domain.Comment),
		userPosts:    make(map[string]domain.Post),
		loginEmail:   cfg.LoginEmail,
		passwordHash: hash,
		loginLatency: cfg.LoginLatency,
		log:          logger.With().Str("component", "store").Logger(),
	}
	m.seed(fx)
	m.log.Debug().
		Int("posts", len(m.postOrder)).
		Int("academics", len(m.academicOrder)).
		Int("comments", len(fx.Comments)).
		Msg("store seeded")
	return m, nil
}

func (m *MemoryStore) seed(fx Fixtures) {
	if fx.User != nil {
		u := *fx.User
		m.user = &u
	}
	for _, p := range fx.Posts {
		m.posts[p.ID] = p
		m.postOrder = append(m.postOrder, p.ID)
	}
	for _, a := range fx.Academics {
		m.academics[a.ID] = a
		m.academicOrder = append(m.academicOrder, a.ID)
	}
	for _, c := range fx.Comments {
		m.comments[c.PostID] = append(m.comments[c.PostID], c)
	}
}
