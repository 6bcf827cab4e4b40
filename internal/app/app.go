package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"akademix/internal/catalog"
	"akademix/internal/store"
	"akademix/pkg/domain"
)

// Config holds runtime configuration for the core application.
type Config struct {
	Store   store.Store
	Catalog *catalog.Catalog
	Logger  *zerolog.Logger
}

// App runs the checks the screens perform before calling into the store.
type App struct {
	store   store.Store
	catalog *catalog.Catalog
	log     zerolog.Logger
}

// Dashboard is what the feed screen renders.
type Dashboard struct {
	Posts          []domain.Post
	FollowingCount int
}

// New constructs the application. A nil Store or Catalog is replaced by the
// seeded defaults.
func New(cfg Config) (*App, error) {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	dataStore := cfg.Store
	if dataStore == nil {
		s, err := store.New(store.Config{Logger: &logger})
		if err != nil {
			return nil, fmt.Errorf("init store: %w", err)
		}
		dataStore = s
	}

	journals := cfg.Catalog
	if journals == nil {
		c, err := catalog.Load()
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		journals = c
	}

	return &App{
		store:   dataStore,
		catalog: journals,
		log:     logger.With().Str("component", "app").Logger(),
	}, nil
}

// SignIn logs the session user in and returns it.
func (a *App) SignIn(ctx context.Context, email, password string) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, ErrEmailAndPasswordRequired
	}
	if !a.store.Login(ctx, email, password) {
		return domain.User{}, ErrInvalidCredentials
	}
	user, _ := a.store.CurrentUser()
	return user, nil
}

func (a *App) SignOut() {
	a.store.Logout()
}

func (a *App) CurrentUser() (domain.User, bool) {
	return a.store.CurrentUser()
}

// Register validates a sign-up form. It never creates credentials: the only
// account that can sign in is the configured one.
func (a *App) Register(req RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	a.log.Info().Str("email", req.Email).Msg("[MOCK] registration accepted")
	return nil
}

// Dashboard returns the feed together with the following count.
func (a *App) Dashboard() Dashboard {
	return Dashboard{
		Posts:          a.store.Posts(),
		FollowingCount: a.store.FollowingCount(),
	}
}

func (a *App) ToggleLike(postID string) bool {
	return a.store.ToggleLike(postID)
}

func (a *App) ToggleShare(postID string) bool {
	return a.store.ToggleShare(postID)
}

func (a *App) ToggleFollow(academicID string) bool {
	return a.store.ToggleFollow(academicID)
}

// DiscoverAcademics filters the directory by a free-text query.
func (a *App) DiscoverAcademics(query string) []domain.Academic {
	return a.store.SearchAcademics(query)
}

func (a *App) Comments(postID string) []domain.Comment {
	return a.store.Comments(postID)
}

// PostComment trims content and rejects it when nothing is left.
func (a *App) PostComment(postID, content string) (domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, ErrCommentRequired
	}
	return a.store.AddComment(postID, content), nil
}

func (a *App) UserPosts() []domain.Post {
	return a.store.UserPosts()
}

// PublishPost validates req and publishes it under the session user's name
// and affiliation.
func (a *App) PublishPost(req PublishRequest) (domain.Post, error) {
	req.normalize()
	if err := req.Validate(); err != nil {
		return domain.Post{}, err
	}
	user, _ := a.store.CurrentUser()
	return a.store.AddUserPost(domain.NewPost{
		Author:      user.Name,
		Affiliation: user.Affiliation,
		Title:       req.Title,
		Abstract:    req.Abstract,
		Type:        req.Type,
		Venue:       req.Venue,
		Date:        store.DateNow,
		PDFURL:      defaultPDFURL,
		Image:       req.Image,
	}), nil
}

func (a *App) JournalFields() []string {
	return a.catalog.Fields()
}

// Journals lists one quartile of a field; quartile is parsed case-insensitively.
func (a *App) Journals(field, quartile string) ([]catalog.Journal, error) {
	q, err := catalog.ParseQuartile(quartile)
	if err != nil {
		return nil, err
	}
	return a.catalog.Journals(field, q)
}

func (a *App) TopJournals(field string, n int) ([]catalog.Journal, error) {
	return a.catalog.TopByImpact(field, n)
}
