package store

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"akademix/pkg/domain"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the seed dataset loaded at construction.
type Fixtures struct {
	User      *domain.User      `yaml:"user"`
	Posts     []domain.Post     `yaml:"posts"`
	Academics []domain.Academic `yaml:"academics"`
	Comments  []domain.Comment  `yaml:"comments"`
}

// DefaultFixtures returns the embedded seed dataset.
func DefaultFixtures() []byte {
	return append([]byte(nil), defaultFixtures...)
}

// ParseFixtures decodes and checks a YAML seed dataset.
func ParseFixtures(data []byte) (Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		return Fixtures{}, fmt.Errorf("%w: %v", ErrInvalidFixtures, err)
	}
	if err := fx.validate(); err != nil {
		return Fixtures{}, err
	}
	return fx, nil
}

func (fx Fixtures) validate() error {
	posts := make(map[string]struct{}, len(fx.Posts))
	for _, p := range fx.Posts {
		if p.ID == "" {
			return fmt.Errorf("%w: post without id", ErrInvalidFixtures)
		}
		if _, dup := posts[p.ID]; dup {
			return fmt.Errorf("%w: duplicate post id %q", ErrInvalidFixtures, p.ID)
		}
		if !p.Type.Valid() {
			return fmt.Errorf("%w: post %q has unknown type %q", ErrInvalidFixtures, p.ID, p.Type)
		}
		posts[p.ID] = struct{}{}
	}
	academics := make(map[string]struct{}, len(fx.Academics))
	for _, a := range fx.Academics {
		if a.ID == "" {
			return fmt.Errorf("%w: academic without id", ErrInvalidFixtures)
		}
		if _, dup := academics[a.ID]; dup {
			return fmt.Errorf("%w: duplicate academic id %q", ErrInvalidFixtures, a.ID)
		}
		academics[a.ID] = struct{}{}
	}
	for _, c := range fx.Comments {
		if c.PostID == "" {
			return fmt.Errorf("%w: comment %q has no post id", ErrInvalidFixtures, c.ID)
		}
	}
	return nil
}
