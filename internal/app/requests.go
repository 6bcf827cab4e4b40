package app

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"akademix/pkg/auth"
	"akademix/pkg/domain"
)

const (
	defaultPostImage = "📚"
	defaultPDFURL    = "#"
)

// RegisterRequest mirrors the sign-up form. Registration is accepted but never
// creates credentials.
type RegisterRequest struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Affiliation     string
	Title           string
}

func (r RegisterRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required, validation.By(func(v interface{}) error {
			return auth.ValidatePassword(v.(string))
		})),
		validation.Field(&r.ConfirmPassword, validation.Required),
		validation.Field(&r.Affiliation, validation.Required),
		validation.Field(&r.Title, validation.Required),
	)
	if err != nil {
		return err
	}
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// PublishRequest is what the profile screen collects for a new post.
type PublishRequest struct {
	Title    string
	Abstract string
	Type     domain.PostType
	Venue    string
	Image    string
}

func (r *PublishRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Abstract = strings.TrimSpace(r.Abstract)
	r.Venue = strings.TrimSpace(r.Venue)
	if r.Type == "" {
		r.Type = domain.PostTypeArticle
	}
	if strings.TrimSpace(r.Image) == "" {
		r.Image = defaultPostImage
	}
}

func (r PublishRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Abstract, validation.Required),
		validation.Field(&r.Venue, validation.Required),
		validation.Field(&r.Type, validation.Required,
			validation.In(domain.PostTypeArticle, domain.PostTypeThesis, domain.PostTypeBook)),
	)
}
