package ports

import (
	"context"
	"io"

	"vidgram/internal/core/domain"
)

// SessionService owns the client-held session: restore at startup, login,
// logout, and a snapshot accessor. Implementations keep memory and durable
// storage in sync after every completed operation.
type SessionService interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, user *domain.User, token string) error
	Logout(ctx context.Context) error
	Current() domain.Session
	IsAuthenticated() bool
	TokenExpired() bool
	Close() error
}

// RegisterForm is the raw registration input before validation.
type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// AccountService orchestrates registration and sign-in against the backend,
// updating the session on success.
type AccountService interface {
	Register(ctx context.Context, form RegisterForm) error
	SignIn(ctx context.Context, email, password string) (*domain.User, error)
}

// UploadForm is the raw upload input. People is the comma-separated tag
// string as typed by the user.
type UploadForm struct {
	Title    string
	Caption  string
	Location string
	People   string
	FileName string
	File     io.Reader
}

// VideoService exposes feed browsing and interactions, enforcing capability
// flags client-side before any request is issued.
type VideoService interface {
	Feed(ctx context.Context) ([]*domain.Video, error)
	Video(ctx context.Context, id domain.VideoID) (*domain.Video, error)
	Upload(ctx context.Context, form UploadForm) (*domain.Video, error)
	Comment(ctx context.Context, id domain.VideoID, text string) (*domain.Video, error)
	Rate(ctx context.Context, id domain.VideoID, rating int) (*domain.Video, error)
	LocalRating(id domain.VideoID) (int, bool)
	Comments(ctx context.Context, id domain.VideoID) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, id domain.VideoID, commentID string) error
	LikeComment(ctx context.Context, id domain.VideoID, commentID string) (*domain.Comment, error)
}
