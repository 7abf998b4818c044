package ports

import (
	"context"
	"io"

	"vidgram/internal/core/domain"
)

// RegisterParams is the registration request body. The confirm-password
// field never crosses this boundary; it is validated client-side.
type RegisterParams struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is what the backend returns on a successful login.
type LoginResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// UploadRequest carries the multipart fields for a video upload. File is
// streamed, not buffered, so large uploads do not pin memory.
type UploadRequest struct {
	Title    string
	Caption  string
	Location string
	People   []string
	FileName string
	File     io.Reader
}

// AuthAPI is the outbound port for authentication endpoints.
type AuthAPI interface {
	Register(ctx context.Context, params RegisterParams) error
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
}

// VideoAPI is the outbound port for video endpoints. Every call requires a
// bearer token; results replace local copies wholesale.
type VideoAPI interface {
	ListVideos(ctx context.Context, token string) ([]*domain.Video, error)
	GetVideo(ctx context.Context, token string, id domain.VideoID) (*domain.Video, error)
	UploadVideo(ctx context.Context, token string, req UploadRequest) (*domain.Video, error)
	AddComment(ctx context.Context, token string, id domain.VideoID, comment string) (*domain.Video, error)
	RateVideo(ctx context.Context, token string, id domain.VideoID, rating int) (*domain.Video, error)
	ListComments(ctx context.Context, token string, id domain.VideoID) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, token string, id domain.VideoID, commentID string) error
	LikeComment(ctx context.Context, token string, id domain.VideoID, commentID string) (*domain.Comment, error)
}
