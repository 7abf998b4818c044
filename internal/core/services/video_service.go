package services

import (
	"context"
	"sync"

	"vidgram/internal/core/domain"
	"vidgram/internal/core/ports"
	"vidgram/pkg/errors"
	"vidgram/pkg/utils"
	"vidgram/pkg/validation"

	"go.uber.org/zap"
)

// videoService fronts the video API with client-side capability checks and
// explicit two-phase rating state: a tentative local value is recorded when
// a rating is issued, then reconciled when the authoritative response
// arrives. The reconciled value always wins.
type videoService struct {
	videoAPI ports.VideoAPI
	session  ports.SessionService
	logger   *zap.SugaredLogger

	mu        sync.Mutex
	tentative map[domain.VideoID]int
	confirmed map[domain.VideoID]int
}

// NewVideoService creates the feed/interaction service.
func NewVideoService(videoAPI ports.VideoAPI, session ports.SessionService, logger *zap.SugaredLogger) ports.VideoService {
	return &videoService{
		videoAPI:  videoAPI,
		session:   session,
		logger:    logger,
		tentative: make(map[domain.VideoID]int),
		confirmed: make(map[domain.VideoID]int),
	}
}

// token returns the current bearer token or fails when the session is not
// ready for authenticated calls.
func (s *videoService) token() (string, error) {
	session := s.session.Current()
	if session.Loading {
		return "", domain.ErrSessionNotLoaded
	}
	if !session.IsAuthenticated() {
		return "", domain.ErrNotAuthenticated
	}
	return session.Token, nil
}

func (s *videoService) Feed(ctx context.Context) ([]*domain.Video, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.videoAPI.ListVideos(ctx, token)
}

func (s *videoService) Video(ctx context.Context, id domain.VideoID) (*domain.Video, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.videoAPI.GetVideo(ctx, token, id)
}

// Upload validates the form and streams the multipart request. The
// capability check and the missing-file check run before any bytes move.
func (s *videoService) Upload(ctx context.Context, form ports.UploadForm) (*domain.Video, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	if !s.session.Current().Permissions.CanUpload {
		return nil, errors.NewValidationError("you do not have permission to upload videos")
	}
	if form.File == nil {
		return nil, errors.NewValidationError(domain.ErrMissingVideoFile.Error())
	}
	if err := validation.ValidateNonEmptyString(form.FileName, "file name"); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := validation.ValidateVideoTitle(form.Title); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	req := ports.UploadRequest{
		Title:    utils.SanitizeString(form.Title),
		Caption:  form.Caption,
		Location: form.Location,
		People:   utils.SplitPeople(form.People),
		FileName: form.FileName,
		File:     form.File,
	}

	video, err := s.videoAPI.UploadVideo(ctx, token, req)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("video uploaded", "video_id", video.ID, "title", utils.TruncateString(video.Title, 80))
	return video, nil
}

// Comment posts a comment, enforcing the capability flag before the
// request is issued.
func (s *videoService) Comment(ctx context.Context, id domain.VideoID, text string) (*domain.Video, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	if !s.session.Current().Permissions.CanComment {
		return nil, errors.NewValidationError(domain.MsgCreatorCannotComment)
	}
	text = utils.SanitizeString(text)
	if err := validation.ValidateComment(text); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	return s.videoAPI.AddComment(ctx, token, id, text)
}

// Rate submits a rating. The tentative value is visible through
// LocalRating while the request is in flight, reverted on failure and
// promoted once the authoritative video comes back.
func (s *videoService) Rate(ctx context.Context, id domain.VideoID, rating int) (*domain.Video, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	if !s.session.Current().Permissions.CanRate {
		return nil, errors.NewValidationError(domain.MsgCreatorCannotRate)
	}
	if err := validation.ValidateRating(rating); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	s.mu.Lock()
	s.tentative[id] = rating
	s.mu.Unlock()

	video, err := s.videoAPI.RateVideo(ctx, token, id, rating)

	s.mu.Lock()
	delete(s.tentative, id)
	if err == nil {
		s.confirmed[id] = rating
	}
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return video, nil
}

// LocalRating returns the user's rating for a video: the tentative value
// while a request is in flight, otherwise the last reconciled one.
func (s *videoService) LocalRating(id domain.VideoID) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rating, ok := s.tentative[id]; ok {
		return rating, true
	}
	rating, ok := s.confirmed[id]
	return rating, ok
}

func (s *videoService) Comments(ctx context.Context, id domain.VideoID) ([]domain.Comment, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.videoAPI.ListComments(ctx, token, id)
}

func (s *videoService) DeleteComment(ctx context.Context, id domain.VideoID, commentID string) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	return s.videoAPI.DeleteComment(ctx, token, id, commentID)
}

func (s *videoService) LikeComment(ctx context.Context, id domain.VideoID, commentID string) (*domain.Comment, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.videoAPI.LikeComment(ctx, token, id, commentID)
}
