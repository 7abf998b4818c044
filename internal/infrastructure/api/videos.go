package api

import (
	"context"
	"fmt"
	"net/http"

	"vidgram/internal/core/domain"
)

// ListVideos fetches the feed.
func (c *Client) ListVideos(ctx context.Context, token string) ([]*domain.Video, error) {
	raw, err := c.do(ctx, "list_videos", http.MethodGet, "/videos", nil, token)
	if err != nil {
		return nil, err
	}

	var videos []*domain.Video
	if err := decode(raw, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetVideo fetches a single video.
func (c *Client) GetVideo(ctx context.Context, token string, id domain.VideoID) (*domain.Video, error) {
	raw, err := c.do(ctx, "get_video", http.MethodGet, fmt.Sprintf("/videos/%s", id), nil, token)
	if err != nil {
		return nil, err
	}

	var video domain.Video
	if err := decode(raw, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

type commentRequest struct {
	Comment string `json:"comment"`
}

// AddComment posts a comment and returns the updated video.
func (c *Client) AddComment(ctx context.Context, token string, id domain.VideoID, comment string) (*domain.Video, error) {
	raw, err := c.do(ctx, "add_comment", http.MethodPost, fmt.Sprintf("/videos/%s/comments", id), commentRequest{Comment: comment}, token)
	if err != nil {
		return nil, err
	}

	var video domain.Video
	if err := decode(raw, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

type rateRequest struct {
	Rating int `json:"rating"`
}

// RateVideo submits a 1-5 rating and returns the updated video.
func (c *Client) RateVideo(ctx context.Context, token string, id domain.VideoID, rating int) (*domain.Video, error) {
	raw, err := c.do(ctx, "rate_video", http.MethodPost, fmt.Sprintf("/videos/%s/rate", id), rateRequest{Rating: rating}, token)
	if err != nil {
		return nil, err
	}

	var video domain.Video
	if err := decode(raw, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// ListComments fetches a video's comments.
func (c *Client) ListComments(ctx context.Context, token string, id domain.VideoID) ([]domain.Comment, error) {
	raw, err := c.do(ctx, "list_comments", http.MethodGet, fmt.Sprintf("/videos/%s/comments", id), nil, token)
	if err != nil {
		return nil, err
	}

	var comments []domain.Comment
	if err := decode(raw, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, token string, id domain.VideoID, commentID string) error {
	_, err := c.do(ctx, "delete_comment", http.MethodDelete, fmt.Sprintf("/videos/%s/comments/%s", id, commentID), nil, token)
	return err
}

// LikeComment likes a comment and returns its updated record.
func (c *Client) LikeComment(ctx context.Context, token string, id domain.VideoID, commentID string) (*domain.Comment, error) {
	raw, err := c.do(ctx, "like_comment", http.MethodPost, fmt.Sprintf("/videos/%s/comments/%s/like", id, commentID), nil, token)
	if err != nil {
		return nil, err
	}

	var comment domain.Comment
	if err := decode(raw, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
