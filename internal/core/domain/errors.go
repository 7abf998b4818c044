package domain

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionNotLoaded = errors.New("session not restored yet")
	ErrMissingVideoFile = errors.New("Please select a video to upload")
)

// Fixed denial messages shown when the fallback permission rule blocks an
// action. Kept word-for-word for parity with existing clients.
const (
	MsgCreatorCannotComment = "As a creator, you cannot comment on videos"
	MsgCreatorCannotRate    = "As a creator, you cannot rate videos"
)
