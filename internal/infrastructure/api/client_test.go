package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vidgram/internal/core/domain"
	"vidgram/internal/core/ports"
	"vidgram/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, 5*time.Second, 5*time.Second, zap.NewNop(), nil)
}

func TestServerErrorMessageSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetVideo(context.Background(), "tok", "missing")

	require.Error(t, err)
	reqErr := errors.GetRequestError(err)
	require.NotNil(t, reqErr)
	assert.Equal(t, errors.KindHTTPStatus, reqErr.Kind)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Equal(t, "not found", errors.UserMessage(err))
}

func TestFallbackMessageWhenErrorBodyUnparsable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListVideos(context.Background(), "tok")

	require.Error(t, err)
	assert.Equal(t, "Request failed: 500 Internal Server Error", errors.UserMessage(err))
}

func TestMalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListVideos(context.Background(), "tok")

	require.Error(t, err)
	reqErr := errors.GetRequestError(err)
	require.NotNil(t, reqErr)
	assert.Equal(t, errors.KindMalformedResponse, reqErr.Kind)
	assert.Equal(t, "invalid response format from server", errors.UserMessage(err))
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListVideos(context.Background(), "tok")

	require.Error(t, err)
	reqErr := errors.GetRequestError(err)
	require.NotNil(t, reqErr)
	assert.Equal(t, errors.KindTransport, reqErr.Kind)
}

func TestBearerTokenAttachment(t *testing.T) {
	var authHeader string
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListVideos(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", authHeader)
	assert.NotEmpty(t, requestID)
}

func TestRegisterOmitsAuthorizationHeader(t *testing.T) {
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.Register(context.Background(), ports.RegisterParams{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
		Role:     domain.RoleConsumer,
	})

	require.NoError(t, err)
	assert.Empty(t, authHeader)
}

func TestLoginDecodesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var creds ports.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice@example.com", creds.Email)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"u1","username":"alice","role":"consumer"},"token":"tok-123"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Login(context.Background(), ports.Credentials{
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-123", result.Token)
	require.NotNil(t, result.User)
	assert.Equal(t, domain.UserID("u1"), result.User.ID)
	assert.Equal(t, domain.RoleConsumer, result.User.Role)
}

func TestRateVideoRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos/v1/rate", r.URL.Path)

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 4, body["rating"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"v1","ratings":[4]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	video, err := client.RateVideo(context.Background(), "tok", "v1", 4)

	require.NoError(t, err)
	assert.Equal(t, domain.VideoID("v1"), video.ID)
	assert.Equal(t, []int{4}, video.Ratings)
}

func TestUploadVideoMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos/upload", r.URL.Path)

		contentType := r.Header.Get("Content-Type")
		assert.True(t, strings.HasPrefix(contentType, "multipart/form-data; boundary="),
			"Content-Type must carry the multipart boundary, got %q", contentType)

		require.NoError(t, r.ParseMultipartForm(32<<20))

		file, header, err := r.FormFile("video")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "clip.mp4", header.Filename)

		assert.Equal(t, "My video", r.FormValue("title"))
		assert.Equal(t, "A caption", r.FormValue("caption"))
		assert.Equal(t, []string{"Alice", "Bob"}, r.MultipartForm.Value["people"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"v1","title":"My video"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	video, err := client.UploadVideo(context.Background(), "tok", ports.UploadRequest{
		Title:    "My video",
		Caption:  "A caption",
		People:   []string{"Alice", "Bob"},
		FileName: "clip.mp4",
		File:     strings.NewReader("fake video bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.VideoID("v1"), video.ID)
}

// chunkedReader yields a fixed number of bytes in small reads, keeping the
// multipart copy running long enough for the server to answer first.
type chunkedReader struct {
	remaining int
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, io.EOF
	}
	n := len(p)
	if n > 1024 {
		n = 1024
	}
	if n > r.remaining {
		n = r.remaining
	}
	for i := 0; i < n; i++ {
		p[i] = 'a'
	}
	r.remaining -= n
	return n, nil
}

func TestUploadSurvivesEarlyServerResponse(t *testing.T) {
	// Answer without reading the request body, as a server would for an
	// early 401/413. The byte counter must only be read once the writer
	// goroutine has finished with it.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"v1","title":"My video"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	video, err := client.UploadVideo(context.Background(), "tok", ports.UploadRequest{
		Title:    "My video",
		FileName: "clip.mp4",
		File:     &chunkedReader{remaining: 10 << 20},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.VideoID("v1"), video.ID)
}

func TestDeleteComment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/videos/v1/comments/c1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.DeleteComment(context.Background(), "tok", "v1", "c1")

	require.NoError(t, err)
}
