package api

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"vidgram/internal/core/domain"
	"vidgram/internal/core/ports"
	"vidgram/pkg/errors"
	"vidgram/pkg/tracing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadVideo sends a multipart upload and returns the created video. The
// Content-Type header must come from the multipart writer so it carries the
// generated boundary; setting it by hand corrupts the payload.
func (c *Client) UploadVideo(ctx context.Context, token string, upload ports.UploadRequest) (*domain.Video, error) {
	ctx, span := tracing.TraceAPIRequest(ctx, http.MethodPost, "/videos/upload")
	defer span.End()

	start := time.Now()

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	counter := &countingReader{r: upload.File}

	// Closed once the writer goroutine stops touching counter. The server
	// may respond before the body is fully drained (an early 401/413), so
	// counter.n must not be read until then.
	done := make(chan struct{})

	go func() {
		defer close(done)

		part, err := writer.CreateFormFile("video", upload.FileName)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, counter); err != nil {
			pw.CloseWithError(err)
			return
		}

		fields := map[string]string{
			"title":    upload.Title,
			"caption":  upload.Caption,
			"location": upload.Location,
		}
		for name, value := range fields {
			if err := writer.WriteField(name, value); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		for _, person := range upload.People {
			if err := writer.WriteField("people", person); err != nil {
				pw.CloseWithError(err)
				return
			}
		}

		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/videos/upload", pr)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	tracing.AddSpanAttributes(ctx, tracing.RequestIDKey.String(requestID))

	resp, err := c.uploadClient.Do(req)
	if err != nil {
		tracing.RecordError(ctx, err)
		c.metrics.ObserveFailure("upload_video", string(errors.KindTransport))
		c.logger.LogError(ctx, err, "request transport failure", zap.String("operation", "upload_video"))
		return nil, errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	// The transport closes the request body once the round trip finishes,
	// which unblocks the writer goroutine if the server answered early.
	<-done
	c.metrics.ObserveUpload(counter.n)

	raw, err := c.consume(ctx, "upload_video", resp, start)
	if err != nil {
		return nil, err
	}

	var video domain.Video
	if err := decode(raw, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
