package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/flexvoice/backend/config"
)

// RecordingService archives voice call recordings to S3. The voice provider
// only retains recordings briefly, so the ended-call webhook copies them out.
type RecordingService struct {
	s3Config *config.S3Config
	client   *http.Client
}

// NewRecordingService creates a new RecordingService instance. A nil s3Config
// yields a disabled service.
func NewRecordingService(s3Config *config.S3Config) *RecordingService {
	return &RecordingService{
		s3Config: s3Config,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Enabled reports whether an archive bucket is configured.
func (s *RecordingService) Enabled() bool {
	return s.s3Config != nil
}

// ArchiveRecording downloads the recording from the provider URL and uploads
// it to the archive bucket, returning the stored object's URL.
func (s *RecordingService) ArchiveRecording(ctx context.Context, callID, recordingURL string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("recording archive is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", recordingURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download recording: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download recording, status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read recording data: %w", err)
	}

	key := fmt.Sprintf("recordings/%s.wav", callID)
	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("audio/wav"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload recording to S3: %w", err)
	}

	archiveURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[RecordingService] Archived recording for call %s: %s", callID, archiveURL)
	return archiveURL, nil
}
