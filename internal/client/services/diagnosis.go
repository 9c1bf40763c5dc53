package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisheksit27/agrovest/internal/client/models"
	"github.com/abhisheksit27/agrovest/internal/common"
)

// Classifier analyzes a leaf image and produces a crop-disease diagnosis.
type Classifier interface {
	Analyze(ctx context.Context, imagePath string) (*models.Diagnosis, error)
}

// SimulatedClassifier mimics an analysis backend without one being
// deployed: after a fixed delay it returns a constant result. The delay is
// cancellable through the context.
type SimulatedClassifier struct {
	delay time.Duration
}

func NewSimulatedClassifier(delay time.Duration) *SimulatedClassifier {
	return &SimulatedClassifier{delay: delay}
}

func (c *SimulatedClassifier) Analyze(ctx context.Context, imagePath string) (*models.Diagnosis, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return nil, fmt.Errorf("image not accessible: %w", err)
	}

	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &models.Diagnosis{
		Disease:     "Leaf Blight",
		Confidence:  87,
		Severity:    "Moderate",
		Description: "Leaf blight is a common fungal disease that affects various crops. Early detection and treatment are crucial.",
		Treatment: []string{
			"Remove affected leaves",
			"Apply fungicide spray",
			"Ensure proper drainage",
			"Increase air circulation",
		},
	}, nil
}

// HTTPClassifier sends the image to a remote analysis server. The server
// contract: POST {endpoint}/analyze with a multipart field "image" returns
// {disease, confidence, severity, description} on 200, {"error": ...}
// otherwise. The remote result carries no treatment steps.
type HTTPClassifier struct {
	endpoint string
	httpc    *http.Client
}

func NewHTTPClassifier(endpoint string) *HTTPClassifier {
	return &HTTPClassifier{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpc:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClassifier) Analyze(ctx context.Context, imagePath string) (*models.Diagnosis, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("image not accessible: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("image read error: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/analyze", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return nil, fmt.Errorf("%w: server returned %s", common.ErrAnalysisRejected, resp.Status)
		}
		return nil, fmt.Errorf("%w: %s", common.ErrAnalysisRejected, apiErr.Error)
	}

	var result models.Diagnosis
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("analysis response decode error: %w", err)
	}
	return &result, nil
}
