package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheksit27/agrovest/internal/common"
)

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leaf.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake image bytes"), 0o600))
	return path
}

func TestSimulatedClassifier_ReturnsCannedResultAfterDelay(t *testing.T) {
	c := NewSimulatedClassifier(10 * time.Millisecond)

	start := time.Now()
	got, err := c.Analyze(context.Background(), writeTempImage(t))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.Equal(t, "Leaf Blight", got.Disease)
	assert.Equal(t, 87.0, got.Confidence)
	assert.Equal(t, "Moderate", got.Severity)
	assert.Len(t, got.Treatment, 4)
	assert.Equal(t, "Remove affected leaves", got.Treatment[0])
	assert.NotEmpty(t, got.Description)
}

func TestSimulatedClassifier_MissingImage(t *testing.T) {
	c := NewSimulatedClassifier(time.Millisecond)

	_, err := c.Analyze(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}

func TestSimulatedClassifier_ContextCancellation(t *testing.T) {
	c := NewSimulatedClassifier(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Analyze(ctx, writeTempImage(t))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPClassifier_SendsMultipartAndDecodesResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze", r.URL.Path)

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "leaf.jpg", header.Filename)

		rw.Write([]byte(`{"disease": "Rice_Brown Spot", "confidence": 92.31, "severity": "Severe", "description": "Detected Rice_Brown Spot with 92% confidence."}`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClassifier(srv.URL)

	got, err := c.Analyze(context.Background(), writeTempImage(t))
	require.NoError(t, err)

	assert.Equal(t, "Rice_Brown Spot", got.Disease)
	assert.Equal(t, 92.31, got.Confidence)
	assert.Equal(t, "Severe", got.Severity)
	assert.Empty(t, got.Treatment)
}

func TestHTTPClassifier_ErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusBadRequest)
		rw.Write([]byte(`{"error": "No image provided"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClassifier(srv.URL)

	_, err := c.Analyze(context.Background(), writeTempImage(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAnalysisRejected)
	assert.Contains(t, err.Error(), "No image provided")
}

func TestHTTPClassifier_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
		rw.Write([]byte("boom"))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClassifier(srv.URL)

	_, err := c.Analyze(context.Background(), writeTempImage(t))
	assert.ErrorIs(t, err, common.ErrAnalysisRejected)
}

func TestHTTPClassifier_MissingImage(t *testing.T) {
	c := NewHTTPClassifier("http://127.0.0.1:0")

	_, err := c.Analyze(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}
