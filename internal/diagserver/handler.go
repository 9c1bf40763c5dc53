package diagserver

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"net/http"

	"github.com/google/uuid"
)

// maxImageBytes bounds the uploaded image size.
const maxImageBytes = 16 << 20

type analyzeResponse struct {
	Disease     string  `json:"disease"`
	Confidence  float64 `json:"confidence"`
	Severity    string  `json:"severity"`
	Description string  `json:"description"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "OK")
}

// handleAnalyze accepts a multipart form with an "image" field and returns a
// classification. The label and confidence are a deterministic function of
// the image bytes, so repeated uploads of the same file agree, close enough
// to a model for demos and integration tests.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := s.log.With("request_id", uuid.NewString())

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)

	file, _, err := r.FormFile("image")
	if err != nil {
		log.Warn(ctx, "analyze request without image", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No image provided"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error(ctx, "failed to read uploaded image", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	result := classify(data)
	log.Info(ctx, "image analyzed", "bytes", len(data), "disease", result.Disease, "confidence", result.Confidence)
	writeJSON(w, http.StatusOK, result)
}

// classify derives a label and confidence from a hash of the image bytes.
// Severity is Severe above 80% confidence, Moderate above 50%, Mild
// otherwise.
func classify(image []byte) analyzeResponse {
	h := fnv.New32a()
	_, _ = h.Write(image)
	sum := h.Sum32()

	label := labels[sum%uint32(len(labels))]
	confidence := float64(35 + sum%60) // percent

	severity := "Mild"
	switch {
	case confidence > 80:
		severity = "Severe"
	case confidence > 50:
		severity = "Moderate"
	}

	return analyzeResponse{
		Disease:     label,
		Confidence:  confidence,
		Severity:    severity,
		Description: fmt.Sprintf("Detected %s with %d%% confidence.", label, int(math.Round(confidence))),
	}
}
