package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lead-center-backend/internal/config"
	"lead-center-backend/internal/database/models"
	apperrors "lead-center-backend/internal/errors"
	"lead-center-backend/internal/logger"
)

// SuggestionResult is the advisory answer of the external suggester: a
// sub-disposition label and a confidence in [0,1]. Accuracy is not
// guaranteed and nothing in the disposition flow depends on it.
type SuggestionResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// SuggestionService calls the external sub-disposition suggester over HTTP
type SuggestionService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// Ensure SuggestionService implements SuggestionServiceInterface
var _ SuggestionServiceInterface = (*SuggestionService)(nil)

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(cfg *config.Config) *SuggestionService {
	timeout := time.Duration(cfg.SuggestionTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SuggestionService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// suggestAPIRequest is the wire request of the suggester
type suggestAPIRequest struct {
	Remarks string             `json:"remarks"`
	History []suggestWireEvent `json:"history"`
}

// suggestWireEvent is the slice of an assignment event the suggester sees
type suggestWireEvent struct {
	Disposition    string `json:"disposition"`
	SubDisposition string `json:"sub_disposition,omitempty"`
	Remark         string `json:"remark,omitempty"`
}

// Suggest asks the external service for a sub-disposition label given the
// caller's free-text remarks and the lead's recent history.
func (s *SuggestionService) Suggest(ctx context.Context, remarks string, history []models.Assignment) (*SuggestionResult, error) {
	if s.cfg.SuggestionHost == "" {
		return nil, apperrors.NewUpstreamError("suggestion service", "not configured")
	}

	base := s.cfg.SuggestionHost
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	endpoint := strings.TrimRight(base, "/") + "/api/v1/suggest"

	wire := suggestAPIRequest{Remarks: remarks}
	for _, ev := range history {
		wire.History = append(wire.History, suggestWireEvent{
			Disposition:    string(ev.Disposition),
			SubDisposition: ev.SubDisposition,
			Remark:         ev.Remark,
		})
	}

	payload, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("failed to encode suggestion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s.cfg.SuggestionToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.SuggestionToken)
	}

	logger.New().Debugf("Invoking suggestion API POST %s", endpoint)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("suggestion service", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, apperrors.NewUpstreamError("suggestion service",
			fmt.Sprintf("status=%d body=%s", resp.StatusCode, string(body)))
	}

	var result SuggestionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperrors.NewUpstreamError("suggestion service", "malformed response: "+err.Error())
	}
	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 1 {
		result.Confidence = 1
	}
	return &result, nil
}
