package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	apperrors "github.com/MausamRakse/Physician-Notetaker/errors"
	"github.com/MausamRakse/Physician-Notetaker/pkg/config"
)

// SentimentClient is a minimal client for a hosted text-classification
// endpoint speaking the HuggingFace inference protocol
type SentimentClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewSentimentClient creates a sentiment client using values from the
// provided config. Pass a nil config to fall back to environment variables.
func NewSentimentClient(cfg *config.SentimentModelConfig) *SentimentClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("NOTETAKER_SENTIMENT_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("NOTETAKER_SENTIMENT_API_URL")
		if base == "" {
			base = "https://api-inference.huggingface.co"
		}
	}

	var model string
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	} else {
		model = os.Getenv("NOTETAKER_SENTIMENT_MODEL")
		if model == "" {
			model = "distilbert-base-uncased-finetuned-sst-2-english"
		}
	}

	timeout := 30 * time.Second
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &SentimentClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// ClassifyRequest is the shape for inference requests
type ClassifyRequest struct {
	Inputs string `json:"inputs"`
}

// Prediction is a single label with its score
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify sends text to the classification endpoint and returns the
// top-scoring label with its confidence.
func (c *SentimentClient) Classify(ctx context.Context, text string) (string, float64, error) {
	if strings.TrimSpace(text) == "" {
		return "", 0, fmt.Errorf("empty input text")
	}

	b, err := json.Marshal(ClassifyRequest{Inputs: text})
	if err != nil {
		return "", 0, err
	}

	endpoint := c.baseURL + "/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", 0, apperrors.ErrExternalAPIFailed("inference", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		err := fmt.Errorf("inference endpoint returned status %d", resp.StatusCode)
		if resp.StatusCode >= 500 {
			// 503 means the hosted model is still loading; callers retry it
			return "", 0, apperrors.ErrModelUnavailable(c.model, err)
		}
		return "", 0, apperrors.ErrClassificationFailed(err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}

	pred, err := decodePredictions(body)
	if err != nil {
		return "", 0, err
	}
	return pred.Label, pred.Score, nil
}

// decodePredictions handles both response shapes seen in the wild:
// [[{label,score},...]] for single inputs and a flat [{label,score},...].
func decodePredictions(body []byte) (Prediction, error) {
	var nested [][]Prediction
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return topPrediction(nested[0]), nil
	}

	var flat []Prediction
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return topPrediction(flat), nil
	}

	return Prediction{}, fmt.Errorf("unexpected classifier response: %s", string(body))
}

func topPrediction(preds []Prediction) Prediction {
	best := preds[0]
	for _, p := range preds[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best
}
