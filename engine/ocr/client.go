package ocr

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrEmptyInput is returned when recognition produced no usable text.
// It is user-correctable: the screenshot simply contained nothing to read.
var ErrEmptyInput = errors.New("no text found in screenshot")

// Client is the OCR capability: one blocking round trip from image bytes
// to recognized text.
type Client interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

const (
	defaultAPIURL  = "https://api.ocr.space/parse/image"
	defaultTimeout = 30 * time.Second
)

// Config for the hosted OCR service.
type Config struct {
	APIKey string
	APIURL string
}

// SpaceClient recognizes text through the OCR.space REST API.
type SpaceClient struct {
	http *resty.Client
}

// NewSpaceClient creates an OCR.space client. The API key is required;
// callers treat a missing key as the integration being disabled.
func NewSpaceClient(cfg *Config) (*SpaceClient, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("ocr: api key is required")
	}
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	http := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(defaultTimeout).
		SetHeader("apikey", cfg.APIKey)
	return &SpaceClient{http: http}, nil
}

type spaceResult struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool  `json:"IsErroredOnProcessing"`
	ErrorMessage          []any `json:"ErrorMessage"`
}

// Recognize sends the image for recognition and returns the concatenated
// parsed text. Empty or whitespace-only text yields ErrEmptyInput.
func (c *SpaceClient) Recognize(ctx context.Context, image []byte) (string, error) {
	var result spaceResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"base64Image": "data:image/png;base64," + base64.StdEncoding.EncodeToString(image),
			"language":    "eng",
			"scale":       "true",
		}).
		SetResult(&result).
		Post("")
	if err != nil {
		return "", fmt.Errorf("ocr: request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("ocr: service returned status %d", resp.StatusCode())
	}
	if result.IsErroredOnProcessing {
		return "", fmt.Errorf("ocr: processing failed: %v", result.ErrorMessage)
	}
	var text strings.Builder
	for _, parsed := range result.ParsedResults {
		text.WriteString(parsed.ParsedText)
	}
	recognized := strings.TrimSpace(text.String())
	if recognized == "" {
		return "", ErrEmptyInput
	}
	return recognized, nil
}
