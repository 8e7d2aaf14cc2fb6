package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"adserver/internal/domain/ads"
	"adserver/internal/infra"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey    string
	BaseURL   string
	Model     string // multimodal image model
	TextModel string // text model used for prompt refinement
	// HTTPClient performs generateContent calls; DownloadClient fetches
	// source image bytes. Nil values get defaults with explicit timeouts.
	HTTPClient      *http.Client
	DownloadClient  *http.Client
	GenerateTimeout time.Duration
	DownloadTimeout time.Duration
	Logger          *infra.Logger
}

// Client is a thin facade over the Gemini generateContent endpoint for the
// two ad-generation operations: image-from-image and the simulated
// video-from-image. It holds no per-request state and is safe for concurrent
// use; construct it once at process start and share the handle.
type Client struct {
	apiKey         string
	baseURL        string
	model          string
	textModel      string
	httpClient     *http.Client
	downloadClient *http.Client
	logger         *infra.Logger
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiGenerateContentRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiGenerateContentResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// NewClient constructs a Gemini client with sane defaults. Callers may leave
// the HTTP clients nil; reusable ones with explicit timeouts are created.
func NewClient(opts Options) *Client {
	generateTimeout := opts.GenerateTimeout
	if generateTimeout <= 0 {
		generateTimeout = 120 * time.Second
	}
	downloadTimeout := opts.DownloadTimeout
	if downloadTimeout <= 0 {
		downloadTimeout = 30 * time.Second
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: generateTimeout}
	}
	downloadClient := opts.DownloadClient
	if downloadClient == nil {
		downloadClient = &http.Client{Timeout: downloadTimeout}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash-image"
	}
	textModel := opts.TextModel
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		apiKey:         strings.TrimSpace(opts.APIKey),
		baseURL:        baseURL,
		model:          model,
		textModel:      textModel,
		httpClient:     httpClient,
		downloadClient: downloadClient,
		logger:         logger,
	}
}

// Model returns the configured multimodal model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateImageFromImage downloads the source image, submits it together with
// the prompt to the multimodal model, and normalizes the heterogeneous
// response parts into a GenerationResult. Every failure mode is absorbed into
// the result: a download failure short-circuits before the model call, a
// transport failure carries the upstream message, and a model response with
// no inline image yields a soft failure that keeps the explanatory text.
func (c *Client) GenerateImageFromImage(ctx context.Context, sourceImageURL, prompt string) (*ads.GenerationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	imageBytes, err := c.downloadImage(ctx, sourceImageURL)
	if err != nil {
		c.logger.Warn().Err(err).Str("source_url", sourceImageURL).Msg("genai: source image download failed")
		return &ads.GenerationResult{Success: false, Error: err.Error()}, nil
	}

	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{Text: prompt},
				{InlineData: &geminiInlineData{
					MimeType: mimeTypeForURL(sourceImageURL),
					Data:     base64.StdEncoding.EncodeToString(imageBytes),
				}},
			},
		}},
	}

	var response geminiGenerateContentResponse
	if err := c.invokeGemini(ctx, c.model, payload, &response); err != nil {
		c.logger.Warn().Err(err).Str("model", c.model).Msg("genai: image generation call failed")
		return &ads.GenerationResult{Success: false, Error: err.Error()}, nil
	}

	if len(response.Candidates) == 0 {
		return &ads.GenerationResult{Success: false, Error: "No response generated"}, nil
	}

	// Last part of each kind wins when the model emits several; the loop
	// deliberately does not break early.
	var textResponse, generatedImageData string
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			textResponse = part.Text
		} else if part.InlineData != nil && part.InlineData.Data != "" {
			generatedImageData = part.InlineData.Data
		}
	}

	if generatedImageData == "" {
		return &ads.GenerationResult{
			Success:      false,
			Error:        "No image data in response",
			TextResponse: textResponse,
		}, nil
	}

	filename := fmt.Sprintf("generated-ad-%d.png", time.Now().UnixMilli())
	c.logger.Debug().Str("model", c.model).Str("filename", filename).Msg("genai: generated ad image")

	return &ads.GenerationResult{
		Success:      true,
		ImageData:    generatedImageData,
		ImageURL:     "data:image/png;base64," + generatedImageData,
		Filename:     filename,
		TextResponse: textResponse,
	}, nil
}

// GenerateVideoFromImage simulates video generation by rewriting the prompt
// to ask for an animated sequence and delegating to the image operation. The
// generated image stands in for the video: VideoURL and ThumbnailURL both
// point at the same data URI. A dedicated video model path can replace this
// once one is available.
func (c *Client) GenerateVideoFromImage(ctx context.Context, sourceImageURL, prompt string, durationSeconds int) (*ads.GenerationResult, error) {
	if durationSeconds <= 0 {
		durationSeconds = ads.DefaultVideoDuration
	}

	videoPrompt := fmt.Sprintf(
		"%s. Create this as an animated sequence suitable for a %d-second video advertisement with smooth motion and professional cinematography.",
		prompt, durationSeconds,
	)

	result, err := c.GenerateImageFromImage(ctx, sourceImageURL, videoPrompt)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, nil
	}

	result.VideoURL = result.ImageURL
	result.ThumbnailURL = result.ImageURL
	result.Duration = durationSeconds
	return result, nil
}

// GenerateText runs one text-model round trip and returns the concatenated
// text of the first candidate. Used by the prompt refiner.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	}

	var response geminiGenerateContentResponse
	if err := c.invokeGemini(ctx, c.textModel, payload, &response); err != nil {
		return "", err
	}

	var b strings.Builder
	if len(response.Candidates) > 0 {
		for _, part := range response.Candidates[0].Content.Parts {
			b.WriteString(part.Text)
		}
	}
	return b.String(), nil
}

func (c *Client) downloadImage(ctx context.Context, sourceURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create download request: %w", err)
	}

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("failed to download image: status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	return data, nil
}

// mimeTypeForURL guesses the source MIME type from the URL alone. This is a
// substring heuristic, not content sniffing, kept for compatibility with the
// upstream contract.
func mimeTypeForURL(sourceURL string) string {
	if strings.Contains(sourceURL, ".jpg") || strings.Contains(sourceURL, ".jpeg") {
		return "image/jpeg"
	}
	return "image/png"
}

func (c *Client) invokeGemini(ctx context.Context, model string, payload any, out any) error {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.baseURL, "/"), url.PathEscape(model))
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	q := req.URL.Query()
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr geminiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		data, _ := io.ReadAll(resp.Body)
		if len(data) > 0 {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

var _ ads.Generator = (*Client)(nil)
