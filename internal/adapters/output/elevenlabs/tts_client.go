package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mock-interview-api/configs"
	"mock-interview-api/internal/domain"
	"mock-interview-api/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const serviceName = "tts"

const maxErrorBody = 4 << 10

var _ output.SpeechSynthesizer = (*TTSClientAdapter)(nil)

// TTSClientAdapter struct - Output adapter for ElevenLabs streaming text-to-speech
type TTSClientAdapter struct {
	httpClient      *http.Client
	baseURL         string
	apiKey          string
	voiceID         string
	modelID         string
	stability       float64
	similarityBoost float64
}

// NewTTSClientAdapter func - Creates new TTS client adapter.
// The HTTP client has no overall timeout: an audio stream may run as long as the text requires.
func NewTTSClientAdapter(config configs.TTS) *TTSClientAdapter {
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.elevenlabs.io"
	}

	modelID := config.ModelID
	if modelID == "" {
		modelID = "eleven_multilingual_v2"
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
		},
	}

	logrus.Infof("TTS client adapter initialized with base URL: %s, voice: %s", baseURL, config.VoiceID)

	return &TTSClientAdapter{
		httpClient:      httpClient,
		baseURL:         baseURL,
		apiKey:          config.APIKey,
		voiceID:         config.VoiceID,
		modelID:         modelID,
		stability:       config.Stability,
		similarityBoost: config.SimilarityBoost,
	}
}

// Synthesize opens an audio/mpeg stream for the given text.
// On success the caller owns the returned body and must close it.
func (a *TTSClientAdapter) Synthesize(ctx context.Context, request domain.SynthesisRequest) (io.ReadCloser, error) {
	body := ttsAPIRequest{
		ModelID: a.modelID,
		Text:    request.Text,
		VoiceSettings: voiceSettingsAPI{
			Stability:       a.stability,
			SimilarityBoost: a.similarityBoost,
		},
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tts request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s/stream", a.baseURL, url.PathEscape(a.voiceID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{
			Service: serviceName,
			Timeout: errors.Is(err, context.DeadlineExceeded),
			Err:     err,
		}
	}

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, &domain.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(detail)),
		}
	}

	logrus.Debugf("Started TTS stream: voice=%s, chars=%d", a.voiceID, len([]rune(request.Text)))

	return resp.Body, nil
}

type voiceSettingsAPI struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type ttsAPIRequest struct {
	ModelID       string           `json:"model_id"`
	VoiceSettings voiceSettingsAPI `json:"voice_settings"`
	Text          string           `json:"text"`
}
