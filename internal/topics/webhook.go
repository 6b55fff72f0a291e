package topics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/strrl/learning-journey/internal/logger"
	"github.com/strrl/learning-journey/pkg/models"
)

const maxResponseBytes = 1 << 20

type generateRequest struct {
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

type generateResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Webhook asks a remote endpoint for a topic with a single JSON POST.
type Webhook struct {
	url    string
	client *http.Client
	now    func() time.Time
}

// NewWebhook returns a generator posting to url. A zero timeout means no limit.
func NewWebhook(url string, timeout time.Duration) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: timeout},
		now:    time.Now,
	}
}

func (w *Webhook) Generate(ctx context.Context) (models.Topic, error) {
	log := logger.ComponentLogger("topics")

	body, err := json.Marshal(generateRequest{
		Action:    "generate_topic",
		Timestamp: w.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
	if err != nil {
		return models.Topic{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return models.Topic{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := w.client.Do(req)
	if err != nil {
		log.Error("webhook request failed", "url", w.url, "error", err)
		return models.Topic{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return models.Topic{}, fmt.Errorf("%w: reading response: %v", ErrGenerationFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("webhook returned non-success status", "url", w.url, "status", resp.StatusCode)
		return models.Topic{}, fmt.Errorf("%w: status %d", ErrGenerationFailed, resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return models.Topic{}, fmt.Errorf("%w: decoding response: %v", ErrGenerationFailed, err)
	}
	if strings.TrimSpace(out.Title) == "" {
		return models.Topic{}, fmt.Errorf("%w: response has no title", ErrGenerationFailed)
	}

	log.Debug("webhook topic received", "title", out.Title, "elapsed", time.Since(start))
	return models.Topic{Title: out.Title, Description: out.Description}, nil
}
