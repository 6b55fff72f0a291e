// Package topics produces learning topics. A Generator is the request/response
// boundary the application waits on while the topic is being produced.
package topics

import (
	"context"
	"errors"
	"time"

	"github.com/strrl/learning-journey/pkg/models"
)

// ErrGenerationFailed covers every way a generator can fail to produce a topic.
var ErrGenerationFailed = errors.New("topic generation failed")

// Generator produces one topic per call.
type Generator interface {
	Generate(ctx context.Context) (models.Topic, error)
}

// Options selects and tunes a generator
type Options struct {
	WebhookURL string
	Timeout    time.Duration
	Delay      time.Duration
}

// New returns a webhook generator when a URL is configured, the local stub otherwise.
func New(opts Options) Generator {
	if opts.WebhookURL != "" {
		return NewWebhook(opts.WebhookURL, opts.Timeout)
	}
	return NewStub(opts.Delay)
}
