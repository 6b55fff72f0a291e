package topics

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/strrl/learning-journey/pkg/models"
)

// SampleTopics is the pool the local generator draws from
var SampleTopics = []models.Topic{
	{
		Title:       "Learn about Quantum Computing",
		Description: "A beginner-friendly intro to quantum principles and how they're revolutionizing computing.",
	},
	{
		Title:       "Master the Art of Active Listening",
		Description: "Discover techniques to become a better listener and improve your relationships.",
	},
	{
		Title:       "Understand Blockchain Technology",
		Description: "Learn the fundamentals of blockchain and how it's changing digital transactions.",
	},
	{
		Title:       "Explore Mindfulness Meditation",
		Description: "Learn simple mindfulness techniques to reduce stress and increase focus.",
	},
	{
		Title:       "Basic Photography Composition",
		Description: "Master the rule of thirds and other composition techniques for better photos.",
	},
}

// Stub simulates a remote generator: it waits, then picks a sample topic at random.
type Stub struct {
	delay time.Duration
	pool  []models.Topic

	mu  sync.Mutex
	rng *rand.Rand
}

// NewStub returns a stub that answers after delay
func NewStub(delay time.Duration) *Stub {
	return &Stub{
		delay: delay,
		pool:  SampleTopics,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithSeed makes the choice sequence deterministic
func (s *Stub) WithSeed(seed int64) *Stub {
	s.mu.Lock()
	s.rng = rand.New(rand.NewSource(seed))
	s.mu.Unlock()
	return s
}

func (s *Stub) Generate(ctx context.Context) (models.Topic, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return models.Topic{}, fmt.Errorf("%w: %v", ErrGenerationFailed, ctx.Err())
		}
	} else if err := ctx.Err(); err != nil {
		return models.Topic{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	s.mu.Lock()
	i := s.rng.Intn(len(s.pool))
	s.mu.Unlock()
	return s.pool[i], nil
}
