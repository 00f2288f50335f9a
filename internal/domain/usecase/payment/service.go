package payment

import (
	"time"

	coreport "github.com/brunovale/mock-payment-gateway/internal/domain/port/core"
	"github.com/brunovale/mock-payment-gateway/internal/domain/port/persistence"
)

// Config holds the tunable knobs of the simulation. Defaults reproduce the
// behavior of the gateway being mocked; tests zero the latency windows and
// script the probabilities through the RandomSource.
type Config struct {
	CreateLatencyMin time.Duration
	CreateLatencyMax time.Duration
	StatusLatencyMin time.Duration
	StatusLatencyMax time.Duration

	// Probability of an injected failure during creation; zero keeps the
	// systemic failure hook as a dormant extension point
	CreationFailureRate float64

	// Probability of a transient STATUS_CHECK_FAILED per status request
	StatusCheckFailureRate float64

	// For unknown IDs on ghost-enabled variants: probability of answering
	// not-found instead of synthesizing a plausible transaction
	GhostNotFoundRate float64

	// Probability that a poll of a waiting transaction triggers a
	// progression evaluation
	ProgressRate float64

	// Given a progression evaluation, probability it resolves to completed
	// rather than reaffirming waiting_payment
	CompletionRate float64
}

// DefaultConfig returns the simulation parameters of the mocked gateway
func DefaultConfig() Config {
	return Config{
		CreateLatencyMin:       200 * time.Millisecond,
		CreateLatencyMax:       1500 * time.Millisecond,
		StatusLatencyMin:       50 * time.Millisecond,
		StatusLatencyMax:       500 * time.Millisecond,
		CreationFailureRate:    0,
		StatusCheckFailureRate: 0.15,
		GhostNotFoundRate:      0.5,
		ProgressRate:           0.3,
		CompletionRate:         0.8,
	}
}

// Service is the transaction simulation engine for one payment variant.
// It ties the identifier generator, latency simulator, failure injector and
// status transition engine together over the shared transaction store.
type Service struct {
	variant      Variant
	cfg          Config
	store        persistence.TransactionStore
	ids          *IdentifierGenerator
	timeProvider coreport.TimeProvider
	random       coreport.RandomSource
	logger       coreport.Logger
}

// NewService creates a payment simulation service for the given variant
func NewService(
	variant Variant,
	cfg Config,
	store persistence.TransactionStore,
	timeProvider coreport.TimeProvider,
	random coreport.RandomSource,
	logger coreport.Logger,
) *Service {
	return &Service{
		variant:      variant,
		cfg:          cfg,
		store:        store,
		ids:          NewIdentifierGenerator(timeProvider, random),
		timeProvider: timeProvider,
		random:       random,
		logger:       logger,
	}
}

// Variant exposes the policy this service instance runs with
func (s *Service) Variant() Variant {
	return s.variant
}

// HealthStatus describes the gateway instance for the health endpoint
type HealthStatus struct {
	Status        string
	PaymentSystem string
	Country       string
}

// Health reports the identity of this gateway instance; it never fails
// and has no side effects
func (s *Service) Health() HealthStatus {
	return HealthStatus{
		Status:        "ok",
		PaymentSystem: s.variant.PaymentSystem,
		Country:       s.variant.Country,
	}
}
