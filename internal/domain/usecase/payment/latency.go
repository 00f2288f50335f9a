package payment

import (
	"time"

	coreport "github.com/brunovale/mock-payment-gateway/internal/domain/port/core"
)

// simulateLatency suspends the current request for a duration uniformly
// sampled from [min, max). It runs before failure injection and before any
// store access, so even failing requests pay realistic latency.
func (s *Service) simulateLatency(min, max time.Duration) {
	if max <= min {
		if min > 0 {
			s.timeProvider.Sleep(coreport.Duration(min))
		}
		return
	}
	d := min + time.Duration(s.random.Float64()*float64(max-min))
	s.timeProvider.Sleep(coreport.Duration(d))
}

// shouldFailSystemic is the creation-path failure injection hook. With the
// default zero rate it never triggers and consumes no randomness.
func (s *Service) shouldFailSystemic() bool {
	if s.cfg.CreationFailureRate <= 0 {
		return false
	}
	return s.random.Float64() < s.cfg.CreationFailureRate
}
