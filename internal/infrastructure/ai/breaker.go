package ai

import (
	"log"

	"github.com/sony/gobreaker/v2"
)

// newBreaker builds the circuit breaker guarding Gemini calls. Once the
// failure ratio trips it, calls fail fast until the cooldown passes and the
// analyzer serves the deterministic path without waiting on the network.
func newBreaker(logger *log.Logger) *gobreaker.CircuitBreaker[generation] {
	settings := gobreaker.Settings{
		Name: "gemini-analyze",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Printf("[AI] Circuit breaker state changed | name=%s from=%s to=%s", name, from.String(), to.String())
			}
		},
	}
	return gobreaker.NewCircuitBreaker[generation](settings)
}
