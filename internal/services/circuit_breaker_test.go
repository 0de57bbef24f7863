package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/services"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	breaker services.CircuitBreakerInterface
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.breaker = services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    50 * time.Millisecond,
		HalfOpenMaxSucc: 2,
	})
}

func (s *CircuitBreakerTestSuite) TestStartsClosed() {
	s.Equal(services.StateClosed, s.breaker.GetState())
	s.False(s.breaker.IsOpen())
	s.Zero(s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestStaysClosedBelowFailureThreshold() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()

	s.Equal(services.StateClosed, s.breaker.GetState())
	s.False(s.breaker.IsOpen())
	s.Equal(2, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestOpensAtFailureThreshold() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}

	s.Equal(services.StateOpen, s.breaker.GetState())
	s.True(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCountWhileClosed() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.breaker.RecordSuccess()
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()

	s.Equal(services.StateClosed, s.breaker.GetState())
	s.Equal(2, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestTransitionsToHalfOpenAfterResetTimeout() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
	s.True(s.breaker.IsOpen())

	time.Sleep(60 * time.Millisecond)

	s.False(s.breaker.IsOpen())
	s.Equal(services.StateHalfOpen, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenClosesAfterEnoughSuccesses() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
	time.Sleep(60 * time.Millisecond)
	s.False(s.breaker.IsOpen())

	s.breaker.RecordSuccess()
	s.Equal(services.StateHalfOpen, s.breaker.GetState())

	s.breaker.RecordSuccess()
	s.Equal(services.StateClosed, s.breaker.GetState())
	s.Zero(s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenReopensOnFailure() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
	time.Sleep(60 * time.Millisecond)
	s.False(s.breaker.IsOpen())

	s.breaker.RecordFailure()

	s.Equal(services.StateOpen, s.breaker.GetState())
	s.True(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestResetRestoresClosedState() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
	s.True(s.breaker.IsOpen())

	s.breaker.Reset()

	s.Equal(services.StateClosed, s.breaker.GetState())
	s.False(s.breaker.IsOpen())
	s.Zero(s.breaker.GetFailureCount())
}
