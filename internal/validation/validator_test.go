package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ValidatorTestSuite defines the test suite for custom validation rules
type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

// TestValidatorTestSuite runs the test suite
func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

// SetupTest runs before each test
func (s *ValidatorTestSuite) SetupTest() {
	s.validator = NewValidator()
}

type sessionIDProbe struct {
	SessionID string `json:"session_id" validate:"required,session_id"`
}

type dateProbe struct {
	Date string `json:"date" validate:"required,txn_date"`
}

func (s *ValidatorTestSuite) TestSessionIDRule_AcceptsURLSafeIdentifiers() {
	valid := []string{
		"abc123",
		"session-abc_001",
		"A",
		strings.Repeat("x", 128),
	}

	for _, sessionID := range valid {
		s.Run(sessionID[:min(len(sessionID), 20)], func() {
			s.NoError(s.validator.GetValidate().Struct(&sessionIDProbe{SessionID: sessionID}))
		})
	}
}

func (s *ValidatorTestSuite) TestSessionIDRule_RejectsUnsafeIdentifiers() {
	invalid := []string{
		"",
		"has space",
		"slash/inside",
		"emojié",
		strings.Repeat("x", 129),
	}

	for _, sessionID := range invalid {
		s.Run(sessionID, func() {
			s.Error(s.validator.GetValidate().Struct(&sessionIDProbe{SessionID: sessionID}))
		})
	}
}

func (s *ValidatorTestSuite) TestTransactionDateRule_MirrorsNormalizerFormats() {
	valid := []string{
		"2024-03-15",
		"15-03-2024",
		"15/03/2024",
		"2024/03/15",
		"15.03.2024",
		" 2024-03-15 ",
	}

	for _, date := range valid {
		s.Run(date, func() {
			s.NoError(s.validator.GetValidate().Struct(&dateProbe{Date: date}))
		})
	}

	invalid := []string{
		"not-a-date",
		"32/13/2024",
		"2024-3-15",
		"   ",
	}

	for _, date := range invalid {
		s.Run(date, func() {
			s.Error(s.validator.GetValidate().Struct(&dateProbe{Date: date}))
		})
	}
}

// The tag name function makes validator errors speak in JSON field names
func (s *ValidatorTestSuite) TestFieldNamesUseJSONTags() {
	err := s.validator.GetValidate().Struct(&sessionIDProbe{})
	s.Require().Error(err)
	s.Contains(err.Error(), "session_id")
}
