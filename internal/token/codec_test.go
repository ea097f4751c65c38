package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/brawlops/brawlsquad/internal/dependencies/mocks"
)

type CodecSuite struct {
	suite.Suite
	clock *mocks.MockClock
	codec *Codec
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecSuite))
}

func (s *CodecSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.codec = NewCodec([]byte("test-secret"), time.Hour, s.clock)
}

func (s *CodecSuite) TestIssueAndVerifyRoundTrip() {
	raw, err := s.codec.Issue("b_123")
	s.Require().NoError(err)
	s.NotEmpty(raw)

	claims, err := s.codec.Verify(raw)
	s.Require().NoError(err)
	s.Equal("b_123", claims.Subject)
	s.WithinDuration(s.clock.Now(), claims.IssuedAt, 0)
	s.WithinDuration(s.clock.Now().Add(time.Hour), claims.ExpiresAt, 0)
}

func (s *CodecSuite) TestIssueProducesDistinctTokens() {
	first, err := s.codec.Issue("b_123")
	s.Require().NoError(err)
	second, err := s.codec.Issue("b_123")
	s.Require().NoError(err)

	s.NotEqual(first, second)

	// Both remain independently verifiable
	_, err = s.codec.Verify(first)
	s.NoError(err)
	_, err = s.codec.Verify(second)
	s.NoError(err)
}

func (s *CodecSuite) TestVerifySucceedsJustBeforeExpiry() {
	raw, err := s.codec.Issue("b_123")
	s.Require().NoError(err)

	s.clock.Advance(time.Hour - time.Second)

	_, err = s.codec.Verify(raw)
	s.NoError(err)
}

func (s *CodecSuite) TestVerifyFailsAfterExpiry() {
	raw, err := s.codec.Issue("b_123")
	s.Require().NoError(err)

	s.clock.Advance(time.Hour + time.Second)

	_, err = s.codec.Verify(raw)
	s.ErrorIs(err, ErrExpired)
}

func (s *CodecSuite) TestVerifyFailsWithWrongSecret() {
	other := NewCodec([]byte("a-different-secret"), time.Hour, s.clock)

	raw, err := other.Issue("b_123")
	s.Require().NoError(err)

	_, err = s.codec.Verify(raw)
	s.ErrorIs(err, ErrBadSignature)
}

func (s *CodecSuite) TestVerifyFailsOnGarbage() {
	_, err := s.codec.Verify("not-a-token")
	s.ErrorIs(err, ErrMalformed)
}

func (s *CodecSuite) TestVerifyFailsOnEmptyToken() {
	_, err := s.codec.Verify("")
	s.ErrorIs(err, ErrMalformed)
}
