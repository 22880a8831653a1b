package entrypass

import (
	"crypto/hmac"
	"time"
)

// DefaultExpiryMinutes is the replay window for issued tokens: 24 hours.
const DefaultExpiryMinutes = 1440

// Service signs and verifies entry tokens with a single shared
// symmetric key. The key is injected at construction, never read from
// ambient state, so tests can run distinct keys per case. Rotating the
// key invalidates every unexpired token already issued.
//
// Tokens carry no consumed state: within the expiry window a valid
// token verifies any number of times. A single-use ledger can be
// layered on top of IsExpired later without touching signature logic.
type Service struct {
	secret        []byte
	expiryMinutes int
	now           func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithExpiryMinutes overrides the default 24-hour replay window.
func WithExpiryMinutes(minutes int) Option {
	return func(s *Service) { s.expiryMinutes = minutes }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New constructs a token service around the given signing secret.
func New(secret string, opts ...Option) *Service {
	s := &Service{
		secret:        []byte(secret),
		expiryMinutes: DefaultExpiryMinutes,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue stamps the payload with the current timestamp and attaches the
// signature computed over all other fields.
func (s *Service) Issue(p TokenPayload) TokenPayload {
	p.Timestamp = s.now().UTC().Format(time.RFC3339)
	p.Signature = sign(p, s.secret)
	return p
}

// Verify recomputes the signature over every field except Signature and
// compares in constant time. Malformed input yields false, never a
// panic; the caller only ever learns "invalid", not which field
// differed.
func (s *Service) Verify(p TokenPayload) bool {
	if p.Signature == "" {
		return false
	}
	expected := sign(p, s.secret)
	return hmac.Equal([]byte(expected), []byte(p.Signature))
}

// IsExpired reports whether the token's timestamp is older than the
// replay window. An unparseable timestamp counts as expired (fail
// closed).
func (s *Service) IsExpired(p TokenPayload) bool {
	issued, err := time.Parse(time.RFC3339, p.Timestamp)
	if err != nil {
		return true
	}
	elapsed := int(s.now().UTC().Sub(issued).Minutes())
	return elapsed > s.expiryMinutes
}
