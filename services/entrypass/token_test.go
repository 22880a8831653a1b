package entrypass

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"
)

var hexSig = regexp.MustCompile(`^[0-9a-f]{64}$`)

func testPayload() TokenPayload {
	return TokenPayload{
		BookingID:   "bk-123",
		BookingCode: "FB-AB12CD34EF",
		FacilityID:  "fac-1",
		UserID:      "user-9",
		Date:        "2026-03-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()
	svc := New("test-secret")

	token := svc.Issue(testPayload())
	if token.Timestamp == "" {
		t.Fatal("issued token must carry a timestamp")
	}
	if !hexSig.MatchString(token.Signature) {
		t.Fatalf("signature %q is not 64-char lowercase hex", token.Signature)
	}
	if !svc.Verify(token) {
		t.Error("freshly issued token must verify")
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	t.Parallel()
	svc := New("test-secret")
	token := svc.Issue(testPayload())

	mutations := []struct {
		name   string
		mutate func(*TokenPayload)
	}{
		{"endTime", func(p *TokenPayload) { p.EndTime = "12:00" }},
		{"startTime", func(p *TokenPayload) { p.StartTime = "09:00" }},
		{"date", func(p *TokenPayload) { p.Date = "2026-03-16" }},
		{"bookingId", func(p *TokenPayload) { p.BookingID = "bk-999" }},
		{"bookingCode", func(p *TokenPayload) { p.BookingCode = "FB-XXXXXXXXXX" }},
		{"facilityId", func(p *TokenPayload) { p.FacilityID = "fac-2" }},
		{"userId", func(p *TokenPayload) { p.UserID = "user-1" }},
		{"timestamp", func(p *TokenPayload) { p.Timestamp = "2020-01-01T00:00:00Z" }},
		{"signature", func(p *TokenPayload) { p.Signature = p.Signature[:63] + "0" }},
	}

	for _, test := range mutations {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			mutated := token
			test.mutate(&mutated)
			if mutated == token {
				t.Skip("mutation did not change the payload")
			}
			if svc.Verify(mutated) {
				t.Errorf("token with mutated %s must not verify", test.name)
			}
		})
	}
}

func TestVerifyRejectsWrongKeyAndEmptySignature(t *testing.T) {
	t.Parallel()
	issuer := New("key-a")
	verifier := New("key-b")

	token := issuer.Issue(testPayload())
	if verifier.Verify(token) {
		t.Error("token must not verify under a different key")
	}

	token.Signature = ""
	if issuer.Verify(token) {
		t.Error("empty signature must not verify")
	}
}

func TestCanonicalSigningIsDeterministic(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	svc := New("test-secret", WithClock(fixedClock(now)))

	first := svc.Issue(testPayload())
	second := svc.Issue(testPayload())
	if first.Signature != second.Signature {
		t.Error("the same logical payload must always sign identically")
	}
}

func TestIsExpired(t *testing.T) {
	t.Parallel()
	issuedAt := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"fresh", issuedAt.Add(5 * time.Minute), false},
		{"one minute before the window closes", issuedAt.Add((DefaultExpiryMinutes - 1) * time.Minute), false},
		{"exactly at the window", issuedAt.Add(DefaultExpiryMinutes * time.Minute), false},
		{"one minute past the window", issuedAt.Add((DefaultExpiryMinutes + 1) * time.Minute), true},
		{"days later", issuedAt.Add(72 * time.Hour), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			issuer := New("k", WithClock(fixedClock(issuedAt)))
			token := issuer.Issue(testPayload())

			checker := New("k", WithClock(fixedClock(test.now)))
			if got := checker.IsExpired(token); got != test.expired {
				t.Errorf("IsExpired at %v = %v, want %v", test.now, got, test.expired)
			}
		})
	}
}

func TestIsExpiredFailsClosedOnBadTimestamp(t *testing.T) {
	t.Parallel()
	svc := New("k")

	p := testPayload()
	p.Timestamp = "not-a-timestamp"
	if !svc.IsExpired(p) {
		t.Error("unparseable timestamp must count as expired")
	}

	p.Timestamp = ""
	if !svc.IsExpired(p) {
		t.Error("missing timestamp must count as expired")
	}
}

func TestCustomExpiryWindow(t *testing.T) {
	t.Parallel()
	issuedAt := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	issuer := New("k", WithClock(fixedClock(issuedAt)), WithExpiryMinutes(30))
	token := issuer.Issue(testPayload())

	checker := New("k", WithClock(fixedClock(issuedAt.Add(31*time.Minute))), WithExpiryMinutes(30))
	if !checker.IsExpired(token) {
		t.Error("token past a 30-minute window must be expired")
	}
}

func TestDecodeFailsClosed(t *testing.T) {
	t.Parallel()
	if _, ok := Decode([]byte("{not json")); ok {
		t.Error("malformed JSON must not decode")
	}
	if _, ok := Decode(nil); ok {
		t.Error("nil input must not decode")
	}
}

func TestWireFormatFieldNames(t *testing.T) {
	t.Parallel()
	svc := New("k")
	raw, err := Encode(svc.Issue(testPayload()))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal wire form: %v", err)
	}
	for _, name := range []string{"bookingId", "bookingCode", "facilityId", "userId", "date", "startTime", "endTime", "timestamp", "signature"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("wire object missing field %q", name)
		}
	}

	decoded, ok := Decode(raw)
	if !ok {
		t.Fatal("Decode of wire form failed")
	}
	if !svc.Verify(decoded) {
		t.Error("decoded wire form must still verify")
	}
}
