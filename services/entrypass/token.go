// Package entrypass issues and verifies the signed, time-limited tokens
// scanned at physical facility entry to prove a booking is valid.
package entrypass

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// TokenPayload is the literal wire object encoded into the scannable
// token. Signature is a 64-char lowercase-hex HMAC-SHA256 over the
// remaining fields; it is computed on demand, never stored.
type TokenPayload struct {
	BookingID   string `json:"bookingId"`
	BookingCode string `json:"bookingCode"`
	FacilityID  string `json:"facilityId"`
	UserID      string `json:"userId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Timestamp   string `json:"timestamp"` // RFC3339, stamped at issue time
	Signature   string `json:"signature,omitempty"`
}

// canonicalString serializes the signed fields in a fixed order so the
// same logical payload always signs identically. The field order must
// never change once tokens are in the field.
func canonicalString(p TokenPayload) string {
	return strings.Join([]string{
		p.BookingID,
		p.BookingCode,
		p.FacilityID,
		p.UserID,
		p.Date,
		p.StartTime,
		p.EndTime,
		p.Timestamp,
	}, "|")
}

// sign computes the lowercase-hex HMAC-SHA256 of the payload's
// canonical serialization.
func sign(p TokenPayload, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(canonicalString(p)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Decode parses the raw wire bytes of a scanned token. A parse failure
// reports (zero payload, false) rather than an error: the scanner
// always gets a definite reject.
func Decode(raw []byte) (TokenPayload, bool) {
	var p TokenPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return TokenPayload{}, false
	}
	return p, true
}

// Encode renders the payload as its JSON wire form.
func Encode(p TokenPayload) ([]byte, error) {
	return json.Marshal(p)
}
