package integrations

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultTimeout bounds every outbound provider call unless an adapter
	// applies its own deadline.
	DefaultTimeout = 30 * time.Second

	// MemeSuffix is appended to every free-text query before dispatch to
	// bias generic image search toward meme content.
	MemeSuffix = " meme"

	// UserAgent identifies memelab to provider APIs.
	UserAgent = "memelab/1.0 (https://github.com/matzehuels/memelab)"

	maxErrorBody = 512
)

var (
	// ErrNetwork is returned for transport failures (timeouts, connection errors).
	ErrNetwork = errors.New("network error")

	// ErrStatus is returned for non-2xx responses without a more specific cause.
	ErrStatus = errors.New("unexpected status")

	// ErrUnauthorized is returned when the provider rejects the credential.
	ErrUnauthorized = errors.New("credential rejected")

	// ErrRateLimited is returned when the provider answers 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrDecode is returned when a 2xx response body is not valid JSON.
	ErrDecode = errors.New("malformed response")
)

// NewHTTPClient creates a resty client with the standard timeout and
// User-Agent for provider requests.
func NewHTTPClient() *resty.Client {
	return resty.New().
		SetTimeout(DefaultTimeout).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json")
}

// WithMemeSuffix returns query with [MemeSuffix] appended.
func WithMemeSuffix(query string) string {
	return strings.TrimSpace(query) + MemeSuffix
}

// FlexInt decodes a JSON number, a numeric string or null into an int.
// Anything else decodes to zero instead of failing the whole response,
// so callers can apply their own fallback.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = 0
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		data = []byte(strings.TrimSpace(s))
	}
	if f, err := strconv.ParseFloat(string(data), 64); err == nil {
		*n = FlexInt(f)
	}
	return nil
}

// Int returns n as an int.
func (n FlexInt) Int() int { return int(n) }

// FlexString decodes a JSON string and tolerates any other JSON value by
// decoding it to the empty string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = FlexString(v)
	return nil
}

// String returns s as a string.
func (s FlexString) String() string { return string(s) }

// FirstNonEmpty returns the first non-empty value.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
