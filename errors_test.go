package sealbox

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTypedErrors_SentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"key length", &KeyLengthError{Got: 16}, ErrInvalidKeyLength},
		{"iv length", &IVLengthError{Got: 8}, ErrInvalidIVLength},
		{"tag length", &TagLengthError{Got: 64}, ErrInvalidTagLength},
		{"encoding", &EncodingError{Encoding: "base64"}, ErrInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}

			// Wrapping must not break matching.
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("wrapped error lost sentinel match: %v", wrapped)
			}
		})
	}
}

func TestTypedErrors_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"key length", &KeyLengthError{Got: 16}, []string{"16", "32"}},
		{"iv length", &IVLengthError{Got: 8}, []string{"8", "12"}},
		{"tag length", &TagLengthError{Got: 64}, []string{"64", "96", "128"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
		})
	}
}

func TestEncodingError_Unwrap(t *testing.T) {
	inner := errors.New("illegal character")
	err := &EncodingError{Encoding: "base64url", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("EncodingError does not unwrap to its cause")
	}

	if !strings.Contains(err.Error(), "base64url") {
		t.Errorf("message %q missing encoding name", err.Error())
	}
}

func TestAuthenticationFailure_NoDetail(t *testing.T) {
	// The authentication failure sentinel must not mention a cause.
	msg := ErrAuthenticationFailed.Error()
	for _, forbidden := range []string{"key", "iv", "nonce", "aad", "tamper", "tag"} {
		if strings.Contains(msg, forbidden) {
			t.Errorf("message %q leaks cause detail %q", msg, forbidden)
		}
	}
}
