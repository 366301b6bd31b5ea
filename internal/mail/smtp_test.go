package mail

import (
	"strings"
	"testing"
	"time"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("Car Rental <noreply@example.com>", "a@x.com", "Your Booking OTP", "body text")

	lines := strings.Split(msg, "\r\n")
	if lines[0] != "From: Car Rental <noreply@example.com>" {
		t.Fatalf("from header = %q", lines[0])
	}
	if !strings.Contains(msg, "To: a@x.com") || !strings.Contains(msg, "Subject: Your Booking OTP") {
		t.Fatalf("headers missing from %q", msg)
	}
	if !strings.HasSuffix(msg, "\r\n\r\nbody text") {
		t.Fatalf("body not separated by blank line: %q", msg)
	}
}

func TestParseAddress(t *testing.T) {
	cases := map[string]string{
		"Car Rental <noreply@example.com>": "noreply@example.com",
		"noreply@example.com":              "noreply@example.com",
		" bare@example.com ":               "bare@example.com",
	}
	for in, want := range cases {
		if got := parseAddress(in); got != want {
			t.Errorf("parseAddress(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatValidity(t *testing.T) {
	if got := formatValidity(5 * time.Minute); got != "5 minutes" {
		t.Fatalf("5m formatted as %q", got)
	}
	if got := formatValidity(30 * time.Second); got != "1 minute" {
		t.Fatalf("30s formatted as %q", got)
	}
}
