// Package whatsapp builds wa.me click-to-chat links with pre-filled messages.
package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me"

// Phone numbers carry a country code, so anything outside this digit
// range cannot be dialed internationally.
const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// BuildClickToChatURL returns a WhatsApp link that opens a chat with the
// message pre-filled. When phone has no digits the link opens WhatsApp
// without a contact and the user picks one manually.
func BuildClickToChatURL(message, phone string) string {
	encoded := encodeMessage(message)

	digits := FormatPhone(phone)
	if digits == "" {
		return baseURL + "?text=" + encoded
	}
	return baseURL + "/" + digits + "?text=" + encoded
}

// ValidatePhone reports whether phone contains a dialable international
// number once formatting characters are removed.
func ValidatePhone(phone string) bool {
	digits := len(FormatPhone(phone))
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

// FormatPhone strips everything except digits, the only form wa.me accepts.
func FormatPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeMessage percent-encodes the message for the text query parameter.
// Spaces become %20 rather than + so the link works in clients that do not
// apply form decoding.
func encodeMessage(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
