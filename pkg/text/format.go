package text

import "strings"

// DefaultPhonePrefix is the link scheme prepended by Phone.
const DefaultPhonePrefix = "tel:"

var phoneReplacer = strings.NewReplacer("(0)", "", "+", "00")

// NormalizePhone drops a "(0)" trunk marker, turns "+" into "00" and strips
// every other non-digit.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phoneReplacer.Replace(phone), "")
}

// Phone converts a human written phone number into a dialable link target.
//
// If countryCode is set, a national number starting with a single zero is
// made international. prefix is prepended when non-empty. An input without
// digits yields "".
//
//	Phone("+41 (0)79 123 45 67", "", "tel:") // "tel:0041791234567"
//	Phone("079 123 45 67", "+41", "tel:")    // "tel:0041791234567"
func Phone(number, countryCode, prefix string) string {
	digits := NormalizePhone(number)
	if digits == "" {
		return ""
	}

	if countryCode != "" {
		code := strings.ReplaceAll(strings.TrimSpace(countryCode), "+", "00")
		digits = leadingZeroRegex.ReplaceAllString(digits, code+"${1}")
	}

	return prefix + digits
}
