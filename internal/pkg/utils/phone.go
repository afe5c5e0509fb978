package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"regexp"
)

var (
	rePhoneSeparators    = regexp.MustCompile(constvars.RegexPhoneSeparators)
	rePhoneWithPlus      = regexp.MustCompile(constvars.RegexPakistanPhoneWithPlus)
	rePhoneCountryCode   = regexp.MustCompile(constvars.RegexPakistanPhoneCountryCode)
	rePhoneLocalNotation = regexp.MustCompile(constvars.RegexPakistanPhoneLocal)
)

// CleanPhoneNumber removes spaces, dashes and parentheses.
func CleanPhoneNumber(phone string) string {
	return rePhoneSeparators.ReplaceAllString(phone, "")
}

// IsValidPakistaniPhone accepts +92XXXXXXXXXX, 92XXXXXXXXXX and 03XXXXXXXXX.
func IsValidPakistaniPhone(phone string) bool {
	cleaned := CleanPhoneNumber(phone)
	return rePhoneWithPlus.MatchString(cleaned) ||
		rePhoneCountryCode.MatchString(cleaned) ||
		rePhoneLocalNotation.MatchString(cleaned)
}
