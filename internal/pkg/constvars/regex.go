package constvars

const (
	RegexPersonName = `^[a-zA-Z\s]+$`

	// Separators stripped from phone numbers before matching.
	RegexPhoneSeparators = `[\s\-\(\)]`

	RegexPakistanPhoneWithPlus    = `^\+92\d{10}$`
	RegexPakistanPhoneCountryCode = `^92\d{10}$`
	RegexPakistanPhoneLocal       = `^03\d{9}$`
)
