package token

// IsValid reports whether s has the shape of a generated key: a
// lowercase letter followed by base-36 characters, with a total length
// between MinLength and MaxLength.
//
// A valid shape does not prove the key came from this generator; the
// check is structural only.
func IsValid(s string) bool {
	if len(s) < MinLength || len(s) > MaxLength {
		return false
	}
	if s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
