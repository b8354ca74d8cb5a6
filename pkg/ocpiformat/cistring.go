package ocpiformat

import "fmt"

// CiStringRule accepts strings made of printable ASCII characters only.
type CiStringRule struct{}

func (CiStringRule) Name() string { return NameCiString }

// Check reports whether every byte of s is in the range 0x20-0x7E.
// Multi-byte UTF-8 sequences always contain bytes >= 0x80 and are rejected.
func (CiStringRule) Check(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

func (CiStringRule) Message(field string) string {
	return fmt.Sprintf("%s must be a valid OCPI CiString (only printable ASCII characters allowed)", field)
}

func (r CiStringRule) Validate(field string, value any) Outcome {
	return evaluate(r, field, value)
}

// IsCiString reports whether s is a valid OCPI CiString.
func IsCiString(s string) bool {
	return CiStringRule{}.Check(s)
}

// EqualFoldCiString compares two CiStrings ignoring ASCII case.
// Unlike strings.EqualFold it does not apply Unicode folding, so the Kelvin
// sign never equals "k".
func EqualFoldCiString(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
