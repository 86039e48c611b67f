package variant

import "strings"

// maxPhoneticLen caps the emitted code length
const maxPhoneticLen = 6

// silentPrefixes are leading digraphs whose first letter is silent
var silentPrefixes = []string{"AE", "GN", "KN", "PN", "WR"}

// Metaphone produces an uppercase code of at most six characters summarizing
// how a word sounds. It is a single left-to-right scan with lookahead; each
// character maps through the digraph/context rules below before falling back
// to its single-letter code. Vowels are emitted only at position zero.
func Metaphone(word string) string {
	s := lettersUpper(word)
	if s == "" {
		return ""
	}
	for _, p := range silentPrefixes {
		if strings.HasPrefix(s, p) {
			s = s[1:]
			break
		}
	}

	var code []byte
	n := len(s)
	skip := 0
	for i := 0; i < n && len(code) < maxPhoneticLen; i++ {
		if skip > 0 {
			skip--
			continue
		}
		c := s[i]
		// Repeated letter immediately following itself is silent, except C
		if i > 0 && c == s[i-1] && c != 'C' {
			continue
		}
		next := at(s, i+1)
		after := at(s, i+2)

		switch c {
		case 'A', 'E', 'I', 'O', 'U':
			if i == 0 {
				code = append(code, c)
			}
		case 'C':
			switch {
			case next == 'H':
				code = append(code, 'X')
				skip = 1
			case next == 'E' || next == 'I' || next == 'Y':
				code = append(code, 'S')
			default:
				code = append(code, 'K')
			}
		case 'D':
			if next == 'G' && (after == 'E' || after == 'I' || after == 'Y') {
				code = append(code, 'J')
				skip = 1
			} else {
				code = append(code, 'T')
			}
		case 'G':
			switch {
			case next == 'H' && !isVowelByte(after):
				skip = 1 // silent GH
			case next == 'E' || next == 'I' || next == 'Y':
				code = append(code, 'J')
			default:
				code = append(code, 'K')
			}
		case 'H':
			// The audible digraphs (CH, GH, PH, SH, TH) consume their H
			// above; a remaining H only sounds between two vowels.
			if i > 0 && isVowelByte(s[i-1]) && isVowelByte(next) {
				code = append(code, 'H')
			}
		case 'K':
			if !(i > 0 && s[i-1] == 'C') { // CK keeps only the C's K
				code = append(code, 'K')
			}
		case 'P':
			if next == 'H' {
				code = append(code, 'F')
				skip = 1
			} else {
				code = append(code, 'P')
			}
		case 'Q':
			code = append(code, 'K')
		case 'S':
			switch {
			case next == 'H':
				code = append(code, 'X')
				skip = 1
			case next == 'I' && (after == 'A' || after == 'O'):
				code = append(code, 'X')
			default:
				code = append(code, 'S')
			}
		case 'T':
			switch {
			case next == 'H':
				code = append(code, '0') // placeholder for the "th" sound
				skip = 1
			case next == 'I' && (after == 'A' || after == 'O'):
				code = append(code, 'X')
			default:
				code = append(code, 'T')
			}
		case 'V':
			code = append(code, 'F')
		case 'W', 'Y':
			if isVowelByte(next) {
				code = append(code, c)
			}
		case 'X':
			code = append(code, 'K', 'S')
		case 'Z':
			code = append(code, 'S')
		default:
			code = append(code, c) // B, F, J, L, M, N, R
		}
	}
	if len(code) > maxPhoneticLen {
		code = code[:maxPhoneticLen]
	}
	return string(code)
}

// PhoneticVariants maps Metaphone over a token list, dropping empty codes.
func PhoneticVariants(tokens []string) []string {
	codes := []string{}
	for _, tok := range tokens {
		if code := Metaphone(tok); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// PhoneticSignature joins token codes with a single space. The signature is
// the unit compared by the similarity engine's sounds-like axis.
func PhoneticSignature(tokens []string) string {
	return strings.Join(PhoneticVariants(tokens), " ")
}

func lettersUpper(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range strings.ToUpper(word) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func at(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

func isVowelByte(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
