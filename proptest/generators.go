package proptest

// Charsets for string generation
const (
	CharsetAlpha      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetAlphaLower = "abcdefghijklmnopqrstuvwxyz"
	CharsetDigits     = "0123456789"
	CharsetAlphaNum   = CharsetAlpha + CharsetDigits
	CharsetPrintable  = CharsetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	CharsetIdentStart = CharsetAlpha + "_"
	CharsetIdentBody  = CharsetAlphaNum + "_"
)

// IntRange returns a random int in [min, max].
// Panics if min > max.
func (g *Generator) IntRange(min, max int) int {
	if min > max {
		panic("proptest: IntRange min > max")
	}
	if min == max {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}

// IntPositive returns a random positive int in [1, max].
func (g *Generator) IntPositive(max int) int {
	return g.IntRange(1, max)
}

// String returns a random printable ASCII string of length [0, maxLen].
func (g *Generator) String(maxLen int) string {
	return g.StringFrom(CharsetPrintable, maxLen)
}

// StringAlpha returns a random alphabetic string (a-zA-Z) of length [0, maxLen].
func (g *Generator) StringAlpha(maxLen int) string {
	return g.StringFrom(CharsetAlpha, maxLen)
}

// StringAlphaLower returns a random lowercase alphabetic string of length [0, maxLen].
func (g *Generator) StringAlphaLower(maxLen int) string {
	return g.StringFrom(CharsetAlphaLower, maxLen)
}

// StringFrom returns a random string using characters from the given charset,
// with length [0, maxLen].
func (g *Generator) StringFrom(charset string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	length := g.Intn(maxLen + 1)
	return g.stringOfLen(charset, length)
}

// StringFromN returns a random string using characters from the given charset,
// with length [minLen, maxLen].
func (g *Generator) StringFromN(charset string, minLen, maxLen int) string {
	if minLen > maxLen {
		panic("proptest: StringFromN minLen > maxLen")
	}
	length := g.IntRange(minLen, maxLen)
	return g.stringOfLen(charset, length)
}

// stringOfLen returns a string of exactly the given length from charset.
func (g *Generator) stringOfLen(charset string, length int) string {
	if length == 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[g.Intn(len(charset))]
	}
	return string(b)
}

// Identifier returns a valid identifier (starts with letter or underscore,
// followed by alphanumeric or underscore) of length [1, maxLen].
func (g *Generator) Identifier(maxLen int) string {
	if maxLen <= 0 {
		maxLen = 1
	}
	length := g.IntRange(1, maxLen)

	b := make([]byte, length)
	b[0] = CharsetIdentStart[g.Intn(len(CharsetIdentStart))]
	for i := 1; i < length; i++ {
		b[i] = CharsetIdentBody[g.Intn(len(CharsetIdentBody))]
	}
	return string(b)
}

// IdentifierLower returns a valid lowercase identifier of length [1, maxLen].
func (g *Generator) IdentifierLower(maxLen int) string {
	if maxLen <= 0 {
		maxLen = 1
	}
	length := g.IntRange(1, maxLen)

	const startChars = CharsetAlphaLower + "_"
	const bodyChars = CharsetAlphaLower + CharsetDigits + "_"

	b := make([]byte, length)
	b[0] = startChars[g.Intn(len(startChars))]
	for i := 1; i < length; i++ {
		b[i] = bodyChars[g.Intn(len(bodyChars))]
	}
	return string(b)
}

// PascalWord returns a capitalized alphabetic word of length [1, maxLen],
// suitable as one word of a PascalCase type name.
func (g *Generator) PascalWord(maxLen int) string {
	if maxLen <= 0 {
		maxLen = 1
	}
	const upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	length := g.IntRange(1, maxLen)
	b := make([]byte, length)
	b[0] = upper[g.Intn(len(upper))]
	for i := 1; i < length; i++ {
		b[i] = CharsetAlphaLower[g.Intn(len(CharsetAlphaLower))]
	}
	return string(b)
}
