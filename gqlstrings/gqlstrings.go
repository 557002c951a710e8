// Package gqlstrings provides string manipulation utilities for GraphQL
// schema generation, including case conversion and pluralization helpers.
package gqlstrings

import (
	"strings"
	"unicode"
)

// ToPascalCase converts a snake_case, kebab-case or camelCase string to
// PascalCase. Examples:
//
//	"user_id" -> "UserId"
//	"order-item" -> "OrderItem"
//	"personProfile" -> "PersonProfile"
func ToPascalCase(s string) string {
	if s == "" {
		return s
	}
	sep := separator(s)
	if sep == "" {
		return strings.ToUpper(s[:1]) + s[1:]
	}
	parts := strings.Split(s, sep)
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "")
}

// ToLowerCamel converts a PascalCase, snake_case or kebab-case string to
// lowerCamelCase. Examples:
//
//	"ReadUser" -> "readUser"
//	"first_name" -> "firstName"
func ToLowerCamel(s string) string {
	if s == "" {
		return s
	}
	pascal := ToPascalCase(s)
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// ToSnakeCase converts a PascalCase or camelCase string to snake_case.
// Examples:
//
//	"UserID" -> "user_id"
//	"CreatedAt" -> "created_at"
//	"searchOrderItems" -> "search_order_items"
func ToSnakeCase(s string) string {
	var result strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '_':
			result.WriteRune('_')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			result.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return result.String()
}

// ToKebabCase converts a string in any supported case to kebab-case.
// Examples:
//
//	"OrderItem" -> "order-item"
//	"first_name" -> "first-name"
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(s), "_", "-")
}

// separator reports the word separator used by s, if any.
// Space wins over underscore, underscore over hyphen, matching the
// precedence used by name derivation.
func separator(s string) string {
	switch {
	case strings.Contains(s, " "):
		return " "
	case strings.Contains(s, "_"):
		return "_"
	case strings.Contains(s, "-"):
		return "-"
	default:
		return ""
	}
}

// ToSingular converts a plural English word to its singular form.
// This is a simple implementation that handles common cases.
// Examples:
//
//	"users" -> "user"
//	"categories" -> "category"
//	"addresses" -> "address"
//	"people" -> "person"
func ToSingular(s string) string {
	irregulars := map[string]string{
		"children": "child",
		"people":   "person",
		"men":      "man",
		"women":    "woman",
		"teeth":    "tooth",
		"feet":     "foot",
		"geese":    "goose",
		"mice":     "mouse",
		"indices":  "index",
		"matrices": "matrix",
		"vertices": "vertex",
		"quizzes":  "quiz",
	}

	lower := strings.ToLower(s)
	if singular, ok := irregulars[lower]; ok {
		if len(s) > 0 && unicode.IsUpper(rune(s[0])) {
			return strings.ToUpper(singular[:1]) + singular[1:]
		}
		return singular
	}

	if strings.HasSuffix(s, "ies") && len(s) > 3 {
		// categories -> category
		return s[:len(s)-3] + "y"
	}
	if strings.HasSuffix(s, "zzes") && len(s) > 4 {
		// buzzes -> buzz (quizzes is handled above)
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "ses") || strings.HasSuffix(s, "xes") ||
		strings.HasSuffix(s, "ches") || strings.HasSuffix(s, "shes") {
		// addresses -> address, boxes -> box
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "s") && len(s) > 1 {
		// users -> user
		return s[:len(s)-1]
	}

	return s
}

// ToPlural converts a singular English word to its plural form.
// This is a simple implementation that handles common cases.
// Examples:
//
//	"user" -> "users"
//	"category" -> "categories"
//	"address" -> "addresses"
//	"person" -> "people"
func ToPlural(s string) string {
	irregulars := map[string]string{
		"child":  "children",
		"person": "people",
		"man":    "men",
		"woman":  "women",
		"tooth":  "teeth",
		"foot":   "feet",
		"goose":  "geese",
		"mouse":  "mice",
		"index":  "indices",
		"matrix": "matrices",
		"vertex": "vertices",
		"quiz":   "quizzes",
	}

	lower := strings.ToLower(s)
	if plural, ok := irregulars[lower]; ok {
		if len(s) > 0 && unicode.IsUpper(rune(s[0])) {
			return strings.ToUpper(plural[:1]) + plural[1:]
		}
		return plural
	}

	if strings.HasSuffix(s, "y") && len(s) > 1 {
		prev := s[len(s)-2]
		if prev != 'a' && prev != 'e' && prev != 'i' && prev != 'o' && prev != 'u' {
			// category -> categories
			return s[:len(s)-1] + "ies"
		}
	}
	if strings.HasSuffix(s, "s") || strings.HasSuffix(s, "x") ||
		strings.HasSuffix(s, "z") ||
		strings.HasSuffix(s, "ch") || strings.HasSuffix(s, "sh") {
		// address -> addresses, box -> boxes
		return s + "es"
	}

	return s + "s"
}

// CamelizeKeys returns a copy of m with every key converted to
// lowerCamelCase. Used to normalize backend error maps to GraphQL
// field naming.
func CamelizeKeys(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[ToLowerCamel(k)] = v
	}
	return out
}
