package gqlstrings

import (
	"errors"
	"strings"
)

// NameCases holds the derived spellings of a model name. Every generated
// type and operation name is built from one of these, so they are computed
// once per model.
type NameCases struct {
	SnakeCase       string // "company_profile"
	PluralSnakeCase string // "company_profiles"
	CamelCase       string // "companyProfile"
	PluralCamelCase string // "companyProfiles"
	PascalCase      string // "CompanyProfile"
	PluralPascal    string // "CompanyProfiles"
}

// NamesFor derives the NameCases for a model name. plural defaults to
// name+"s" when empty. prefix and suffix are folded into every derived
// name: lowercased (snake/camel) or capitalized (pascal) as appropriate.
func NamesFor(name, plural, prefix, suffix string) (NameCases, error) {
	if name == "" {
		return NameCases{}, errors.New("gqlstrings: model name cannot be empty")
	}
	if plural == "" {
		plural = name + "s"
	}

	pascal := ToPascalCase(name)
	pluralPascal := ToPascalCase(plural)

	prefixLower := strings.ToLower(prefix)
	prefixCap := capitalize(prefix)
	suffixLower := strings.ToLower(suffix)
	suffixCap := capitalize(suffix)

	snake := joinSnake(prefixLower, ToSnakeCase(pascal), suffixLower)
	pluralSnake := joinSnake(prefixLower, ToSnakeCase(pluralPascal), suffixLower)

	// With a prefix the camel spelling keeps the model part Pascal so the
	// word boundary survives: "app" + "User" -> "appUser".
	camel := ToLowerCamel(pascal) + suffixCap
	pluralCamel := ToLowerCamel(pluralPascal) + suffixCap
	if prefix != "" {
		camel = prefixLower + pascal + suffixCap
		pluralCamel = prefixLower + pluralPascal + suffixCap
	}

	return NameCases{
		SnakeCase:       snake,
		PluralSnakeCase: pluralSnake,
		CamelCase:       camel,
		PluralCamelCase: pluralCamel,
		PascalCase:      prefixCap + pascal + suffixCap,
		PluralPascal:    prefixCap + pluralPascal + suffixCap,
	}, nil
}

func joinSnake(prefix, body, suffix string) string {
	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, body)
	if suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, "_")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
