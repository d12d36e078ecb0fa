package pipeline

import (
	"strings"
	"unicode"

	"github.com/ryanuber/go-glob"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/themuzzleflare/provenance/internal/models"
	"github.com/themuzzleflare/provenance/internal/types"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases a string and strips diacritics so that "Café" and
// "cafe" compare equal.
func fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// TransactionSearch matches transactions whose description, raw text
// or message contains the term, case- and diacritic-insensitive. An
// empty term matches everything.
func TransactionSearch(term string) Predicate[models.Transaction] {
	folded := fold(term)
	return func(t models.Transaction) bool {
		if folded == "" {
			return true
		}
		return strings.Contains(fold(t.Description), folded) ||
			strings.Contains(fold(t.RawText), folded) ||
			strings.Contains(fold(t.Message), folded)
	}
}

// TransactionMatch matches transaction descriptions against a glob
// pattern, e.g. "UBER*". An empty pattern matches everything.
func TransactionMatch(pattern string) Predicate[models.Transaction] {
	return func(t models.Transaction) bool {
		if pattern == "" {
			return true
		}
		return glob.Glob(fold(pattern), fold(t.Description))
	}
}

// TransactionCategory matches transactions in the selected category,
// either directly or through the parent. An empty selection means All.
func TransactionCategory(categoryID string) Predicate[models.Transaction] {
	return func(t models.Transaction) bool {
		if categoryID == "" {
			return true
		}
		return t.CategoryID == categoryID || t.ParentCategoryID == categoryID
	}
}

// TransactionSettledOnly matches settled transactions when enabled,
// everything otherwise.
func TransactionSettledOnly(settledOnly bool) Predicate[models.Transaction] {
	return func(t models.Transaction) bool {
		return t.IsSettled() || !settledOnly
	}
}

// TagSearch matches tag labels containing the term, case- and
// diacritic-insensitive.
func TagSearch(term string) Predicate[models.Tag] {
	folded := fold(term)
	return func(t models.Tag) bool {
		return folded == "" || strings.Contains(fold(t.ID), folded)
	}
}

// TransactionDay groups transactions by the calendar day of their
// creation in the local timezone at the moment of computation.
func TransactionDay(t models.Transaction) types.Day {
	return types.DayOf(t.CreatedAt.Local())
}

// TagLetter groups tags by the uppercased first character of their
// label.
func TagLetter(t models.Tag) string {
	for _, r := range t.ID {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// DaysDescending orders day sections most recent first.
func DaysDescending(a, b types.Day) int {
	switch {
	case a.After(b):
		return -1
	case b.After(a):
		return 1
	default:
		return 0
	}
}

// LettersAscending orders letter sections alphabetically.
func LettersAscending(a, b string) int {
	return strings.Compare(a, b)
}
