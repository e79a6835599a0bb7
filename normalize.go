package inflect

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// niggahitaReplacer folds the dotted-above niggahīta used by some
// editions (ṁ, Ṁ) into the dotted-below form (ṃ) the tables use.
var niggahitaReplacer = strings.NewReplacer(
	"ṁ", "ṃ", // ṁ → ṃ
	"Ṁ", "Ṃ", // Ṁ → Ṃ
)

// stemMarkers are the marker characters the dictionary export puts into
// stems; they never belong to a surface form.
var stemMarkers = strings.NewReplacer("!", "", "*", "")

// NFC returns s in Unicode composed form, so that "a" followed by a
// combining macron compares equal to "ā".
func NFC(s string) string {
	return norm.NFC.String(s)
}

// CleanStem strips dictionary marker characters from a stem and
// normalizes its composition.
func CleanStem(stem string) string {
	return FoldNiggahita(NFC(stemMarkers.Replace(strings.TrimSpace(stem))))
}

// FoldNiggahita replaces ṁ with ṃ.
func FoldNiggahita(s string) string {
	return niggahitaReplacer.Replace(s)
}

// NormalizeForm prepares a spelling for comparison: trimmed, composed,
// lower-cased and with a uniform niggahīta.
func NormalizeForm(s string) string {
	return FoldNiggahita(strings.ToLower(NFC(strings.TrimSpace(s))))
}
