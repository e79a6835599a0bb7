package inflect

import "strings"

// Curated abbreviations for combo keys. Values missing here fall back to
// their lower-cased name.
var (
	caseAbbr   = map[Case]string{Nominative: "nom", Accusative: "acc", Genitive: "gen", Dative: "dat", Instrumental: "instr", Ablative: "abl", Locative: "loc", Vocative: "voc"}
	genderAbbr = map[Gender]string{Masculine: "masc", Neuter: "nt", Feminine: "fem"}
	numberAbbr = map[Number]string{Singular: "sg", Plural: "pl"}
	personAbbr = map[Person]string{First: "1st", Second: "2nd", Third: "3rd"}
	tenseAbbr  = map[Tense]string{Present: "pr", Imperative: "imp", Optative: "opt", Future: "fut", Aorist: "aor"}
	voiceAbbr  = map[Voice]string{Active: "act", Reflexive: "reflx"}
)

func abbr[K interface {
	comparable
	String() string
}](table map[K]string, k K) string {
	if s, ok := table[k]; ok {
		return s
	}
	return strings.ToLower(k.String())
}

// ComboKey groups forms of the same cell, e.g. "nom_masc_sg". It is a
// label only and carries no identity.
func (c NounCell) ComboKey() string {
	return abbr(caseAbbr, c.Case) + "_" + abbr(genderAbbr, c.Gender) + "_" + abbr(numberAbbr, c.Number)
}

// ComboKey groups forms of the same cell, e.g. "pr_1st_sg_reflx".
func (c VerbCell) ComboKey() string {
	return strings.Join([]string{
		abbr(tenseAbbr, c.Tense),
		abbr(personAbbr, c.Person),
		abbr(numberAbbr, c.Number),
		abbr(voiceAbbr, c.Voice),
	}, "_")
}
