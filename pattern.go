package inflect

import (
	"fmt"
	"strings"
)

// Kind classifies a pattern.
//
//   - Base patterns combine a stem with their own ending table.
//   - Variant patterns combine a stem with an alternate ending table.
//   - Irregular patterns list complete surface forms.
//
// Variant and Irregular patterns resolve gender through their parent Base
// pattern.
type Kind int

const (
	kindNone Kind = iota
	Base
	Variant
	Irregular
)

func (k Kind) String() string {
	switch k {
	case Base:
		return "base"
	case Variant:
		return "variant"
	case Irregular:
		return "irregular"
	default:
		return "none"
	}
}

// Pattern is implemented by NounPattern and VerbPattern.
type Pattern interface {
	fmt.Stringer
	Kind() Kind
	Class() WordClass
}

// NounPattern identifies a declension pattern from the closed catalog.
type NounPattern int

const (
	NounPatternNone NounPattern = iota

	AMasc
	IMasc
	ILongMasc
	UMasc
	ULongMasc
	AsMasc
	ArMasc
	AntMasc
	ALongFem
	IFem
	ILongFem
	UFem
	ArFem
	ANt
	INt
	UNt

	AMascEast
	AMascPl
	A2Masc
	ILongMascPl
	UMascPl
	Ar2Masc
	AntaMasc
	ANtEast
	ANtIrreg
	ANtPl

	RajaMasc
	BrahmaMasc
	AddhaMasc
	GoMasc
	YuvaMasc
	JantuMasc
	ArahantMasc
	BhavantMasc
	SantaMasc
	ParisaFem
	JatiFem
	RattiFem
	NadiFem
	PokkharaniFem
	MatarFem
	KammaNt

	nounPatternEnd
)

// VerbPattern identifies a present-system conjugation pattern.
type VerbPattern int

const (
	VerbPatternNone VerbPattern = iota

	AtiPr
	ALongTiPr
	EtiPr
	OtiPr

	HotiPr
	AtthiPr
	KarotiPr
	BrutiPr
	DakkhatiPr
	DammiPr
	HanatiPr
	KubbatiPr
	NatthiPr
	EtiPr2

	verbPatternEnd
)

type nounEntry struct {
	label      string
	kind       Kind
	gender     Gender      // Base and Variant only
	parent     NounPattern // Variant and Irregular only
	pluralOnly bool
}

type verbEntry struct {
	label  string
	kind   Kind
	parent VerbPattern
}

func nounBase(label string, g Gender) nounEntry {
	return nounEntry{label: label, kind: Base, gender: g}
}

func nounVariant(label string, parent NounPattern, g Gender) nounEntry {
	return nounEntry{label: label, kind: Variant, gender: g, parent: parent}
}

func nounIrregular(label string, parent NounPattern) nounEntry {
	return nounEntry{label: label, kind: Irregular, parent: parent}
}

var nounCatalog = [nounPatternEnd]nounEntry{
	AMasc:     nounBase("a masc", Masculine),
	IMasc:     nounBase("i masc", Masculine),
	ILongMasc: nounBase("ī masc", Masculine),
	UMasc:     nounBase("u masc", Masculine),
	ULongMasc: nounBase("ū masc", Masculine),
	AsMasc:    nounBase("as masc", Masculine),
	ArMasc:    nounBase("ar masc", Masculine),
	AntMasc:   nounBase("ant masc", Masculine),
	ALongFem:  nounBase("ā fem", Feminine),
	IFem:      nounBase("i fem", Feminine),
	ILongFem:  nounBase("ī fem", Feminine),
	UFem:      nounBase("u fem", Feminine),
	ArFem:     nounBase("ar fem", Feminine),
	ANt:       nounBase("a nt", Neuter),
	INt:       nounBase("i nt", Neuter),
	UNt:       nounBase("u nt", Neuter),

	AMascEast:   nounVariant("a masc east", AMasc, Masculine),
	AMascPl:     {label: "a masc pl", kind: Variant, gender: Masculine, parent: AMasc, pluralOnly: true},
	A2Masc:      nounVariant("a2 masc", AMasc, Masculine),
	ILongMascPl: {label: "ī masc pl", kind: Variant, gender: Masculine, parent: ILongMasc, pluralOnly: true},
	UMascPl:     {label: "u masc pl", kind: Variant, gender: Masculine, parent: UMasc, pluralOnly: true},
	Ar2Masc:     nounVariant("ar2 masc", ArMasc, Masculine),
	AntaMasc:    nounVariant("anta masc", AntMasc, Masculine),
	ANtEast:     nounVariant("a nt east", ANt, Neuter),
	ANtIrreg:    nounVariant("a nt irreg", ANt, Neuter),
	ANtPl:       {label: "a nt pl", kind: Variant, gender: Neuter, parent: ANt, pluralOnly: true},

	RajaMasc:      nounIrregular("rāja masc", AMasc),
	BrahmaMasc:    nounIrregular("brahma masc", AMasc),
	AddhaMasc:     nounIrregular("addha masc", AMasc),
	GoMasc:        nounIrregular("go masc", AMasc),
	YuvaMasc:      nounIrregular("yuva masc", AMasc),
	JantuMasc:     nounIrregular("jantu masc", UMasc),
	ArahantMasc:   nounIrregular("arahant masc", AntMasc),
	BhavantMasc:   nounIrregular("bhavant masc", AntMasc),
	SantaMasc:     nounIrregular("santa masc", AntMasc),
	ParisaFem:     nounIrregular("parisā fem", ALongFem),
	JatiFem:       nounIrregular("jāti fem", IFem),
	RattiFem:      nounIrregular("ratti fem", IFem),
	NadiFem:       nounIrregular("nadī fem", ILongFem),
	PokkharaniFem: nounIrregular("pokkharaṇī fem", ILongFem),
	MatarFem:      nounIrregular("mātar fem", ArFem),
	KammaNt:       nounIrregular("kamma nt", ANt),
}

var verbCatalog = [verbPatternEnd]verbEntry{
	AtiPr:     {label: "ati pr", kind: Base},
	ALongTiPr: {label: "āti pr", kind: Base},
	EtiPr:     {label: "eti pr", kind: Base},
	OtiPr:     {label: "oti pr", kind: Base},

	HotiPr:     {label: "hoti pr", kind: Irregular, parent: AtiPr},
	AtthiPr:    {label: "atthi pr", kind: Irregular, parent: AtiPr},
	KarotiPr:   {label: "karoti pr", kind: Irregular, parent: OtiPr},
	BrutiPr:    {label: "brūti pr", kind: Irregular, parent: OtiPr},
	DakkhatiPr: {label: "dakkhati pr", kind: Irregular, parent: AtiPr},
	DammiPr:    {label: "dammi pr", kind: Irregular, parent: AtiPr},
	HanatiPr:   {label: "hanati pr", kind: Irregular, parent: AtiPr},
	KubbatiPr:  {label: "kubbati pr", kind: Irregular, parent: AtiPr},
	NatthiPr:   {label: "natthi pr", kind: Irregular, parent: AtiPr},
	EtiPr2:     {label: "eti pr 2", kind: Irregular, parent: EtiPr},
}

// label lookups are filled once in init and never written afterwards
var (
	nounLabels = make(map[string]NounPattern, len(nounCatalog))
	verbLabels = make(map[string]VerbPattern, len(verbCatalog))
)

func init() {
	for p := NounPattern(1); p < nounPatternEnd; p++ {
		nounLabels[normalizeLabel(nounCatalog[p].label)] = p
	}
	for p := VerbPattern(1); p < verbPatternEnd; p++ {
		verbLabels[normalizeLabel(verbCatalog[p].label)] = p
	}
}

// normalizeLabel folds spacing and Unicode composition so that labels
// copied from dictionary exports with decomposed diacritics still match.
func normalizeLabel(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(NFC(label))), " ")
}

// ParseNounPattern maps a dictionary label such as "a masc" to its pattern.
func ParseNounPattern(label string) (NounPattern, error) {
	if p, ok := nounLabels[normalizeLabel(label)]; ok {
		return p, nil
	}
	return NounPatternNone, &UnknownPatternLabelError{Label: label}
}

// ParseVerbPattern maps a dictionary label such as "ati pr" to its pattern.
func ParseVerbPattern(label string) (VerbPattern, error) {
	if p, ok := verbLabels[normalizeLabel(label)]; ok {
		return p, nil
	}
	return VerbPatternNone, &UnknownPatternLabelError{Label: label}
}

// ParsePattern resolves a label against both catalogs.
func ParsePattern(label string) (Pattern, error) {
	key := normalizeLabel(label)
	if p, ok := nounLabels[key]; ok {
		return p, nil
	}
	if p, ok := verbLabels[key]; ok {
		return p, nil
	}
	return nil, &UnknownPatternLabelError{Label: label}
}

// NounPatterns returns the noun catalog in declaration order.
func NounPatterns() []NounPattern {
	ans := make([]NounPattern, 0, nounPatternEnd-1)
	for p := NounPattern(1); p < nounPatternEnd; p++ {
		ans = append(ans, p)
	}
	return ans
}

// VerbPatterns returns the verb catalog in declaration order.
func VerbPatterns() []VerbPattern {
	ans := make([]VerbPattern, 0, verbPatternEnd-1)
	for p := VerbPattern(1); p < verbPatternEnd; p++ {
		ans = append(ans, p)
	}
	return ans
}

// entry panics for values outside the catalog: such a value must never
// reach lemma data.
func (p NounPattern) entry() nounEntry {
	if p <= NounPatternNone || p >= nounPatternEnd {
		panic(fmt.Sprintf("inflect: noun pattern %d is not a catalog entry", int(p)))
	}
	return nounCatalog[p]
}

func (p NounPattern) valid() bool {
	return p > NounPatternNone && p < nounPatternEnd
}

func (p NounPattern) String() string {
	if p == NounPatternNone {
		return "none"
	}
	if !p.valid() {
		return fmt.Sprintf("NounPattern(%d)", int(p))
	}
	return nounCatalog[p].label
}

func (p NounPattern) Class() WordClass {
	return Noun
}

func (p NounPattern) Kind() Kind {
	return p.entry().kind
}

// Parent returns the Base pattern p derives from. A Base pattern is its
// own parent.
func (p NounPattern) Parent() NounPattern {
	e := p.entry()
	if e.kind == Base {
		return p
	}
	return e.parent
}

// Gender is stored on Base and Variant patterns; Irregular patterns take
// it from their parent.
func (p NounPattern) Gender() Gender {
	e := p.entry()
	if e.gender != GenderNone {
		return e.gender
	}
	return nounCatalog[e.parent].gender
}

// IsPluralOnly reports pluralia tantum patterns ("a masc pl" etc.).
func (p NounPattern) IsPluralOnly() bool {
	return p.entry().pluralOnly
}

// Is reports whether p is base or derives from it.
func (p NounPattern) Is(base NounPattern) bool {
	return p == base || p.Parent() == base
}

func (p VerbPattern) entry() verbEntry {
	if p <= VerbPatternNone || p >= verbPatternEnd {
		panic(fmt.Sprintf("inflect: verb pattern %d is not a catalog entry", int(p)))
	}
	return verbCatalog[p]
}

func (p VerbPattern) valid() bool {
	return p > VerbPatternNone && p < verbPatternEnd
}

func (p VerbPattern) String() string {
	if p == VerbPatternNone {
		return "none"
	}
	if !p.valid() {
		return fmt.Sprintf("VerbPattern(%d)", int(p))
	}
	return verbCatalog[p].label
}

func (p VerbPattern) Class() WordClass {
	return Verb
}

func (p VerbPattern) Kind() Kind {
	return p.entry().kind
}

// Parent returns the regular pattern an irregular verb is grouped under.
func (p VerbPattern) Parent() VerbPattern {
	e := p.entry()
	if e.kind == Base {
		return p
	}
	return e.parent
}

// Is reports whether p is base or derives from it.
func (p VerbPattern) Is(base VerbPattern) bool {
	return p == base || p.Parent() == base
}
