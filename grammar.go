package inflect

// Case is the noun case axis.
type Case int

const (
	CaseNone Case = iota
	Nominative
	Accusative
	Genitive
	Dative
	Instrumental
	Ablative
	Locative
	Vocative
)

// Cases lists the eight cases in paradigm order.
var Cases = []Case{
	Nominative, Accusative, Genitive, Dative,
	Instrumental, Ablative, Locative, Vocative,
}

func (c Case) String() string {
	switch c {
	case Nominative:
		return "Nominative"
	case Accusative:
		return "Accusative"
	case Genitive:
		return "Genitive"
	case Dative:
		return "Dative"
	case Instrumental:
		return "Instrumental"
	case Ablative:
		return "Ablative"
	case Locative:
		return "Locative"
	case Vocative:
		return "Vocative"
	default:
		return "None"
	}
}

// Gender of a noun. A noun lemma has exactly one gender, taken from its pattern.
type Gender int

const (
	GenderNone Gender = iota
	Masculine
	Neuter
	Feminine
)

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "Masculine"
	case Neuter:
		return "Neuter"
	case Feminine:
		return "Feminine"
	default:
		return "None"
	}
}

// Number is shared by nouns and verbs.
type Number int

const (
	NumberNone Number = iota
	Singular
	Plural
)

// Numbers lists singular and plural.
var Numbers = []Number{Singular, Plural}

func (n Number) String() string {
	switch n {
	case Singular:
		return "Singular"
	case Plural:
		return "Plural"
	default:
		return "None"
	}
}

type Person int

const (
	PersonNone Person = iota
	First
	Second
	Third
)

// Persons lists the three persons.
var Persons = []Person{First, Second, Third}

func (p Person) String() string {
	switch p {
	case First:
		return "First"
	case Second:
		return "Second"
	case Third:
		return "Third"
	default:
		return "None"
	}
}

// Tense includes the imperative and optative moods, following the
// traditional Pali grammar layout.
type Tense int

const (
	TenseNone Tense = iota
	Present
	Imperative
	Optative
	Future
	Aorist
)

// Tenses lists all tenses in paradigm order.
var Tenses = []Tense{Present, Imperative, Optative, Future, Aorist}

func (t Tense) String() string {
	switch t {
	case Present:
		return "Present"
	case Imperative:
		return "Imperative"
	case Optative:
		return "Optative"
	case Future:
		return "Future"
	case Aorist:
		return "Aorist"
	default:
		return "None"
	}
}

// Voice distinguishes active (parassapada) from reflexive (attanopada)
// endings. Passive and Causative exist in the identifier space but no
// pattern in the catalog generates them.
type Voice int

const (
	VoiceNone Voice = iota
	Active
	Reflexive
	Passive
	Causative
)

// ParadigmVoices are the voices generated by the verb tables.
var ParadigmVoices = []Voice{Active, Reflexive}

func (v Voice) String() string {
	switch v {
	case Active:
		return "Active"
	case Reflexive:
		return "Reflexive"
	case Passive:
		return "Passive"
	case Causative:
		return "Causative"
	default:
		return "None"
	}
}

// WordClass tells nouns from verbs.
type WordClass int

const (
	UnknownClass WordClass = iota
	Noun
	Verb
)

func (w WordClass) String() string {
	switch w {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	default:
		return "unknown"
	}
}

// NounCell identifies one declension cell independent of spelling.
type NounCell struct {
	Case   Case
	Gender Gender
	Number Number
}

// VerbCell identifies one conjugation cell independent of spelling.
type VerbCell struct {
	Tense  Tense
	Person Person
	Number Number
	Voice  Voice
}
