package inflect

// Ending tables for Base and Variant patterns. Every candidate is a suffix
// appended to the lemma's stem; the order inside a cell is the declared
// order that EndingIDs follow.

var aMasc = nounTable{
	Nominative:   {{"o"}, {"ā", "āse"}},
	Accusative:   {{"aṃ"}, {"e"}},
	Genitive:     {{"assa"}, {"ānaṃ"}},
	Dative:       {{"assa", "āya", "atthaṃ"}, {"ānaṃ"}},
	Instrumental: {{"ena"}, {"ehi", "ebhi"}},
	Ablative:     {{"ā", "amhā", "asmā", "ato"}, {"ehi", "ebhi"}},
	Locative:     {{"e", "amhi", "asmiṃ"}, {"esu"}},
	Vocative:     {{"a", "ā"}, {"ā"}},
}

var iMasc = nounTable{
	Nominative:   {{"i"}, {"ī", "ayo"}},
	Accusative:   {{"iṃ"}, {"ī", "ayo"}},
	Genitive:     {{"issa", "ino"}, {"īnaṃ", "inaṃ"}},
	Dative:       {{"issa", "ino"}, {"īnaṃ", "inaṃ"}},
	Instrumental: {{"inā"}, {"īhi", "ībhi"}},
	Ablative:     {{"inā", "imhā", "ismā"}, {"īhi", "ībhi"}},
	Locative:     {{"imhi", "ismiṃ"}, {"īsu", "isu"}},
	Vocative:     {{"i"}, {"ī", "ayo"}},
}

var iLongMasc = nounTable{
	Nominative:   {{"ī"}, {"ī", "ino"}},
	Accusative:   {{"iṃ", "inaṃ"}, {"ī", "ino"}},
	Genitive:     {{"issa", "ino"}, {"īnaṃ"}},
	Dative:       {{"issa", "ino"}, {"īnaṃ"}},
	Instrumental: {{"inā"}, {"īhi", "ībhi"}},
	Ablative:     {{"inā", "imhā", "ismā"}, {"īhi", "ībhi"}},
	Locative:     {{"ini", "imhi", "ismiṃ"}, {"īsu"}},
	Vocative:     {{"i", "ī"}, {"ī", "ino"}},
}

var uMasc = nounTable{
	Nominative:   {{"u"}, {"ū", "avo"}},
	Accusative:   {{"uṃ"}, {"ū", "avo"}},
	Genitive:     {{"ussa", "uno"}, {"ūnaṃ"}},
	Dative:       {{"ussa", "uno"}, {"ūnaṃ"}},
	Instrumental: {{"unā"}, {"ūhi", "ūbhi"}},
	Ablative:     {{"unā", "umhā", "usmā"}, {"ūhi", "ūbhi"}},
	Locative:     {{"umhi", "usmiṃ"}, {"ūsu"}},
	Vocative:     {{"u"}, {"ū", "ave", "avo"}},
}

var uLongMasc = nounTable{
	Nominative:   {{"ū"}, {"ū", "uno"}},
	Accusative:   {{"uṃ"}, {"ū", "uno"}},
	Genitive:     {{"ussa", "uno"}, {"ūnaṃ"}},
	Dative:       {{"ussa", "uno"}, {"ūnaṃ"}},
	Instrumental: {{"unā"}, {"ūhi", "ūbhi"}},
	Ablative:     {{"unā", "umhā", "usmā"}, {"ūhi", "ūbhi"}},
	Locative:     {{"umhi", "usmiṃ"}, {"ūsu"}},
	Vocative:     {{"u"}, {"ū", "uno"}},
}

var asMasc = nounTable{
	Nominative:   {{"o"}, {"ā"}},
	Accusative:   {{"aṃ", "o"}, {"e"}},
	Genitive:     {{"aso", "assa"}, {"ānaṃ"}},
	Dative:       {{"aso", "assa"}, {"ānaṃ"}},
	Instrumental: {{"asā", "ena"}, {"ehi", "ebhi"}},
	Ablative:     {{"asā", "ā", "amhā", "asmā"}, {"ehi", "ebhi"}},
	Locative:     {{"asi", "e", "amhi", "asmiṃ"}, {"esu"}},
	Vocative:     {{"a", "o"}, {"ā"}},
}

var arMasc = nounTable{
	Nominative:   {{"ā"}, {"āro"}},
	Accusative:   {{"āraṃ"}, {"āro"}},
	Genitive:     {{"u", "ussa", "uno"}, {"ārānaṃ", "ūnaṃ"}},
	Dative:       {{"u", "ussa", "uno"}, {"ārānaṃ", "ūnaṃ"}},
	Instrumental: {{"ārā", "unā"}, {"ārehi", "ārebhi"}},
	Ablative:     {{"ārā"}, {"ārehi", "ārebhi"}},
	Locative:     {{"ari"}, {"āresu"}},
	Vocative:     {{"ā", "a"}, {"āro"}},
}

var ar2Masc = nounTable{
	Nominative:   {{"ā"}, {"aro"}},
	Accusative:   {{"araṃ"}, {"aro", "are"}},
	Genitive:     {{"u", "uno", "ussa"}, {"arānaṃ", "ūnaṃ", "unnaṃ"}},
	Dative:       {{"u", "uno", "ussa"}, {"arānaṃ", "ūnaṃ", "unnaṃ"}},
	Instrumental: {{"arā", "unā"}, {"arehi", "ūhi"}},
	Ablative:     {{"arā", "unā"}, {"arehi", "ūhi"}},
	Locative:     {{"ari"}, {"aresu", "ūsu"}},
	Vocative:     {{"a", "ā"}, {"aro"}},
}

var antMasc = nounTable{
	Nominative:   {{"ā", "aṃ"}, {"antā", "anto"}},
	Accusative:   {{"antaṃ"}, {"ante"}},
	Genitive:     {{"ato", "antassa"}, {"ataṃ", "antānaṃ"}},
	Dative:       {{"ato", "antassa"}, {"ataṃ", "antānaṃ"}},
	Instrumental: {{"atā", "antena"}, {"antehi", "antebhi"}},
	Ablative:     {{"atā", "antā", "antamhā", "antasmā"}, {"antehi", "antebhi"}},
	Locative:     {{"ati", "ante", "antamhi", "antasmiṃ"}, {"antesu"}},
	Vocative:     {{"aṃ", "a", "ā"}, {"antā", "anto"}},
}

var antaMasc = nounTable{
	Nominative:   {{"anto"}, {"antā"}},
	Accusative:   {{"antaṃ"}, {"ante"}},
	Genitive:     {{"antassa", "ato"}, {"antānaṃ", "ataṃ"}},
	Dative:       {{"antassa", "ato"}, {"antānaṃ", "ataṃ"}},
	Instrumental: {{"antena", "atā"}, {"antehi", "antebhi"}},
	Ablative:     {{"antā", "antamhā", "antasmā", "atā"}, {"antehi", "antebhi"}},
	Locative:     {{"ante", "antamhi", "antasmiṃ", "ati"}, {"antesu"}},
	Vocative:     {{"anta", "antā"}, {"antā"}},
}

var aLongFem = nounTable{
	Nominative:   {{"ā"}, {"ā", "āyo"}},
	Accusative:   {{"aṃ"}, {"ā", "āyo"}},
	Genitive:     {{"āya"}, {"ānaṃ"}},
	Dative:       {{"āya"}, {"ānaṃ"}},
	Instrumental: {{"āya"}, {"āhi", "ābhi"}},
	Ablative:     {{"āya"}, {"āhi", "ābhi"}},
	Locative:     {{"āya", "āyaṃ"}, {"āsu"}},
	Vocative:     {{"e"}, {"ā", "āyo"}},
}

var iFem = nounTable{
	Nominative:   {{"i"}, {"ī", "iyo"}},
	Accusative:   {{"iṃ"}, {"ī", "iyo"}},
	Genitive:     {{"iyā"}, {"īnaṃ"}},
	Dative:       {{"iyā"}, {"īnaṃ"}},
	Instrumental: {{"iyā"}, {"īhi", "ībhi"}},
	Ablative:     {{"iyā"}, {"īhi", "ībhi"}},
	Locative:     {{"iyā", "iyaṃ"}, {"īsu"}},
	Vocative:     {{"i"}, {"ī", "iyo"}},
}

var iLongFem = nounTable{
	Nominative:   {{"ī"}, {"ī", "iyo"}},
	Accusative:   {{"iṃ"}, {"ī", "iyo"}},
	Genitive:     {{"iyā"}, {"īnaṃ"}},
	Dative:       {{"iyā"}, {"īnaṃ"}},
	Instrumental: {{"iyā"}, {"īhi", "ībhi"}},
	Ablative:     {{"iyā"}, {"īhi", "ībhi"}},
	Locative:     {{"iyā", "iyaṃ"}, {"īsu"}},
	Vocative:     {{"i"}, {"ī", "iyo"}},
}

var uFem = nounTable{
	Nominative:   {{"u"}, {"ū", "uyo"}},
	Accusative:   {{"uṃ"}, {"ū", "uyo"}},
	Genitive:     {{"uyā"}, {"ūnaṃ"}},
	Dative:       {{"uyā"}, {"ūnaṃ"}},
	Instrumental: {{"uyā"}, {"ūhi", "ūbhi"}},
	Ablative:     {{"uyā"}, {"ūhi", "ūbhi"}},
	Locative:     {{"uyā", "uyaṃ"}, {"ūsu"}},
	Vocative:     {{"u"}, {"ū", "uyo"}},
}

var arFem = nounTable{
	Nominative:   {{"ā"}, {"aro"}},
	Accusative:   {{"araṃ"}, {"aro"}},
	Genitive:     {{"u", "uyā"}, {"arānaṃ", "ūnaṃ"}},
	Dative:       {{"u", "uyā"}, {"arānaṃ", "ūnaṃ"}},
	Instrumental: {{"arā", "uyā"}, {"arehi", "ūhi"}},
	Ablative:     {{"arā", "uyā"}, {"arehi", "ūhi"}},
	Locative:     {{"ari", "uyā", "uyaṃ"}, {"aresu", "ūsu"}},
	Vocative:     {{"ā", "a", "e"}, {"aro"}},
}

var aNt = nounTable{
	Nominative:   {{"aṃ"}, {"āni", "ā"}},
	Accusative:   {{"aṃ"}, {"āni", "e"}},
	Genitive:     {{"assa"}, {"ānaṃ"}},
	Dative:       {{"assa", "āya", "atthaṃ"}, {"ānaṃ"}},
	Instrumental: {{"ena"}, {"ehi", "ebhi"}},
	Ablative:     {{"ā", "amhā", "asmā", "ato"}, {"ehi", "ebhi"}},
	Locative:     {{"e", "amhi", "asmiṃ"}, {"esu"}},
	Vocative:     {{"a"}, {"āni", "ā"}},
}

var iNt = nounTable{
	Nominative:   {{"i", "iṃ"}, {"ī", "īni"}},
	Accusative:   {{"iṃ"}, {"ī", "īni"}},
	Genitive:     {{"issa", "ino"}, {"īnaṃ"}},
	Dative:       {{"issa", "ino"}, {"īnaṃ"}},
	Instrumental: {{"inā"}, {"īhi", "ībhi"}},
	Ablative:     {{"inā", "imhā", "ismā"}, {"īhi", "ībhi"}},
	Locative:     {{"imhi", "ismiṃ"}, {"īsu"}},
	Vocative:     {{"i"}, {"ī", "īni"}},
}

var uNt = nounTable{
	Nominative:   {{"u", "uṃ"}, {"ū", "ūni"}},
	Accusative:   {{"uṃ"}, {"ū", "ūni"}},
	Genitive:     {{"ussa", "uno"}, {"ūnaṃ"}},
	Dative:       {{"ussa", "uno"}, {"ūnaṃ"}},
	Instrumental: {{"unā"}, {"ūhi", "ūbhi"}},
	Ablative:     {{"unā", "umhā", "usmā"}, {"ūhi", "ūbhi"}},
	Locative:     {{"umhi", "usmiṃ"}, {"ūsu"}},
	Vocative:     {{"u"}, {"ū", "ūni"}},
}

// eastern (Māgadhī) spellings keep -e in the nominative singular
var (
	aMascEast = aMasc.with(Nominative, Singular, "e", "o")
	aNtEast   = aNt.with(Nominative, Singular, "e", "aṃ")
)

// a2 masc keeps old s-stem instrumental and locative forms (thāmasā, thāmasi)
var a2Masc = aMasc.
	with(Instrumental, Singular, "ena", "asā").
	with(Locative, Singular, "e", "amhi", "asmiṃ", "asi")

var aNtIrreg = aNt.
	with(Nominative, Singular, "aṃ", "o").
	with(Vocative, Singular, "a", "ā")

var (
	aMascPl     = aMasc.pluralOnly()
	iLongMascPl = iLongMasc.pluralOnly()
	uMascPl     = uMasc.pluralOnly()
	aNtPl       = aNt.pluralOnly()
)

func nounTableOf(p NounPattern) nounTable {
	switch p {
	case AMasc:
		return aMasc
	case IMasc:
		return iMasc
	case ILongMasc:
		return iLongMasc
	case UMasc:
		return uMasc
	case ULongMasc:
		return uLongMasc
	case AsMasc:
		return asMasc
	case ArMasc:
		return arMasc
	case AntMasc:
		return antMasc
	case ALongFem:
		return aLongFem
	case IFem:
		return iFem
	case ILongFem:
		return iLongFem
	case UFem:
		return uFem
	case ArFem:
		return arFem
	case ANt:
		return aNt
	case INt:
		return iNt
	case UNt:
		return uNt
	case AMascEast:
		return aMascEast
	case AMascPl:
		return aMascPl
	case A2Masc:
		return a2Masc
	case ILongMascPl:
		return iLongMascPl
	case UMascPl:
		return uMascPl
	case Ar2Masc:
		return ar2Masc
	case AntaMasc:
		return antaMasc
	case ANtEast:
		return aNtEast
	case ANtIrreg:
		return aNtIrreg
	case ANtPl:
		return aNtPl
	default:
		return nil
	}
}

// NounEndings returns the candidate endings of a Base or Variant pattern.
// It never panics: Irregular patterns, values outside the catalog and
// unset axes all yield an empty result.
func NounEndings(p NounPattern, c Case, n Number) []string {
	return nounTableOf(p).lookup(c, n)
}

var atiPr = verbTable{
	Present: {
		Active:    {{"ati"}, {"anti"}, {"asi"}, {"atha"}, {"āmi"}, {"āma"}},
		Reflexive: {{"ate"}, {"ante", "are"}, {"ase"}, {"avhe"}, {"e"}, {"āmhe", "āmase"}},
	},
	Imperative: {
		Active:    {{"atu"}, {"antu"}, {"a", "āhi"}, {"atha"}, {"āmi"}, {"āma"}},
		Reflexive: {{"ataṃ"}, {"antaṃ"}, {"assu"}, {"avho"}, {"e"}, {"āmase"}},
	},
	Optative: {
		Active:    {{"e", "eyya"}, {"eyyuṃ"}, {"e", "eyyāsi"}, {"etha", "eyyātha"}, {"e", "eyyaṃ", "eyyāmi"}, {"ema", "eyyāma"}},
		Reflexive: {{"etha"}, {"eraṃ"}, {"etho"}, {"eyyavho"}, {"eyyaṃ"}, {"eyyāmhe"}},
	},
	Future: {
		Active:    {{"issati"}, {"issanti"}, {"issasi"}, {"issatha"}, {"issāmi"}, {"issāma"}},
		Reflexive: {{"issate"}, {"issante"}, {"issase"}, {"issavhe"}, {"issaṃ"}, {"issāmhe"}},
	},
}

var aLongTiPr = verbTable{
	Present: {
		Active:    {{"āti"}, {"ānti"}, {"āsi"}, {"ātha"}, {"āmi"}, {"āma"}},
		Reflexive: {{"āte"}, {"ānte"}, {"āse"}, {"āvhe"}, {"e"}, {"āmhe"}},
	},
	Imperative: {
		Active:    {{"ātu"}, {"āntu"}, {"āhi"}, {"ātha"}, {"āmi"}, {"āma"}},
		Reflexive: {{"ātaṃ"}, {"āntaṃ"}, {"āssu"}, {"āvho"}, {"e"}, {"āmase"}},
	},
	Optative: {
		Active:    {{"eyya", "āyeyya"}, {"eyyuṃ", "āyeyyuṃ"}, {"eyyāsi"}, {"eyyātha"}, {"eyyaṃ", "eyyāmi"}, {"eyyāma"}},
		Reflexive: {{"etha"}, {"eraṃ"}, {"etho"}, {"eyyavho"}, {"eyyaṃ"}, {"eyyāmhe"}},
	},
	Future: {
		Active:    {{"āssati", "āyissati"}, {"āssanti", "āyissanti"}, {"āssasi"}, {"āssatha"}, {"āssāmi"}, {"āssāma"}},
		Reflexive: {{"āyissate"}, {"āyissante"}, {"āyissase"}, {"āyissavhe"}, {"āyissaṃ"}, {"āyissāmhe"}},
	},
}

var etiPr = verbTable{
	Present: {
		Active:    {{"eti", "ayati"}, {"enti", "ayanti"}, {"esi", "ayasi"}, {"etha", "ayatha"}, {"emi", "ayāmi"}, {"ema", "ayāma"}},
		Reflexive: {{"ayate"}, {"ayante"}, {"ayase"}, {"ayavhe"}, {"aye"}, {"ayāmhe"}},
	},
	Imperative: {
		Active:    {{"etu", "ayatu"}, {"entu", "ayantu"}, {"ehi", "aya", "ayāhi"}, {"etha", "ayatha"}, {"emi", "ayāmi"}, {"ema", "ayāma"}},
		Reflexive: {{"ayataṃ"}, {"ayantaṃ"}, {"ayassu"}, {"ayavho"}, {"aye"}, {"ayāmase"}},
	},
	Optative: {
		Active:    {{"eyya", "aye", "ayeyya"}, {"eyyuṃ", "ayeyyuṃ"}, {"eyyāsi", "ayeyyāsi"}, {"eyyātha", "ayeyyātha"}, {"eyyāmi", "ayeyyāmi"}, {"eyyāma", "ayeyyāma"}},
		Reflexive: {{"ayetha"}, {"ayeraṃ"}, {"ayetho"}, {"ayeyyavho"}, {"ayeyyaṃ"}, {"ayeyyāmhe"}},
	},
	Future: {
		Active:    {{"essati", "ayissati"}, {"essanti", "ayissanti"}, {"essasi", "ayissasi"}, {"essatha", "ayissatha"}, {"essāmi", "ayissāmi"}, {"essāma", "ayissāma"}},
		Reflexive: {{"ayissate"}, {"ayissante"}, {"ayissase"}, {"ayissavhe"}, {"ayissaṃ"}, {"ayissāmhe"}},
	},
}

var otiPr = verbTable{
	Present: {
		Active:    {{"oti", "uṇāti"}, {"onti", "uṇanti"}, {"osi", "uṇāsi"}, {"otha", "uṇātha"}, {"omi", "uṇāmi"}, {"oma", "uṇāma"}},
		Reflexive: {{"uṇate"}, {"uṇante"}, {"uṇase"}, {"uṇavhe"}, {"uṇe"}, {"uṇāmhe"}},
	},
	Imperative: {
		Active:    {{"otu", "uṇātu"}, {"ontu", "uṇantu"}, {"ohi", "uṇāhi"}, {"otha", "uṇātha"}, {"omi", "uṇāmi"}, {"oma", "uṇāma"}},
		Reflexive: {{"uṇataṃ"}, {"uṇantaṃ"}, {"uṇassu"}, {"uṇavho"}, {"uṇe"}, {"uṇāmase"}},
	},
	Optative: {
		Active:    {{"uṇe", "uṇeyya"}, {"uṇeyyuṃ"}, {"uṇeyyāsi"}, {"uṇeyyātha"}, {"uṇeyyaṃ", "uṇeyyāmi"}, {"uṇeyyāma"}},
		Reflexive: {{"uṇetha"}, {"uṇeraṃ"}, {"uṇetho"}, {"uṇeyyavho"}, {"uṇeyyaṃ"}, {"uṇeyyāmhe"}},
	},
	Future: {
		Active:    {{"ossati", "uṇissati"}, {"ossanti", "uṇissanti"}, {"ossasi", "uṇissasi"}, {"ossatha", "uṇissatha"}, {"ossāmi", "uṇissāmi"}, {"ossāma", "uṇissāma"}},
		Reflexive: {{"uṇissate"}, {"uṇissante"}, {"uṇissase"}, {"uṇissavhe"}, {"uṇissaṃ"}, {"uṇissāmhe"}},
	},
}

func verbTableOf(p VerbPattern) verbTable {
	switch p {
	case AtiPr:
		return atiPr
	case ALongTiPr:
		return aLongTiPr
	case EtiPr:
		return etiPr
	case OtiPr:
		return otiPr
	default:
		return nil
	}
}

// VerbEndings returns the candidate endings of a regular verb pattern.
// Like NounEndings it is total; the present-system tables have no aorist,
// passive or causative cells.
func VerbEndings(p VerbPattern, t Tense, person Person, n Number, v Voice) []string {
	return verbTableOf(p).lookup(t, person, n, v)
}
