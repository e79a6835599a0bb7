package inflect

// Irregular patterns list complete surface forms of their exemplar word.
// A lemma using such a pattern prefixes its own stem, which is empty for
// the exemplar itself and holds the preverb or compound member otherwise
// (mahā + rājā).

var rajaMasc = nounTable{
	Nominative:   {{"rājā"}, {"rājāno"}},
	Accusative:   {{"rājaṃ", "rājānaṃ"}, {"rājāno"}},
	Genitive:     {{"rañño", "rājino", "rājassa"}, {"raññaṃ", "rājūnaṃ", "rājānaṃ"}},
	Dative:       {{"rañño", "rājino", "rājassa"}, {"raññaṃ", "rājūnaṃ", "rājānaṃ"}},
	Instrumental: {{"raññā", "rājena"}, {"rājūhi", "rājūbhi", "rājehi"}},
	Ablative:     {{"raññā", "rājamhā", "rājasmā"}, {"rājūhi", "rājūbhi"}},
	Locative:     {{"raññe", "rājini", "rājimhi", "rājismiṃ"}, {"rājūsu", "rājesu"}},
	Vocative:     {{"rāja", "rājā"}, {"rājāno"}},
}

var brahmaMasc = nounTable{
	Nominative:   {{"brahmā"}, {"brahmāno"}},
	Accusative:   {{"brahmānaṃ", "brahmaṃ"}, {"brahmāno"}},
	Genitive:     {{"brahmuno", "brahmassa"}, {"brahmānaṃ", "brahmūnaṃ"}},
	Dative:       {{"brahmuno", "brahmassa"}, {"brahmānaṃ", "brahmūnaṃ"}},
	Instrumental: {{"brahmunā"}, {"brahmehi", "brahmebhi", "brahmūhi"}},
	Ablative:     {{"brahmunā", "brahmasmā"}, {"brahmehi", "brahmūhi"}},
	Locative:     {{"brahmani", "brahme"}, {"brahmesu"}},
	Vocative:     {{"brahme", "brahma"}, {"brahmāno"}},
}

var addhaMasc = nounTable{
	Nominative:   {{"addhā"}, {"addhāno"}},
	Accusative:   {{"addhānaṃ"}, {"addhāno"}},
	Genitive:     {{"addhuno"}, {"addhānaṃ"}},
	Dative:       {{"addhuno"}, {"addhānaṃ"}},
	Instrumental: {{"addhunā", "addhanā"}, {"addhehi"}},
	Ablative:     {{"addhunā", "addhanā"}, {"addhehi"}},
	Locative:     {{"addhani", "addhāne"}, {"addhesu"}},
	Vocative:     {{"addha"}, {"addhāno"}},
}

var goMasc = nounTable{
	Nominative:   {{"go"}, {"gāvo", "gavo"}},
	Accusative:   {{"gāvuṃ", "gavaṃ", "gāvaṃ"}, {"gāvo", "gavo"}},
	Genitive:     {{"gāvassa", "gavassa"}, {"gavaṃ", "gunnaṃ", "gonaṃ"}},
	Dative:       {{"gāvassa", "gavassa"}, {"gavaṃ", "gunnaṃ", "gonaṃ"}},
	Instrumental: {{"gāvena", "gavena"}, {"gohi", "gobhi"}},
	Ablative:     {{"gāvā", "gavā", "gāvamhā", "gāvasmā"}, {"gohi", "gobhi"}},
	Locative:     {{"gāve", "gave", "gāvamhi", "gāvasmiṃ"}, {"gosu", "gāvesu", "gavesu"}},
	Vocative:     {{"go"}, {"gāvo", "gavo"}},
}

var yuvaMasc = nounTable{
	Nominative:   {{"yuvā", "yuvāno"}, {"yuvāno", "yuvānā"}},
	Accusative:   {{"yuvānaṃ", "yuvaṃ"}, {"yuvāne", "yuvāno"}},
	Genitive:     {{"yuvassa", "yuvānassa"}, {"yuvānaṃ", "yuvānānaṃ"}},
	Dative:       {{"yuvassa", "yuvānassa"}, {"yuvānaṃ", "yuvānānaṃ"}},
	Instrumental: {{"yuvānā", "yuvena"}, {"yuvānehi", "yuvehi"}},
	Ablative:     {{"yuvānā", "yuvā"}, {"yuvānehi", "yuvehi"}},
	Locative:     {{"yuvāne", "yuve"}, {"yuvānesu", "yuvāsu", "yuvesu"}},
	Vocative:     {{"yuva", "yuvāna"}, {"yuvāno", "yuvānā"}},
}

var jantuMasc = nounTable{
	Nominative:   {{"jantu"}, {"jantū", "jantuyo", "jantavo", "jantuno"}},
	Accusative:   {{"jantuṃ"}, {"jantū", "jantuyo", "jantavo", "jantuno"}},
	Genitive:     {{"jantussa", "jantuno"}, {"jantūnaṃ"}},
	Dative:       {{"jantussa", "jantuno"}, {"jantūnaṃ"}},
	Instrumental: {{"jantunā"}, {"jantūhi", "jantūbhi"}},
	Ablative:     {{"jantunā", "jantumhā", "jantusmā"}, {"jantūhi", "jantūbhi"}},
	Locative:     {{"jantumhi", "jantusmiṃ"}, {"jantūsu"}},
	Vocative:     {{"jantu"}, {"jantū", "jantuyo", "jantavo", "jantuno"}},
}

var arahantMasc = nounTable{
	Nominative:   {{"arahaṃ", "arahā"}, {"arahanto", "arahantā"}},
	Accusative:   {{"arahantaṃ"}, {"arahante"}},
	Genitive:     {{"arahato", "arahantassa"}, {"arahataṃ", "arahantānaṃ"}},
	Dative:       {{"arahato", "arahantassa"}, {"arahataṃ", "arahantānaṃ"}},
	Instrumental: {{"arahatā", "arahantena"}, {"arahantehi", "arahantebhi"}},
	Ablative:     {{"arahatā", "arahantā", "arahantamhā", "arahantasmā"}, {"arahantehi", "arahantebhi"}},
	Locative:     {{"arahati", "arahante", "arahantamhi", "arahantasmiṃ"}, {"arahantesu"}},
	Vocative:     {{"arahaṃ", "araha", "arahā"}, {"arahanto", "arahantā"}},
}

var bhavantMasc = nounTable{
	Nominative:   {{"bhavaṃ"}, {"bhavanto", "bhonto"}},
	Accusative:   {{"bhavantaṃ"}, {"bhavante", "bhonte"}},
	Genitive:     {{"bhavato", "bhoto", "bhavantassa"}, {"bhavataṃ", "bhavantānaṃ"}},
	Dative:       {{"bhavato", "bhoto", "bhavantassa"}, {"bhavataṃ", "bhavantānaṃ"}},
	Instrumental: {{"bhavatā", "bhotā", "bhavantena"}, {"bhavantehi"}},
	Ablative:     {{"bhavatā", "bhotā", "bhavantā"}, {"bhavantehi"}},
	Locative:     {{"bhavati", "bhavante"}, {"bhavantesu"}},
	Vocative:     {{"bho", "bhavaṃ", "bhante"}, {"bhavanto", "bhonto"}},
}

var santaMasc = nounTable{
	Nominative:   {{"santo", "saṃ"}, {"santo", "santā"}},
	Accusative:   {{"santaṃ"}, {"sante"}},
	Genitive:     {{"sato", "santassa"}, {"sataṃ", "santānaṃ"}},
	Dative:       {{"sato", "santassa"}, {"sataṃ", "santānaṃ"}},
	Instrumental: {{"satā", "santena"}, {"sabbhi", "santehi"}},
	Ablative:     {{"satā", "santā", "santasmā"}, {"sabbhi", "santehi"}},
	Locative:     {{"sati", "sante", "santasmiṃ"}, {"santesu"}},
	Vocative:     {{"santa", "saṃ"}, {"santo", "santā"}},
}

var parisaFem = nounTable{
	Nominative:   {{"parisā"}, {"parisā", "parisāyo"}},
	Accusative:   {{"parisaṃ"}, {"parisā", "parisāyo"}},
	Genitive:     {{"parisāya"}, {"parisānaṃ"}},
	Dative:       {{"parisāya"}, {"parisānaṃ"}},
	Instrumental: {{"parisāya"}, {"parisāhi", "parisābhi"}},
	Ablative:     {{"parisāya"}, {"parisāhi", "parisābhi"}},
	Locative:     {{"parisāya", "parisāyaṃ", "parisati"}, {"parisāsu"}},
	Vocative:     {{"parise"}, {"parisā", "parisāyo"}},
}

var jatiFem = nounTable{
	Nominative:   {{"jāti"}, {"jātī", "jātiyo"}},
	Accusative:   {{"jātiṃ"}, {"jātī", "jātiyo"}},
	Genitive:     {{"jātiyā"}, {"jātīnaṃ"}},
	Dative:       {{"jātiyā"}, {"jātīnaṃ"}},
	Instrumental: {{"jātiyā"}, {"jātīhi", "jātībhi"}},
	Ablative:     {{"jātiyā", "jaccā"}, {"jātīhi", "jātībhi"}},
	Locative:     {{"jātiyā", "jātiyaṃ", "jaccaṃ"}, {"jātīsu"}},
	Vocative:     {{"jāti"}, {"jātī", "jātiyo"}},
}

var rattiFem = nounTable{
	Nominative:   {{"ratti"}, {"rattī", "rattiyo"}},
	Accusative:   {{"rattiṃ"}, {"rattī", "rattiyo"}},
	Genitive:     {{"rattiyā", "rattyā"}, {"rattīnaṃ"}},
	Dative:       {{"rattiyā", "rattyā"}, {"rattīnaṃ"}},
	Instrumental: {{"rattiyā", "rattyā"}, {"rattīhi", "rattībhi"}},
	Ablative:     {{"rattiyā", "rattyā"}, {"rattīhi", "rattībhi"}},
	Locative:     {{"rattiyā", "rattiyaṃ", "rattiṃ", "ratto", "rattyā"}, {"rattīsu"}},
	Vocative:     {{"ratti"}, {"rattī", "rattiyo"}},
}

var nadiFem = nounTable{
	Nominative:   {{"nadī"}, {"nadī", "nadiyo", "najjo"}},
	Accusative:   {{"nadiṃ"}, {"nadī", "nadiyo", "najjo"}},
	Genitive:     {{"nadiyā", "najjā"}, {"nadīnaṃ"}},
	Dative:       {{"nadiyā", "najjā"}, {"nadīnaṃ"}},
	Instrumental: {{"nadiyā", "najjā"}, {"nadīhi", "nadībhi"}},
	Ablative:     {{"nadiyā", "najjā"}, {"nadīhi", "nadībhi"}},
	Locative:     {{"nadiyā", "nadiyaṃ", "najjaṃ"}, {"nadīsu"}},
	Vocative:     {{"nadi"}, {"nadī", "nadiyo"}},
}

var pokkharaniFem = nounTable{
	Nominative:   {{"pokkharaṇī"}, {"pokkharaṇī", "pokkharaṇiyo", "pokkharañño"}},
	Accusative:   {{"pokkharaṇiṃ"}, {"pokkharaṇī", "pokkharaṇiyo", "pokkharañño"}},
	Genitive:     {{"pokkharaṇiyā"}, {"pokkharaṇīnaṃ"}},
	Dative:       {{"pokkharaṇiyā"}, {"pokkharaṇīnaṃ"}},
	Instrumental: {{"pokkharaṇiyā"}, {"pokkharaṇīhi"}},
	Ablative:     {{"pokkharaṇiyā"}, {"pokkharaṇīhi"}},
	Locative:     {{"pokkharaṇiyā", "pokkharaṇiyaṃ"}, {"pokkharaṇīsu"}},
	Vocative:     {{"pokkharaṇi"}, {"pokkharaṇī", "pokkharaṇiyo"}},
}

var matarFem = nounTable{
	Nominative:   {{"mātā"}, {"mātaro"}},
	Accusative:   {{"mātaraṃ"}, {"mātaro", "mātare"}},
	Genitive:     {{"mātu", "mātuyā", "mātyā"}, {"mātarānaṃ", "mātānaṃ", "mātūnaṃ"}},
	Dative:       {{"mātu", "mātuyā", "mātyā"}, {"mātarānaṃ", "mātānaṃ", "mātūnaṃ"}},
	Instrumental: {{"mātarā", "mātuyā", "mātyā"}, {"mātarehi", "mātūhi"}},
	Ablative:     {{"mātarā", "mātuyā"}, {"mātarehi", "mātūhi"}},
	Locative:     {{"mātari", "mātuyā", "mātuyaṃ"}, {"mātaresu", "mātūsu"}},
	Vocative:     {{"māta", "mātā", "māte"}, {"mātaro"}},
}

var kammaNt = nounTable{
	Nominative:   {{"kammaṃ"}, {"kammāni", "kammā"}},
	Accusative:   {{"kammaṃ"}, {"kammāni", "kamme"}},
	Genitive:     {{"kammuno", "kammassa"}, {"kammānaṃ"}},
	Dative:       {{"kammuno", "kammassa"}, {"kammānaṃ"}},
	Instrumental: {{"kammanā", "kammunā", "kammena"}, {"kammehi", "kammebhi"}},
	Ablative:     {{"kammanā", "kammunā", "kammā", "kammasmā"}, {"kammehi"}},
	Locative:     {{"kammani", "kamme", "kammasmiṃ", "kammamhi"}, {"kammesu"}},
	Vocative:     {{"kamma"}, {"kammāni"}},
}

func irregularNounTableOf(p NounPattern) nounTable {
	switch p {
	case RajaMasc:
		return rajaMasc
	case BrahmaMasc:
		return brahmaMasc
	case AddhaMasc:
		return addhaMasc
	case GoMasc:
		return goMasc
	case YuvaMasc:
		return yuvaMasc
	case JantuMasc:
		return jantuMasc
	case ArahantMasc:
		return arahantMasc
	case BhavantMasc:
		return bhavantMasc
	case SantaMasc:
		return santaMasc
	case ParisaFem:
		return parisaFem
	case JatiFem:
		return jatiFem
	case RattiFem:
		return rattiFem
	case NadiFem:
		return nadiFem
	case PokkharaniFem:
		return pokkharaniFem
	case MatarFem:
		return matarFem
	case KammaNt:
		return kammaNt
	default:
		return nil
	}
}

// IrregularNounForms returns the full forms of an Irregular noun pattern.
// Base and Variant patterns yield an empty result.
func IrregularNounForms(p NounPattern, c Case, n Number) []string {
	return irregularNounTableOf(p).lookup(c, n)
}

var hotiPr = verbTable{
	Present: {
		Active: {{"hoti"}, {"honti"}, {"hosi"}, {"hotha"}, {"homi"}, {"homa"}},
	},
	Imperative: {
		Active: {{"hotu"}, {"hontu"}, {"hohi"}, {"hotha"}, {"homi"}, {"homa"}},
	},
	Optative: {
		Active: {{"hoveyya", "siyā"}, {"hoveyyuṃ", "siyuṃ"}, {"hoveyyāsi"}, {"hoveyyātha"}, {"hoveyyāmi"}, {"hoveyyāma"}},
	},
	Future: {
		Active: {{"hessati", "hohiti", "bhavissati"}, {"hessanti", "hohinti", "bhavissanti"}, {"hessasi", "hohisi"}, {"hessatha", "hohitha"}, {"hessāmi", "hohāmi"}, {"hessāma", "hohāma"}},
	},
}

var atthiPr = verbTable{
	Present: {
		Active: {{"atthi"}, {"santi"}, {"asi"}, {"attha"}, {"asmi", "amhi"}, {"asma", "amha"}},
	},
	Imperative: {
		Active: {{"atthu"}, {"santu"}, {"āhi"}, {"attha"}, {"asmi"}, {"asma"}},
	},
	Optative: {
		Active: {{"siyā", "assa"}, {"siyuṃ", "assu"}, {"siyā", "assa"}, {"assatha"}, {"siyaṃ", "assaṃ"}, {"assāma"}},
	},
}

var karotiPr = verbTable{
	Present: {
		Active:    {{"karoti", "kubbati"}, {"karonti", "kubbanti"}, {"karosi", "kubbasi"}, {"karotha", "kubbatha"}, {"karomi", "kubbāmi"}, {"karoma", "kubbāma"}},
		Reflexive: {{"kurute", "kubbate"}, {"kubbante"}, {"kuruse"}, {"kuruvhe"}, {"kubbe"}, {"kurumhe"}},
	},
	Imperative: {
		Active:    {{"karotu", "kurutu"}, {"karontu", "kubbantu"}, {"karohi", "kuru"}, {"karotha"}, {"karomi"}, {"karoma"}},
		Reflexive: {{"kurutaṃ"}, {"kubbantaṃ"}, {"kurussu"}, {"kuruvho"}, {"kubbe"}, {"kubbāmase"}},
	},
	Optative: {
		Active:    {{"kare", "kareyya", "kayirā"}, {"kareyyuṃ", "kayiruṃ"}, {"kareyyāsi", "kayirāsi"}, {"kareyyātha", "kayirātha"}, {"kareyyāmi", "kareyyaṃ"}, {"kareyyāma", "kayirāma"}},
		Reflexive: {{"kubbetha", "kayirātha"}, {"kubberaṃ"}, {"kubbetho"}, {"kubbeyyavho"}, {"kubbeyyaṃ"}, {"kubbeyyāmhe"}},
	},
	Future: {
		Active:    {{"karissati", "kāhati", "kāhiti"}, {"karissanti", "kāhanti"}, {"karissasi", "kāhasi"}, {"karissatha", "kāhatha"}, {"karissāmi", "kāhāmi"}, {"karissāma", "kāhāma"}},
		Reflexive: {{"karissate"}, {"karissante"}, {"karissase"}, {"karissavhe"}, {"karissaṃ"}, {"karissāmhe"}},
	},
}

var brutiPr = verbTable{
	Present: {
		Active:    {{"brūti", "brāvīti"}, {"bruvanti", "brūnti"}, {"brūsi"}, {"brūtha"}, {"brūmi"}, {"brūma"}},
		Reflexive: {{"brūte"}, {"bruvante"}, {"brūse"}, {"brūvhe"}, {"bruve"}, {"brūmhe"}},
	},
	Imperative: {
		Active: {{"brūtu"}, {"bruvantu"}, {"brūhi"}, {"brūtha"}, {"brūmi"}, {"brūma"}},
	},
	Optative: {
		Active: {{"bruve", "brūyā"}, {"bruveyyuṃ"}, {"bruveyyāsi"}, {"bruveyyātha"}, {"bruveyyāmi"}, {"bruveyyāma"}},
	},
	Future: {
		Active: {{"bruvissati"}, {"bruvissanti"}, {"bruvissasi"}, {"bruvissatha"}, {"bruvissāmi"}, {"bruvissāma"}},
	},
}

var dakkhatiPr = verbTable{
	Present: {
		Active: {{"dakkhati"}, {"dakkhanti"}, {"dakkhasi"}, {"dakkhatha"}, {"dakkhāmi"}, {"dakkhāma"}},
	},
	Imperative: {
		Active: {{"dakkhatu"}, {"dakkhantu"}, {"dakkha"}, {"dakkhatha"}, {"dakkhāmi"}, {"dakkhāma"}},
	},
	Optative: {
		Active: {{"dakkhe", "dakkheyya"}, {"dakkheyyuṃ"}, {"dakkheyyāsi"}, {"dakkheyyātha"}, {"dakkheyyāmi"}, {"dakkheyyāma"}},
	},
	Future: {
		Active: {{"dakkhissati"}, {"dakkhissanti"}, {"dakkhissasi"}, {"dakkhissatha"}, {"dakkhissāmi"}, {"dakkhissāma"}},
	},
}

var dammiPr = verbTable{
	Present: {
		Active:    {{"deti", "dadāti"}, {"denti", "dadanti"}, {"desi", "dadāsi"}, {"detha", "dadātha"}, {"demi", "dammi", "dadāmi"}, {"dema", "damma", "dadāma"}},
		Reflexive: {{"dadate"}, {"dadante"}, {"dadase"}, {"dadavhe"}, {"dade"}, {"dadāmhe"}},
	},
	Imperative: {
		Active: {{"detu", "dadātu"}, {"dentu", "dadantu"}, {"dehi", "dadāhi"}, {"detha", "dadātha"}, {"demi", "dadāmi"}, {"dema", "dadāma"}},
	},
	Optative: {
		Active: {{"dade", "dadeyya", "dajjā"}, {"dadeyyuṃ", "dajjuṃ"}, {"dadeyyāsi", "dajjāsi"}, {"dadeyyātha", "dajjātha"}, {"dadeyyāmi", "dajjāmi"}, {"dadeyyāma", "dajjāma"}},
	},
	Future: {
		Active: {{"dassati", "dadissati"}, {"dassanti", "dadissanti"}, {"dassasi"}, {"dassatha"}, {"dassāmi"}, {"dassāma"}},
	},
}

var hanatiPr = verbTable{
	Present: {
		Active:    {{"hanati", "hanti"}, {"hananti"}, {"hanasi"}, {"hanatha"}, {"hanāmi"}, {"hanāma"}},
		Reflexive: {{"hanate"}, {"hanante"}, {"hanase"}, {"hanavhe"}, {"hane"}, {"hanāmhe"}},
	},
	Imperative: {
		Active: {{"hanatu"}, {"hanantu"}, {"hana", "hanāhi"}, {"hanatha"}, {"hanāmi"}, {"hanāma"}},
	},
	Optative: {
		Active: {{"hane", "haneyya"}, {"haneyyuṃ"}, {"haneyyāsi"}, {"haneyyātha"}, {"haneyyāmi"}, {"haneyyāma"}},
	},
	Future: {
		Active: {{"hanissati", "hañchati"}, {"hanissanti", "hañchanti"}, {"hanissasi", "hañchasi"}, {"hanissatha"}, {"hanissāmi", "hañchāmi"}, {"hanissāma"}},
	},
}

var kubbatiPr = verbTable{
	Present: {
		Active:    {{"kubbati"}, {"kubbanti"}, {"kubbasi"}, {"kubbatha"}, {"kubbāmi"}, {"kubbāma"}},
		Reflexive: {{"kubbate"}, {"kubbante"}, {"kubbase"}, {"kubbavhe"}, {"kubbe"}, {"kubbāmhe"}},
	},
	Imperative: {
		Active: {{"kubbatu"}, {"kubbantu"}, {"kubba"}, {"kubbatha"}, {"kubbāmi"}, {"kubbāma"}},
	},
	Optative: {
		Active: {{"kubbe", "kubbeyya"}, {"kubbeyyuṃ"}, {"kubbeyyāsi"}, {"kubbeyyātha"}, {"kubbeyyāmi"}, {"kubbeyyāma"}},
	},
}

// natthi is attested only in a handful of present and imperative cells
var natthiPr = verbTable{
	Present: {
		Active: {{"natthi"}, {"natthi"}, {"nāsi"}, nil, {"nāsmi", "nāmhi"}, nil},
	},
	Imperative: {
		Active: {{"natthu"}, nil, nil, nil, nil, nil},
	},
}

var etiPr2 = verbTable{
	Present: {
		Active: {{"eti"}, {"enti"}, {"esi"}, {"etha"}, {"emi"}, {"ema"}},
	},
	Imperative: {
		Active: {{"etu"}, {"entu"}, {"ehi"}, {"etha"}, {"emi"}, {"ema"}},
	},
	Optative: {
		Active: {{"eyya"}, {"eyyuṃ"}, {"eyyāsi"}, {"eyyātha"}, {"eyyāmi"}, {"eyyāma"}},
	},
	Future: {
		Active: {{"essati"}, {"essanti"}, {"essasi"}, {"essatha"}, {"essāmi"}, {"essāma"}},
	},
}

func irregularVerbTableOf(p VerbPattern) verbTable {
	switch p {
	case HotiPr:
		return hotiPr
	case AtthiPr:
		return atthiPr
	case KarotiPr:
		return karotiPr
	case BrutiPr:
		return brutiPr
	case DakkhatiPr:
		return dakkhatiPr
	case DammiPr:
		return dammiPr
	case HanatiPr:
		return hanatiPr
	case KubbatiPr:
		return kubbatiPr
	case NatthiPr:
		return natthiPr
	case EtiPr2:
		return etiPr2
	default:
		return nil
	}
}

// IrregularVerbForms returns the full forms of an Irregular verb pattern.
// Coverage is partial: hoti has no reflexive forms, atthi and kubbati no
// future. Missing cells yield an empty result.
func IrregularVerbForms(p VerbPattern, t Tense, person Person, n Number, v Voice) []string {
	return irregularVerbTableOf(p).lookup(t, person, n, v)
}

// IrregularSource supplies irregular forms the built-in tables lack, e.g.
// a table exported from the dictionary database. Implementations return
// full forms in preferred order, or nothing. A form's position in the
// returned slice becomes its EndingID; empty strings hold a position
// without producing a candidate.
type IrregularSource interface {
	NounForms(p NounPattern, c Case, n Number) []string
	VerbForms(p VerbPattern, t Tense, person Person, n Number, v Voice) []string
}
