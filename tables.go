package inflect

import "slices"

// decl holds the singular and plural candidates of one case.
type decl [2][]string

// nounTable maps a case to its candidates. Tables are built once and only
// read afterwards.
type nounTable map[Case]decl

func (t nounTable) lookup(c Case, n Number) []string {
	if n != Singular && n != Plural {
		return nil
	}
	d, ok := t[c]
	if !ok {
		return nil
	}
	return slices.Clone(d[n-1])
}

// with returns a copy of t where the given cell lists the given candidates.
func (t nounTable) with(c Case, n Number, values ...string) nounTable {
	ans := make(nounTable, len(t))
	for k, v := range t {
		ans[k] = v
	}
	d := ans[c]
	d[n-1] = values
	ans[c] = d
	return ans
}

// pluralOnly returns a copy of t with every singular cell emptied.
func (t nounTable) pluralOnly() nounTable {
	ans := make(nounTable, len(t))
	for k, v := range t {
		ans[k] = decl{nil, v[1]}
	}
	return ans
}

// conj lists candidates in the order 3sg, 3pl, 2sg, 2pl, 1sg, 1pl,
// the order Pali grammars print their conjugation tables in.
type conj [6][]string

type tenseTable map[Voice]conj

type verbTable map[Tense]tenseTable

func conjSlot(p Person, n Number) (int, bool) {
	if n != Singular && n != Plural {
		return 0, false
	}
	var row int
	switch p {
	case Third:
		row = 0
	case Second:
		row = 1
	case First:
		row = 2
	default:
		return 0, false
	}
	return row*2 + int(n) - 1, true
}

func (t verbTable) lookup(tense Tense, p Person, n Number, v Voice) []string {
	slot, ok := conjSlot(p, n)
	if !ok {
		return nil
	}
	voices, ok := t[tense]
	if !ok {
		return nil
	}
	c, ok := voices[v]
	if !ok {
		return nil
	}
	return slices.Clone(c[slot])
}
