package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/palipractice/inflect"
)

type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

// Actions serves the inflection API over a loaded lexicon.
type Actions struct {
	Version VersionInfo
	Conf    *Conf
	Engine  *inflect.Engine
	Lexicon *inflect.Lexicon
	Corpus  *inflect.CorpusSet
}

type patternInfo struct {
	Label      string `json:"label"`
	Class      string `json:"class"`
	Kind       string `json:"kind"`
	Gender     string `json:"gender,omitempty"`
	Parent     string `json:"parent"`
	PluralOnly bool   `json:"pluralOnly,omitempty"`
}

type lemmaInfo struct {
	ID      inflect.LemmaID `json:"id"`
	Word    string          `json:"word"`
	Stem    string          `json:"stem"`
	Pattern string          `json:"pattern"`
	Class   string          `json:"class"`
	Gender  string          `json:"gender,omitempty"`
	Gloss   string          `json:"gloss,omitempty"`
}

type cellInfo struct {
	FormID   inflect.FormID `json:"formId"`
	ComboKey string         `json:"comboKey"`
	Forms    []inflect.Form `json:"forms"`
	Primary  *inflect.Form  `json:"primary"`
}

type paradigmResponse struct {
	Lemma        lemmaInfo  `json:"lemma"`
	HasReflexive bool       `json:"hasReflexive,omitempty"`
	Cells        []cellInfo `json:"cells"`
}

type reportResponse struct {
	Lemma            lemmaInfo           `json:"lemma"`
	Complete         bool                `json:"complete"`
	MissingCells     []string            `json:"missingCells,omitempty"`
	PluralOnly       bool                `json:"pluralOnly,omitempty"`
	SingularOnly     bool                `json:"singularOnly,omitempty"`
	MissingTenses    []string            `json:"missingTenses,omitempty"`
	Impersonal       bool                `json:"impersonal,omitempty"`
	DefectivePersons map[string][]string `json:"defectivePersons,omitempty"`
	HasReflexive     bool                `json:"hasReflexive,omitempty"`
}

type checkResponse struct {
	FormID  inflect.FormID `json:"formId"`
	Answer  string         `json:"answer"`
	Correct bool           `json:"correct"`
	Match   *inflect.Form  `json:"match"`
	Primary *inflect.Form  `json:"primary"`
}

func newLemmaInfo(l inflect.Lemma) lemmaInfo {
	ans := lemmaInfo{
		ID:      l.ID,
		Word:    l.Word,
		Stem:    l.Stem,
		Pattern: l.Pattern.String(),
		Class:   l.Class().String(),
		Gloss:   l.Gloss,
	}
	if g := l.Gender(); g != inflect.GenderNone {
		ans.Gender = g.String()
	}
	return ans
}

func primaryPtr(f inflect.Form, ok bool) *inflect.Form {
	if !ok {
		return nil
	}
	return &f
}

func declensionCell(d inflect.Declension) cellInfo {
	return cellInfo{
		FormID:   d.ID(),
		ComboKey: d.Cell.ComboKey(),
		Forms:    d.Forms,
		Primary:  primaryPtr(d.Primary()),
	}
}

func conjugationCell(c inflect.Conjugation) cellInfo {
	return cellInfo{
		FormID:   c.ID(),
		ComboKey: c.Cell.ComboKey(),
		Forms:    c.Forms,
		Primary:  primaryPtr(c.Primary()),
	}
}

// RootAction is just an information action about the service
func (a *Actions) RootAction(ctx *gin.Context) {
	host, err := os.Hostname()
	if err != nil {
		host = "#failed_to_obtain"
	}
	ans := struct {
		Name     string      `json:"name"`
		Version  VersionInfo `json:"version"`
		Host     string      `json:"host"`
		ConfPath string      `json:"confPath"`
		Lemmas   int         `json:"lemmas"`
		Attested int         `json:"attested"`
	}{
		Name:     "inflect - Pali inflection service",
		Version:  a.Version,
		Host:     host,
		ConfPath: a.Conf.GetSourcePath(),
		Lemmas:   a.Lexicon.Len(),
		Attested: a.Corpus.Len(),
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// Patterns lists the noun and verb pattern catalog.
func (a *Actions) Patterns(ctx *gin.Context) {
	ans := make([]patternInfo, 0, len(inflect.NounPatterns())+len(inflect.VerbPatterns()))
	for _, p := range inflect.NounPatterns() {
		ans = append(ans, patternInfo{
			Label:      p.String(),
			Class:      p.Class().String(),
			Kind:       p.Kind().String(),
			Gender:     p.Gender().String(),
			Parent:     p.Parent().String(),
			PluralOnly: p.IsPluralOnly(),
		})
	}
	for _, p := range inflect.VerbPatterns() {
		ans = append(ans, patternInfo{
			Label:  p.String(),
			Class:  p.Class().String(),
			Kind:   p.Kind().String(),
			Parent: p.Parent().String(),
		})
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

func (a *Actions) lemmaFromParam(ctx *gin.Context) (inflect.Lemma, bool) {
	v, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("invalid lemma id %q", ctx.Param("id")), http.StatusBadRequest)
		return inflect.Lemma{}, false
	}
	lemma, ok := a.Lexicon.Lemma(inflect.LemmaID(v))
	if !ok {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("lemma %d not found", v), http.StatusNotFound)
		return inflect.Lemma{}, false
	}
	return lemma, true
}

func (a *Actions) Lemma(ctx *gin.Context) {
	lemma, ok := a.lemmaFromParam(ctx)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, newLemmaInfo(lemma))
}

// Paradigm returns every cell of a lemma with its candidates and the
// primary form.
func (a *Actions) Paradigm(ctx *gin.Context) {
	lemma, ok := a.lemmaFromParam(ctx)
	if !ok {
		return
	}
	ans := paradigmResponse{Lemma: newLemmaInfo(lemma)}
	switch lemma.Class() {
	case inflect.Noun:
		for _, d := range a.Engine.Declensions(lemma) {
			ans.Cells = append(ans.Cells, declensionCell(d))
		}
	case inflect.Verb:
		for _, c := range a.Engine.Conjugations(lemma) {
			ans.Cells = append(ans.Cells, conjugationCell(c))
		}
		ans.HasReflexive = a.Engine.HasReflexive(lemma)
	}
	paradigmsTotal.WithLabelValues(lemma.Class().String()).Inc()
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// Report lists the gaps of a lemma's computed paradigm. Cells are named
// by their combo keys.
func (a *Actions) Report(ctx *gin.Context) {
	lemma, ok := a.lemmaFromParam(ctx)
	if !ok {
		return
	}
	r := a.Engine.Completeness(lemma)
	ans := reportResponse{
		Lemma:        newLemmaInfo(lemma),
		Complete:     r.Complete(),
		PluralOnly:   r.PluralOnly,
		SingularOnly: r.SingularOnly,
		Impersonal:   r.Impersonal,
		HasReflexive: r.HasReflexive,
	}
	for _, c := range r.MissingNounCells {
		ans.MissingCells = append(ans.MissingCells, c.ComboKey())
	}
	for _, c := range r.MissingVerbCells {
		ans.MissingCells = append(ans.MissingCells, c.ComboKey())
	}
	for _, t := range r.MissingTenses {
		ans.MissingTenses = append(ans.MissingTenses, t.String())
	}
	for t, persons := range r.DefectivePersons {
		if ans.DefectivePersons == nil {
			ans.DefectivePersons = make(map[string][]string)
		}
		for _, p := range persons {
			ans.DefectivePersons[t.String()] = append(ans.DefectivePersons[t.String()], p.String())
		}
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

func parseFormID(ctx *gin.Context, raw string) (inflect.FormID, bool) {
	v, err := strconv.ParseInt(raw, 10, 64)
	id := inflect.FormID(v)
	if err != nil || id.Class() == inflect.UnknownClass {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("invalid form id %q", raw), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func lemmaIDOf(id inflect.FormID) inflect.LemmaID {
	if id.Class() == inflect.Noun {
		return inflect.DecodeDeclension(id).LemmaID
	}
	return inflect.DecodeConjugation(id).LemmaID
}

// cellOf resolves the cell named by id. The EndingID digit is ignored.
func (a *Actions) cellOf(ctx *gin.Context, id inflect.FormID) (inflect.Lemma, cellInfo, bool) {
	lemmaID := lemmaIDOf(id)
	lemma, ok := a.Lexicon.Lemma(lemmaID)
	if !ok {
		uniresp.RespondWithErrorJSON(ctx, fmt.Errorf("lemma %d not found", lemmaID), http.StatusNotFound)
		return inflect.Lemma{}, cellInfo{}, false
	}
	if id.Class() == inflect.Noun {
		return lemma, declensionCell(a.Engine.Decline(lemma, inflect.DecodeDeclension(id).Cell())), true
	}
	return lemma, conjugationCell(a.Engine.Conjugate(lemma, inflect.DecodeConjugation(id).Cell())), true
}

// Form decodes a FormID and returns the cell it belongs to.
func (a *Actions) Form(ctx *gin.Context) {
	id, ok := parseFormID(ctx, ctx.Param("formId"))
	if !ok {
		return
	}
	lemma, cell, ok := a.cellOf(ctx, id)
	if !ok {
		return
	}
	ans := struct {
		Lemma    lemmaInfo `json:"lemma"`
		EndingID int       `json:"endingId"`
		Cell     cellInfo  `json:"cell"`
	}{
		Lemma:    newLemmaInfo(lemma),
		EndingID: id.EndingID(),
		Cell:     cell,
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// Check compares a user answer with the candidates of a cell.
func (a *Actions) Check(ctx *gin.Context) {
	lemma, ok := a.lemmaFromParam(ctx)
	if !ok {
		return
	}
	id, ok := parseFormID(ctx, ctx.Query("formId"))
	if !ok {
		return
	}
	if lemmaIDOf(id) != lemma.ID {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("form id %d does not belong to lemma %d", id, lemma.ID), http.StatusBadRequest)
		return
	}
	combination := id.Combination()
	_, cell, ok := a.cellOf(ctx, combination)
	if !ok {
		return
	}
	answer := ctx.Query("answer")
	match, correct := a.Engine.Check(lemma, combination, answer)
	if correct {
		answerChecksTotal.WithLabelValues("correct").Inc()
	} else {
		answerChecksTotal.WithLabelValues("wrong").Inc()
	}
	uniresp.WriteJSONResponse(ctx.Writer, checkResponse{
		FormID:  combination,
		Answer:  answer,
		Correct: correct,
		Match:   primaryPtr(match, correct),
		Primary: cell.Primary,
	})
}
