package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/palipractice/inflect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLexicon = `10789|dhamma|dhamm|a masc|nature
70123|gacchati|gacch|ati pr|goes
70124|hoti||hoti pr|is
70130|natthi||natthi pr|is not
`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	lex, err := inflect.ReadLexicon(strings.NewReader(testLexicon), zerolog.Nop())
	require.NoError(t, err)
	corpus := inflect.NewCorpusSet(107893121, 107891111)
	actions := &Actions{
		Conf:    &Conf{},
		Engine:  inflect.NewEngine(corpus),
		Lexicon: lex,
		Corpus:  corpus,
	}
	return newRouter(actions, true)
}

func doGet(t *testing.T, router http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRootAction(t *testing.T) {
	w := doGet(t, newTestRouter(t), "/")
	require.Equal(t, http.StatusOK, w.Code)
	var ans struct {
		Lemmas   int `json:"lemmas"`
		Attested int `json:"attested"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, 4, ans.Lemmas)
	assert.Equal(t, 2, ans.Attested)
}

func TestPatternsAction(t *testing.T) {
	w := doGet(t, newTestRouter(t), "/patterns")
	require.Equal(t, http.StatusOK, w.Code)
	var ans []patternInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Len(t, ans, len(inflect.NounPatterns())+len(inflect.VerbPatterns()))
	assert.Equal(t, patternInfo{Label: "a masc", Class: "noun", Kind: "base", Gender: "Masculine", Parent: "a masc"}, ans[0])
}

func TestLemmaAction(t *testing.T) {
	router := newTestRouter(t)

	w := doGet(t, router, "/lemmas/10789")
	require.Equal(t, http.StatusOK, w.Code)
	var ans lemmaInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, lemmaInfo{ID: 10789, Word: "dhamma", Stem: "dhamm", Pattern: "a masc", Class: "noun", Gender: "Masculine", Gloss: "nature"}, ans)

	assert.Equal(t, http.StatusBadRequest, doGet(t, router, "/lemmas/abc").Code)
	assert.Equal(t, http.StatusNotFound, doGet(t, router, "/lemmas/10001").Code)
}

func TestParadigmAction(t *testing.T) {
	router := newTestRouter(t)

	w := doGet(t, router, "/lemmas/10789/paradigm")
	require.Equal(t, http.StatusOK, w.Code)
	var ans paradigmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	require.Len(t, ans.Cells, 16)
	assert.Equal(t, "nom_masc_sg", ans.Cells[0].ComboKey)
	require.NotNil(t, ans.Cells[0].Primary)
	assert.Equal(t, "dhammo", ans.Cells[0].Primary.Form)
	assert.Nil(t, ans.Cells[1].Primary)

	w = doGet(t, router, "/lemmas/70123/paradigm")
	require.Equal(t, http.StatusOK, w.Code)
	ans = paradigmResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Len(t, ans.Cells, 60)
	assert.True(t, ans.HasReflexive)
}

func TestReportAction(t *testing.T) {
	router := newTestRouter(t)

	w := doGet(t, router, "/lemmas/70124/report")
	require.Equal(t, http.StatusOK, w.Code)
	var ans reportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.True(t, ans.Complete)
	assert.Empty(t, ans.MissingCells)

	w = doGet(t, router, "/lemmas/70130/report")
	require.Equal(t, http.StatusOK, w.Code)
	ans = reportResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.False(t, ans.Complete)
	assert.Equal(t, []string{"Optative", "Future"}, ans.MissingTenses)
	assert.Equal(t, map[string][]string{"Imperative": {"First", "Second"}}, ans.DefectivePersons)
	assert.Contains(t, ans.MissingCells, "pr_2nd_pl_act")
	assert.Len(t, ans.MissingCells, 19)

	assert.Equal(t, http.StatusNotFound, doGet(t, router, "/lemmas/10001/report").Code)
}

func TestFormAction(t *testing.T) {
	router := newTestRouter(t)

	w := doGet(t, router, "/forms/107893121")
	require.Equal(t, http.StatusOK, w.Code)
	var ans struct {
		EndingID int      `json:"endingId"`
		Cell     cellInfo `json:"cell"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, 1, ans.EndingID)
	assert.Equal(t, inflect.FormID(107893120), ans.Cell.FormID)
	assert.Equal(t, "gen_masc_pl", ans.Cell.ComboKey)
	require.Len(t, ans.Cell.Forms, 1)
	assert.True(t, ans.Cell.Forms[0].InCorpus)

	assert.Equal(t, http.StatusBadRequest, doGet(t, router, "/forms/12").Code)
	assert.Equal(t, http.StatusNotFound, doGet(t, router, "/forms/100013120").Code)
}

func TestCheckAction(t *testing.T) {
	router := newTestRouter(t)

	w := doGet(t, router, "/lemmas/10789/check?formId=107893120&answer=Dhamm%C4%81na%E1%B9%81")
	require.Equal(t, http.StatusOK, w.Code)
	var ans checkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.True(t, ans.Correct)
	require.NotNil(t, ans.Match)
	assert.Equal(t, "dhammānaṃ", ans.Match.Form)
	require.NotNil(t, ans.Primary)

	w = doGet(t, router, "/lemmas/10789/check?formId=107893120&answer=dhammassa")
	require.Equal(t, http.StatusOK, w.Code)
	ans = checkResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.False(t, ans.Correct)
	assert.Nil(t, ans.Match)

	assert.Equal(t, http.StatusBadRequest, doGet(t, router, "/lemmas/70123/check?formId=107893120&answer=x").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, router, "/lemmas/10789/check?answer=x").Code)
}

func TestMetricsAndUnknownRoute(t *testing.T) {
	router := newTestRouter(t)
	doGet(t, router, "/lemmas/10789/paradigm")
	w := doGet(t, router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "inflect_paradigms_total")

	assert.Equal(t, http.StatusNotFound, doGet(t, router, "/nowhere").Code)
}
