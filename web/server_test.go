package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/etnz/simulador"
	"github.com/etnz/simulador/renderer"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	srv := httptest.NewServer(NewServer(simulador.DefaultParams(), log).Router())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestParseParams(t *testing.T) {
	form := url.Values{
		"years":             {"5"},
		"monthly_contrib":   {"100"},
		"etf_growth_annual": {"7,5"},
		"unknown":           {"1"},
	}
	p, err := ParseParams(form, simulador.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 5, p.Years)
	assert.Equal(t, 100.0, p.MonthlyContrib)
	assert.InDelta(t, 0.075, p.ETFGrowthAnnual, 1e-12)
	assert.Equal(t, 6.0, p.FXSell)
}

func TestParseParams_Errors(t *testing.T) {
	form := url.Values{"years": {"zero"}, "fx_sell": {"0"}}
	p, err := ParseParams(form, simulador.DefaultParams())
	require.ErrorIs(t, err, simulador.ErrInvalidParameter)
	// a parse error is reported first, the range check needs parsable values
	assert.Contains(t, simulador.ByField(err), "years")
	assert.Equal(t, 0.0, p.FXSell)

	_, err = ParseParams(url.Values{"fx_sell": {"0"}}, simulador.DefaultParams())
	assert.Equal(t, map[string]string{"fx_sell": "must be between 1 and 20"}, simulador.ByField(err))
}

func TestPage(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv, "/?years=1&usd_initial=1000&bond_coupon_annual=12&reinvest_rate_annual=0&fx_sell=5")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "5,420.00")
}

func TestPage_ChartTab(t *testing.T) {
	srv := newTestServer(t)
	for _, years := range []string{"1", "10", "50"} {
		q := url.Values{"years": {years}, "tab": {"grafico"}}
		resp, body := get(t, srv, "/?"+q.Encode())
		require.Equal(t, http.StatusOK, resp.StatusCode, "years=%s", years)
		assert.Contains(t, string(body), "<pre>")
		assert.Contains(t, string(body), "anos 1 a "+years)
	}
}

func TestPage_ThousandsSeparator(t *testing.T) {
	srv := newTestServer(t)
	q := url.Values{"usd_initial": {"10,000"}}
	resp, body := get(t, srv, "/?"+q.Encode())
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), "must not contain thousands separators")

	q = url.Values{"fx_sell": {"5,5"}}
	resp, body = get(t, srv, "/api/projection?"+q.Encode())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got struct {
		Params simulador.Params `json:"params"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 5.5, got.Params.FXSell)
}

func TestPage_Invalid(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv, "/?years=0")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), "must be between 1 and 50")
}

func TestExport(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv, "/export.xlsx?years=3")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, renderer.WorkbookMIME, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), renderer.WorkbookFilename)
	// xlsx files are zip archives
	assert.Equal(t, "PK", string(body[:2]))
}

func TestAPI(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv, "/api/projection?years=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Params  simulador.Params `json:"params"`
		Summary []map[string]any `json:"summary"`
		Yearly  []map[string]any `json:"yearly"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 2, got.Params.Years)
	assert.Len(t, got.Summary, 3)
	assert.Len(t, got.Yearly, 2)
}

func TestAPI_Invalid(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv, "/api/projection?fx_sell=0&years=51")
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var got struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Contains(t, got.Errors, "fx_sell")
	assert.Contains(t, got.Errors, "years")
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := get(t, srv, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get(t, srv, "/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
