package simulador

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// PTAXBaseURL is the Banco Central do Brasil OData service publishing the
// daily PTAX USD/BRL reference rates.
const PTAXBaseURL = "https://olinda.bcb.gov.br/olinda/servico/PTAX/versao/v1/odata"

// ErrNoQuote is returned when no PTAX rate was published in the searched days.
var ErrNoQuote = errors.New("no PTAX quote")

// Quote is the PTAX closing quote of a day, in BRL per USD.
type Quote struct {
	Date time.Time
	Buy  float64 // cotacaoCompra: rate at which the market buys USD
	Sell float64 // cotacaoVenda: rate at which the market sells USD
}

// Apply sets the exchange rates of p from q: the investor pays the sell rate
// when buying USD and receives the buy rate when selling them.
func (q Quote) Apply(p *Params) {
	p.FXBuy = q.Sell
	p.FXSell = q.Buy
}

// PTAX fetches quotes from the Banco Central do Brasil.
type PTAX struct {
	client *resty.Client
}

// NewPTAX returns a client for baseURL. With cache, responses are kept on disk
// for the day.
func NewPTAX(baseURL string, cache bool) *PTAX {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetHeader("Accept", "application/json")
	if cache {
		c.SetTransport(daily())
	}
	return &PTAX{client: c}
}

// maxLookback bounds the search for the latest business day.
const maxLookback = 10

// Latest returns the last quote published on or before day, walking back over
// weekends and holidays.
func (x *PTAX) Latest(ctx context.Context, day time.Time) (Quote, error) {
	for i := 0; i < maxLookback; i++ {
		d := day.AddDate(0, 0, -i)
		q, err := x.On(ctx, d)
		if errors.Is(err, ErrNoQuote) {
			logrus.Debugf("no PTAX quote on %s", d.Format(time.DateOnly))
			continue
		}
		return q, err
	}
	return Quote{}, fmt.Errorf("%w in the %d days before %s", ErrNoQuote, maxLookback, day.Format(time.DateOnly))
}

// On returns the quote of a given day, or ErrNoQuote.
func (x *PTAX) On(ctx context.Context, day time.Time) (Quote, error) {
	resp, err := x.client.R().
		SetContext(ctx).
		SetQueryString(fmt.Sprintf("@dataCotacao='%s'&$top=1&$format=json", day.Format("01-02-2006"))).
		Get("/CotacaoDolarDia(dataCotacao=@dataCotacao)")
	if err != nil {
		return Quote{}, fmt.Errorf("error retrieving PTAX on %s: %w", day.Format(time.DateOnly), err)
	}
	if resp.IsError() {
		return Quote{}, fmt.Errorf("cannot http GET %s: %s", resp.Request.URL, resp.Status())
	}
	var jobj any
	if err := json.Unmarshal(resp.Body(), &jobj); err != nil {
		return Quote{}, fmt.Errorf("error decoding PTAX response: %w", err)
	}

	buy, err := jfloat(jobj, "$.value[0].cotacaoCompra")
	if err != nil {
		return Quote{}, err
	}
	sell, err := jfloat(jobj, "$.value[0].cotacaoVenda")
	if err != nil {
		return Quote{}, err
	}
	return Quote{Date: day, Buy: buy, Sell: sell}, nil
}

// jfloat extracts a number from a decoded JSON document. An empty result set
// means there was no quote that day.
func jfloat(jobj any, path string) (float64, error) {
	if jlist, err := jsonpath.Get("$.value", jobj); err == nil {
		if l, ok := jlist.([]any); ok && len(l) == 0 {
			return 0, ErrNoQuote
		}
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing PTAX response %q: %w", path, err)
	}
	// jsonpath may return a list of one answer or the answer itself
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing PTAX response %q: not a number %v", path, jval)
	}
	return val, nil
}
