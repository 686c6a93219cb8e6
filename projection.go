package simulador

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Projection is the outcome of the three simulations for one parameter set.
type Projection struct {
	Params  Params
	Results [len(Scenarios)]ScenarioResult // indexed by Scenario
}

// Simulator computes one scenario.
type Simulator func(Params, Rates) ScenarioResult

var simulators = [len(Scenarios)]Simulator{
	ETF:    SimulateETF,
	Bond:   SimulateBond,
	Mutual: SimulateMutual,
}

// Project validates p and runs the three simulations.
//
// The simulations are independent and run concurrently, each one writes to its
// own slot so the result does not depend on scheduling.
func Project(p Params) (*Projection, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rates := NewRates(p)
	logrus.WithField("params", p.String()).Debug("running projection")

	proj := &Projection{Params: p}
	var g errgroup.Group
	for _, s := range Scenarios {
		s := s
		g.Go(func() error {
			res := simulators[s](p, rates)
			if len(res.Yearly) != p.Years {
				return fmt.Errorf("%w: %v produced %d yearly values, want %d", ErrInternal, s, len(res.Yearly), p.Years)
			}
			proj.Results[s] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return proj, nil
}

// Result returns the outcome of scenario s.
func (p *Projection) Result(s Scenario) ScenarioResult { return p.Results[s] }

// BRL converts an amount in USD at the terminal exchange rate.
func (p *Projection) BRL(usd float64) float64 { return usd * p.Params.FXSell }
