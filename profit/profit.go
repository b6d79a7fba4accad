// Package profit provides payoff models that stand in for the harness's
// profit functions when a player is driven locally.
package profit

import (
	"fmt"
	"math"
	"strings"

	"github.com/rustyeddy/pricer/game"
)

// Model computes one firm's profit from its own price and its rival's.
type Model interface {
	Profit(own, opponent float64) float64
}

// Callbacks turns a pair of models into the two callbacks a player receives.
// Both callbacks take the evaluated firm's price first:
//
//	own(ownPrice, opponentPrice)
//	opponent(opponentPrice, ownPrice)
func Callbacks(ownModel, opponentModel Model) (own, opponent game.ProfitFunc) {
	return ownModel.Profit, opponentModel.Profit
}

// Linear is a Bertrand duopoly with linear demand
//
//	q = max(0, Intercept - OwnSlope*own + CrossSlope*opponent)
//
// and constant marginal cost.
type Linear struct {
	Intercept  float64 `json:"intercept" yaml:"intercept"`
	OwnSlope   float64 `json:"own_slope" yaml:"own_slope"`
	CrossSlope float64 `json:"cross_slope" yaml:"cross_slope"`
	Cost       float64 `json:"cost" yaml:"cost"`
}

func (l Linear) Demand(own, opponent float64) float64 {
	return math.Max(0, l.Intercept-l.OwnSlope*own+l.CrossSlope*opponent)
}

func (l Linear) Profit(own, opponent float64) float64 {
	return (own - l.Cost) * l.Demand(own, opponent)
}

// Logit is a differentiated-goods duopoly with logit demand. Share of the
// evaluated firm is
//
//	exp((Quality-own)/Mu) / (exp((Quality-own)/Mu) + exp((Quality-opponent)/Mu) + exp(Outside/Mu))
type Logit struct {
	Quality float64 `json:"quality" yaml:"quality"`
	Cost    float64 `json:"cost" yaml:"cost"`
	Mu      float64 `json:"mu" yaml:"mu"`
	Outside float64 `json:"outside" yaml:"outside"`
}

func (l Logit) Share(own, opponent float64) float64 {
	mu := l.Mu
	if mu <= 0 {
		mu = 1
	}
	a := (l.Quality - own) / mu
	b := (l.Quality - opponent) / mu
	c := l.Outside / mu

	// Shift by the max exponent to keep exp in range.
	m := math.Max(a, math.Max(b, c))
	ea, eb, ec := math.Exp(a-m), math.Exp(b-m), math.Exp(c-m)
	return ea / (ea + eb + ec)
}

func (l Logit) Profit(own, opponent float64) float64 {
	return (own - l.Cost) * l.Share(own, opponent)
}

// Params is the config-facing description of a model.
type Params struct {
	Model      string  `json:"model" yaml:"model"`
	Intercept  float64 `json:"intercept,omitempty" yaml:"intercept,omitempty"`
	OwnSlope   float64 `json:"own_slope,omitempty" yaml:"own_slope,omitempty"`
	CrossSlope float64 `json:"cross_slope,omitempty" yaml:"cross_slope,omitempty"`
	Quality    float64 `json:"quality,omitempty" yaml:"quality,omitempty"`
	Mu         float64 `json:"mu,omitempty" yaml:"mu,omitempty"`
	Outside    float64 `json:"outside,omitempty" yaml:"outside,omitempty"`
	Cost       float64 `json:"cost" yaml:"cost"`
}

// ByName builds the model named in p.Model ("linear" or "logit").
func ByName(p Params) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(p.Model)) {
	case "linear", "bertrand":
		if p.OwnSlope <= 0 {
			return nil, fmt.Errorf("linear model: own_slope must be positive")
		}
		return Linear{Intercept: p.Intercept, OwnSlope: p.OwnSlope, CrossSlope: p.CrossSlope, Cost: p.Cost}, nil
	case "logit":
		if p.Mu <= 0 {
			return nil, fmt.Errorf("logit model: mu must be positive")
		}
		return Logit{Quality: p.Quality, Cost: p.Cost, Mu: p.Mu, Outside: p.Outside}, nil
	default:
		return nil, fmt.Errorf("unknown profit model %q (supported: linear, logit)", p.Model)
	}
}
