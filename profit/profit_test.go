package profit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/pricer/game"
)

func TestLinear_Profit(t *testing.T) {
	t.Parallel()

	m := Linear{Intercept: 10, OwnSlope: 2, CrossSlope: 1, Cost: 1}

	// q = 10 - 2*3 + 1*4 = 8; profit = (3-1)*8
	assert.InDelta(t, 16.0, m.Profit(3, 4), 1e-12)
	// demand floors at zero
	assert.Equal(t, 0.0, m.Demand(100, 0))
	assert.Equal(t, 0.0, m.Profit(100, 0))
}

func TestLogit_SharesSumBelowOne(t *testing.T) {
	t.Parallel()

	m := Logit{Quality: 2, Cost: 1, Mu: 0.25, Outside: 0}
	s1 := m.Share(1.5, 1.7)
	s2 := m.Share(1.7, 1.5)

	assert.Greater(t, s1, s2, "cheaper firm takes the larger share")
	assert.Less(t, s1+s2, 1.0)
	assert.InDelta(t, (1.5-1)*s1, m.Profit(1.5, 1.7), 1e-12)
}

func TestLogit_ExtremePricesStayFinite(t *testing.T) {
	t.Parallel()

	m := Logit{Quality: 2, Cost: 1, Mu: 0.01}
	s := m.Share(-1000, 1000)
	assert.InDelta(t, 1.0, s, 1e-9)
}

// The own callback takes (own, opponent); the opponent callback takes
// (opponent, own). Swapping them must show up as a different answer.
func TestCallbacks_ArgumentOrder(t *testing.T) {
	t.Parallel()

	ownModel := Linear{Intercept: 10, OwnSlope: 2, CrossSlope: 1, Cost: 1}
	oppModel := Linear{Intercept: 12, OwnSlope: 3, CrossSlope: 1, Cost: 2}
	own, opp := Callbacks(ownModel, oppModel)

	pOwn, pOpp := 3.0, 4.0
	assert.Equal(t, ownModel.Profit(pOwn, pOpp), own(pOwn, pOpp))
	assert.Equal(t, oppModel.Profit(pOpp, pOwn), opp(pOpp, pOwn))
	assert.NotEqual(t, opp(pOpp, pOwn), opp(pOwn, pOpp))
}

// recorder captures the arguments of every callback invocation.
type recorder struct {
	calls [][2]float64
}

func (r *recorder) Profit(first, second float64) float64 {
	r.calls = append(r.calls, [2]float64{first, second})
	return first - second
}

// probePlayer evaluates both callbacks once, the way a real strategy would,
// before settling on the lower bound.
type probePlayer struct{ rival float64 }

func (probePlayer) Name() string { return "probe" }

func (p probePlayer) Play(own, opp game.ProfitFunc, pmin, pmax float64) (float64, error) {
	_ = own(pmin, p.rival)
	_ = opp(p.rival, pmin)
	return pmin, nil
}

func TestCallbacks_DocumentedOrderThroughPlayer(t *testing.T) {
	t.Parallel()

	ownRec, oppRec := &recorder{}, &recorder{}
	own, opp := Callbacks(ownRec, oppRec)

	price, err := game.Decide(probePlayer{rival: 7}, own, opp, 2, 9)
	require.NoError(t, err)
	assert.Equal(t, 2.0, price)

	assert.Equal(t, [][2]float64{{2, 7}}, ownRec.calls)
	assert.Equal(t, [][2]float64{{7, 2}}, oppRec.calls)
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		want    Model
		wantErr string
	}{
		{
			name:   "linear",
			params: Params{Model: "linear", Intercept: 10, OwnSlope: 2, CrossSlope: 1, Cost: 1},
			want:   Linear{Intercept: 10, OwnSlope: 2, CrossSlope: 1, Cost: 1},
		},
		{
			name:   "bertrand alias",
			params: Params{Model: "Bertrand", OwnSlope: 1},
			want:   Linear{OwnSlope: 1},
		},
		{
			name:   "logit",
			params: Params{Model: "logit", Quality: 2, Mu: 0.25, Cost: 1},
			want:   Logit{Quality: 2, Mu: 0.25, Cost: 1},
		},
		{
			name:    "linear without slope",
			params:  Params{Model: "linear"},
			wantErr: "own_slope must be positive",
		},
		{
			name:    "logit without mu",
			params:  Params{Model: "logit"},
			wantErr: "mu must be positive",
		},
		{
			name:    "unknown",
			params:  Params{Model: "cournot"},
			wantErr: `unknown profit model "cournot"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ByName(tt.params)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}
}
