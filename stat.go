package scatterplot

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Params are the named scalar results of a Stat, e.g. "intercept" and
// "slope". Geoms consume them by slot name.
type Params map[string]float64

// Stat is the interface of statistical transforms.
//
// A Stat condenses the sample set into the parameters of a geom, e.g.
// a linear regression produces the intercept and slope a GeomABLine
// needs.
type Stat interface {
	// Name returns the name of this statistic.
	Name() string

	// Apply this statistic to data.
	Apply(data *SampleSet) (Params, error)
}

// Regression methods of StatLinReg.
const (
	NormalEquation = "normal"
	LeastSquares   = "lstsq"
)

// ErrDegenerateFit is returned if the data cannot determine a line.
var ErrDegenerateFit = errors.New("degenerate linear fit")

// -------------------------------------------------------------------------
// StatLinReg

// StatLinReg fits y = intercept + slope*x. It produces the params
// "intercept", "slope" and "r2".
type StatLinReg struct {
	// Method is NormalEquation (the default) which solves
	// (XᵀX) θ = Xᵀy, or LeastSquares which solves X θ = y by QR.
	Method string
}

var _ Stat = StatLinReg{}

func (StatLinReg) Name() string { return "StatLinReg" }

func (s StatLinReg) Apply(data *SampleSet) (Params, error) {
	n := data.Len()
	if n < 2 {
		return nil, errors.Wrapf(ErrDegenerateFit, "need at least 2 samples, got %d", n)
	}
	xs, ys := data.Columns()

	// Design matrix with a bias column of ones.
	X := mat.NewDense(n, 2, nil)
	for i, x := range xs {
		X.Set(i, 0, 1)
		X.Set(i, 1, x)
	}
	y := mat.NewVecDense(n, ys)

	var theta mat.VecDense
	switch s.Method {
	case NormalEquation, "":
		var xtx mat.Dense
		xtx.Mul(X.T(), X)
		var xty mat.VecDense
		xty.MulVec(X.T(), y)
		if err := theta.SolveVec(&xtx, &xty); err != nil {
			return nil, errors.Wrap(ErrDegenerateFit, err.Error())
		}
	case LeastSquares:
		if err := theta.SolveVec(X, y); err != nil {
			return nil, errors.Wrap(ErrDegenerateFit, err.Error())
		}
	default:
		return nil, errors.Errorf("unknown regression method %q", s.Method)
	}

	intercept, slope := theta.AtVec(0), theta.AtVec(1)
	return Params{
		"intercept": intercept,
		"slope":     slope,
		"r2":        stat.RSquared(xs, ys, nil, intercept, slope),
	}, nil
}
