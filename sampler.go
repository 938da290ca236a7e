package matern

import (
	"errors"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws realizations of the non-stationary anisotropic Matérn
// model over a grid. It is stateless across calls; every Sample
// recomputes from its inputs and its own seeded source.
type Sampler struct {
	Smoothness float64

	// Nugget is added to the diagonal of the factorization working copy
	// only. The assembled covariance matrix keeps exact local variances.
	Nugget float64

	Seed uint64
}

func NewSampler(cfg Config) *Sampler {
	return &Sampler{Smoothness: cfg.Smoothness, Nugget: cfg.Nugget, Seed: cfg.Seed}
}

// Covariance assembles the dense Count x Count covariance matrix over
// all node pairs. Only the upper triangle is evaluated; SymDense
// mirrors it, so symmetry holds by construction. The diagonal equals
// the local variance field.
func (s *Sampler) Covariance(grid *Grid, fields *ParameterFields) *mat.SymDense {
	n := grid.Count
	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov.SetSym(i, j, pairCovariance(grid, fields, s.Smoothness, i, j))
		}
	}
	return cov
}

// Sample draws one correlated Gaussian field: factor the covariance,
// multiply the factor into independent standard-normal variates, and
// return the vector in grid flattening order. Deterministic for a given
// seed.
func (s *Sampler) Sample(grid *Grid, fields *ParameterFields) (*Result, error) {
	n := grid.Count

	start := time.Now()
	cov := s.Covariance(grid, fields)
	assembly := time.Since(start)

	work := mat.NewSymDense(n, nil)
	work.CopySym(cov)
	for i := 0; i < n; i++ {
		work.SetSym(i, i, work.At(i, i)+s.Nugget)
	}

	start = time.Now()
	factor, usedFallback, err := factorize(work)
	if err != nil {
		return nil, err
	}
	factorization := time.Since(start)

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(s.Seed)}
	z := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		z.SetVec(i, normal.Rand())
	}

	sample := mat.NewVecDense(n, nil)
	sample.MulVec(factor, z)

	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = sample.AtVec(i)
	}
	return &Result{
		Data:              data,
		Width:             grid.Width,
		Height:            grid.Height,
		UsedFallback:      usedFallback,
		AssemblyTime:      assembly,
		FactorizationTime: factorization,
	}, nil
}

// factorize returns a matrix F with F*Fᵀ equal to a, preferring the
// exact Cholesky factor. When a is not numerically positive
// semi-definite the eigendecomposition is taken instead, eigenvalues
// below zero are clipped, and the approximate factor Q*sqrt(Λ⁺) is
// returned with the fallback flag set. An eigendecomposition failure is
// fatal: no valid covariance structure can be recovered.
func factorize(a *mat.SymDense) (mat.Matrix, bool, error) {
	var chol mat.Cholesky
	if chol.Factorize(a) {
		var l mat.TriDense
		chol.LTo(&l)
		return &l, false, nil
	}

	var eig mat.EigenSym
	if !eig.Factorize(a, true) {
		return nil, false, errors.New("matern: covariance eigendecomposition failed")
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	n := len(values)
	factor := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		root := 0.0
		if values[j] > 0 {
			root = math.Sqrt(values[j])
		}
		for i := 0; i < n; i++ {
			factor.Set(i, j, vectors.At(i, j)*root)
		}
	}
	return factor, true, nil
}
