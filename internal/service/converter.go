package service

import (
	"math"
	"strconv"
)

type conversionPair struct {
	rate      float64
	precision int
}

// NewConversionPair creates the pure forward/inverse conversion pair for the
// given rate and display precision.
//
// The rate must be non-zero and finite; precision must be within 0..8.
// Violations are fatal configuration errors reported here, at setup time.
func NewConversionPair(rate float64, precision int) (ConvertService, error) {
	if rate == 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, ErrInvalidRate
	}
	if precision < 0 || precision > 8 {
		return nil, ErrInvalidPrecision
	}

	return &conversionPair{rate: rate, precision: precision}, nil
}

func (p *conversionPair) Forward(x float64) float64 {
	return x * p.rate
}

func (p *conversionPair) Inverse(y float64) float64 {
	return y / p.rate
}

func (p *conversionPair) Round(v float64) float64 {
	shift := math.Pow(10, float64(p.precision))
	return math.Round(v*shift) / shift
}

func (p *conversionPair) Format(v float64) string {
	return strconv.FormatFloat(p.Round(v), 'f', p.precision, 64)
}

func (p *conversionPair) Rate() float64 {
	return p.rate
}

func (p *conversionPair) Precision() int {
	return p.precision
}
