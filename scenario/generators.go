package scenario

import (
	"github.com/podheal/healbatch/network"
	"github.com/podheal/healbatch/probability"
)

// RandomGenerator synthesizes a cluster's types and weak connections from
// scratch, with no reference to any physical fabric.
type RandomGenerator struct {
	probability.RandomGenerator
}

// NewRandomGenerator returns a RandomGenerator with a default major rate of
// 0.2.
func NewRandomGenerator() RandomGenerator {
	return RandomGenerator{RandomGenerator: probability.NewRandomGenerator()}
}

// ProbabilityGenerator derives per-pair weak-link probabilities from a
// frozen Fabric and samples core.ConnectionState instances from them.
type ProbabilityGenerator struct {
	*probability.Model
}

// NewProbabilityGenerator derives a ProbabilityGenerator from fn, the
// frozen network a Fabric produces.
func NewProbabilityGenerator(fn *network.FreezedNetwork) (ProbabilityGenerator, error) {
	m, err := probability.FromNetwork(fn)
	if err != nil {
		return ProbabilityGenerator{}, err
	}
	return ProbabilityGenerator{Model: m}, nil
}
