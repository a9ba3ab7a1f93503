package policybuilder

import (
	"fmt"
	"math/rand"

	"github.com/ChizhovVadim/chesstack/pkg/common"
	"github.com/ChizhovVadim/chesstack/pkg/engine"
	"github.com/ChizhovVadim/chesstack/pkg/eval/material"
)

// Builder creates a policy playing color on p.
type Builder func(p common.Position, color common.Color, rnd *rand.Rand) engine.Policy

var Names = []string{"simple", "weighted", "negamax", "search"}

// Get returns the builder for key. "negamax" plays the one-ply heuristic
// choice of the negamax bot, "search" plays its full-width best action.
func Get(key string, options engine.Options) (Builder, error) {
	switch key {
	case "simple":
		return func(p common.Position, color common.Color, rnd *rand.Rand) engine.Policy {
			return engine.NewSimpleBot(p, rnd)
		}, nil
	case "weighted":
		return func(p common.Position, color common.Color, rnd *rand.Rand) engine.Policy {
			return engine.NewWeightedBot(p, rnd)
		}, nil
	case "", "negamax":
		return func(p common.Position, color common.Color, rnd *rand.Rand) engine.Policy {
			return engine.NewEngine(p, color, material.NewEvaluationService(), options, rnd)
		}, nil
	case "search":
		options.FullSearch = true
		return func(p common.Position, color common.Color, rnd *rand.Rand) engine.Policy {
			return engine.NewEngine(p, color, material.NewEvaluationService(), options, rnd)
		}, nil
	}
	return nil, fmt.Errorf("bad policy %v", key)
}
