// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stp provides short-term synaptic plasticity: a facilitation and
depression pair of scalars that together produce a per-step multiplier on
synaptic conductance, driven by the recent history of presynaptic spikes.
*/
package stp

import "github.com/chewxy/math32"

// Params are the short-term plasticity parameters and running state for one synapse.
// Each synapse owns its own Params.
type Params struct {
	Tf float32 `def:"20" min:"1" desc:"time constant for facilitation to decay back toward 0 in the absence of presynaptic spikes"`
	Td float32 `def:"200" min:"1" desc:"time constant for depression to recover back toward 1 in the absence of presynaptic spikes"`
	P  float32 `def:"0.5" min:"0" max:"1" desc:"proportion of remaining facilitation (1-F) gained on each presynaptic spike"`

	F float32 `inactive:"+" desc:"facilitation factor -- starts at 1, >= 0"`
	D float32 `inactive:"+" desc:"depression factor -- starts at 0, >= 0"`
	Y float32 `inactive:"+" desc:"output multiplier computed on the last Learn call"`
}

// New returns plasticity params with given facilitation and depression time constants
// and increment, initialized to the starting state.
func New(tf, td, p float32) Params {
	sp := Params{Tf: tf, Td: td, P: p}
	sp.Init()
	return sp
}

func (sp *Params) Defaults() {
	sp.Tf = 20
	sp.Td = 200
	sp.P = 0.5
	sp.Init()
}

// Update keeps the time constants at or above 1 so a single
// step of decay never overshoots past the resting value.
func (sp *Params) Update() {
	sp.Tf = math32.Max(sp.Tf, 1)
	sp.Td = math32.Max(sp.Td, 1)
}

// Init restores the running state to F = 1, D = 0, Y = 0
func (sp *Params) Init() {
	sp.F = 1
	sp.D = 0
	sp.Y = 0
}

// Learn updates facilitation and depression for one step given whether
// the presynaptic source spiked, and returns the output multiplier Y.
// Y is the updated facilitation times the depression value from before this step.
func (sp *Params) Learn(spike bool) float32 {
	return sp.LearnP(spike, sp.P)
}

// LearnP is Learn using given increment in place of P, so a modulator can
// rescale the increment for one step without altering the stored value.
func (sp *Params) LearnP(spike bool, p float32) float32 {
	pd := sp.D
	if spike {
		sp.F += p * (1 - sp.F)
		sp.D -= sp.F * sp.D
	} else {
		sp.F -= sp.F / sp.Tf
		sp.D += (1 - sp.D) / sp.Td
	}
	sp.Y = sp.F * pd
	return sp.Y
}
