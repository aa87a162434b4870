// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikemodel provides the table of Izhikevich spike model presets.
Each SpikeModel selects the constants A, B, C, D that govern the recovery
variable and reset, the resting U, V state, and for the extended
(multi-compartment) models the additional Ext constants.

The simple models integrate

	dv/dt = 0.04 v^2 + 5 v + 140 - u + I
	du/dt = a (b v - u)

and the extended models integrate

	cap dv/dt = k (v - vr)(v - vt) - u + I
	du/dt = a (b (v - vr) - u)
*/
package spikemodel

//go:generate stringer -type=SpikeModel

import (
	"github.com/goki/ki/kit"
)

// SpikeModel selects a preset of spiking dynamics
type SpikeModel int32

const (
	// Accommodation fires only in response to rapidly rising input, accommodating slow ramps
	Accommodation SpikeModel = iota
	Bistability
	// ChatteringI fires fast rhythmic bursts of closely spaced spikes
	ChatteringI
	ChatteringII
	// ClassI fires at a rate that grows continuously from 0 with input strength
	ClassI
	// ClassII fires at a nonzero minimum rate once input crosses threshold
	ClassII
	DepolarizingAfterPotential
	EntorhinalStellate
	// FastSpiking fast spiking inhibitory interneuron with little adaptation
	FastSpiking
	// FastSpikingBasket uses a cubic recovery term above the resting voltage
	FastSpikingBasket
	HippocampalCA1PyramidalHighThresholdBursting
	HippocampalCA1PyramidalLowThresholdBurstingI
	HippocampalCA1PyramidalLowThresholdBurstingII
	HippocampalCA1PyramidalNonBursting
	InhibitionInducedBursting
	InhibitionInducedSpiking
	Integrator
	IntrinsicallyBurstingPyramidal
	// IntrinsicallyBurstingPyramidalDendriteI dendritic compartment driven by the parent coupling voltage weighted by Vp
	IntrinsicallyBurstingPyramidalDendriteI
	IntrinsicallyBurstingPyramidalDendriteII
	// IntrinsicallyBurstingPyramidalSomaI somatic compartment driven by the child coupling voltage weighted by Vp
	IntrinsicallyBurstingPyramidalSomaI
	IntrinsicallyBurstingPyramidalSomaII
	LatentSpikingNonBasket
	LatentSpikingNonBasketDendrite
	LowThresholdSpiking
	// LowThresholdSpikingNonBasket uses a recovery-dependent spike peak and a capped recovery variable
	LowThresholdSpikingNonBasket
	MixedMode
	PhasicBursting
	PhasicSpiking
	ReboundBurst
	ReboundSpike
	// RegularSpiking the most common excitatory cortical pattern with adapting spikes
	RegularSpiking
	RegularSpikingPyramidalI
	RegularSpikingPyramidalII
	RegularSpikingPyramidalL2L3Dendrite
	RegularSpikingPyramidalL4Dendrite
	RegularSpikingPyramidalL5L6Dendrite
	RegularSpikingSpinyStellate
	RegularSpikingSpinyStellateDendrite
	ResonatorI
	ResonatorII
	// ReticularThalamicNeuron derives B from the membrane potential on every step
	ReticularThalamicNeuron
	SpikeFrequencyAdaptation
	SpikeLatency
	SpinyProjection
	SubthresholdOscillation
	// ThalamicInterneuron uses a recovery-dependent spike peak and a capped recovery variable
	ThalamicInterneuron
	// Thalamocortical thalamocortical relay neuron that bursts when hyperpolarized and spikes tonically at rest
	Thalamocortical
	ThalamocorticalBursting
	ThalamocorticalSpiking
	ThresholdVariability
	TonicBursting
	TonicSpiking

	SpikeModelN
)

var KiT_SpikeModel = kit.Enums.AddEnum(SpikeModelN, kit.NotBitFlag, nil)

func (ev SpikeModel) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SpikeModel) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// Ext are the constants specific to the extended models
type Ext struct {
	On  bool    `desc:"true for extended models, false for simple models where the other fields are unused"`
	K   float32 `desc:"scaling of the quadratic voltage term"`
	Gcc float32 `desc:"conductance from child compartments"`
	Gpc float32 `desc:"conductance from the parent compartment"`
	Vr  float32 `desc:"resting membrane potential"`
	Vt  float32 `desc:"instantaneous threshold potential"`
	Vp  float32 `desc:"spike peak potential"`
	Cap float32 `desc:"membrane capacitance"`
}

// Preset are the constants and default state for one spike model
type Preset struct {
	A   float32 `desc:"time scale of the recovery variable u"`
	B   float32 `desc:"sensitivity of u to subthreshold fluctuations of v"`
	C   float32 `desc:"after-spike reset value of v"`
	D   float32 `desc:"after-spike increment of u"`
	U   float32 `desc:"default recovery variable"`
	V   float32 `desc:"default membrane potential"`
	Ext Ext     `desc:"extended model constants, with On false for simple models"`
}

// Presets is the table of constants for every spike model
var Presets = [SpikeModelN]Preset{
	Accommodation: {A: 0.02, B: 1, C: -55, D: 4, U: -16, V: -65},
	Bistability:   {A: 0.1, B: 0.26, C: -60, D: 0, U: -15.86, V: -61},
	ChatteringI:   {A: 0.02, B: 0.2, C: -50, D: 2, U: -14, V: -70},
	ChatteringII: {A: 0.03, B: 1, C: -40, D: 150, U: 0, V: -60,
		Ext: Ext{On: true, K: 1.5, Gcc: 0, Gpc: 0, Vr: -60, Vt: -40, Vp: 25, Cap: 50}},
	ClassI:                     {A: 0.02, B: -0.1, C: -55, D: 6, U: 6, V: -60},
	ClassII:                    {A: 0.2, B: 0.26, C: -65, D: 0, U: -16.64, V: -64},
	DepolarizingAfterPotential: {A: 1, B: 0.2, C: -60, D: -21, U: -14, V: -70},
	EntorhinalStellate: {A: 0.01, B: 15, C: -50, D: 0, U: 0, V: -60,
		Ext: Ext{On: true, K: 0.75, Gcc: 1, Gpc: 1, Vr: -60, Vt: -45, Vp: 30, Cap: 200}},
	FastSpiking: {A: 0.1, B: 0.2, C: -65, D: 2, U: -14, V: -70},
	FastSpikingBasket: {A: 0.2, B: 0, C: -55, D: 0, U: 0, V: -55,
		Ext: Ext{On: true, K: 1, Gcc: 0.5, Gpc: 1, Vr: -55, Vt: -40, Vp: 25, Cap: 20}},
	HippocampalCA1PyramidalHighThresholdBursting: {A: 0.02, B: 0.5, C: -45, D: 50, U: 0, V: -60,
		Ext: Ext{On: true, K: 1, Gcc: 1, Gpc: 1, Vr: -60, Vt: -45, Vp: 40, Cap: 50}},
	HippocampalCA1PyramidalLowThresholdBurstingI: {A: 0.02, B: 0.5, C: -40, D: 55, U: 0, V: -60,
		Ext: Ext{On: true, K: 1, Gcc: 1, Gpc: 1, Vr: -60, Vt: -45, Vp: 40, Cap: 50}},
	HippocampalCA1PyramidalLowThresholdBurstingII: {A: 0.02, B: 0.5, C: -35, D: 60, U: 0, V: -60,
		Ext: Ext{On: true, K: 1, Gcc: 1, Gpc: 1, Vr: -60, Vt: -45, Vp: 40, Cap: 50}},
	HippocampalCA1PyramidalNonBursting: {A: 0.02, B: 0.5, C: -50, D: 50, U: 0, V: -60,
		Ext: Ext{On: true, K: 1, Gcc: 1, Gpc: 1, Vr: -60, Vt: -45, Vp: 40, Cap: 50}},
	InhibitionInducedBursting: {A: 0.026, B: -1, C: -45, D: -2, U: 63.8, V: -63.8},
	InhibitionInducedSpiking:  {A: 0.02, B: -1, C: -60, D: 8, U: 63.8, V: -63.8},
	Integrator:                {A: 0.02, B: -0.1, C: -55, D: 6, U: 6, V: -60},
	IntrinsicallyBurstingPyramidal: {A: 0.01, B: 5, C: -56, D: 130, U: 0, V: -75,
		Ext: Ext{On: true, K: 1.2, Gcc: 1, Gpc: 1, Vr: -75, Vt: -45, Vp: 50, Cap: 150}},
	IntrinsicallyBurstingPyramidalDendriteI: {A: 3, B: 15, C: -20, D: 500, U: 0, V: -50,
		Ext: Ext{On: true, K: 1, Gcc: 1, Gpc: 1, Vr: -50, Vt: -50, Vp: 20, Cap: 30}},
	IntrinsicallyBurstingPyramidalDendriteII: {A: 0.01, B: 5, C: -35, D: 1000, U: 0, V: -60,
		Ext: Ext{On: true, K: 3, Gcc: 0.007, Gpc: 0.007, Vr: -60, Vt: -50, Vp: 10, Cap: 100}},
	IntrinsicallyBurstingPyramidalSomaI: {A: 0.01, B: 5, C: -52, D: 240, U: 0, V: -70,
		Ext: Ext{On: true, K: 3, Gcc: 1, Gpc: 1, Vr: -70, Vt: -45, Vp: 50, Cap: 150}},
	IntrinsicallyBurstingPyramidalSomaII: {A: 0.01, B: 5, C: -55, D: 500, U: 0, V: -60,
		Ext: Ext{On: true, K: 3, Gcc: 0.007, Gpc: 0.007, Vr: -60, Vt: -50, Vp: 50, Cap: 100}},
	LatentSpikingNonBasket: {A: 0.17, B: 5, C: -45, D: 20, U: 0, V: -53,
		Ext: Ext{On: true, K: 0.3, Gcc: 0.6, Gpc: 2.5, Vr: -66, Vt: -40, Vp: 30, Cap: 20}},
	LatentSpikingNonBasketDendrite: {A: 0.17, B: 5, C: -45, D: 20, U: 0, V: -53,
		Ext: Ext{On: true, K: 0.3, Gcc: 0.6, Gpc: 2.5, Vr: -66, Vt: -40, Vp: 100, Cap: 20}},
	LowThresholdSpiking: {A: 0.02, B: 0.25, C: -65, D: 2, U: -15.75, V: -63},
	LowThresholdSpikingNonBasket: {A: 0.03, B: 8, C: -53, D: 20, U: 0, V: -53,
		Ext: Ext{On: true, K: 3, Gcc: 1, Gpc: 1, Vr: -56, Vt: -42, Vp: 40, Cap: 100}},
	MixedMode:      {A: 0.02, B: 0.2, C: -55, D: 4, U: -14, V: -70},
	PhasicBursting: {A: 0.02, B: 0.25, C: -55, D: 0.05, U: -16, V: -64},
	PhasicSpiking:  {A: 0.02, B: 0.25, C: -65, D: 6, U: -16, V: -64},
	ReboundBurst:   {A: 0.03, B: 0.25, C: -52, D: 0, U: -16, V: -64},
	ReboundSpike:   {A: 0.03, B: 0.25, C: -60, D: 4, U: -16, V: -64},
	RegularSpiking: {A: 0.02, B: 0.2, C: -65, D: 8, U: -12.6, V: -63},
	RegularSpikingPyramidalI: {A: 0.03, B: -2, C: -50, D: 100, U: 0, V: -60,
		Ext: Ext{On: true, K: 0.7, Gcc: 1, Gpc: 1, Vr: -60, Vt: -40, Vp: 35, Cap: 100}},
	RegularSpikingPyramidalII: {A: 0.01, B: 5, C: -60, D: 400, U: 0, V: -60,
		Ext: Ext{On: true, K: 3, Gcc: 3, Gpc: 5, Vr: -60, Vt: -50, Vp: 50, Cap: 100}},
	RegularSpikingPyramidalL2L3Dendrite: {A: 0.01, B: 5, C: -55, D: 400, U: 0, V: -60,
		Ext: Ext{On: true, K: 3, Gcc: 3, Gpc: 5, Vr: -60, Vt: -50, Vp: 30, Cap: 100}},
	RegularSpikingPyramidalL4Dendrite: {A: 0.01, B: 5, C: -50, D: 400, U: 0, V: -60,
		Ext: Ext{On: true, K: 3, Gcc: 3, Gpc: 5, Vr: -60, Vt: -50, Vp: 50, Cap: 100}},
	RegularSpikingPyramidalL5L6Dendrite: {A: 0.01, B: 5, C: -50, D: 400, U: 0, V: -60,
		Ext: Ext{On: true, K: 3, Gcc: 3, Gpc: 5, Vr: -60, Vt: -50, Vp: 30, Cap: 100}},
	RegularSpikingSpinyStellate: {A: 0.01, B: 5, C: -60, D: 400, U: 0, V: -60,
		Ext: Ext{On: true, K: 3, Gcc: 3, Gpc: 5, Vr: -60, Vt: -50, Vp: 50, Cap: 100}},
	RegularSpikingSpinyStellateDendrite: {A: 0.01, B: 5, C: -50, D: 400, U: 0, V: -60,
		Ext: Ext{On: true, K: 3, Gcc: 3, Gpc: 5, Vr: -60, Vt: -50, Vp: 30, Cap: 100}},
	ResonatorI:  {A: 0.1, B: 0.26, C: -65, D: 2, U: -18.2, V: -70},
	ResonatorII: {A: 0.1, B: 0.26, C: -60, D: -1, U: -16.12, V: -62},
	ReticularThalamicNeuron: {A: 0.015, B: 10, C: -55, D: 50, U: 0, V: 0,
		Ext: Ext{On: true, K: 0.25, Gcc: 5, Gpc: 5, Vr: -65, Vt: -45, Vp: 0, Cap: 40}},
	SpikeFrequencyAdaptation: {A: 0.01, B: 0.2, C: -65, D: 8, U: -14, V: -70},
	SpikeLatency:             {A: 0.02, B: 0.2, C: -65, D: 6, U: -14, V: -70},
	SpinyProjection: {A: 0.01, B: -20, C: -55, D: 150, U: 0, V: -80,
		Ext: Ext{On: true, K: 1, Gcc: 1, Gpc: 1, Vr: -80, Vt: -25, Vp: 40, Cap: 50}},
	SubthresholdOscillation: {A: 0.05, B: 0.26, C: -60, D: 0, U: -16.12, V: -62},
	ThalamicInterneuron: {A: 0.05, B: 7, C: -65, D: 50, U: 0, V: -60,
		Ext: Ext{On: true, K: 0.5, Gcc: 5, Gpc: 5, Vr: -60, Vt: -50, Vp: 20, Cap: 20}},
	Thalamocortical: {A: 0.1, B: 15, C: -60, D: 10, U: 0, V: -60,
		Ext: Ext{On: true, K: 1.6, Gcc: 2, Gpc: 2, Vr: -60, Vt: -50, Vp: 40, Cap: 200}},
	ThalamocorticalBursting: {A: 0.02, B: 0.25, C: -65, D: 0.05, U: -21.75, V: -87},
	ThalamocorticalSpiking:  {A: 0.02, B: 0.25, C: -65, D: 0.05, U: -15.75, V: -63},
	ThresholdVariability:    {A: 0.03, B: 0.25, C: -60, D: 4, U: -16, V: -64},
	TonicBursting:           {A: 0.02, B: 0.2, C: -50, D: 2, U: -14, V: -70},
	TonicSpiking:            {A: 0.02, B: 0.2, C: -65, D: 6, U: -14, V: -70},
}

// Preset returns the constants for this model
func (sm SpikeModel) Preset() Preset {
	if sm < 0 || sm >= SpikeModelN {
		return Preset{}
	}
	return Presets[sm]
}

// IsExt returns true if this is an extended model
func (sm SpikeModel) IsExt() bool {
	return sm.Preset().Ext.On
}

// Valid returns true if this is a defined model
func (sm SpikeModel) Valid() bool {
	return sm >= 0 && sm < SpikeModelN
}
