// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package electrode provides external stimulus generators that drive neurites
through synapses: a single Pulse, a repeating Pulsating train, a continuous
Sinusoidal wave, and a Poisson process train whose random source is injected
so runs can be reproduced.

All electrodes are stepped by Process, which advances the elapsed-active
time by Dt and returns the new output.  Inactive electrodes output 0 and
hold their elapsed time at 0.
*/
package electrode

//go:generate stringer -type=Kinds

import (
	"github.com/goki/ki/kit"
)

// Electrode is the common interface for all stimulus generators.
type Electrode interface {
	// On activates the electrode
	On()

	// Off deactivates the electrode, resetting elapsed time and output to 0
	Off()

	// Voltage returns the voltage delivered while the output is on
	Voltage() float32

	// Duration returns the duration of each pulse
	Duration() float32

	// Output returns the output computed on the last Process call
	Output() float32

	// Process advances one time step and returns the new output
	Process() float32

	// AsBase returns the shared electrode state
	AsBase() *Base
}

// Kinds are the different electrode variants
type Kinds int32

const (
	PulseKind Kinds = iota
	PulsatingKind
	SinusoidalKind
	PoissonKind
	KindsN
)

var KiT_Kinds = kit.Enums.AddEnum(KindsN, kit.NotBitFlag, nil)

func (ev Kinds) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Kinds) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// Base holds the state shared by every electrode.
type Base struct {
	Active bool    `desc:"whether the electrode is currently on"`
	V      float32 `desc:"voltage delivered while the output is on"`
	D      float32 `min:"0" desc:"duration of each pulse, or the period for a sinusoid"`
	Dt     float32 `def:"1" min:"0" desc:"time increment added to the elapsed time on each Process call"`
	A      float32 `inactive:"+" desc:"elapsed active time"`
	Y      float32 `inactive:"+" desc:"current output"`
}

func (eb *Base) On()               { eb.Active = true }
func (eb *Base) Voltage() float32  { return eb.V }
func (eb *Base) Duration() float32 { return eb.D }
func (eb *Base) Output() float32   { return eb.Y }
func (eb *Base) AsBase() *Base     { return eb }

// Off deactivates and resets elapsed time and output
func (eb *Base) Off() {
	eb.Active = false
	eb.A = 0
	eb.Y = 0
}

// inactive zeros the state for a step taken while off
func (eb *Base) inactive() float32 {
	eb.A = 0
	eb.Y = 0
	return 0
}

// out sets the output to V when on is true, else 0
func (eb *Base) out(on bool) float32 {
	if on {
		eb.Y = eb.V
	} else {
		eb.Y = 0
	}
	return eb.Y
}

func (eb *Base) init(v, d float32) {
	eb.V = v
	eb.D = d
	eb.Dt = 1
}
