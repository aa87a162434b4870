// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package electrode

import "github.com/chewxy/math32"

// Pulse delivers V for D units of elapsed time after On, then
// turns itself off until the next On.
type Pulse struct {
	Base
}

// NewPulse returns a pulse electrode of given voltage and duration
func NewPulse(v, d float32) *Pulse {
	pe := &Pulse{}
	pe.init(v, d)
	return pe
}

func (pe *Pulse) Process() float32 {
	if !pe.Active {
		return pe.inactive()
	}
	if pe.A <= pe.D {
		pe.A += pe.Dt
		return pe.out(true)
	}
	pe.Off()
	return 0
}

//////////////////////////////////////////////////////////////////////////////////////
//  Pulsating

// Pulsating delivers a repeating train: V for D units, then 0 for T units.
// It stays on until Off.
type Pulsating struct {
	Base
	T float32 `min:"0" desc:"interval between pulses"`
}

// NewPulsating returns a pulse train of given voltage, pulse duration, and interval
func NewPulsating(v, d, t float32) *Pulsating {
	pe := &Pulsating{T: t}
	pe.init(v, d)
	return pe
}

func (pe *Pulsating) Process() float32 {
	if !pe.Active {
		return pe.inactive()
	}
	pe.A += pe.Dt
	return pe.out(dutyOn(pe.A, pe.D, pe.T))
}

// dutyOn returns true when elapsed time a falls in the on portion
// of a cycle of length d + t
func dutyOn(a, d, t float32) bool {
	per := d + t
	if per <= 0 {
		return false
	}
	return math32.Mod(a, per) <= d
}

//////////////////////////////////////////////////////////////////////////////////////
//  Sinusoidal

// Sinusoidal delivers V * (0.5 + 0.5 sin(2pi/D (A - Phase))), a continuous
// wave between 0 and V with period D.
type Sinusoidal struct {
	Base
	Phase float32 `desc:"phase offset, in the same time units as the period D"`
}

// NewSinusoidal returns a sinusoidal electrode of given amplitude, period, and phase
func NewSinusoidal(v, d, phase float32) *Sinusoidal {
	se := &Sinusoidal{Phase: phase}
	se.init(v, d)
	return se
}

func (se *Sinusoidal) Process() float32 {
	if !se.Active {
		return se.inactive()
	}
	se.A += se.Dt
	if se.D <= 0 {
		se.Y = 0
		return 0
	}
	se.Y = se.V * (math32.Sin(2*math32.Pi/se.D*(se.A-se.Phase))*0.5 + 0.5)
	return se.Y
}
