// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

// neural.Time contains the timing state and the integration time step
// for running a network
type Time struct {
	Time  float32 `desc:"accumulated simulation time, in the units of Dt (typically msec)"`
	Cycle int     `desc:"cycle counter: number of integration steps since the last Reset"`
	Dt    float32 `def:"1" min:"0" desc:"integration time step applied to each neurite per cycle"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Dt = 1
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Cycle = 0
	if tm.Dt == 0 {
		tm.Defaults()
	}
}

// CycleInc increments at the cycle level
func (tm *Time) CycleInc() {
	tm.Cycle++
	tm.Time += tm.Dt
}
