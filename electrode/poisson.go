// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package electrode

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/goki/gosl/slrand"
	"github.com/goki/gosl/sltype"
)

// Window is the length of time over which a Poisson electrode holds one
// drawn spike count.
const Window = 1000

// MaxCount bounds the Poisson count search when the random draw lands
// above the resolution of the cumulative distribution.
const MaxCount = 10000

// Rand is a source of uniform random numbers in [0, 1).
// Both *rand.Rand and *Philox satisfy it.
type Rand interface {
	Float32() float32
}

// Poisson draws a spike count K from a Poisson distribution of rate F at the
// start of each Window, then delivers a Pulsating train of pulses of
// duration D separated by T = Window / K - 1, or 0 when K exceeds the
// Window.  A count of zero leaves the window silent.
type Poisson struct {
	Base
	F      float32 `min:"0" desc:"expected number of pulses per window"`
	T      float32 `inactive:"+" desc:"interval between pulses for the current window"`
	K      int     `inactive:"+" desc:"pulse count drawn for the current window"`
	Silent bool    `inactive:"+" desc:"true when the current window drew a count of zero"`
	Rand   Rand    `view:"-" desc:"random source, which must be set before Process"`
}

// NewPoisson returns a Poisson electrode of given voltage and rate
// drawing from the given random source.
func NewPoisson(v, f float32, rnd Rand) *Poisson {
	pe := &Poisson{F: f, Rand: rnd}
	pe.init(v, 1)
	return pe
}

func (pe *Poisson) Process() float32 {
	if !pe.Active {
		return pe.inactive()
	}
	pa := pe.A
	pe.A += pe.Dt
	if pa == 0 || math32.Mod(pe.A, Window) < math32.Mod(pa, Window) {
		pe.Draw()
	}
	if pe.Silent {
		return pe.out(false)
	}
	return pe.out(dutyOn(pe.A, pe.D, pe.T))
}

// Draw samples a new count for the window and sets the pulse interval.
func (pe *Poisson) Draw() {
	pe.K = PoissonCount(pe.F, pe.Rand.Float32())
	if pe.K == 0 {
		pe.Silent = true
		pe.T = Window
		return
	}
	pe.Silent = false
	pe.T = math32.Max(Window/float32(pe.K)-1, 0)
}

// PoissonCount returns the smallest count k whose cumulative Poisson
// probability at rate f is at least r.  Terms are summed in float64 from
// their logs, so large rates do not underflow exp(-f).
func PoissonCount(f, r float32) int {
	if f <= 0 {
		return 0
	}
	lf := math.Log(float64(f))
	lt := -float64(f)
	rv := float64(r)
	p := math.Exp(lt)
	k := 0
	for rv > p && k < MaxCount {
		k++
		lt += lf - math.Log(float64(k))
		p += math.Exp(lt)
	}
	return k
}

//////////////////////////////////////////////////////////////////////////////////////
//  Philox

// Philox is a seedable counter-based random source using the Philox2x32
// generator.  The same seed always produces the same sequence.
type Philox struct {
	Key     uint32       `desc:"generator key, from the low bits of the seed"`
	Counter sltype.Uint2 `desc:"position in the sequence"`
}

// NewPhilox returns a Philox source positioned at the start of the
// sequence for given seed.
func NewPhilox(seed uint64) *Philox {
	px := &Philox{}
	px.Seed(seed)
	return px
}

// Seed resets the source to the start of the sequence for given seed
func (px *Philox) Seed(seed uint64) {
	px.Key = uint32(seed)
	px.Counter = sltype.Uint2{X: 0, Y: uint32(seed >> 32)}
}

// Float32 returns the next value in (0, 1), advancing the Counter
func (px *Philox) Float32() float32 {
	return slrand.Float(&px.Counter, px.Key)
}
