// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sensor provides read-only presynaptic sources: values supplied from
outside the neural simulation, such as a fixed level, a noisy signal,
or a function of time.
*/
package sensor

import (
	"github.com/emer/emergent/erand"
)

// Sensor is a source of presynaptic input whose value is set
// from outside the network.
type Sensor interface {
	// Output returns the current value
	Output() float32

	// Process advances one time step and returns the new value
	Process() float32
}

// Const is a sensor holding a fixed value until it is set.
type Const struct {
	Val float32 `desc:"current value"`
}

func (cs *Const) Output() float32  { return cs.Val }
func (cs *Const) Process() float32 { return cs.Val }

// Set sets the value
func (cs *Const) Set(val float32) { cs.Val = val }

//////////////////////////////////////////////////////////////////////////////////////
//  Noise

// Noise is a sensor that draws a new value on each step from a random distribution.
type Noise struct {
	erand.RndParams
	Rect bool    `desc:"clip negative values to 0, so the sensor is only active on positive draws"`
	Val  float32 `inactive:"+" desc:"current value"`
}

// NewNoise returns a noise sensor with uniform distribution of given mean and variance
func NewNoise(mean, vr float64) *Noise {
	ns := &Noise{}
	ns.Dist = erand.Uniform
	ns.Mean = mean
	ns.Var = vr
	return ns
}

func (ns *Noise) Output() float32 { return ns.Val }

func (ns *Noise) Process() float32 {
	ns.Val = float32(ns.Gen(-1))
	if ns.Rect && ns.Val < 0 {
		ns.Val = 0
	}
	return ns.Val
}

//////////////////////////////////////////////////////////////////////////////////////
//  Func

// Func is a sensor whose value is given by a function of elapsed time.
type Func struct {
	Fun func(t float32) float32 `view:"-" desc:"value as a function of elapsed time"`
	Dt  float32                 `def:"1" desc:"time increment per Process call"`
	T   float32                 `inactive:"+" desc:"elapsed time"`
	Val float32                 `inactive:"+" desc:"current value"`
}

// NewFunc returns a function sensor with a time increment of 1
func NewFunc(fun func(t float32) float32) *Func {
	return &Func{Fun: fun, Dt: 1}
}

func (fs *Func) Output() float32 { return fs.Val }

func (fs *Func) Process() float32 {
	fs.T += fs.Dt
	if fs.Fun != nil {
		fs.Val = fs.Fun(fs.T)
	}
	return fs.Val
}
