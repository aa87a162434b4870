// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func TestLearnSequence(t *testing.T) {
	sp := New(20, 200, 0.5)
	spks := []bool{true, false, true}
	corf := []float32{1, 0.95, 0.975}
	cord := []float32{0, 0.005, 0.000125}
	cory := []float32{0, 0, 0.004875}
	for i, spk := range spks {
		y := sp.Learn(spk)
		if math32.Abs(sp.F-corf[i]) > difTol {
			t.Errorf("step %d: F: %v cor F: %v\n", i, sp.F, corf[i])
		}
		if math32.Abs(sp.D-cord[i]) > difTol {
			t.Errorf("step %d: D: %v cor D: %v\n", i, sp.D, cord[i])
		}
		if math32.Abs(y-cory[i]) > difTol || y != sp.Y {
			t.Errorf("step %d: Y: %v cor Y: %v\n", i, y, cory[i])
		}
	}
}

func TestLearnNoSpikes(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	for i := 0; i < 5000; i++ {
		sp.Learn(false)
	}
	if sp.F > 1.0e-3 {
		t.Errorf("F did not decay to 0: %v\n", sp.F)
	}
	if math32.Abs(1-sp.D) > 1.0e-3 {
		t.Errorf("D did not recover to 1: %v\n", sp.D)
	}
	if sp.F < 0 || sp.D > 1 {
		t.Errorf("F, D out of range: %v, %v\n", sp.F, sp.D)
	}
}

func TestLearnPDoesNotStore(t *testing.T) {
	sp := New(20, 200, 0.5)
	sp.Learn(false)
	sp.LearnP(true, 1)
	if sp.P != 0.5 {
		t.Errorf("LearnP changed P: %v\n", sp.P)
	}
	if math32.Abs(sp.F-1) > difTol {
		t.Errorf("LearnP with p = 1 should saturate F: %v\n", sp.F)
	}
}

func TestUpdate(t *testing.T) {
	sp := Params{Tf: 0.2, Td: -3}
	sp.Update()
	if sp.Tf != 1 || sp.Td != 1 {
		t.Errorf("Update did not clamp time constants: %v, %v\n", sp.Tf, sp.Td)
	}
}
