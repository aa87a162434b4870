// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/emergent/params"
	"github.com/emer/neurite/electrode"
	"github.com/emer/neurite/spikemodel"
	"github.com/emer/neurite/stp"
)

// soma with one basal dendrite, driven by a pulse train through an excitatory synapse
func drivenNet(t *testing.T, somaFirst bool, el electrode.Electrode) (nt *Network, soma, bp int) {
	t.Helper()
	nt = NewNetwork("driven")
	if somaFirst {
		soma = addNeur(t, nt, "soma", Soma)
		bp = addNeur(t, nt, "bp", BasalProximal)
	} else {
		bp = addNeur(t, nt, "bp", BasalProximal)
		soma = addNeur(t, nt, "soma", Soma)
	}
	if err := nt.AddChild(soma, bp); err != nil {
		t.Fatal(err)
	}
	el.On()
	ei := nt.AddElectrode(el)
	sy := nt.ConnectExcitatory(ElectrodeInput(ei), soma, stp.New(20, 200, 0.5), 5, 200)
	sy.W = 1
	if err := nt.Build(); err != nil {
		t.Fatal(err)
	}
	nt.Init()
	nt.Neurites[bp].V = -50
	return
}

func TestCycleDrivesSpikes(t *testing.T) {
	nt, soma, bp := drivenNet(t, true, electrode.NewPulsating(1, 2, 20))
	nspk := 0
	for i := 0; i < 500; i++ {
		nt.Cycle()
		if nt.Neurites[soma].Y > 0 {
			nspk++
		}
	}
	if nspk == 0 {
		t.Errorf("driven soma never spiked\n")
	}
	if nt.Time.Cycle != 500 || nt.Time.Time != 500 {
		t.Errorf("time: %+v\n", nt.Time)
	}
	if nt.Neurites[bp].Vpc == 0 {
		t.Errorf("child should be coupled to its parent\n")
	}
	nt.Init()
	if nt.Time.Cycle != 0 || nt.Neurites[soma].V != spikemodel.RegularSpiking.Preset().V {
		t.Errorf("Init did not restore state\n")
	}
}

func TestCycleOrderIndependent(t *testing.T) {
	na, sa, ba := drivenNet(t, true, electrode.NewPulsating(1, 2, 20))
	nb, sb, bb := drivenNet(t, false, electrode.NewPulsating(1, 2, 20))
	for i := 0; i < 200; i++ {
		na.Cycle()
		nb.Cycle()
		if math32.Abs(na.Neurites[sa].V-nb.Neurites[sb].V) > difTol || math32.Abs(na.Neurites[ba].V-nb.Neurites[bb].V) > difTol {
			t.Errorf("cycle: %d order changed the result: soma: %v %v bp: %v %v\n", i,
				na.Neurites[sa].V, nb.Neurites[sb].V, na.Neurites[ba].V, nb.Neurites[bb].V)
			break
		}
	}
}

func TestCyclePoissonDeterministic(t *testing.T) {
	na, sa, _ := drivenNet(t, true, electrode.NewPoisson(1, 20, electrode.NewPhilox(7)))
	nb, sb, _ := drivenNet(t, true, electrode.NewPoisson(1, 20, electrode.NewPhilox(7)))
	for i := 0; i < 2000; i++ {
		na.Cycle()
		nb.Cycle()
		if na.Neurites[sa].V != nb.Neurites[sb].V {
			t.Errorf("cycle: %d same seed gave different results\n", i)
			break
		}
	}
}

func TestCyclePrunedOff(t *testing.T) {
	nt, soma, bp := drivenNet(t, true, electrode.NewPulsating(1, 2, 20))
	if !nt.PruneChild(soma, 0) {
		t.Fatal("prune failed")
	}
	v := nt.Neurites[bp].V
	for i := 0; i < 10; i++ {
		nt.Cycle()
	}
	if nt.Neurites[bp].V != v {
		t.Errorf("pruned neurite was processed\n")
	}
	if nt.Neurites[soma].Vcc != 0 {
		t.Errorf("pruned child still coupled: %v\n", nt.Neurites[soma].Vcc)
	}
}

func TestBuildErrors(t *testing.T) {
	nt := NewNetwork("bad")
	s := addNeur(t, nt, "s", Soma)
	sp := stp.New(20, 200, 0.5)
	ex := nt.ConnectExcitatory(ElectrodeInput(3), s, sp, 5, 1)
	nt.ConnectInhibitory(NeuriteInput(s), 7, sp, 5, 1)
	nt.ConnectGap(NeuriteInput(s), s, sp, 1)
	ex.Mod = 1
	err := nt.Build()
	if err == nil {
		t.Fatalf("Build should fail\n")
	}
	for _, msg := range []string{"electrode index: 3 out of range", "postsynaptic neurite index: 7 out of range",
		"gap junction connects neurite: 0 to itself", "modulator: 1 is not a synaptic modulatory synapse"} {
		if !strings.Contains(err.Error(), msg) {
			t.Errorf("Build error missing: %q\n%v", msg, err)
		}
	}
}

func TestAddNeuriteNames(t *testing.T) {
	nt := NewNetwork("names")
	addNeur(t, nt, "s", Soma)
	if _, err := nt.AddNeurite("s", Soma, spikemodel.RegularSpiking); err == nil {
		t.Errorf("duplicate name should be an error\n")
	}
	nr, err := nt.AddNeurite("", Axon, spikemodel.RegularSpiking)
	if err != nil {
		t.Fatal(err)
	}
	if nr.Nm != "Axon_1" {
		t.Errorf("default name: %v\n", nr.Nm)
	}
	if _, err := nt.NeuriteByNameTry("nope"); err == nil {
		t.Errorf("missing name should be an error\n")
	}
	if err := nt.SetSpikeModel(nr.Idx, spikemodel.FastSpiking); err != nil || nr.Model != spikemodel.FastSpiking {
		t.Errorf("SetSpikeModel: %v\n", err)
	}
	if !nr.ID.Before(newNeuriteID()) || nt.Neurites[0].ID == nr.ID {
		t.Errorf("neurite ids should be unique and time ordered\n")
	}
}

func TestApplyParams(t *testing.T) {
	nt := NewNetwork("pars")
	s := addNeur(t, nt, "soma", Soma)
	bp := addNeur(t, nt, "bp", BasalProximal)
	if err := nt.AddChild(s, bp); err != nil {
		t.Fatal(err)
	}
	sh := &params.Sheet{
		{Sel: "Neurite", Desc: "all neurites",
			Params: params.Params{
				"Neurite.D": "4",
			}},
		{Sel: ".BasalProximal", Desc: "dendrites",
			Params: params.Params{
				"Neurite.A": "0.05",
			}},
		{Sel: "#soma", Desc: "soma only",
			Params: params.Params{
				"Neurite.C": "-60",
			}},
	}
	app, err := nt.ApplyParams(sh, false)
	if err != nil {
		t.Error(err)
	}
	if !app {
		t.Errorf("no params were applied\n")
	}
	sn, bn := nt.Neurites[s], nt.Neurites[bp]
	if sn.D != 4 || bn.D != 4 {
		t.Errorf("Neurite.D: %v %v\n", sn.D, bn.D)
	}
	if bn.A != 0.05 || sn.A != 0.02 {
		t.Errorf("Neurite.A: soma: %v bp: %v\n", sn.A, bn.A)
	}
	if sn.C != -60 || bn.C != -65 {
		t.Errorf("Neurite.C: soma: %v bp: %v\n", sn.C, bn.C)
	}
}

func TestReports(t *testing.T) {
	nt, _, _ := drivenNet(t, true, electrode.NewPulsating(1, 2, 20))
	nt.ConnectGap(NeuriteInput(0), 1, stp.New(20, 200, 0.5), 0.1)
	for i := 0; i < 10; i++ {
		nt.Cycle()
	}
	sr := nt.SizeReport()
	if !strings.Contains(sr, "Neurites: 2") || !strings.Contains(sr, "Excitatory") || !strings.Contains(sr, "GapJunction") {
		t.Errorf("SizeReport:\n%v", sr)
	}
	tr := nt.TimerReport()
	if !strings.Contains(tr, "Cycle") || !strings.Contains(tr, "NeuritesProcess") {
		t.Errorf("TimerReport:\n%v", tr)
	}
}

func TestLayout(t *testing.T) {
	nt := NewNetwork("layout")
	s := addNeur(t, nt, "s", Soma)
	ax, _ := nt.AddChildNeurite(s, "ax", Axon, spikemodel.RegularSpiking)
	at, _ := nt.AddChildNeurite(s, "at", ApicalTrunk, spikemodel.RegularSpiking)
	bp, _ := nt.AddChildNeurite(s, "bp", BasalProximal, spikemodel.RegularSpiking)
	s2 := addNeur(t, nt, "s2", Soma)
	nt.Layout()
	if ax.Pos.X <= 0 || at.Pos.Y <= 0 || bp.Pos.Y >= 0 {
		t.Errorf("positions: ax: %v at: %v bp: %v\n", ax.Pos, at.Pos, bp.Pos)
	}
	if nt.Neurites[s2].Pos.X != 4 {
		t.Errorf("second root: %v\n", nt.Neurites[s2].Pos)
	}
	mn, mx := nt.Bounds()
	if mn.Y != -1 || mx.Y != 1 || mx.X != 4 {
		t.Errorf("bounds: %v %v\n", mn, mx)
	}
}
