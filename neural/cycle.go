// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

import (
	"github.com/chewxy/math32"
)

// Cycle runs one integration step of Time.Dt for the whole network.
// All synapses and the coupling between compartments are computed from
// the neurite state at the end of the previous cycle, and only then does
// each neurite integrate, so the result does not depend on the order
// of neurites or synapses.
func (nt *Network) Cycle() {
	nt.FunTimerStart("Cycle")
	nt.allocBufs()
	nt.InputsProcess()
	nt.SynapsesProcess()
	nt.SynInputs()
	nt.Couple()
	nt.NeuritesProcess()
	nt.Time.CycleInc()
	nt.FunTimerStop("Cycle")
}

// InputsProcess steps all electrodes and sensors
func (nt *Network) InputsProcess() {
	for _, el := range nt.Electrodes {
		el.Process()
	}
	for _, sn := range nt.Sensors {
		sn.Process()
	}
}

// synLive returns true if the synapse connects live neurites
func (nt *Network) synLive(sb *SynapseBase) bool {
	post := nt.Neurite(sb.Post)
	if post == nil || post.Off {
		return false
	}
	if sb.Pre.Type == PreNeurite {
		pre := nt.Neurite(sb.Pre.Idx)
		return pre != nil && !pre.Off
	}
	return true
}

// SynapsesProcess steps all synapses on live neurites, with synaptic
// modulatory synapses first so their output applies on the same cycle.
// Modulators are never modulated themselves (see SetModSynapse), so
// their order does not matter.
func (nt *Network) SynapsesProcess() {
	nt.FunTimerStart("SynapsesProcess")
	for _, sy := range nt.Synapses {
		if ms, ok := sy.(*SynapticModSyn); ok && nt.synLive(&ms.SynapseBase) {
			ms.Process()
		}
	}
	for _, sy := range nt.Synapses {
		if _, ok := sy.(*SynapticModSyn); ok {
			continue
		}
		if nt.synLive(sy.AsBase()) {
			sy.Process()
		}
	}
	nt.FunTimerStop("SynapsesProcess")
}

// SynInputs sums the synaptic current and modulation into each neurite:
// Isyn = (excitatory + gap - inhibitory) * max(0, 1 - sum of S X over shunting synapses)
func (nt *Network) SynInputs() {
	for i, nr := range nt.Neurites {
		nr.InitInputs()
		nt.ge[i], nt.gi[i], nt.gs[i] = 0, 0, 0
	}
	for _, sy := range nt.Synapses {
		sb := sy.AsBase()
		if !nt.synLive(sb) {
			continue
		}
		switch s := sy.(type) {
		case *ExcitatorySyn:
			nt.ge[sb.Post] += s.X
		case *InhibitorySyn:
			nt.gi[sb.Post] += s.X
		case *ShuntingSyn:
			nt.gs[sb.Post] += s.Shunt()
		case *GapSyn:
			nt.ge[sb.Post] += s.AX
			if sb.Pre.Type == PreNeurite {
				nt.ge[sb.Pre.Idx] += s.BX
			}
		case *NeuralModSyn:
			nt.Neurites[sb.Post].Mods[s.Var] += s.X
		}
	}
	for i, nr := range nt.Neurites {
		nr.Isyn = (nt.ge[i] - nt.gi[i]) * math32.Max(0, 1-nt.gs[i])
	}
}

// Couple sets the coupling inputs Vcc and Vpc of each live neurite from the
// voltage differences with its children and its parent.  Extended models
// weight the differences by Gcc and Gpc, simple models by 1.
func (nt *Network) Couple() {
	for _, nr := range nt.Neurites {
		if nr.Off {
			continue
		}
		gcc, gpc := float32(1), float32(1)
		if nr.Ext.On {
			gcc = nr.Ext.Gcc * nr.mod(ModGcc)
			gpc = nr.Ext.Gpc * nr.mod(ModGpc)
		}
		var vcc float32
		for _, ki := range nr.Kids {
			vcc += nt.Neurites[ki].V - nr.V
		}
		nr.Vcc = gcc * vcc
		if nr.Par >= 0 {
			nr.Vpc = gpc * (nt.Neurites[nr.Par].V - nr.V)
		}
	}
}

// NeuritesProcess integrates every live neurite by Time.Dt
func (nt *Network) NeuritesProcess() {
	nt.FunTimerStart("NeuritesProcess")
	for _, nr := range nt.Neurites {
		if !nr.Off {
			nr.Process(nt.Time.Dt)
		}
	}
	nt.FunTimerStop("NeuritesProcess")
}
