// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/minmax"
	"github.com/emer/neurite/stp"
)

// Synapse is the common interface for all synapse types.
// Each synapse is stepped once per cycle by the Network, before any
// neurite integrates, so all synapses see the same neurite state.
type Synapse interface {
	// SynID returns the unique synapse identifier
	SynID() SynapticID

	// SynType returns the type of synapse
	SynType() SynapseTypes

	// XPre returns the presynaptic input
	XPre() Presyn

	// Input returns the current synaptic conductance, or current for gap junctions
	Input() float32

	// Process advances one step and returns the new Input
	Process() float32

	// Init restores the conductance and plasticity state
	Init()

	// Update updates derived and clamped parameters after they are set
	Update()

	// AsBase returns the shared synapse state
	AsBase() *SynapseBase
}

// Presyn identifies the presynaptic source of a synapse: an electrode,
// a sensor, or a neurite, by index into the Network.
type Presyn struct {
	Type PresynTypes `desc:"kind of source"`
	Idx  int         `desc:"index of the source in the network list for its kind"`
}

// ElectrodeInput returns a Presyn for the electrode at given index
func ElectrodeInput(idx int) Presyn { return Presyn{Type: PreElectrode, Idx: idx} }

// SensorInput returns a Presyn for the sensor at given index
func SensorInput(idx int) Presyn { return Presyn{Type: PreSensor, Idx: idx} }

// NeuriteInput returns a Presyn for the neurite at given index
func NeuriteInput(idx int) Presyn { return Presyn{Type: PreNeurite, Idx: idx} }

// SynapseBase holds the state shared by all synapse types.
type SynapseBase struct {
	Net  *Network     `view:"-" desc:"network holding this synapse and its sources"`
	ID   SynapticID   `inactive:"+" desc:"unique, time-ordered identifier"`
	Idx  int          `inactive:"+" desc:"index of this synapse in the network"`
	Type SynapseTypes `inactive:"+" desc:"type of synapse"`
	Pre  Presyn       `desc:"presynaptic source"`
	Post int          `desc:"index of the postsynaptic neurite"`
	Mod  int          `desc:"index of a synaptic modulatory synapse that rescales a parameter of this one, -1 if none"`

	STP  stp.Params `view:"inline" desc:"short-term facilitation and depression"`
	Tx   float32    `min:"1" desc:"time constant of conductance decay"`
	W    float32    `desc:"weight, assigned externally"`
	XMax float32    `desc:"maximal conductance"`
	X    float32    `inactive:"+" desc:"current conductance"`
}

func (sb *SynapseBase) SynID() SynapticID     { return sb.ID }
func (sb *SynapseBase) SynType() SynapseTypes { return sb.Type }
func (sb *SynapseBase) XPre() Presyn          { return sb.Pre }
func (sb *SynapseBase) Input() float32        { return sb.X }
func (sb *SynapseBase) AsBase() *SynapseBase  { return sb }

func (sb *SynapseBase) init(typ SynapseTypes, pre Presyn, post int, sp stp.Params, tx, xmax float32) {
	sb.ID = newSynapticID()
	sb.Type = typ
	sb.Pre = pre
	sb.Post = post
	sb.Mod = -1
	sb.STP = sp
	sb.Tx = tx
	sb.XMax = xmax
	sb.Update()
}

// Update keeps the time constants at or above 1
func (sb *SynapseBase) Update() {
	sb.Tx = math32.Max(sb.Tx, 1)
	sb.STP.Update()
}

// Init restores the conductance and plasticity state
func (sb *SynapseBase) Init() {
	sb.X = 0
	sb.STP.Init()
}

// PreActive returns true if the presynaptic source is active:
// an electrode or sensor output above 0, or a neurite that spiked.
func (sb *SynapseBase) PreActive() bool {
	return sb.Net.PreOutput(sb.Pre) > 0
}

// modFactor returns the (1 + x) rescaling of given variable from the
// modulatory synapse, or 1 if there is none or it targets another variable.
func (sb *SynapseBase) modFactor(mv SynapticModVars) float32 {
	if sb.Mod < 0 || sb.Net == nil {
		return 1
	}
	ms, ok := sb.Net.Synapses[sb.Mod].(*SynapticModSyn)
	if !ok || ms.Var != mv {
		return 1
	}
	return 1 + ms.X
}

// stepX decays the conductance and then adds the plasticity-weighted increment,
// with any modulation of the parameters applied for this step only.
func (sb *SynapseBase) stepX() float32 {
	tx := math32.Max(sb.Tx*sb.modFactor(ModTX), 1)
	sb.X += -sb.X / tx
	y := sb.STP.LearnP(sb.PreActive(), sb.STP.P*sb.modFactor(ModP))
	sb.X += sb.XMax * sb.modFactor(ModG) * y * sb.W * sb.modFactor(ModW) * sb.modFactor(ModX)
	return sb.X
}

//////////////////////////////////////////////////////////////////////////////////////
//  Excitatory, Inhibitory, Shunting

// ExcitatorySyn adds its conductance to the postsynaptic current
type ExcitatorySyn struct {
	SynapseBase
}

func (sy *ExcitatorySyn) Process() float32 { return sy.stepX() }

// InhibitorySyn subtracts its conductance from the postsynaptic current
type InhibitorySyn struct {
	SynapseBase
}

func (sy *InhibitorySyn) Process() float32 { return sy.stepX() }

// ShuntingRange is the range of the shunting scalar S
var ShuntingRange = minmax.F32{Min: -2, Max: 1}

// ShuntingSyn divisively scales the postsynaptic current by 1 - S X
type ShuntingSyn struct {
	SynapseBase
	S float32 `min:"-2" max:"1" desc:"shunting scalar, clamped to [-2, 1]"`
}

// SetS sets the shunting scalar, clamping it to ShuntingRange
func (sy *ShuntingSyn) SetS(s float32) {
	sy.S = ShuntingRange.ClipVal(s)
}

func (sy *ShuntingSyn) Update() {
	sy.SynapseBase.Update()
	sy.SetS(sy.S)
}

func (sy *ShuntingSyn) Process() float32 { return sy.stepX() }

// Shunt returns the shunting amount S X
func (sy *ShuntingSyn) Shunt() float32 { return sy.S * sy.X }

//////////////////////////////////////////////////////////////////////////////////////
//  Modulatory

// SynapticModSyn rescales a parameter of each synapse whose Mod refers to it.
// Its conductance follows the plasticity output with no weight or maximum.
type SynapticModSyn struct {
	SynapseBase
	Var SynapticModVars `desc:"synapse parameter rescaled by this synapse"`
}

func (sy *SynapticModSyn) Process() float32 { return sy.stepX() }

// NeuralModSyn rescales a parameter of its postsynaptic neurite.
// Its conductance follows the plasticity output with no weight or maximum.
type NeuralModSyn struct {
	SynapseBase
	Var NeuriteModVars `desc:"neurite parameter rescaled by this synapse"`
}

func (sy *NeuralModSyn) Process() float32 { return sy.stepX() }

//////////////////////////////////////////////////////////////////////////////////////
//  Gap junction

// GapSyn couples two neurites electrically.  AX is the current into the
// postsynaptic neurite and BX = -AX the current into the presynaptic one,
// both proportional to the voltage difference between them.
type GapSyn struct {
	SynapseBase
	AX float32 `inactive:"+" desc:"current into the postsynaptic neurite"`
	BX float32 `inactive:"+" desc:"current into the presynaptic neurite"`
}

func (sy *GapSyn) Init() {
	sy.SynapseBase.Init()
	sy.AX = 0
	sy.BX = 0
}

func (sy *GapSyn) Process() float32 {
	sy.STP.LearnP(sy.PreActive(), sy.STP.P*sy.modFactor(ModP))
	vpre := sy.Net.PreVoltage(sy.Pre)
	vpost := sy.Net.Neurites[sy.Post].V
	g := sy.XMax * sy.modFactor(ModG) * sy.W * sy.modFactor(ModW)
	sy.AX = g * (vpre - vpost)
	sy.BX = -sy.AX
	sy.X = sy.AX
	return sy.X
}
