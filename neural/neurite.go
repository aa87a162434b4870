// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/emer/neurite/spikemodel"
	"github.com/goki/mat32"
)

// Neurite is one compartment of a neuron: the soma, a dendrite segment, or an
// axon segment, integrating its own membrane potential V and recovery
// variable U with the dynamics of its spike model.
// Neurites live in a Network, and refer to each other and to their
// synapses by index into the Network.
type Neurite struct {
	Nm    string                `desc:"name of the neurite, unique within the network"`
	Cls   string                `desc:"space-separated class names, for params selection"`
	ID    NeuriteID             `inactive:"+" desc:"unique, time-ordered identifier"`
	Idx   int                   `inactive:"+" desc:"index of this neurite in the network"`
	Type  NeuriteTypes          `desc:"type of compartment, which determines tree position"`
	Model spikemodel.SpikeModel `inactive:"+" desc:"spike model, set with SetSpikeModel"`
	A     float32               `desc:"time scale of the recovery variable"`
	B     float32               `desc:"sensitivity of the recovery variable to subthreshold fluctuations"`
	C     float32               `desc:"after-spike reset value of V"`
	D     float32               `desc:"after-spike increment of U"`
	Ext   spikemodel.Ext        `view:"inline" desc:"extended model constants, used only when Ext.On"`

	U    float32 `inactive:"+" desc:"recovery variable"`
	V    float32 `inactive:"+" desc:"membrane potential"`
	Vcc  float32 `inactive:"+" desc:"coupling input from child compartments"`
	Vpc  float32 `inactive:"+" desc:"coupling input from the parent compartment"`
	Y    float32 `inactive:"+" desc:"spike output: 1 on the step the neurite fires, else 0"`
	Isyn float32 `inactive:"+" desc:"synaptic current into this neurite on the current step"`

	Mods [NeuriteModVarsN]float32 `inactive:"+" desc:"current modulation of each parameter from neural modulatory synapses, applied as a (1 + mod) factor"`
	Syns []int                    `inactive:"+" desc:"indexes of synapses whose postsynaptic target is this neurite"`
	Par  int                      `inactive:"+" desc:"index of the parent neurite, -1 if none"`
	Kids []int                    `inactive:"+" desc:"indexes of child neurites"`
	Pos  mat32.Vec3               `desc:"position, for display"`
	Off  bool                     `inactive:"+" desc:"true once pruned from the tree: the neurite is no longer processed"`
}

// Reported peaks and limits for the simple model and the models with
// recovery-dependent peaks
const (
	SimplePeak  = 30
	LTSNBMaxU   = 670
	ThalIntMaxU = 530
)

// NeuriteVars are the state variables available through VarByName
var NeuriteVars = []string{"U", "V", "Vcc", "Vpc", "Y", "Isyn"}

var NeuriteVarsMap map[string]int

func init() {
	NeuriteVarsMap = make(map[string]int, len(NeuriteVars))
	for i, v := range NeuriteVars {
		NeuriteVarsMap[v] = i
	}
}

// InitNeurite configures a new neurite of given type and spike model
func (nr *Neurite) InitNeurite(name string, typ NeuriteTypes, sm spikemodel.SpikeModel) error {
	nr.Nm = name
	nr.ID = newNeuriteID()
	nr.Type = typ
	nr.Par = -1
	return nr.SetSpikeModel(sm)
}

func (nr *Neurite) TypeName() string { return "Neurite" }
func (nr *Neurite) Name() string     { return nr.Nm }
func (nr *Neurite) Label() string    { return nr.Nm }

// Class returns the type, spike model and class names, for params selection
func (nr *Neurite) Class() string {
	return nr.Type.String() + " " + nr.Model.String() + " " + nr.Cls
}

// IsExt returns true if the neurite uses an extended model
func (nr *Neurite) IsExt() bool { return nr.Ext.On }

// SetSpikeModel selects a new spike model, replacing all of the model
// constants and the dynamic state with the preset values.
// Identity, tree position and synapses are unchanged.
func (nr *Neurite) SetSpikeModel(sm spikemodel.SpikeModel) error {
	if !sm.Valid() {
		return fmt.Errorf("neural.Neurite: %v: invalid spike model: %v", nr.Nm, sm)
	}
	ps := sm.Preset()
	nr.Model = sm
	nr.A, nr.B, nr.C, nr.D = ps.A, ps.B, ps.C, ps.D
	nr.Ext = ps.Ext
	nr.Init()
	return nil
}

// Update keeps Ext.On consistent with the spike model after parameters are applied
func (nr *Neurite) Update() {
	nr.Ext.On = nr.Model.IsExt()
	if nr.Ext.On && nr.Ext.Cap <= 0 {
		nr.Ext.Cap = nr.Model.Preset().Ext.Cap
	}
}

// Init restores U, V, and Y to the preset defaults of the current model,
// and clears the coupling, synaptic, and modulation inputs.
func (nr *Neurite) Init() {
	ps := nr.Model.Preset()
	nr.U = ps.U
	nr.V = ps.V
	nr.Y = 0
	nr.InitInputs()
}

// Reset is Init, named for the neurite UI
func (nr *Neurite) Reset() { nr.Init() }

// InitInputs clears the coupling, synaptic, and modulation inputs
func (nr *Neurite) InitInputs() {
	nr.Vcc = 0
	nr.Vpc = 0
	nr.Isyn = 0
	for i := range nr.Mods {
		nr.Mods[i] = 0
	}
}

// mod returns the modulation factor for given parameter
func (nr *Neurite) mod(mv NeuriteModVars) float32 {
	return 1 + nr.Mods[mv]
}

// VarByIndex returns the state variable at given index in NeuriteVars
func (nr *Neurite) VarByIndex(idx int) float32 {
	switch idx {
	case 0:
		return nr.U
	case 1:
		return nr.V
	case 2:
		return nr.Vcc
	case 3:
		return nr.Vpc
	case 4:
		return nr.Y
	case 5:
		return nr.Isyn
	}
	return 0
}

// VarByName returns the state variable of given name
func (nr *Neurite) VarByName(varNm string) (float32, error) {
	i, ok := NeuriteVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("neural.Neurite: variable named: %s not found", varNm)
	}
	return nr.VarByIndex(i), nil
}

//////////////////////////////////////////////////////////////////////////////////////
//  Process

// Process integrates one time step of dt using Vcc, Vpc and Isyn as set
// by the caller for this step.  It returns the reported voltage, which
// is the spike peak on a firing step, and the spike output Y.
func (nr *Neurite) Process(dt float32) (float32, float32) {
	nr.Y = 0
	if nr.Ext.On {
		return nr.processExt(dt)
	}
	a := nr.A * nr.mod(ModA)
	b := nr.B * nr.mod(ModB)
	// the child coupling is counted twice in the simple model, with no parent coupling term
	dv := 0.04*nr.V*nr.V + 5*nr.V + 140 - nr.U + nr.Vcc + nr.Vcc + nr.Isyn
	nr.V += dt * dv * nr.mod(ModV)
	nr.U += dt * a * (b*nr.V - nr.U) * nr.mod(ModU)
	if nr.V >= SimplePeak {
		nr.V = nr.C * nr.mod(ModC)
		nr.U += nr.D * nr.mod(ModD)
		nr.Y = 1
		return SimplePeak, nr.Y
	}
	return nr.V, nr.Y
}

func (nr *Neurite) processExt(dt float32) (float32, float32) {
	e := &nr.Ext
	a := nr.A * nr.mod(ModA)
	c := nr.C * nr.mod(ModC)
	d := nr.D * nr.mod(ModD)
	vr := e.Vr * nr.mod(ModVr)
	vt := e.Vt * nr.mod(ModVt)
	cp := e.Cap * nr.mod(ModCap)
	v := nr.V

	var dv float32
	switch nr.Model {
	case spikemodel.IntrinsicallyBurstingPyramidalDendriteI:
		dv = e.K*(v-vr)*(v-vt) - e.Vp*(nr.Vpc-v) - nr.U + nr.Vcc
	case spikemodel.IntrinsicallyBurstingPyramidalSomaI:
		dv = e.K*(v-vr)*(v-vt) - e.Vp*(nr.Vcc-v) - nr.U + nr.Vpc
	default:
		dv = e.K*(v-vr)*(v-vt) - nr.U + nr.Vcc + nr.Vpc
	}
	nr.V += dt * (dv + nr.Isyn) / cp * nr.mod(ModV)
	v = nr.V

	switch nr.Model {
	case spikemodel.ReticularThalamicNeuron:
		if v > -65 {
			nr.B = 2
		} else {
			nr.B = 10
		}
	case spikemodel.Thalamocortical:
		if v > -65 {
			nr.B = 0
		} else {
			nr.B = 15
		}
	}
	b := nr.B * nr.mod(ModB)

	var du float32
	switch {
	case nr.Model == spikemodel.FastSpikingBasket && v < vr:
		du = a * -nr.U
	case nr.Model == spikemodel.FastSpikingBasket:
		x := 0.025 * (v - vr)
		du = a * (x*x*x - nr.U)
	default:
		du = a * (b*(v-vr) - nr.U)
	}
	nr.U += dt * du * nr.mod(ModU)

	switch nr.Model {
	case spikemodel.EntorhinalStellate, spikemodel.FastSpikingBasket:
		if v > e.Vp {
			nr.V = c
			nr.Y = 1
			return e.Vp, nr.Y
		}
	case spikemodel.LowThresholdSpikingNonBasket:
		peak := e.Vp - 0.1*nr.U
		if v >= peak {
			nr.V = c + 0.04*nr.U
			nr.U = math32.Min(nr.U+d, LTSNBMaxU)
			nr.Y = 1
			return peak, nr.Y
		}
	case spikemodel.ThalamicInterneuron:
		peak := e.Vp - 0.08*nr.U
		if v >= peak {
			nr.V = c + 0.08*nr.U
			nr.U = math32.Min(nr.U+d, ThalIntMaxU)
			nr.Y = 1
			return peak, nr.Y
		}
	case spikemodel.Thalamocortical:
		peak := e.Vp + 0.1*nr.U
		if v >= peak {
			nr.V = c - 0.1*nr.U
			nr.U += d
			nr.Y = 1
			return peak, nr.Y
		}
	default:
		if v > e.Vp {
			nr.V = c
			nr.U += d
			nr.Y = 1
			return e.Vp, nr.Y
		}
	}
	return nr.V, nr.Y
}
