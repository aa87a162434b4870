// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

//go:generate stringer -type=NeuriteTypes
//go:generate stringer -type=SynapseTypes
//go:generate stringer -type=SynapticModVars
//go:generate stringer -type=NeuriteModVars
//go:generate stringer -type=PresynTypes

import "github.com/goki/ki/kit"

// NeuriteTypes are the kinds of compartment, which determine where a
// neurite may sit in the dendritic tree.
type NeuriteTypes int32

const (
	// Soma is the cell body, always the root of a tree
	Soma NeuriteTypes = iota

	// BasalProximal is a basal dendrite segment near the soma
	BasalProximal

	// BasalDistal is a basal dendrite segment far from the soma
	BasalDistal

	// ApicalTrunk is the main apical dendrite, at most one per soma
	ApicalTrunk

	// ApicalTuft is a branch at the end of the apical trunk
	ApicalTuft

	// Axon carries output away from the soma, at most one per soma
	Axon

	NeuriteTypesN
)

var KiT_NeuriteTypes = kit.Enums.AddEnum(NeuriteTypesN, kit.NotBitFlag, nil)

func (ev NeuriteTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *NeuriteTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// SynapseTypes are the kinds of synapse
type SynapseTypes int32

const (
	// Excitatory synapses add their conductance to the postsynaptic current
	Excitatory SynapseTypes = iota

	// Inhibitory synapses subtract their conductance from the postsynaptic current
	Inhibitory

	// ShuntingInhibitory synapses divisively scale the postsynaptic current
	ShuntingInhibitory

	// SynapticModulatory synapses rescale a parameter of another synapse
	SynapticModulatory

	// NeuralModulatory synapses rescale a parameter of their postsynaptic neurite
	NeuralModulatory

	// GapJunction synapses couple two neurites electrically in both directions
	GapJunction

	SynapseTypesN
)

var KiT_SynapseTypes = kit.Enums.AddEnum(SynapseTypesN, kit.NotBitFlag, nil)

func (ev SynapseTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SynapseTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// SynapticModVars are the synapse parameters a SynapticModulatory synapse can rescale
type SynapticModVars int32

const (
	// ModG scales the maximal conductance XMax
	ModG SynapticModVars = iota

	// ModX scales each increment of the conductance X
	ModX

	// ModP scales the short-term plasticity increment P
	ModP

	// ModTX scales the conductance decay time constant Tx
	ModTX

	// ModW scales the weight W
	ModW

	SynapticModVarsN
)

var KiT_SynapticModVars = kit.Enums.AddEnum(SynapticModVarsN, kit.NotBitFlag, nil)

func (ev SynapticModVars) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SynapticModVars) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// NeuriteModVars are the neurite parameters a NeuralModulatory synapse can rescale.
// ModU and ModV scale the rate of change of the recovery variable and membrane potential.
type NeuriteModVars int32

const (
	ModA NeuriteModVars = iota
	ModB
	ModC
	ModD
	ModGcc
	ModGpc
	ModU
	ModV
	ModVr
	ModVt
	ModCap

	NeuriteModVarsN
)

var KiT_NeuriteModVars = kit.Enums.AddEnum(NeuriteModVarsN, kit.NotBitFlag, nil)

func (ev NeuriteModVars) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *NeuriteModVars) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// PresynTypes are the kinds of source a synapse can receive from
type PresynTypes int32

const (
	PreElectrode PresynTypes = iota
	PreSensor
	PreNeurite

	PresynTypesN
)

var KiT_PresynTypes = kit.Enums.AddEnum(PresynTypesN, kit.NotBitFlag, nil)

func (ev PresynTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *PresynTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }
