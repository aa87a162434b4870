// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neurite is the overall repository for a compartmental spiking neuron
engine, in which each neuron is a tree of soma, dendrite and axon compartments
(neurites) integrating Izhikevich-style dynamics.

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* neural: the Network of neurites and synapses, the dendritic tree rules,
the per-cycle integration, and the Recorder of state into an etable.Table.

* spikemodel: the table of spike model presets, each a set of constants for the
simple or the extended (two-compartment capable) equations.

* stp: short-term facilitation and depression of synaptic transmission.

* electrode: injected inputs -- pulses, pulse trains, sinusoids, and Poisson
spike trains with a seedable random source.

* sensor: continuous inputs -- constants, noise and functions of time.

* examples/neurosim: a command line program that runs a network described in a
YAML scenario file and writes the recorded state as CSV.
*/
package neurite
