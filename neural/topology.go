// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

import (
	"fmt"
	"strings"
)

// childTypes lists, for each parent type, the legal child types
var childTypes = [NeuriteTypesN][]NeuriteTypes{
	Soma:          {BasalProximal, ApicalTrunk, Axon},
	BasalProximal: {BasalProximal, BasalDistal},
	BasalDistal:   {BasalDistal},
	ApicalTrunk:   {ApicalTrunk, ApicalTuft},
	ApicalTuft:    {ApicalTuft},
	Axon:          {Axon},
}

// CanParent returns true if a neurite of type kid may be a child of one of type par.
// This does not check the limit of one ApicalTrunk and one Axon per Soma.
func CanParent(par, kid NeuriteTypes) bool {
	if par < 0 || par >= NeuriteTypesN {
		return false
	}
	for _, ct := range childTypes[par] {
		if ct == kid {
			return true
		}
	}
	return false
}

// SingleSomaChild returns true for the child types of which a Soma may have at most one
func SingleSomaChild(kid NeuriteTypes) bool {
	return kid == ApicalTrunk || kid == Axon
}

// TopologyError is returned when a tree mutation would break the dendritic tree rules.
type TopologyError struct {
	Parent NeuriteTypes
	Child  NeuriteTypes
	Reason string
}

func (te *TopologyError) Error() string {
	return "neural: " + te.Reason
}

func article(nt NeuriteTypes) string {
	switch nt {
	case ApicalTrunk, ApicalTuft, Axon:
		return "an"
	}
	return "a"
}

// typeLabel returns the lower case, space separated type name, e.g., "basal proximal"
func typeLabel(nt NeuriteTypes) string {
	nm := nt.String()
	var b strings.Builder
	for i, r := range nm {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func illegalChild(par, kid NeuriteTypes) *TopologyError {
	return &TopologyError{Parent: par, Child: kid,
		Reason: fmt.Sprintf("cannot add %s %s neurite as a child of %s %s neurite", article(kid), typeLabel(kid), article(par), typeLabel(par))}
}

//////////////////////////////////////////////////////////////////////////////////////
//  Network tree methods

// checkIdx returns an error if idx is not a live neurite
func (nt *Network) checkIdx(idx int) error {
	if idx < 0 || idx >= len(nt.Neurites) {
		return fmt.Errorf("neural.Network: %v: neurite index: %d out of range", nt.Nm, idx)
	}
	if nt.Neurites[idx].Off {
		return fmt.Errorf("neural.Network: %v: neurite: %v has been pruned", nt.Nm, nt.Neurites[idx].Nm)
	}
	return nil
}

// canLink checks whether kid may be attached as a child of par
func (nt *Network) canLink(par, kid int) error {
	if err := nt.checkIdx(par); err != nil {
		return err
	}
	if err := nt.checkIdx(kid); err != nil {
		return err
	}
	pn := nt.Neurites[par]
	kn := nt.Neurites[kid]
	if !CanParent(pn.Type, kn.Type) {
		return illegalChild(pn.Type, kn.Type)
	}
	if kn.Par >= 0 {
		return &TopologyError{Parent: pn.Type, Child: kn.Type,
			Reason: fmt.Sprintf("neurite: %v already has parent: %v", kn.Nm, nt.Neurites[kn.Par].Nm)}
	}
	if pn.Type == Soma && SingleSomaChild(kn.Type) {
		for _, ki := range pn.Kids {
			if nt.Neurites[ki].Type == kn.Type {
				return &TopologyError{Parent: pn.Type, Child: kn.Type,
					Reason: fmt.Sprintf("cannot have more than one %s neurite as a child of a soma neurite", typeLabel(kn.Type))}
			}
		}
	}
	for a := par; a >= 0; a = nt.Neurites[a].Par {
		if a == kid {
			return &TopologyError{Parent: pn.Type, Child: kn.Type,
				Reason: fmt.Sprintf("neurite: %v is an ancestor of: %v", kn.Nm, pn.Nm)}
		}
	}
	return nil
}

// AddChild attaches neurite kid as the last child of neurite par.
// Returns a *TopologyError if the types may not be linked, if the Soma
// already has a child of the same single-child type, if kid already has a
// parent, or if the link would make a cycle.
func (nt *Network) AddChild(par, kid int) error {
	if err := nt.canLink(par, kid); err != nil {
		return err
	}
	nt.link(par, kid)
	return nil
}

// SetParent attaches neurite kid to parent par, with the same rules as AddChild.
func (nt *Network) SetParent(kid, par int) error {
	if err := nt.checkIdx(kid); err == nil && nt.Neurites[kid].Type == Soma {
		return &TopologyError{Parent: NeuriteTypesN, Child: Soma, Reason: "soma neurite cannot have a parent neurite"}
	}
	return nt.AddChild(par, kid)
}

func (nt *Network) link(par, kid int) {
	pn := nt.Neurites[par]
	pn.Kids = append(pn.Kids, kid)
	nt.Neurites[kid].Par = par
}

// RemoveChild removes the child at index i of neurite par, and moves its
// own children onto par, appending them after par's remaining children.
// The removed neurite is left in the network, detached, with no children.
// The moved neurites keep their types, so the tree may then fail CheckTree,
// e.g., a soma left with two apical trunk children, and Build will report it.
// Returns false if i is out of range.
func (nt *Network) RemoveChild(par, i int) bool {
	if nt.checkIdx(par) != nil {
		return false
	}
	pn := nt.Neurites[par]
	if i < 0 || i >= len(pn.Kids) {
		return false
	}
	ki := pn.Kids[i]
	kn := nt.Neurites[ki]
	pn.Kids = append(pn.Kids[:i], pn.Kids[i+1:]...)
	for _, gi := range kn.Kids {
		nt.Neurites[gi].Par = par
		pn.Kids = append(pn.Kids, gi)
	}
	kn.Kids = nil
	kn.Par = -1
	return true
}

// PruneChild removes the child at index i of neurite par along with its
// entire subtree, all of which are turned Off and no longer processed.
// Returns false if i is out of range.
func (nt *Network) PruneChild(par, i int) bool {
	if nt.checkIdx(par) != nil {
		return false
	}
	pn := nt.Neurites[par]
	if i < 0 || i >= len(pn.Kids) {
		return false
	}
	ki := pn.Kids[i]
	pn.Kids = append(pn.Kids[:i], pn.Kids[i+1:]...)
	for _, si := range nt.Subtree(ki) {
		sn := nt.Neurites[si]
		sn.Off = true
		sn.Kids = nil
		sn.Par = -1
		sn.Y = 0
		delete(nt.NeurMap, sn.Nm)
	}
	return true
}

// Parent returns the parent of given neurite, or nil if none
func (nt *Network) Parent(idx int) *Neurite {
	nr := nt.Neurite(idx)
	if nr == nil || nr.Par < 0 {
		return nil
	}
	return nt.Neurites[nr.Par]
}

// Children returns the children of given neurite
func (nt *Network) Children(idx int) []*Neurite {
	nr := nt.Neurite(idx)
	if nr == nil {
		return nil
	}
	kids := make([]*Neurite, len(nr.Kids))
	for i, ki := range nr.Kids {
		kids[i] = nt.Neurites[ki]
	}
	return kids
}

// Subtree returns the indexes of given neurite and all of its descendants, depth first
func (nt *Network) Subtree(idx int) []int {
	if idx < 0 || idx >= len(nt.Neurites) {
		return nil
	}
	st := []int{idx}
	for _, ki := range nt.Neurites[idx].Kids {
		st = append(st, nt.Subtree(ki)...)
	}
	return st
}

// Roots returns the indexes of live neurites without a parent
func (nt *Network) Roots() []int {
	var rs []int
	for i, nr := range nt.Neurites {
		if !nr.Off && nr.Par < 0 {
			rs = append(rs, i)
		}
	}
	return rs
}

// CheckTree returns an error describing every parent and child link that
// is inconsistent or breaks the dendritic tree rules
func (nt *Network) CheckTree() error {
	var errs []string
	for i, nr := range nt.Neurites {
		if nr.Off {
			continue
		}
		if nr.Par >= 0 {
			if nt.checkIdx(nr.Par) != nil {
				errs = append(errs, fmt.Sprintf("neurite: %v has invalid parent: %d", nr.Nm, nr.Par))
				continue
			}
			pn := nt.Neurites[nr.Par]
			if !CanParent(pn.Type, nr.Type) {
				errs = append(errs, illegalChild(pn.Type, nr.Type).Error())
			}
		}
		nsingle := map[NeuriteTypes]int{}
		for _, ki := range nr.Kids {
			if nt.checkIdx(ki) != nil || nt.Neurites[ki].Par != i {
				errs = append(errs, fmt.Sprintf("neurite: %v has invalid child: %d", nr.Nm, ki))
				continue
			}
			if nr.Type == Soma && SingleSomaChild(nt.Neurites[ki].Type) {
				nsingle[nt.Neurites[ki].Type]++
			}
		}
		for ty, n := range nsingle {
			if n > 1 {
				errs = append(errs, fmt.Sprintf("soma: %v has %d %s children", nr.Nm, n, typeLabel(ty)))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("neural.Network: %v: tree errors:\n%s", nt.Nm, strings.Join(errs, "\n"))
	}
	return nil
}
