// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

import (
	"errors"
	"testing"

	"github.com/emer/neurite/spikemodel"
)

func addNeur(t *testing.T, nt *Network, name string, typ NeuriteTypes) int {
	t.Helper()
	nr, err := nt.AddNeurite(name, typ, spikemodel.RegularSpiking)
	if err != nil {
		t.Fatal(err)
	}
	return nr.Idx
}

func TestCanParent(t *testing.T) {
	legal := map[NeuriteTypes][]NeuriteTypes{
		Soma:          {BasalProximal, ApicalTrunk, Axon},
		BasalProximal: {BasalProximal, BasalDistal},
		BasalDistal:   {BasalDistal},
		ApicalTrunk:   {ApicalTrunk, ApicalTuft},
		ApicalTuft:    {ApicalTuft},
		Axon:          {Axon},
	}
	for par := NeuriteTypes(0); par < NeuriteTypesN; par++ {
		for kid := NeuriteTypes(0); kid < NeuriteTypesN; kid++ {
			cor := false
			for _, lk := range legal[par] {
				if lk == kid {
					cor = true
				}
			}
			if CanParent(par, kid) != cor {
				t.Errorf("CanParent(%v, %v) should be: %v\n", par, kid, cor)
			}
		}
	}
}

func TestAddChild(t *testing.T) {
	nt := NewNetwork("tree")
	s1 := addNeur(t, nt, "s1", Soma)
	s2 := addNeur(t, nt, "s2", Soma)
	bp := addNeur(t, nt, "bp", BasalProximal)

	err := nt.AddChild(s1, s2)
	var te *TopologyError
	if !errors.As(err, &te) {
		t.Fatalf("soma under soma should be a TopologyError: %v\n", err)
	}
	if te.Parent != Soma || te.Child != Soma {
		t.Errorf("TopologyError types: %v %v\n", te.Parent, te.Child)
	}
	if err.Error() != "neural: cannot add a soma neurite as a child of a soma neurite" {
		t.Errorf("message: %v\n", err)
	}
	if len(nt.Neurites[s1].Kids) != 0 || nt.Neurites[s2].Par != -1 {
		t.Errorf("failed AddChild changed the tree\n")
	}

	if err := nt.AddChild(s1, bp); err != nil {
		t.Fatal(err)
	}
	if nt.Parent(bp) != nt.Neurites[s1] || len(nt.Children(s1)) != 1 {
		t.Errorf("basal proximal was not linked to soma\n")
	}
	if err := nt.AddChild(s2, bp); !errors.As(err, &te) {
		t.Errorf("second parent should be a TopologyError: %v\n", err)
	}
	if err := nt.AddChild(s1, 99); err == nil {
		t.Errorf("out of range child should be an error\n")
	}
}

func TestSingleSomaChildren(t *testing.T) {
	nt := NewNetwork("tree")
	s := addNeur(t, nt, "s", Soma)
	for _, typ := range []NeuriteTypes{ApicalTrunk, Axon} {
		if _, err := nt.AddChildNeurite(s, typ.String()+"1", typ, spikemodel.RegularSpiking); err != nil {
			t.Fatal(err)
		}
		n := nt.NNeurites()
		_, err := nt.AddChildNeurite(s, typ.String()+"2", typ, spikemodel.RegularSpiking)
		var te *TopologyError
		if !errors.As(err, &te) {
			t.Errorf("second %v should be a TopologyError: %v\n", typ, err)
		}
		if nt.NNeurites() != n || nt.NeuriteByName(typ.String()+"2") != nil {
			t.Errorf("failed AddChildNeurite left a neurite in the network\n")
		}
	}
	for i := 0; i < 3; i++ {
		if _, err := nt.AddChildNeurite(s, "", BasalProximal, spikemodel.RegularSpiking); err != nil {
			t.Errorf("multiple basal proximal children should be legal: %v\n", err)
		}
	}
	if err := nt.CheckTree(); err != nil {
		t.Error(err)
	}
}

func TestSetParent(t *testing.T) {
	nt := NewNetwork("tree")
	s := addNeur(t, nt, "s", Soma)
	s2 := addNeur(t, nt, "s2", Soma)
	ax := addNeur(t, nt, "ax", Axon)
	if err := nt.SetParent(ax, s); err != nil {
		t.Fatal(err)
	}
	if nt.Neurites[ax].Par != s || nt.Neurites[s].Kids[0] != ax {
		t.Errorf("SetParent did not link\n")
	}
	var te *TopologyError
	if err := nt.SetParent(s2, s); !errors.As(err, &te) {
		t.Errorf("soma with a parent should be a TopologyError: %v\n", err)
	} else if err.Error() != "neural: soma neurite cannot have a parent neurite" {
		t.Errorf("message: %v\n", err)
	}
	bd := addNeur(t, nt, "bd", BasalDistal)
	if err := nt.SetParent(bd, ax); !errors.As(err, &te) {
		t.Errorf("basal distal under axon should be a TopologyError: %v\n", err)
	}
}

func TestNoCycles(t *testing.T) {
	nt := NewNetwork("tree")
	b1 := addNeur(t, nt, "b1", BasalProximal)
	b2 := addNeur(t, nt, "b2", BasalProximal)
	b3 := addNeur(t, nt, "b3", BasalProximal)
	if err := nt.AddChild(b1, b2); err != nil {
		t.Fatal(err)
	}
	if err := nt.AddChild(b2, b3); err != nil {
		t.Fatal(err)
	}
	if err := nt.AddChild(b3, b1); err == nil {
		t.Errorf("cycle should be an error\n")
	}
	if err := nt.AddChild(b1, b1); err == nil {
		t.Errorf("self link should be an error\n")
	}
	if st := nt.Subtree(b1); len(st) != 3 {
		t.Errorf("subtree: %v\n", st)
	}
	if rs := nt.Roots(); len(rs) != 1 || rs[0] != b1 {
		t.Errorf("roots: %v\n", rs)
	}
}

// soma -> {ax, bp -> {g1, g2}}
func removeTree(t *testing.T) (nt *Network, s, ax, bp, g1, g2 int) {
	nt = NewNetwork("tree")
	s = addNeur(t, nt, "s", Soma)
	ax = addNeur(t, nt, "ax", Axon)
	bp = addNeur(t, nt, "bp", BasalProximal)
	g1 = addNeur(t, nt, "g1", BasalProximal)
	g2 = addNeur(t, nt, "g2", BasalDistal)
	for _, l := range [][2]int{{s, ax}, {s, bp}, {bp, g1}, {bp, g2}} {
		if err := nt.AddChild(l[0], l[1]); err != nil {
			t.Fatal(err)
		}
	}
	return
}

func TestRemoveChild(t *testing.T) {
	nt, s, ax, bp, g1, g2 := removeTree(t)
	if nt.RemoveChild(s, 2) || nt.RemoveChild(s, -1) || nt.RemoveChild(99, 0) {
		t.Errorf("out of range RemoveChild should return false\n")
	}
	if !nt.RemoveChild(s, 1) {
		t.Fatalf("RemoveChild failed\n")
	}
	kids := nt.Neurites[s].Kids
	if len(kids) != 3 || kids[0] != ax || kids[1] != g1 || kids[2] != g2 {
		t.Errorf("soma kids after remove: %v\n", kids)
	}
	if nt.Neurites[g1].Par != s || nt.Neurites[g2].Par != s {
		t.Errorf("grandchildren not moved to soma\n")
	}
	rn := nt.Neurites[bp]
	if rn.Off || rn.Par != -1 || len(rn.Kids) != 0 {
		t.Errorf("removed neurite should be live and detached: %+v\n", rn)
	}
	// the moved basal distal is not a legal soma child
	if err := nt.CheckTree(); err == nil {
		t.Errorf("CheckTree should report the basal distal under soma\n")
	}
}

func TestRemoveChildTwoTrunks(t *testing.T) {
	nt := NewNetwork("trunks")
	s := addNeur(t, nt, "s", Soma)
	at := addNeur(t, nt, "at", ApicalTrunk)
	at1 := addNeur(t, nt, "at1", ApicalTrunk)
	at2 := addNeur(t, nt, "at2", ApicalTrunk)
	for _, l := range [][2]int{{s, at}, {at, at1}, {at, at2}} {
		if err := nt.AddChild(l[0], l[1]); err != nil {
			t.Fatal(err)
		}
	}
	if err := nt.Build(); err != nil {
		t.Fatal(err)
	}
	if !nt.RemoveChild(s, 0) {
		t.Fatalf("RemoveChild failed\n")
	}
	kids := nt.Neurites[s].Kids
	if len(kids) != 2 || kids[0] != at1 || kids[1] != at2 {
		t.Errorf("soma kids after remove: %v\n", kids)
	}
	if err := nt.CheckTree(); err == nil {
		t.Errorf("CheckTree should report two apical trunks under the soma\n")
	}
	if err := nt.Build(); err == nil {
		t.Errorf("Build should fail with two apical trunks under the soma\n")
	}
}

func TestPruneChild(t *testing.T) {
	nt, s, ax, bp, g1, g2 := removeTree(t)
	if nt.PruneChild(s, 5) {
		t.Errorf("out of range PruneChild should return false\n")
	}
	if !nt.PruneChild(s, 1) {
		t.Fatalf("PruneChild failed\n")
	}
	if kids := nt.Neurites[s].Kids; len(kids) != 1 || kids[0] != ax {
		t.Errorf("soma kids after prune: %v\n", kids)
	}
	for _, i := range []int{bp, g1, g2} {
		nr := nt.Neurites[i]
		if !nr.Off {
			t.Errorf("%v should be off\n", nr.Nm)
		}
		if nt.NeuriteByName(nr.Nm) != nil {
			t.Errorf("%v should not be found by name\n", nr.Nm)
		}
	}
	if nt.Neurites[ax].Off || nt.Neurites[s].Off {
		t.Errorf("prune turned off neurites outside the subtree\n")
	}
	if err := nt.CheckTree(); err != nil {
		t.Error(err)
	}
	if err := nt.AddChild(s, bp); err == nil {
		t.Errorf("pruned neurite should not be linkable\n")
	}
}
