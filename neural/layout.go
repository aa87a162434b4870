// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

import (
	"github.com/goki/mat32"
)

// typeDir is the direction each neurite type extends away from its parent
var typeDir = [NeuriteTypesN]mat32.Vec3{
	Soma:          {},
	BasalProximal: {X: 0, Y: -1, Z: 0},
	BasalDistal:   {X: 0, Y: -1, Z: 0},
	ApicalTrunk:   {X: 0, Y: 1, Z: 0},
	ApicalTuft:    {X: 0, Y: 1, Z: 0},
	Axon:          {X: 1, Y: 0, Z: 0},
}

// Layout positions every tree: each root is placed along X, Spacing*4 apart,
// and each child extends from its parent in the direction of its type,
// with siblings spread along Z.
func (nt *Network) Layout() {
	sp := nt.Spacing
	if sp == 0 {
		sp = 1
	}
	for ri, root := range nt.Roots() {
		nt.Neurites[root].Pos = mat32.Vec3{X: float32(ri) * 4 * sp}
		nt.layoutKids(root, sp)
	}
	nt.BoundsUpdt()
}

func (nt *Network) layoutKids(idx int, sp float32) {
	nr := nt.Neurites[idx]
	nk := len(nr.Kids)
	for i, ki := range nr.Kids {
		kn := nt.Neurites[ki]
		off := typeDir[kn.Type].MulScalar(sp)
		off.Z = (float32(i) - 0.5*float32(nk-1)) * sp
		kn.Pos = nr.Pos.Add(off)
		nt.layoutKids(ki, sp)
	}
}

// BoundsUpdt updates the Min / Max display bounds over the live neurites
func (nt *Network) BoundsUpdt() {
	mn := mat32.NewVec3Scalar(mat32.Infinity)
	mx := mat32.NewVec3Scalar(-mat32.Infinity)
	n := 0
	for _, nr := range nt.Neurites {
		if nr.Off {
			continue
		}
		mn.SetMin(nr.Pos)
		mx.SetMax(nr.Pos)
		n++
	}
	if n == 0 {
		mn = mat32.Vec3Zero
		mx = mat32.Vec3Zero
	}
	nt.MinPos = mn
	nt.MaxPos = mx
}
