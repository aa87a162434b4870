// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sensor

import (
	"testing"

	"github.com/emer/emergent/erand"
)

func TestConst(t *testing.T) {
	var sn Sensor = &Const{Val: 2}
	if sn.Process() != 2 || sn.Output() != 2 {
		t.Errorf("const: %v\n", sn.Output())
	}
}

func TestNoise(t *testing.T) {
	ns := NewNoise(0.5, 0.25)
	for i := 0; i < 100; i++ {
		v := ns.Process()
		if v < 0.25 || v > 0.75 {
			t.Errorf("uniform draw out of range: %v\n", v)
		}
	}
	ns.Dist = erand.Mean
	ns.Mean = -1
	ns.Rect = true
	if v := ns.Process(); v != 0 {
		t.Errorf("rectified mean should be 0: %v\n", v)
	}
}

func TestFunc(t *testing.T) {
	fs := NewFunc(func(t float32) float32 { return 2 * t })
	fs.Process()
	fs.Process()
	if fs.Output() != 4 {
		t.Errorf("func: %v\n", fs.Output())
	}
}
