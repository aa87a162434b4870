// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

import (
	"bytes"
	"strings"
	"testing"

	"github.com/emer/etable/etable"
	"github.com/emer/neurite/electrode"
)

func TestRecorder(t *testing.T) {
	nt, soma, bp := drivenNet(t, true, electrode.NewPulsating(1, 2, 20))
	rc := NewRecorder(nt, []int{soma, bp}, []int{0})
	if rc.Table.NumCols() != 2+2*len(RecVars)+1 {
		t.Errorf("columns: %d\n", rc.Table.NumCols())
	}
	for i := 0; i < 25; i++ {
		nt.Cycle()
		rc.Record()
	}
	if rc.Table.Rows != 25 {
		t.Errorf("rows: %d\n", rc.Table.Rows)
	}
	if cyc := rc.Table.CellFloat("Cycle", 24); cyc != 25 {
		t.Errorf("last cycle: %v\n", cyc)
	}
	if v := rc.Table.CellFloat("soma_V", 24); float32(v) != nt.Neurites[soma].V {
		t.Errorf("last soma_V: %v cor: %v\n", v, nt.Neurites[soma].V)
	}

	var b bytes.Buffer
	if err := rc.WriteCSV(&b, etable.Comma); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 26 {
		t.Errorf("csv lines: %d\n", len(lines))
	}
	for _, col := range []string{"Cycle", "soma_V", "bp_U", "Syn0_X"} {
		if !strings.Contains(lines[0], col) {
			t.Errorf("csv header missing: %v: %v\n", col, lines[0])
		}
	}

	rc.Reset()
	if rc.Table.Rows != 0 {
		t.Errorf("rows after reset: %d\n", rc.Table.Rows)
	}
}
