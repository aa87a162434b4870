// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

import (
	"fmt"
	"io"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// RecVars are the neurite variables recorded by a Recorder
var RecVars = []string{"V", "U", "Y"}

// Recorder logs the state of chosen neurites and synapses on each cycle
// into an etable.Table, one row per Record call.
type Recorder struct {
	Net   *Network      `view:"-" desc:"network being recorded"`
	Neurs []int         `desc:"indexes of recorded neurites"`
	Syns  []int         `desc:"indexes of recorded synapses"`
	Table *etable.Table `desc:"recorded values"`
}

// NewRecorder returns a recorder for given neurites and synapses of the network.
// Neurite columns are named by neurite name and variable, e.g., soma_V,
// and synapse columns by index, e.g., Syn0_X.
func NewRecorder(nt *Network, neurs, syns []int) *Recorder {
	rc := &Recorder{Net: nt, Neurs: neurs, Syns: syns}
	rc.ConfigTable()
	return rc
}

// ConfigTable sets up the table columns, with no rows
func (rc *Recorder) ConfigTable() {
	dt := &etable.Table{}
	dt.SetMetaData("name", rc.Net.Nm+"Rec")
	dt.SetMetaData("desc", "record of neurite and synapse state per cycle")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", "6")

	sch := etable.Schema{
		{"Cycle", etensor.INT64, nil, nil},
		{"Time", etensor.FLOAT64, nil, nil},
	}
	for _, ni := range rc.Neurs {
		nm := fmt.Sprintf("N%d", ni)
		if nr := rc.Net.Neurite(ni); nr != nil {
			nm = nr.Nm
		}
		for _, vnm := range RecVars {
			sch = append(sch, etable.Column{nm + "_" + vnm, etensor.FLOAT64, nil, nil})
		}
	}
	for _, si := range rc.Syns {
		sch = append(sch, etable.Column{fmt.Sprintf("Syn%d_X", si), etensor.FLOAT64, nil, nil})
	}
	dt.SetFromSchema(sch, 0)
	rc.Table = dt
}

// Record appends a row with the current network state
func (rc *Recorder) Record() {
	dt := rc.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	col := 0
	dt.SetCellFloatIdx(col, row, float64(rc.Net.Time.Cycle))
	col++
	dt.SetCellFloatIdx(col, row, float64(rc.Net.Time.Time))
	col++
	for _, ni := range rc.Neurs {
		nr := rc.Net.Neurite(ni)
		for _, vnm := range RecVars {
			val := float32(0)
			if nr != nil {
				val, _ = nr.VarByName(vnm)
			}
			dt.SetCellFloatIdx(col, row, float64(val))
			col++
		}
	}
	for _, si := range rc.Syns {
		val := float32(0)
		if sy := rc.Net.Synapse(si); sy != nil {
			val = sy.Input()
		}
		dt.SetCellFloatIdx(col, row, float64(val))
		col++
	}
}

// Reset removes all recorded rows
func (rc *Recorder) Reset() {
	rc.Table.SetNumRows(0)
}

// WriteCSV writes the recorded table with headers, using given delimiter
func (rc *Recorder) WriteCSV(w io.Writer, delim etable.Delims) error {
	return rc.Table.WriteCSV(w, delim, etable.Headers)
}
