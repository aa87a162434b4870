// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

import (
	"bytes"

	"github.com/google/uuid"
)

// NeuriteID uniquely identifies a neurite.  IDs are time-ordered,
// so sorting by ID sorts by creation.
type NeuriteID uuid.UUID

// SynapticID uniquely identifies a synapse.  IDs are time-ordered,
// so sorting by ID sorts by creation.
type SynapticID uuid.UUID

func newNeuriteID() NeuriteID   { return NeuriteID(uuid.Must(uuid.NewV7())) }
func newSynapticID() SynapticID { return SynapticID(uuid.Must(uuid.NewV7())) }

func (id NeuriteID) String() string  { return uuid.UUID(id).String() }
func (id SynapticID) String() string { return uuid.UUID(id).String() }

// Before returns true if this ID was created before the other
func (id NeuriteID) Before(oth NeuriteID) bool { return bytes.Compare(id[:], oth[:]) < 0 }

// Before returns true if this ID was created before the other
func (id SynapticID) Before(oth SynapticID) bool { return bytes.Compare(id[:], oth[:]) < 0 }
