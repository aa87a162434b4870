// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neural

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/params"
	"github.com/emer/emergent/timer"
	"github.com/emer/neurite/electrode"
	"github.com/emer/neurite/sensor"
	"github.com/emer/neurite/spikemodel"
	"github.com/emer/neurite/stp"
	"github.com/goki/ki/ki"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// neural.Network holds the neurites, synapses, electrodes and sensors of a
// simulation, which refer to each other by index into its lists.
// Neurites keep their index for the life of the network: pruned neurites
// stay in the list, turned Off.
type Network struct {
	Nm         string                `desc:"overall name of network -- helps discriminate if there are multiple"`
	Neurites   []*Neurite            `desc:"list of neurites, indexed by neurite handle"`
	NeurMap    map[string]*Neurite   `view:"-" desc:"map of name to neurite -- rebuilt on Build, and updated on AddNeurite"`
	Synapses   []Synapse             `desc:"list of synapses, indexed by synapse handle"`
	Electrodes []electrode.Electrode `desc:"list of electrodes"`
	Sensors    []sensor.Sensor       `desc:"list of sensors"`
	Time       Time                  `view:"inline" desc:"timing state and the integration time step"`
	Spacing    float32               `def:"1" desc:"distance between neurites in Layout"`
	MinPos     mat32.Vec3            `view:"-" desc:"minimum display position in network"`
	MaxPos     mat32.Vec3            `view:"-" desc:"maximum display position in network"`

	FunTimes map[string]*timer.Time `view:"-" desc:"timers for each major function (step of processing)"`

	ge []float32 // per-neurite excitatory and gap current
	gi []float32 // per-neurite inhibitory conductance
	gs []float32 // per-neurite shunting
}

var KiT_Network = kit.Types.AddType(&Network{}, NetworkProps)

var NetworkProps = ki.Props{}

// NewNetwork returns a new network with default parameters
func NewNetwork(name string) *Network {
	nt := &Network{}
	nt.InitName(name)
	return nt
}

// InitName initializes the name and default parameters
func (nt *Network) InitName(name string) {
	nt.Nm = name
	nt.Defaults()
}

func (nt *Network) Name() string                  { return nt.Nm }
func (nt *Network) Label() string                 { return nt.Nm }
func (nt *Network) NNeurites() int                { return len(nt.Neurites) }
func (nt *Network) NSynapses() int                { return len(nt.Synapses) }
func (nt *Network) Bounds() (min, max mat32.Vec3) { min = nt.MinPos; max = nt.MaxPos; return }

// Defaults sets default parameters
func (nt *Network) Defaults() {
	nt.Time.Defaults()
	nt.Spacing = 1
	if nt.FunTimes == nil {
		nt.FunTimes = make(map[string]*timer.Time)
	}
}

// Neurite returns the neurite at given index, or nil if out of range
func (nt *Network) Neurite(idx int) *Neurite {
	if idx < 0 || idx >= len(nt.Neurites) {
		return nil
	}
	return nt.Neurites[idx]
}

// Synapse returns the synapse at given index, or nil if out of range
func (nt *Network) Synapse(idx int) Synapse {
	if idx < 0 || idx >= len(nt.Synapses) {
		return nil
	}
	return nt.Synapses[idx]
}

// NeuriteByName returns a neurite by looking it up by name in the neurite map (nil if not found).
// Will create the neurite map if it is nil, but otherwise it is updated by AddNeurite and PruneChild.
func (nt *Network) NeuriteByName(name string) *Neurite {
	if nt.NeurMap == nil {
		nt.MakeNeurMap()
	}
	return nt.NeurMap[name]
}

// NeuriteByNameTry returns a neurite by looking it up by name -- emits a log error message
// if neurite is not found
func (nt *Network) NeuriteByNameTry(name string) (*Neurite, error) {
	nr := nt.NeuriteByName(name)
	if nr == nil {
		err := fmt.Errorf("Neurite named: %v not found in Network: %v", name, nt.Nm)
		log.Println(err)
		return nr, err
	}
	return nr, nil
}

// MakeNeurMap updates neurite map based on current live neurites
func (nt *Network) MakeNeurMap() {
	nt.NeurMap = make(map[string]*Neurite, len(nt.Neurites))
	for _, nr := range nt.Neurites {
		if !nr.Off {
			nt.NeurMap[nr.Nm] = nr
		}
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  Construction

// AddNeurite adds a new neurite of given type and spike model, with no parent.
// An empty name is replaced with the type name and index.
func (nt *Network) AddNeurite(name string, typ NeuriteTypes, sm spikemodel.SpikeModel) (*Neurite, error) {
	if name == "" {
		name = fmt.Sprintf("%v_%d", typ, len(nt.Neurites))
	}
	if nt.NeuriteByName(name) != nil {
		return nil, fmt.Errorf("neural.Network: %v: neurite named: %v already exists", nt.Nm, name)
	}
	if typ < 0 || typ >= NeuriteTypesN {
		return nil, fmt.Errorf("neural.Network: %v: neurite: %v has invalid type: %v", nt.Nm, name, typ)
	}
	nr := &Neurite{}
	if err := nr.InitNeurite(name, typ, sm); err != nil {
		return nil, err
	}
	nr.Idx = len(nt.Neurites)
	nt.Neurites = append(nt.Neurites, nr)
	nt.NeurMap[name] = nr
	return nr, nil
}

// AddChildNeurite adds a new neurite as the last child of par
func (nt *Network) AddChildNeurite(par int, name string, typ NeuriteTypes, sm spikemodel.SpikeModel) (*Neurite, error) {
	if err := nt.checkIdx(par); err != nil {
		return nil, err
	}
	if !CanParent(nt.Neurites[par].Type, typ) {
		return nil, illegalChild(nt.Neurites[par].Type, typ)
	}
	nr, err := nt.AddNeurite(name, typ, sm)
	if err != nil {
		return nil, err
	}
	if err := nt.AddChild(par, nr.Idx); err != nil {
		nt.Neurites = nt.Neurites[:nr.Idx]
		delete(nt.NeurMap, nr.Nm)
		return nil, err
	}
	return nr, nil
}

// SetSpikeModel sets the spike model of given neurite
func (nt *Network) SetSpikeModel(idx int, sm spikemodel.SpikeModel) error {
	if err := nt.checkIdx(idx); err != nil {
		return err
	}
	return nt.Neurites[idx].SetSpikeModel(sm)
}

// AddElectrode adds an electrode, returning its index
func (nt *Network) AddElectrode(el electrode.Electrode) int {
	nt.Electrodes = append(nt.Electrodes, el)
	return len(nt.Electrodes) - 1
}

// AddSensor adds a sensor, returning its index
func (nt *Network) AddSensor(sn sensor.Sensor) int {
	nt.Sensors = append(nt.Sensors, sn)
	return len(nt.Sensors) - 1
}

// AddSynapse adds a synapse that has already been configured,
// setting its network and index, and registering it with its postsynaptic neurite.
func (nt *Network) AddSynapse(sy Synapse) Synapse {
	sb := sy.AsBase()
	sb.Net = nt
	sb.Idx = len(nt.Synapses)
	nt.Synapses = append(nt.Synapses, sy)
	if post := nt.Neurite(sb.Post); post != nil {
		post.Syns = append(post.Syns, sb.Idx)
	}
	return sy
}

// ConnectExcitatory adds an excitatory synapse from pre to post, with weight 0
func (nt *Network) ConnectExcitatory(pre Presyn, post int, sp stp.Params, tx, xmax float32) *ExcitatorySyn {
	sy := &ExcitatorySyn{}
	sy.init(Excitatory, pre, post, sp, tx, xmax)
	nt.AddSynapse(sy)
	return sy
}

// ConnectInhibitory adds an inhibitory synapse from pre to post, with weight 0
func (nt *Network) ConnectInhibitory(pre Presyn, post int, sp stp.Params, tx, xmax float32) *InhibitorySyn {
	sy := &InhibitorySyn{}
	sy.init(Inhibitory, pre, post, sp, tx, xmax)
	nt.AddSynapse(sy)
	return sy
}

// ConnectShunting adds a shunting inhibitory synapse from pre to post, with
// weight 0 and shunting scalar s clamped to ShuntingRange
func (nt *Network) ConnectShunting(pre Presyn, post int, sp stp.Params, s, tx, xmax float32) *ShuntingSyn {
	sy := &ShuntingSyn{}
	sy.init(ShuntingInhibitory, pre, post, sp, tx, xmax)
	sy.SetS(s)
	nt.AddSynapse(sy)
	return sy
}

// ConnectSynapticMod adds a synaptic modulatory synapse from pre onto post that
// rescales variable mv of each synapse set to it with SetModSynapse
func (nt *Network) ConnectSynapticMod(mv SynapticModVars, pre Presyn, post int, sp stp.Params, tx float32) *SynapticModSyn {
	sy := &SynapticModSyn{Var: mv}
	sy.init(SynapticModulatory, pre, post, sp, tx, 1)
	sy.W = 1
	nt.AddSynapse(sy)
	return sy
}

// ConnectNeuralMod adds a neural modulatory synapse from pre that rescales
// variable mv of neurite post
func (nt *Network) ConnectNeuralMod(mv NeuriteModVars, pre Presyn, post int, sp stp.Params, tx float32) *NeuralModSyn {
	sy := &NeuralModSyn{Var: mv}
	sy.init(NeuralModulatory, pre, post, sp, tx, 1)
	sy.W = 1
	nt.AddSynapse(sy)
	return sy
}

// ConnectGap adds a gap junction between pre and post, with weight 1
func (nt *Network) ConnectGap(pre Presyn, post int, sp stp.Params, xmax float32) *GapSyn {
	sy := &GapSyn{}
	sy.init(GapJunction, pre, post, sp, 1, xmax)
	sy.W = 1
	nt.AddSynapse(sy)
	return sy
}

// SetModSynapse sets synapse mod, which must be a synaptic modulatory
// synapse, as the modulator of synapse syn.  A mod of -1 clears it.
// Synaptic modulatory synapses cannot themselves be modulated.
func (nt *Network) SetModSynapse(syn, mod int) error {
	sy := nt.Synapse(syn)
	if sy == nil {
		return fmt.Errorf("neural.Network: %v: synapse index: %d out of range", nt.Nm, syn)
	}
	if mod < 0 {
		sy.AsBase().Mod = -1
		return nil
	}
	if _, ok := sy.(*SynapticModSyn); ok {
		return fmt.Errorf("neural.Network: %v: synapse: %d is a synaptic modulatory synapse and cannot be modulated", nt.Nm, syn)
	}
	if _, ok := nt.Synapse(mod).(*SynapticModSyn); !ok || mod == syn {
		return fmt.Errorf("neural.Network: %v: synapse: %d is not a synaptic modulatory synapse for: %d", nt.Nm, mod, syn)
	}
	sy.AsBase().Mod = mod
	return nil
}

//////////////////////////////////////////////////////////////////////////////////////
//  Build, Init

// Build validates all of the indexes between neurites, synapses, electrodes
// and sensors, and the dendritic tree, and allocates the per-cycle buffers.
// All problems are reported together in the returned error.
func (nt *Network) Build() error {
	if nt.FunTimes == nil {
		nt.FunTimes = make(map[string]*timer.Time)
	}
	nt.MakeNeurMap()
	emsg := ""
	for i, sy := range nt.Synapses {
		sb := sy.AsBase()
		sb.Net = nt
		sb.Idx = i
		if err := nt.checkPresyn(sb.Pre); err != nil {
			emsg += fmt.Sprintf("synapse: %d: %v\n", i, err)
		}
		if nt.Neurite(sb.Post) == nil {
			emsg += fmt.Sprintf("synapse: %d: postsynaptic neurite index: %d out of range\n", i, sb.Post)
		}
		if sb.Mod >= 0 {
			if _, ok := nt.Synapse(sb.Mod).(*SynapticModSyn); !ok {
				emsg += fmt.Sprintf("synapse: %d: modulator: %d is not a synaptic modulatory synapse\n", i, sb.Mod)
			}
			if _, ok := sy.(*SynapticModSyn); ok {
				emsg += fmt.Sprintf("synapse: %d: synaptic modulatory synapse cannot be modulated\n", i)
			}
		}
		if sb.Type == GapJunction && sb.Pre.Type == PreNeurite && sb.Pre.Idx == sb.Post {
			emsg += fmt.Sprintf("synapse: %d: gap junction connects neurite: %d to itself\n", i, sb.Post)
		}
	}
	if err := nt.CheckTree(); err != nil {
		emsg += err.Error() + "\n"
	}
	nt.allocBufs()
	if emsg != "" {
		err := errors.New(emsg)
		log.Println(err)
		return err
	}
	return nil
}

func (nt *Network) allocBufs() {
	nn := len(nt.Neurites)
	if len(nt.ge) != nn {
		nt.ge = make([]float32, nn)
		nt.gi = make([]float32, nn)
		nt.gs = make([]float32, nn)
	}
}

func (nt *Network) checkPresyn(pre Presyn) error {
	switch pre.Type {
	case PreElectrode:
		if pre.Idx < 0 || pre.Idx >= len(nt.Electrodes) {
			return fmt.Errorf("electrode index: %d out of range", pre.Idx)
		}
	case PreSensor:
		if pre.Idx < 0 || pre.Idx >= len(nt.Sensors) {
			return fmt.Errorf("sensor index: %d out of range", pre.Idx)
		}
	case PreNeurite:
		if nt.Neurite(pre.Idx) == nil {
			return fmt.Errorf("presynaptic neurite index: %d out of range", pre.Idx)
		}
	default:
		return fmt.Errorf("invalid presynaptic input type: %v", pre.Type)
	}
	return nil
}

// Init restores all neurites and synapses to their initial state, and
// resets the time counters.  Electrodes and sensors are not changed.
func (nt *Network) Init() {
	nt.Time.Reset()
	for _, nr := range nt.Neurites {
		nr.Init()
	}
	for _, sy := range nt.Synapses {
		sy.Init()
	}
}

// PreOutput returns the current output of a presynaptic source:
// the electrode or sensor output, or the neurite spike Y.
func (nt *Network) PreOutput(pre Presyn) float32 {
	switch pre.Type {
	case PreElectrode:
		if pre.Idx >= 0 && pre.Idx < len(nt.Electrodes) {
			return nt.Electrodes[pre.Idx].Output()
		}
	case PreSensor:
		if pre.Idx >= 0 && pre.Idx < len(nt.Sensors) {
			return nt.Sensors[pre.Idx].Output()
		}
	case PreNeurite:
		if nr := nt.Neurite(pre.Idx); nr != nil && !nr.Off {
			return nr.Y
		}
	}
	return 0
}

// PreVoltage returns the voltage of a presynaptic source: the membrane
// potential of a neurite, or the output of an electrode or sensor.
func (nt *Network) PreVoltage(pre Presyn) float32 {
	if pre.Type == PreNeurite {
		if nr := nt.Neurite(pre.Idx); nr != nil && !nr.Off {
			return nr.V
		}
		return 0
	}
	return nt.PreOutput(pre)
}

//////////////////////////////////////////////////////////////////////////////////////
//  Params

// ApplyParams applies given parameter style Sheet to the live neurites in this network.
// Calls Update on each neurite that had params set.
// If setMsg is true, then a message is printed to confirm each parameter that is set.
// it always prints a message if a parameter fails to be set.
// returns true if any params were set, and error if there were any errors.
func (nt *Network) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	applied := false
	var rerr error
	for _, nr := range nt.Neurites {
		if nr.Off {
			continue
		}
		app, err := pars.Apply(nr, setMsg)
		if app {
			nr.Update()
			applied = true
		}
		if err != nil {
			rerr = err
		}
	}
	return applied, rerr
}

//////////////////////////////////////////////////////////////////////////////////////
//  Timers, reports

// FunTimerStart starts function timer for given function name -- ensures creation of timer
func (nt *Network) FunTimerStart(fun string) {
	if nt.FunTimes == nil {
		nt.FunTimes = make(map[string]*timer.Time)
	}
	ft, ok := nt.FunTimes[fun]
	if !ok {
		ft = &timer.Time{}
		nt.FunTimes[fun] = ft
	}
	ft.Start()
}

// FunTimerStop stops function timer -- timer must already exist
func (nt *Network) FunTimerStop(fun string) {
	ft := nt.FunTimes[fun]
	ft.Stop()
}

// TimerReport returns the amount of time spent in each function
func (nt *Network) TimerReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TimerReport: %v\n", nt.Nm)
	fmt.Fprintf(&b, "\tFunction Name\tTotal Secs\tPct\n")
	fnms := make([]string, 0, len(nt.FunTimes))
	for k := range nt.FunTimes {
		fnms = append(fnms, k)
	}
	sort.Strings(fnms)
	secs := make([]float64, len(fnms))
	tot := 0.0
	for i, fn := range fnms {
		secs[i] = nt.FunTimes[fn].TotalSecs()
		tot += secs[i]
	}
	for i, fn := range fnms {
		pct := 0.0
		if tot > 0 {
			pct = 100 * (secs[i] / tot)
		}
		fmt.Fprintf(&b, "\t%v \t%6.4g\t%6.4g\n", fn, secs[i], pct)
	}
	fmt.Fprintf(&b, "\tTotal   \t%6.4g\n", tot)
	return b.String()
}

// SizeReport returns a string reporting the number of neurites and
// synapses of each type in the network, and total memory footprint.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	nmem := 0
	nlive := 0
	for _, nr := range nt.Neurites {
		nmem += int(unsafe.Sizeof(*nr)) + 8*(len(nr.Syns)+len(nr.Kids))
		if !nr.Off {
			nlive++
		}
	}
	fmt.Fprintf(&b, "%14s:\t Neurites: %d\t Live: %d\t NeurMem: %v\n", nt.Nm, len(nt.Neurites), nlive, (datasize.ByteSize)(nmem).HumanReadable())
	var nsyn [SynapseTypesN]int
	var smem [SynapseTypesN]int
	for _, sy := range nt.Synapses {
		st := sy.SynType()
		nsyn[st]++
		smem[st] += synSize(sy)
	}
	tmem := 0
	for st := SynapseTypes(0); st < SynapseTypesN; st++ {
		if nsyn[st] == 0 {
			continue
		}
		tmem += smem[st]
		fmt.Fprintf(&b, "\t%18s:\t Syns: %d\t SynMem: %v\n", st, nsyn[st], (datasize.ByteSize)(smem[st]).HumanReadable())
	}
	fmt.Fprintf(&b, "\n%14s:\t Neurites: %d\t NeurMem: %v \t Syns: %d \t SynMem: %v\n", nt.Nm, len(nt.Neurites), (datasize.ByteSize)(nmem).HumanReadable(), len(nt.Synapses), (datasize.ByteSize)(tmem).HumanReadable())
	return b.String()
}

func synSize(sy Synapse) int {
	switch s := sy.(type) {
	case *ShuntingSyn:
		return int(unsafe.Sizeof(*s))
	case *SynapticModSyn:
		return int(unsafe.Sizeof(*s))
	case *NeuralModSyn:
		return int(unsafe.Sizeof(*s))
	case *GapSyn:
		return int(unsafe.Sizeof(*s))
	}
	return int(unsafe.Sizeof(SynapseBase{}))
}
