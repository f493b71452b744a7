package analysis

import (
	"fmt"
	"strings"

	"github.com/orbtools/orbkit/fragment"
	"github.com/orbtools/orbkit/kfstore"
	"github.com/orbtools/orbkit/orbital"
)

// nosymGroupLabel marks a symmetry-less complex calculation.
const nosymGroupLabel = "nosym"

// Open loads a JSON dump of a KF file and analyzes it. The in-memory store
// is wrapped with the bounded overlap cache before any facade borrows it.
func Open(path string, settings Settings) (Analyzer, error) {
	store, err := kfstore.LoadJSONFile(path)
	if err != nil {
		return nil, err
	}

	return New(store, "", settings)
}

// New builds an analyzer over an already-opened store. The name falls back
// to the stored calculation title when empty. The returned variant is
// picked once from the spin-channel count.
func New(store kfstore.Store, name string, settings Settings) (Analyzer, error) {
	if len(store.Sections()) == 0 {
		return nil, ErrEmptyFile
	}
	settings = settings.withDefaults()

	nspin, err := store.ReadInt(kfstore.SecGeneral, kfstore.VarNSpin)
	if err != nil {
		return nil, fmt.Errorf("reading spin-channel count: %w", err)
	}
	restricted := nspin == 1

	groupLabel, err := store.ReadString(kfstore.SecSymmetry, kfstore.VarGroupLabel)
	if err != nil {
		return nil, fmt.Errorf("reading symmetry group: %w", err)
	}
	group := strings.Fields(groupLabel)
	usesSymmetry := len(group) > 0 && strings.ToLower(group[0]) != nosymGroupLabel

	relativistic := false
	if store.Contains(kfstore.SecGeneral, kfstore.VarIOPRel) {
		ioprel, err := store.ReadInt(kfstore.SecGeneral, kfstore.VarIOPRel)
		if err != nil {
			return nil, err
		}
		relativistic = ioprel != 0
	}

	if name == "" && store.Contains(kfstore.SecGeneral, kfstore.VarTitle) {
		if name, err = store.ReadString(kfstore.SecGeneral, kfstore.VarTitle); err != nil {
			return nil, err
		}
	}

	// The per-irrep overlap triangles are re-read on every overlap lookup;
	// everything else is read once during assembly.
	store = kfstore.NewCachedStore(store, kfstore.DefaultCacheCapacity)

	assembleOpts := fragment.AssembleOptions{
		Restricted:   restricted,
		UsesSymmetry: usesSymmetry,
		EnergyKey:    settings.EnergyKey,
	}

	fragments := make([]*fragment.Fragment, 2)
	for i := range fragments {
		if fragments[i], err = fragment.Create(store, i+1, assembleOpts); err != nil {
			return nil, fmt.Errorf("assembling fragment %d: %w", i+1, err)
		}
	}

	cplx, err := fragment.CreateComplex(store, name, restricted)
	if err != nil {
		return nil, fmt.Errorf("assembling complex: %w", err)
	}

	resolver, err := fragment.NewOverlapResolver(store, fragments[0].Data().FrozenCores, usesSymmetry, restricted)
	if err != nil {
		return nil, err
	}

	c := &calc{
		name:         name,
		restricted:   restricted,
		usesSymmetry: usesSymmetry,
		relativistic: relativistic,
		settings:     settings,
		fragments:    fragments,
		cplx:         cplx,
		resolver:     resolver,
	}
	if restricted {
		return &restrictedAnalyzer{calc: c}, nil
	}

	return &unrestrictedAnalyzer{calc: c}, nil
}

// calc carries the state shared by both analyzer variants.
type calc struct {
	name         string
	restricted   bool
	usesSymmetry bool
	relativistic bool
	settings     Settings
	fragments    []*fragment.Fragment
	cplx         *fragment.Complex
	resolver     *fragment.OverlapResolver
}

func (c *calc) Name() string       { return c.name }
func (c *calc) Restricted() bool   { return c.restricted }
func (c *calc) UsesSymmetry() bool { return c.usesSymmetry }
func (c *calc) Relativistic() bool { return c.relativistic }

func (c *calc) Fragment(number int) (*fragment.Fragment, error) {
	if number < 1 || number > len(c.fragments) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFragment, number)
	}

	return c.fragments[number-1], nil
}

func (c *calc) Complex() *fragment.Complex { return c.cplx }

func (c *calc) overlap(sfo1, sfo2 orbital.Ref, normalize func(orbital.Identity) orbital.Identity) (float64, error) {
	id1, err := sfo1.Resolve()
	if err != nil {
		return 0, err
	}
	id2, err := sfo2.Resolve()
	if err != nil {
		return 0, err
	}

	return c.resolver.Overlap(normalize(id1), normalize(id2))
}

func (c *calc) property(fragNumber int, sfo orbital.Ref, normalize func(orbital.Identity) orbital.Identity,
	get func(*fragment.Fragment, orbital.Identity) (float64, error)) (float64, error) {
	frag, err := c.Fragment(fragNumber)
	if err != nil {
		return 0, err
	}
	id, err := sfo.Resolve()
	if err != nil {
		return 0, err
	}

	return get(frag, normalize(id))
}

// restrictedAnalyzer serves single-spin-channel calculations; any spin on
// an incoming identity is discarded at the boundary.
type restrictedAnalyzer struct {
	*calc
}

func (a *restrictedAnalyzer) normalize(id orbital.Identity) orbital.Identity {
	id.Spin = orbital.SpinNone

	return id
}

func (a *restrictedAnalyzer) SFOOverlap(sfo1, sfo2 orbital.Ref) (float64, error) {
	return a.overlap(sfo1, sfo2, a.normalize)
}

func (a *restrictedAnalyzer) SFOOverlapAbs(sfo1, sfo2 orbital.Ref) (float64, error) {
	return abs(a.SFOOverlap(sfo1, sfo2))
}

func (a *restrictedAnalyzer) SFOOrbitalEnergy(fragNumber int, sfo orbital.Ref) (float64, error) {
	return a.property(fragNumber, sfo, a.normalize, (*fragment.Fragment).OrbitalEnergy)
}

func (a *restrictedAnalyzer) SFOOccupation(fragNumber int, sfo orbital.Ref) (float64, error) {
	return a.property(fragNumber, sfo, a.normalize, (*fragment.Fragment).Occupation)
}

func (a *restrictedAnalyzer) SFOGrossPopulation(fragNumber int, sfo orbital.Ref) (float64, error) {
	return a.property(fragNumber, sfo, a.normalize, (*fragment.Fragment).GrossPopulation)
}

func (a *restrictedAnalyzer) SFOOrbitals(opts WindowOptions) (*SFOManager, error) {
	opts.Spin = orbital.SpinNone

	return newSFOManager(a.calc, opts)
}

func (a *restrictedAnalyzer) MOOrbitals(opts MOWindowOptions) (*MOManager, error) {
	opts.Spin = orbital.SpinNone

	return newMOManager(a.calc, opts)
}

// unrestrictedAnalyzer serves two-spin-channel calculations; an identity
// without a spin defaults to channel A at the boundary.
type unrestrictedAnalyzer struct {
	*calc
}

func (a *unrestrictedAnalyzer) normalize(id orbital.Identity) orbital.Identity {
	if id.Spin == orbital.SpinNone {
		id.Spin = orbital.SpinA
	}

	return id
}

func (a *unrestrictedAnalyzer) SFOOverlap(sfo1, sfo2 orbital.Ref) (float64, error) {
	return a.overlap(sfo1, sfo2, a.normalize)
}

func (a *unrestrictedAnalyzer) SFOOverlapAbs(sfo1, sfo2 orbital.Ref) (float64, error) {
	return abs(a.SFOOverlap(sfo1, sfo2))
}

func (a *unrestrictedAnalyzer) SFOOrbitalEnergy(fragNumber int, sfo orbital.Ref) (float64, error) {
	return a.property(fragNumber, sfo, a.normalize, (*fragment.Fragment).OrbitalEnergy)
}

func (a *unrestrictedAnalyzer) SFOOccupation(fragNumber int, sfo orbital.Ref) (float64, error) {
	return a.property(fragNumber, sfo, a.normalize, (*fragment.Fragment).Occupation)
}

func (a *unrestrictedAnalyzer) SFOGrossPopulation(fragNumber int, sfo orbital.Ref) (float64, error) {
	return a.property(fragNumber, sfo, a.normalize, (*fragment.Fragment).GrossPopulation)
}

func (a *unrestrictedAnalyzer) SFOOrbitals(opts WindowOptions) (*SFOManager, error) {
	if opts.Spin == orbital.SpinNone {
		opts.Spin = orbital.SpinA
	}

	return newSFOManager(a.calc, opts)
}

func (a *unrestrictedAnalyzer) MOOrbitals(opts MOWindowOptions) (*MOManager, error) {
	if opts.Spin == orbital.SpinNone {
		opts.Spin = orbital.SpinA
	}

	return newMOManager(a.calc, opts)
}

func abs(v float64, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return -v, nil
	}

	return v, nil
}

var (
	_ Analyzer = (*restrictedAnalyzer)(nil)
	_ Analyzer = (*unrestrictedAnalyzer)(nil)
)
