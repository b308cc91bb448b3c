// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"slices"
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// CoexistentCounts is the number of same-sized working buffers that must be resident in scratch
// at once, for each of the kernel's buffer strategies. It includes double-buffering.
type CoexistentCounts struct {
	PerTensor        int64 // Static quantization, scalar scale.
	PerChannel       int64 // Static quantization, per-channel scale.
	DynamicNormal    int64 // Dynamic quantization, row reduced in scratch.
	DynamicWorkspace int64 // Dynamic quantization, row spilled to global workspace.
}

// HardwareProfile holds the constants that differ between hardware generations. One planner
// serves all generations, parametrized by a profile.
type HardwareProfile struct {
	Name string

	// DefaultCoreCount and DefaultScratchBytes describe the reference part of this generation,
	// used when a configuration doesn't say otherwise.
	DefaultCoreCount    int64
	DefaultScratchBytes int64

	// ReservedScratchBytes is kept aside in scratch for the kernel's own use.
	ReservedScratchBytes int64

	// BlockSize is the scratch alignment granularity in 4-byte elements.
	BlockSize int64

	// SingleCoreMinUnits is the smallest amount of work worth giving one core in the per-tensor
	// template. Tensors of at most that many elements run on one core.
	SingleCoreMinUnits int64

	// ColumnTileAlign is the granularity of column tiles when the last axis is split across cores.
	ColumnTileAlign int64

	// BaseWorkspaceBytes is the global workspace every launch requests.
	BaseWorkspaceBytes uint64

	Coexistent CoexistentCounts

	// CarriesRoundMode is set for generations whose kernel reads the round mode from the descriptor.
	CarriesRoundMode bool
}

const mib = 1024 * 1024

var (
	// LegacyProfile is the previous hardware generation.
	LegacyProfile = HardwareProfile{
		Name:                 "legacy",
		DefaultCoreCount:     48,
		DefaultScratchBytes:  196608,
		ReservedScratchBytes: 8 * 1024,
		BlockSize:            8,
		SingleCoreMinUnits:   128,
		ColumnTileAlign:      128,
		BaseWorkspaceBytes:   16 * mib,
		Coexistent: CoexistentCounts{
			PerTensor:        4,
			PerChannel:       5,
			DynamicNormal:    6,
			DynamicWorkspace: 7,
		},
	}

	// RegbaseProfile is the register-based generation: vector registers replace some scratch
	// temporaries but double-buffering is deeper, hence the larger counts.
	RegbaseProfile = HardwareProfile{
		Name:                 "regbase",
		DefaultCoreCount:     64,
		DefaultScratchBytes:  253952,
		ReservedScratchBytes: 8 * 1024,
		BlockSize:            8,
		SingleCoreMinUnits:   128,
		ColumnTileAlign:      128,
		BaseWorkspaceBytes:   16 * mib,
		Coexistent: CoexistentCounts{
			PerTensor:        11,
			PerChannel:       11,
			DynamicNormal:    13,
			DynamicWorkspace: 13,
		},
		CarriesRoundMode: true,
	}
)

// Validate returns an ErrConfig error if any constant of the profile is out of range.
func (p HardwareProfile) Validate() error {
	if p.Name == "" {
		return errors.Wrap(ErrConfig, "hardware profile has no name")
	}
	checks := []struct {
		name  string
		value int64
	}{
		{"DefaultCoreCount", p.DefaultCoreCount},
		{"DefaultScratchBytes", p.DefaultScratchBytes},
		{"BlockSize", p.BlockSize},
		{"ColumnTileAlign", p.ColumnTileAlign},
		{"Coexistent.PerTensor", p.Coexistent.PerTensor},
		{"Coexistent.PerChannel", p.Coexistent.PerChannel},
		{"Coexistent.DynamicNormal", p.Coexistent.DynamicNormal},
		{"Coexistent.DynamicWorkspace", p.Coexistent.DynamicWorkspace},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return errors.Wrapf(ErrConfig, "hardware profile %q: %s must be > 0, got %d", p.Name, c.name, c.value)
		}
	}
	if p.ReservedScratchBytes < 0 || p.SingleCoreMinUnits < 0 {
		return errors.Wrapf(ErrConfig, "hardware profile %q: reserved scratch (%d) and single core minimum (%d) must be >= 0",
			p.Name, p.ReservedScratchBytes, p.SingleCoreMinUnits)
	}
	return nil
}

var (
	profilesMu         sync.Mutex
	registeredProfiles = make(map[string]HardwareProfile)
	firstRegistered    string
)

func init() {
	RegisterProfile(RegbaseProfile)
	RegisterProfile(LegacyProfile)
}

// RegisterProfile makes a profile available by name to LookupProfile and to configuration strings.
// Registering a name again replaces the previous profile.
//
// It panics if the profile is not valid.
func RegisterProfile(p HardwareProfile) {
	if err := p.Validate(); err != nil {
		exceptions.Panicf("tiling.RegisterProfile: %+v", err)
	}
	profilesMu.Lock()
	defer profilesMu.Unlock()
	if len(registeredProfiles) == 0 {
		firstRegistered = p.Name
	}
	registeredProfiles[p.Name] = p
}

// LookupProfile returns the registered profile with the given name.
func LookupProfile(name string) (HardwareProfile, error) {
	profilesMu.Lock()
	defer profilesMu.Unlock()
	p, found := registeredProfiles[name]
	if !found {
		return HardwareProfile{}, errors.Wrapf(ErrConfig, "unknown hardware profile %q, registered profiles are %q",
			name, lockedProfileNames())
	}
	return p, nil
}

// ProfileNames returns the sorted names of the registered profiles.
func ProfileNames() []string {
	profilesMu.Lock()
	defer profilesMu.Unlock()
	return lockedProfileNames()
}

func lockedProfileNames() []string {
	names := make([]string, 0, len(registeredProfiles))
	for name := range registeredProfiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
