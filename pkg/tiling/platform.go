// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiling

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// PlatformLimits are the resources available to one launch: the number of compute cores and the
// usable scratch bytes per core (already reduced by the profile's reserved overhead).
type PlatformLimits struct {
	CoreCount    int64
	ScratchBytes int64
}

// Validate returns an ErrConfig error if the limits can't be planned for.
func (l PlatformLimits) Validate() error {
	if l.CoreCount <= 0 {
		return errors.Wrapf(ErrConfig, "core count must be > 0, got %d", l.CoreCount)
	}
	if l.ScratchBytes <= 0 {
		return errors.Wrapf(ErrConfig, "usable scratch must be > 0 bytes, got %d", l.ScratchBytes)
	}
	return nil
}

// Platform is a hardware profile plus the limits of the actual part being planned for.
type Platform struct {
	Profile HardwareProfile
	Limits  PlatformLimits
}

// NewPlatform returns the platform for the profile, with the given core count and raw scratch
// size (as reported by the hardware, before the reserved overhead is taken out).
func NewPlatform(profile HardwareProfile, coreCount, rawScratchBytes int64) (Platform, error) {
	if err := profile.Validate(); err != nil {
		return Platform{}, err
	}
	if rawScratchBytes <= 0 {
		return Platform{}, errors.Wrapf(ErrConfig, "scratch size must be > 0 bytes, got %d", rawScratchBytes)
	}
	p := Platform{
		Profile: profile,
		Limits: PlatformLimits{
			CoreCount:    coreCount,
			ScratchBytes: rawScratchBytes - profile.ReservedScratchBytes,
		},
	}
	if err := p.Limits.Validate(); err != nil {
		return Platform{}, errors.WithMessagef(err, "platform %q (raw scratch %d bytes, %d reserved)",
			profile.Name, rawScratchBytes, profile.ReservedScratchBytes)
	}
	return p, nil
}

// TILEPLAN_PLATFORM is the environment variable with the default platform configuration.
// See NewPlatformFromConfig for its format.
const TILEPLAN_PLATFORM = "TILEPLAN_PLATFORM"

// DefaultPlatformConfig is used by DefaultPlatform when TILEPLAN_PLATFORM is not set.
var DefaultPlatformConfig string

// DefaultPlatform returns the platform configured by:
//
//  1. The environment variable TILEPLAN_PLATFORM, if set.
//  2. DefaultPlatformConfig, if not empty.
//  3. The first registered profile, with its default limits.
func DefaultPlatform() (Platform, error) {
	if config, found := os.LookupEnv(TILEPLAN_PLATFORM); found {
		return NewPlatformFromConfig(config)
	}
	return NewPlatformFromConfig(DefaultPlatformConfig)
}

// NewPlatformFromConfig parses a platform configuration of the form "<profile>:<key>=<value>,...".
//
// The profile name is optional (the first registered profile is used), and so are the options.
// Options:
//
//   - cores: number of compute cores, defaults to the profile's DefaultCoreCount.
//   - scratch: raw scratch bytes per core, defaults to the profile's DefaultScratchBytes.
//   - reserved: overrides the profile's ReservedScratchBytes.
//
// Examples: "regbase", "legacy:cores=40", "regbase:cores=32,scratch=196608".
func NewPlatformFromConfig(config string) (Platform, error) {
	profileName, options := config, ""
	if idx := strings.Index(config, ":"); idx != -1 {
		profileName, options = config[:idx], config[idx+1:]
	}
	if profileName == "" {
		profilesMu.Lock()
		profileName = firstRegistered
		profilesMu.Unlock()
	}
	profile, err := LookupProfile(profileName)
	if err != nil {
		return Platform{}, errors.WithMessagef(err, "platform configuration %q", config)
	}

	coreCount, rawScratch := profile.DefaultCoreCount, profile.DefaultScratchBytes
	for _, option := range strings.Split(options, ",") {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}
		key, valueStr, found := strings.Cut(option, "=")
		if !found {
			return Platform{}, errors.Wrapf(ErrConfig, "platform configuration %q: option %q is not of the form key=value", config, option)
		}
		value, err := strconv.ParseInt(strings.TrimSpace(valueStr), 10, 64)
		if err != nil {
			return Platform{}, errors.Wrapf(ErrConfig, "platform configuration %q: option %q: %v", config, option, err)
		}
		switch strings.TrimSpace(key) {
		case "cores":
			coreCount = value
		case "scratch":
			rawScratch = value
		case "reserved":
			profile.ReservedScratchBytes = value
		default:
			return Platform{}, errors.Wrapf(ErrConfig, "platform configuration %q: unknown option %q (valid: cores, scratch, reserved)", config, key)
		}
	}
	p, err := NewPlatform(profile, coreCount, rawScratch)
	if err != nil {
		return Platform{}, err
	}
	klog.V(1).Infof("tiling: platform %s", p)
	return p, nil
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	return fmt.Sprintf("%s:cores=%d,scratch=%d(usable)", p.Profile.Name, p.Limits.CoreCount, p.Limits.ScratchBytes)
}
