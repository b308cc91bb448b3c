// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tileplan/internal/workerspool"
	"github.com/gomlx/tileplan/pkg/tiling"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// Grid of the sweep. Values are picked around the core counts and block and scratch boundaries
// of the registered profiles.
var (
	sweepLeading = []int64{0, 1, 2, 3, 7, 31, 32, 33, 47, 48, 49, 63, 64, 65, 100, 127, 128, 1000, 1024, 4096, 102400}
	sweepLast    = []int64{0, 1, 7, 8, 9, 69, 127, 128, 129, 1000, 4096, 5584, 5585, 6912, 8000, 65536}
	sweepDTypes  = [][2]dtypes.DType{
		{dtypes.Float32, dtypes.Float32},
		{dtypes.Float16, dtypes.Float16},
		{dtypes.BFloat16, dtypes.BFloat16},
		{dtypes.Float16, dtypes.Float32},
		{dtypes.BFloat16, dtypes.InvalidDType},
	}
	sweepQuant = []struct {
		mode  tiling.QuantMode
		scale tiling.ScaleShapeKind
	}{
		{tiling.QuantStatic, tiling.ScaleScalar},
		{tiling.QuantStatic, tiling.ScalePerChannel},
		{tiling.QuantStatic, tiling.ScaleEmpty},
		{tiling.QuantDynamic, tiling.ScalePerChannel},
		{tiling.QuantDynamic, tiling.ScaleEmpty},
	}
)

type sweepCase struct {
	dims  []int64
	quant tiling.QuantConfig
}

type sweepResult struct {
	launch tiling.Launch
	err    error
}

func sweepCases() []sweepCase {
	var cases []sweepCase
	for _, leading := range sweepLeading {
		for _, last := range sweepLast {
			for _, dt := range sweepDTypes {
				for _, q := range sweepQuant {
					cases = append(cases, sweepCase{
						dims: []int64{leading, last},
						quant: tiling.QuantConfig{
							Mode:       q.mode,
							ScaleKind:  q.scale,
							OffsetKind: q.scale,
							InputDType: dt[0],
							ScaleDType: dt[1],
							DstType:    tiling.DstInt8,
						},
					})
				}
			}
		}
	}
	return cases
}

// planAndCheck plans c, and checks the serialized descriptor reads back as a valid plan.
// Planner panics are reported as errors.
func planAndCheck(platform tiling.Platform, c sweepCase) (result sweepResult) {
	err := exceptions.TryCatch[error](func() {
		result.launch, result.err = tiling.Plan(c.dims, c.quant, platform, make([]byte, tiling.DescriptorWireSize))
	})
	if err != nil {
		result.err = errors.WithMessage(err, "planner panicked")
		return
	}
	if result.err != nil {
		return
	}
	decoded, err := tiling.UnmarshalDescriptor(result.launch.TilingData)
	if err != nil {
		result.err = err
		return
	}
	shape, err := tiling.DeriveShape(c.dims, platform.Profile.BlockSize)
	if err != nil {
		result.err = err
		return
	}
	if err = decoded.Validate(shape, platform.Limits.CoreCount); err != nil {
		result.err = errors.WithMessage(err, "decoded descriptor")
	}
	return
}

// sweep plans every case of the grid in parallel, prints a summary and returns whether all plans succeeded.
func sweep(platform tiling.Platform, parallelism int) bool {
	cases := sweepCases()
	results := make([]sweepResult, len(cases))

	output := termenv.NewOutput(os.Stderr)
	colors := output.Profile != termenv.Ascii
	bar := progressbar.NewOptions(len(cases),
		progressbar.OptionSetDescription(fmt.Sprintf("Planning on %s", platform)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionUseANSICodes(colors),
		progressbar.OptionEnableColorCodes(colors),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("plans"),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)
	output.HideCursor()
	pool := workerspool.New()
	if parallelism > 0 {
		pool.WithMaxParallelism(parallelism)
	}
	pool.ForEach(len(cases), func(ii int) {
		results[ii] = planAndCheck(platform, cases[ii])
		_ = bar.Add(1)
	})
	_ = bar.Finish()
	output.ShowCursor()

	type templateStats struct {
		count, cores int64
		keys         map[uint64]bool
	}
	stats := make(map[tiling.TemplateMode]*templateStats)
	failures := newTableReport("", column{"Shape", lipgloss.Left}, column{"Quantization", lipgloss.Left},
		column{"Error", lipgloss.Left})
	var numFailures int
	for ii, r := range results {
		c := cases[ii]
		if r.err != nil {
			numFailures++
			failures.add(true, fmt.Sprintf("%v", c.dims),
				fmt.Sprintf("%s/%s %s+%s", c.quant.Mode, c.quant.ScaleKind, c.quant.InputDType, c.quant.ScaleDType),
				r.err.Error())
			continue
		}
		template := r.launch.Descriptor.Template
		s, found := stats[template]
		if !found {
			s = &templateStats{keys: make(map[uint64]bool)}
			stats[template] = s
		}
		s.count++
		s.cores += r.launch.BlockDim
		s.keys[r.launch.TilingKey] = true
	}

	summary := newTableReport(fmt.Sprintf("Sweep of %s plans on %s", humanize.Comma(int64(len(cases))), platform),
		column{"Template", lipgloss.Left}, column{"Plans", lipgloss.Right},
		column{"Mean cores", lipgloss.Right}, column{"Tiling keys", lipgloss.Left})
	for _, template := range tiling.TemplateModeValues() {
		s, found := stats[template]
		if !found {
			continue
		}
		keys := slices.Sorted(maps.Keys(s.keys))
		summary.add(false, template.String(), humanize.Comma(s.count),
			fmt.Sprintf("%.1f", float64(s.cores)/float64(s.count)), fmt.Sprintf("%v", keys))
	}
	fmt.Println(summary)

	if numFailures > 0 {
		failures.title = fmt.Sprintf("%s failures", humanize.Comma(int64(numFailures)))
		fmt.Println(failures)
		return false
	}
	return true
}
