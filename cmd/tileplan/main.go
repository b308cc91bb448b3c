// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// tileplan plans the launch of the GELU+quantize kernel for a tensor shape and prints the tiling
// descriptor, or sweeps a grid of shapes checking every plan.
//
// Examples:
//
//	tileplan -shape=100,1024,69 -scale=perchannel
//	tileplan -platform=legacy:cores=40 -mode=dynamic -dtype=bfloat16 -shape=8,65536
//	tileplan -sweep
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/tileplan/pkg/tiling"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagPlatform = flag.String("platform", "",
		fmt.Sprintf("Platform configuration, of the form <profile>[:cores=N,scratch=BYTES,reserved=BYTES]. "+
			"If empty it uses $%s, or the default profile.", tiling.TILEPLAN_PLATFORM))
	flagShape      = flag.String("shape", "1,1024,6912", "Comma-separated dimensions of the input tensor.")
	flagDType      = flag.String("dtype", "float32", "DType of the input tensor: float32, float16 or bfloat16.")
	flagScaleDType = flag.String("scale_dtype", "float32", "DType of the scale input, empty if there is no scale.")
	flagTilingData = flag.Int("tiling_data", 1024, "Capacity in bytes of the tiling data buffer.")
	flagHex        = flag.Bool("hex", false, "Dump the serialized tiling data in hexadecimal.")
	flagSweep      = flag.Bool("sweep", false, "Plan a grid of shapes and quantization configurations, and "+
		"check every plan. Prints a summary of the templates selected and any failure.")
	flagParallelism = flag.Int("parallelism", 0, "Number of shapes planned in parallel by -sweep. "+
		"Defaults to the number of CPUs.")

	flagMode        = tiling.QuantStatic
	flagScale       = tiling.ScalePerChannel
	flagOffset      = tiling.ScaleEmpty
	flagDst         = tiling.DstInt8
	flagRound       = tiling.RoundUnset
	flagApproximate = tiling.ApproximateNone
)

func init() {
	flag.TextVar(&flagMode, "mode", flagMode, fmt.Sprintf("Quantization mode, one of %q.", tiling.QuantModeStrings()))
	flag.TextVar(&flagScale, "scale", flagScale, fmt.Sprintf("Shape of the scale input, one of %q.", tiling.ScaleShapeKindStrings()))
	flag.TextVar(&flagOffset, "offset", flagOffset, fmt.Sprintf("Shape of the offset input, one of %q.", tiling.ScaleShapeKindStrings()))
	flag.TextVar(&flagDst, "dst", flagDst, fmt.Sprintf("Quantized output dtype, one of %q.", tiling.DstTypeStrings()))
	flag.TextVar(&flagRound, "round", flagRound, fmt.Sprintf("Round mode, one of %q. Unset uses the default for -dst.", tiling.RoundModeStrings()))
	flag.TextVar(&flagApproximate, "approximate", flagApproximate, fmt.Sprintf("GELU approximation, one of %q.", tiling.ApproximateStrings()))
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if flag.NArg() > 0 {
		klog.Errorf("Unexpected arguments %q. See 'tileplan -help'.", flag.Args())
		os.Exit(1)
	}

	platform := must.M1(loadPlatform(*flagPlatform))
	if *flagSweep {
		if !sweep(platform, *flagParallelism) {
			os.Exit(1)
		}
		return
	}

	dims, err := parseDims(*flagShape)
	if err != nil {
		klog.Exitf("Invalid -shape: %+v", err)
	}
	quant := tiling.QuantConfig{
		Mode:        flagMode,
		ScaleKind:   flagScale,
		OffsetKind:  flagOffset,
		InputDType:  must.M1(parseDType(*flagDType)),
		ScaleDType:  must.M1(parseDType(*flagScaleDType)),
		DstType:     flagDst,
		RoundMode:   flagRound,
		Approximate: flagApproximate,
	}
	if quant.InputDType == dtypes.InvalidDType {
		klog.Exitf("-dtype must be given")
	}
	launch, err := tiling.Plan(dims, quant, platform, make([]byte, *flagTilingData))
	if err != nil {
		klog.Exitf("Failed to plan shape %v: %+v", dims, err)
	}
	report(platform, dims, launch)
}

func loadPlatform(config string) (tiling.Platform, error) {
	if config == "" {
		return tiling.DefaultPlatform()
	}
	return tiling.NewPlatformFromConfig(config)
}

func parseDims(s string) ([]int64, error) {
	var dims []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dim, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "dimension %q", part)
		}
		dims = append(dims, dim)
	}
	return dims, nil
}

var supportedDTypes = []dtypes.DType{dtypes.Float32, dtypes.Float16, dtypes.BFloat16}

// parseDType returns dtypes.InvalidDType for an empty name.
func parseDType(name string) (dtypes.DType, error) {
	if name == "" {
		return dtypes.InvalidDType, nil
	}
	for _, dtype := range supportedDTypes {
		if strings.EqualFold(dtype.String(), name) {
			return dtype, nil
		}
	}
	return dtypes.InvalidDType, errors.Errorf("unsupported dtype %q, valid values are %v", name, supportedDTypes)
}

func report(platform tiling.Platform, dims []int64, launch tiling.Launch) {
	d := launch.Descriptor

	launchReport := newFieldsReport("Launch")
	launchReport.field("platform", platform.Profile.Name)
	launchReport.field("cores", humanize.Comma(platform.Limits.CoreCount))
	launchReport.field("usable scratch", humanize.IBytes(uint64(platform.Limits.ScratchBytes)))
	launchReport.field("shape", fmt.Sprintf("%v", dims))
	launchReport.field("tiling key", fmt.Sprintf("%d", launch.TilingKey))
	launchReport.field("template", d.Template.String())
	launchReport.field("block dim", humanize.Comma(launch.BlockDim))
	launchReport.field("workspace", humanize.IBytes(launch.WorkspaceBytes))
	launchReport.field("tiling data", humanize.IBytes(uint64(len(launch.TilingData))))
	fmt.Println(launchReport)

	descReport := newFieldsReport("Descriptor")
	descReport.field("usedCoreCount", humanize.Comma(d.UsedCoreCount))
	descReport.field("normalCorePerCoreCount", humanize.Comma(d.NormalCorePerCoreCount))
	descReport.field("tailCorePerCoreCount", humanize.Comma(d.TailCorePerCoreCount))
	descReport.field("coexistentBufferCount", humanize.Comma(d.CoexistentBufferCount))
	descReport.field("coexistentBufferElementCapacity", humanize.Comma(d.CoexistentBufferElementCapacity))
	if d.Template == tiling.TemplateRowColPerformance {
		descReport.field("rows (inner, outer, tail)", fmt.Sprintf("%d, %d, %d", d.RowInner, d.RowOuter, d.RowTail))
		descReport.field("cols (inner, outer, tail)", fmt.Sprintf("%d, %d, %d", d.ColInner, d.ColOuter, d.ColTail))
	}
	descReport.field("lastAxisLen", fmt.Sprintf("%d (aligned %d)", d.LastAxisLen, d.LastAxisLenAligned))
	descReport.field("quantMode", d.QuantMode.String())
	descReport.field("approximate", d.Approximate.String())
	descReport.field("scale / offset", fmt.Sprintf("%s / %s", d.ScaleKind, d.OffsetKind))
	descReport.field("dstType", fmt.Sprintf("%s (%d)", d.DstType, int(d.DstType)))
	descReport.field("roundMode", d.RoundMode.String())
	fmt.Println(descReport)

	if *flagHex {
		fmt.Println(titleStyle.Render("Tiling data"))
		fmt.Print(hex.Dump(launch.TilingData))
	}
}
