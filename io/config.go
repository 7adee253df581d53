package io

import (
	"fmt"
	"math"
	"strings"

	"github.com/phil-mansfield/numerics/geom"
	"github.com/phil-mansfield/numerics/math/arrays"
	"github.com/phil-mansfield/numerics/math/compare"
	"github.com/phil-mansfield/numerics/math/interpolate"
	"github.com/phil-mansfield/numerics/math/mat"
	"github.com/phil-mansfield/numerics/math/roots"
)

const (
	ExampleRootsFile = `[Roots]

#######################
# Required Parameters #
#######################

# Whitespace-separated table of polynomial coefficients, one polynomial per
# line, highest power first.
Input = path/to/coefficients.txt
# File which roots will be written to.
Output = path/to/roots.txt

# Degree of every polynomial in Input. Must be between 1 and 4.
Degree = 3

#######################
# Optional Parameters #
#######################

# Relative tolerance used to decide whether a coefficient, discriminant, or
# imaginary part is zero.
# Tolerance = 1e-9

# Skips the Newton refinement of real roots.
# NoPolish = false

# LogFile = log.out
# ProfileFile = prof.out`

	ExampleInterpolateFile = `[Interpolate]

#######################
# Required Parameters #
#######################

# Whitespace-separated table containing the samples.
Input = path/to/samples.txt
# File which the resampled table will be written to.
Output = path/to/resampled.txt

# Method can be set to one of:
# [ Linear | Quadratic | Cubic | Sinc ]
Method = Cubic

# Number of points to evaluate the interpolator at.
Points = 100

#######################
# Optional Parameters #
#######################

# Columns of Input holding x and y. If Complex is set, YColumn holds the real
# part and ImagColumn holds the imaginary part.
# XColumn = 0
# YColumn = 1
# Complex = false
# ImagColumn = 2

# End conditions. Quadratic accepts LinearFirst, LinearLast, and Local.
# Cubic accepts Natural, Parabolic, NotAKnot, and Clamped. Clamped uses
# StartSlope and EndSlope.
# Boundary = Natural
# StartSlope = 0
# EndSlope = 0

# Range of the output grid. Defaults to the range of the samples. Points
# outside of the samples require Extrapolate.
# XMin = 0
# XMax = 1
# Extrapolate = false

# Spacing of the output grid, either Linear or Log. Log needs a positive
# range. Setting Step to a positive value overrides Points and Spacing with a
# grid of fixed step size starting at XMin.
# Spacing = Linear
# Step = 0

# Order of the derivative to write out. Not supported by Sinc.
# Derivative = 0

# Half-width of the Lanczos window used by Sinc. Zero is a rectangular window.
# LanczosWindow = 0

# Saves a figure of the samples and the interpolator. Needs python with
# matplotlib installed.
# PlotFile = plot.png

# LogFile = log.out
# ProfileFile = prof.out`

	ExamplePathFile = `[Path]

#######################
# Required Parameters #
#######################

# Whitespace-separated table containing t, x, y, and z columns.
Input = path/to/path.txt
# File which the resampled path will be written to.
Output = path/to/resampled_path.txt

# Method can be set to one of:
# [ Linear | Cubic | Hermite ]
# Hermite needs velocity columns in Input.
Method = Cubic

# Number of evenly spaced parameter values to evaluate the path at.
Points = 100

#######################
# Optional Parameters #
#######################

# TColumn = 0
# XColumn = 1
# YColumn = 2
# ZColumn = 3
# VXColumn = 4
# VYColumn = 5
# VZColumn = 6

# Cubic end conditions: Natural, Parabolic, or NotAKnot.
# Boundary = Natural

# Euler angles, in degrees, used to rotate the output path.
# Phi = 0
# Theta = 0
# Psi = 0
# Apply the inverse rotation instead, taking a path from the rotated frame
# back to the original one.
# Inverse = false

# Also write the velocity of the path at every point.
# Velocity = false

# Saves a figure of the x-y projection of the path.
# PlotFile = path.png

# LogFile = log.out
# ProfileFile = prof.out`
)

var (
	InterpolateMethods = []string{"Linear", "Quadratic", "Cubic", "Sinc"}
	PathMethods        = []string{"Linear", "Cubic", "Hermite"}
)

type SharedConfig struct {
	// Required
	Input, Output string
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type RootsConfig struct {
	SharedConfig
	// Required
	Degree int

	// Optional
	Tolerance float64
	NoPolish  bool
}

func DefaultRootsWrapper() *RootsWrapper {
	con := RootsConfig{}
	con.Tolerance = float64(compare.DefaultTolerance)
	return &RootsWrapper{con}
}

func (con *RootsConfig) ValidDegree() bool {
	return con.Degree >= 1 && con.Degree <= 4
}
func (con *RootsConfig) ValidTolerance() bool {
	return compare.Tolerance(con.Tolerance).Valid()
}

// Solver returns the root solver described by the configuration.
func (con *RootsConfig) Solver() roots.Solver {
	opts := []roots.Option{roots.WithTolerance(con.Tolerance)}
	if con.NoPolish {
		opts = append(opts, roots.WithoutPolish())
	}
	return roots.NewSolver(opts...)
}

type InterpolateConfig struct {
	SharedConfig
	// Required
	Method string
	Points int

	// Optional
	XColumn, YColumn, ImagColumn int
	Complex                      bool
	Boundary                     string
	StartSlope, EndSlope         float64
	XMin, XMax                   float64
	Extrapolate                  bool
	Spacing                      string
	Step                         float64
	Derivative                   int
	LanczosWindow                int
	PlotFile                     string
}

func DefaultInterpolateWrapper() *InterpolateWrapper {
	con := InterpolateConfig{}
	con.XColumn, con.YColumn, con.ImagColumn = 0, 1, 2
	con.XMin, con.XMax = math.NaN(), math.NaN()
	return &InterpolateWrapper{con}
}

func (con *InterpolateConfig) ValidMethod() bool {
	return validName(con.Method, InterpolateMethods)
}
func (con *InterpolateConfig) ValidPoints() bool {
	return con.Points >= 2 || con.Step > 0
}
func (con *InterpolateConfig) ValidSpacing() bool {
	return con.Spacing == "" || validName(con.Spacing, []string{"Linear", "Log"})
}
func (con *InterpolateConfig) ValidStep() bool {
	return con.Step >= 0
}
func (con *InterpolateConfig) ValidColumns() bool {
	cols := []int{con.XColumn, con.YColumn}
	if con.Complex {
		cols = append(cols, con.ImagColumn)
	}
	return validColumns(cols...)
}
func (con *InterpolateConfig) ValidDerivative() bool {
	if strings.EqualFold(con.Method, "Sinc") {
		return con.Derivative == 0
	}
	return con.Derivative >= 0
}
func (con *InterpolateConfig) ValidLanczosWindow() bool {
	return con.LanczosWindow >= 0
}
func (con *InterpolateConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}

// ValidRange returns true if XMin and XMax are either both unset or describe
// a non-empty interval.
func (con *InterpolateConfig) ValidRange() bool {
	minSet, maxSet := !math.IsNaN(con.XMin), !math.IsNaN(con.XMax)
	if minSet != maxSet {
		return false
	}
	return !minSet || con.XMin < con.XMax
}

// HasRange returns true if the output grid range was set explicitly.
func (con *InterpolateConfig) HasRange() bool {
	return !math.IsNaN(con.XMin) && !math.IsNaN(con.XMax)
}

// Grid returns the points which the interpolator is evaluated at, given the
// range of the samples. XMin and XMax replace lo and hi if they are set.
func (con *InterpolateConfig) Grid(lo, hi float64) ([]float64, error) {
	if con.HasRange() {
		lo, hi = con.XMin, con.XMax
	}

	switch {
	case con.Step > 0:
		return arrays.Regspace(lo, hi, con.Step)
	case strings.EqualFold(con.Spacing, "Log"):
		if lo <= 0 {
			return nil, fmt.Errorf(
				"Log spacing needs a positive range, but XMin = %g", lo,
			)
		}
		xs, err := arrays.Logspace(math.Log10(lo), math.Log10(hi), con.Points, 10)
		if err != nil {
			return nil, err
		}
		// 10^log10(x) can round past the sample range.
		xs[0], xs[len(xs)-1] = lo, hi
		return xs, nil
	default:
		return arrays.Linspace(lo, hi, con.Points)
	}
}

// Options converts the configuration into interpolator options. An error is
// returned if Boundary is not understood by Method.
func (con *InterpolateConfig) Options() ([]interpolate.Option, error) {
	opts := []interpolate.Option{}
	if con.Extrapolate {
		opts = append(opts, interpolate.WithExtrapolation())
	}

	switch strings.ToLower(con.Method) {
	case "quadratic":
		if con.Boundary == "" {
			break
		}
		b, err := interpolate.ParseQuadraticBoundary(con.Boundary)
		if err != nil {
			return nil, err
		}
		opts = append(opts, interpolate.WithQuadraticBoundary(b))
	case "cubic":
		if con.Boundary == "" {
			break
		}
		b, err := interpolate.ParseCubicBoundary(con.Boundary)
		if err != nil {
			return nil, err
		}
		if b == interpolate.Clamped {
			opts = append(opts, interpolate.WithEndSlopes(
				con.StartSlope, con.EndSlope,
			))
		} else {
			opts = append(opts, interpolate.WithCubicBoundary(b))
		}
	case "sinc":
		opts = append(opts, interpolate.WithLanczos(con.LanczosWindow))
	default:
		if con.Boundary != "" {
			return nil, fmt.Errorf(
				"%w: Method '%s' does not take a Boundary",
				interpolate.ErrOption, con.Method,
			)
		}
	}
	return opts, nil
}

type PathConfig struct {
	SharedConfig
	// Required
	Method string
	Points int

	// Optional
	TColumn, XColumn, YColumn, ZColumn int
	VXColumn, VYColumn, VZColumn       int
	Boundary                           string
	Phi, Theta, Psi                    float64
	Inverse                            bool
	Velocity                           bool
	PlotFile                           string
}

func DefaultPathWrapper() *PathWrapper {
	con := PathConfig{}
	con.TColumn, con.XColumn, con.YColumn, con.ZColumn = 0, 1, 2, 3
	con.VXColumn, con.VYColumn, con.VZColumn = 4, 5, 6
	return &PathWrapper{con}
}

func (con *PathConfig) ValidMethod() bool {
	return validName(con.Method, PathMethods)
}
func (con *PathConfig) ValidPoints() bool {
	return con.Points >= 2
}
func (con *PathConfig) ValidColumns() bool {
	cols := []int{con.TColumn, con.XColumn, con.YColumn, con.ZColumn}
	if strings.EqualFold(con.Method, "Hermite") {
		cols = append(cols, con.VXColumn, con.VYColumn, con.VZColumn)
	}
	return validColumns(cols...)
}
func (con *PathConfig) ValidBoundary() bool {
	if con.Boundary == "" {
		return true
	} else if !strings.EqualFold(con.Method, "Cubic") {
		return false
	}
	b, err := interpolate.ParseCubicBoundary(con.Boundary)
	return err == nil && b != interpolate.Clamped
}
func (con *PathConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}

// Rotated returns true if any of the Euler angles are non-zero.
func (con *PathConfig) Rotated() bool {
	return con.Phi != 0 || con.Theta != 0 || con.Psi != 0
}

// Angles returns the Euler angles in radians.
func (con *PathConfig) Angles() (phi, theta, psi float64) {
	return con.Phi * math.Pi / 180, con.Theta * math.Pi / 180,
		con.Psi * math.Pi / 180
}

// Rotation returns the matrix applied to the output path. It should only be
// called if Rotated is true.
func (con *PathConfig) Rotation() *mat.Matrix {
	if con.Inverse {
		return geom.InverseEulerMatrix(con.Angles())
	}
	return geom.EulerMatrix(con.Angles())
}

// Options converts the configuration into interpolator options. It should
// only be called after ValidBoundary.
func (con *PathConfig) Options() []interpolate.Option {
	if con.Boundary == "" {
		return nil
	}
	b, _ := interpolate.ParseCubicBoundary(con.Boundary)
	return []interpolate.Option{interpolate.WithCubicBoundary(b)}
}

type RootsWrapper struct {
	Roots RootsConfig
}

type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

type PathWrapper struct {
	Path PathConfig
}

func validName(name string, names []string) bool {
	for _, valid := range names {
		if strings.EqualFold(name, valid) {
			return true
		}
	}
	return false
}

func validColumns(cols ...int) bool {
	for i := range cols {
		if cols[i] < 0 {
			return false
		}
		for j := 0; j < i; j++ {
			if cols[i] == cols[j] {
				return false
			}
		}
	}
	return true
}
