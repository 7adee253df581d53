package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/numerics/geom"
	"github.com/phil-mansfield/numerics/io"
	"github.com/phil-mansfield/numerics/math/arrays"
	"github.com/phil-mansfield/numerics/math/interpolate"
)

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var rootsFile, interpolateFile, pathFile, exampleConfig string
	vars := map[string]*string{
		"Roots":         &rootsFile,
		"Interpolate":   &interpolateFile,
		"Path":          &pathFile,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&rootsFile, "Roots", "",
		"Configuration file for [Roots] mode.",
	)
	flag.StringVar(
		&interpolateFile, "Interpolate", "",
		"Configuration file for [Interpolate] mode.",
	)
	flag.StringVar(
		&pathFile, "Path", "",
		"Configuration file for [Path] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. Accepted arguments are 'Roots', " +
			"'Interpolate', and 'Path'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Roots":
		wrap := io.DefaultRootsWrapper()
		err := gcfg.ReadFileInto(wrap, rootsFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Roots

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidDegree() {
			log.Fatal("Invalid/non-existent 'Degree' value.")
		} else if !con.ValidTolerance() {
			log.Fatal("Invalid 'Tolerance' value.")
		}

		fg := setupIO(&con.SharedConfig)
		defer fg.Close()
		rootsMain(con)

	case "Interpolate":
		wrap := io.DefaultInterpolateWrapper()
		err := gcfg.ReadFileInto(wrap, interpolateFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Interpolate

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidMethod() {
			log.Fatalf("Invalid/non-existent 'Method'. The only accepted " +
				"methods are: %s.", strings.Join(io.InterpolateMethods, ", "))
		} else if !con.ValidPoints() {
			log.Fatal("Invalid/non-existent 'Points' value.")
		} else if !con.ValidColumns() {
			log.Fatal("Column indices must be non-negative and distinct.")
		} else if !con.ValidRange() {
			log.Fatal("You must set both 'XMin' and 'XMax' or neither, " +
				"and XMin must be smaller than XMax.")
		} else if !con.ValidSpacing() {
			log.Fatal("Invalid 'Spacing' value.")
		} else if !con.ValidStep() {
			log.Fatal("Invalid 'Step' value.")
		} else if !con.ValidDerivative() {
			log.Fatal("Invalid 'Derivative' value.")
		} else if !con.ValidLanczosWindow() {
			log.Fatal("Invalid 'LanczosWindow' value.")
		}

		if con.Complex && strings.EqualFold(con.Method, "Sinc") {
			log.Fatal("Sinc interpolation of complex samples isn't supported.")
		}

		fg := setupIO(&con.SharedConfig)
		defer fg.Close()
		if con.Complex {
			complexInterpolateMain(con)
		} else {
			interpolateMain(con)
		}

	case "Path":
		wrap := io.DefaultPathWrapper()
		err := gcfg.ReadFileInto(wrap, pathFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Path

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidMethod() {
			log.Fatalf("Invalid/non-existent 'Method'. The only accepted " +
				"methods are: %s.", strings.Join(io.PathMethods, ", "))
		} else if !con.ValidPoints() {
			log.Fatal("Invalid/non-existent 'Points' value.")
		} else if !con.ValidColumns() {
			log.Fatal("Column indices must be non-negative and distinct.")
		} else if !con.ValidBoundary() {
			log.Fatal("Invalid 'Boundary' value. Only Cubic paths take a " +
				"boundary, and it can't be Clamped.")
		}

		fg := setupIO(&con.SharedConfig)
		defer fg.Close()
		pathMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Roots":
			fmt.Println(io.ExampleRootsFile)
		case "Interpolate":
			fmt.Println(io.ExampleInterpolateFile)
		case "Path":
			fmt.Println(io.ExamplePathFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Roots', 'Interpolate', and 'Path'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but numerics " +
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func setupIO(con *io.SharedConfig) *FileGroup {
	fg := &FileGroup{}
	var err error

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}

func createOutput(file string) *os.File {
	log.Printf("Writing to %s", file)
	f, err := os.Create(file)
	if err != nil {
		log.Fatalf("Could not create %s.", file)
	}
	return f
}

func rootsMain(con *io.RootsConfig) {
	polys, err := io.ReadCoefficients(con.Input, con.Degree)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Read %d polynomials from %s.", len(polys), con.Input)

	solver := con.Solver()
	f := createOutput(con.Output)
	defer f.Close()

	failed := 0
	for _, p := range polys {
		rs, err := solver.Solve(p)
		if err != nil {
			failed++
		}
		if werr := io.WriteRoots(f, p, rs, err); werr != nil {
			log.Fatal(werr.Error())
		}
	}

	if failed > 0 {
		log.Printf("%d/%d polynomials were degenerate.", failed, len(polys))
	}
}

func newInterpolator(
	method string, xs, ys []float64, opts []interpolate.Option,
) (interpolate.Interpolator, error) {
	switch strings.ToLower(method) {
	case "linear":
		return interpolate.NewLinear(xs, ys, opts...)
	case "quadratic":
		return interpolate.NewQuadratic(xs, ys, opts...)
	case "cubic":
		return interpolate.NewCubic(xs, ys, opts...)
	case "sinc":
		return interpolate.NewSinc(xs, ys, opts...)
	}
	panic("Impossible")
}

func interpolateMain(con *io.InterpolateConfig) {
	opts, err := con.Options()
	if err != nil {
		log.Fatal(err.Error())
	}

	xs, ys, err := io.ReadSamples(con.Input, con.XColumn, con.YColumn)
	if err != nil {
		log.Fatal(err.Error())
	}
	intr, err := newInterpolator(con.Method, xs, ys, opts)
	if err != nil {
		log.Fatal(err.Error())
	}

	grid, err := con.Grid(intr.XMin(), intr.XMax())
	if err != nil {
		log.Fatal(err.Error())
	}

	var vals []float64
	if con.Derivative == 0 {
		vals, err = intr.EvalAll(grid)
		if err != nil {
			log.Fatal(err.Error())
		}
	} else {
		// Every method other than Sinc is Differentiable, which
		// ValidDerivative has already checked.
		diff := intr.(interpolate.Differentiable)
		vals = make([]float64, len(grid))
		for i, x := range grid {
			vals[i], err = diff.Diff(x, con.Derivative)
			if err != nil {
				log.Fatal(err.Error())
			}
		}
	}

	f := createOutput(con.Output)
	defer f.Close()
	header := []string{fmt.Sprintf(
		"%s interpolation of %s, derivative order %d: x y",
		con.Method, con.Input, con.Derivative,
	)}
	if err := io.WriteTable(f, header, grid, vals); err != nil {
		log.Fatal(err.Error())
	}

	if con.ValidPlotFile() {
		plotInterpolation(con, xs, ys, grid, vals)
	}
}

type complexDifferentiable interface {
	interpolate.ComplexInterpolator
	Diff(x float64, order int) (complex128, error)
}

func newComplexInterpolator(
	method string, xs []float64, ys []complex128, opts []interpolate.Option,
) (complexDifferentiable, error) {
	switch strings.ToLower(method) {
	case "linear":
		return interpolate.NewComplexLinear(xs, ys, opts...)
	case "quadratic":
		return interpolate.NewComplexQuadratic(xs, ys, opts...)
	case "cubic":
		return interpolate.NewComplexCubic(xs, ys, opts...)
	}
	panic("Impossible")
}

func complexInterpolateMain(con *io.InterpolateConfig) {
	opts, err := con.Options()
	if err != nil {
		log.Fatal(err.Error())
	}

	xs, ys, err := io.ReadComplexSamples(
		con.Input, con.XColumn, con.YColumn, con.ImagColumn,
	)
	if err != nil {
		log.Fatal(err.Error())
	}
	intr, err := newComplexInterpolator(con.Method, xs, ys, opts)
	if err != nil {
		log.Fatal(err.Error())
	}

	grid, err := con.Grid(intr.XMin(), intr.XMax())
	if err != nil {
		log.Fatal(err.Error())
	}

	re, im := make([]float64, len(grid)), make([]float64, len(grid))
	for i, x := range grid {
		z, err := intr.Diff(x, con.Derivative)
		if err != nil {
			log.Fatal(err.Error())
		}
		re[i], im[i] = real(z), imag(z)
	}

	f := createOutput(con.Output)
	defer f.Close()
	header := []string{fmt.Sprintf(
		"%s interpolation of %s, derivative order %d: x re(y) im(y)",
		con.Method, con.Input, con.Derivative,
	)}
	if err := io.WriteTable(f, header, grid, re, im); err != nil {
		log.Fatal(err.Error())
	}
}

func newPath(con *io.PathConfig) (
	ts []float64, pts []geom.Vec, path interface {
		EvalAll(ts []float64, out ...[]geom.Vec) ([]geom.Vec, error)
		Velocity(t float64) (geom.Vec, error)
		TMin() float64
		TMax() float64
	},
) {
	posCols := [3]int{con.XColumn, con.YColumn, con.ZColumn}
	ts, pts, err := io.ReadPath(con.Input, con.TColumn, posCols)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch strings.ToLower(con.Method) {
	case "linear":
		sp, err := geom.NewLinearSpline3D(ts, pts)
		if err != nil {
			log.Fatal(err.Error())
		}
		return ts, pts, sp
	case "cubic":
		sp, err := geom.NewCubicSpline3D(ts, pts, con.Options()...)
		if err != nil {
			log.Fatal(err.Error())
		}
		return ts, pts, sp
	case "hermite":
		velCols := [3]int{con.VXColumn, con.VYColumn, con.VZColumn}
		vel, err := io.ReadVecs(con.Input, velCols)
		if err != nil {
			log.Fatal(err.Error())
		}
		sp, err := geom.NewHermiteSpline3D(ts, pts, vel)
		if err != nil {
			log.Fatal(err.Error())
		}
		return ts, pts, sp
	}
	panic("Impossible")
}

func pathMain(con *io.PathConfig) {
	_, pts, path := newPath(con)

	grid, err := arrays.Linspace(path.TMin(), path.TMax(), con.Points)
	if err != nil {
		log.Fatal(err.Error())
	}
	pos, err := path.EvalAll(grid)
	if err != nil {
		log.Fatal(err.Error())
	}

	cols := [][]geom.Vec{pos}
	if con.Velocity {
		vel := make([]geom.Vec, len(grid))
		for i, t := range grid {
			vel[i], err = path.Velocity(t)
			if err != nil {
				log.Fatal(err.Error())
			}
		}
		cols = append(cols, vel)
	}

	if con.Rotated() {
		m := con.Rotation()
		for _, vs := range cols {
			geom.RotateAll(vs, m)
		}
		geom.RotateAll(pts, m)
	}

	f := createOutput(con.Output)
	defer f.Close()
	header := []string{fmt.Sprintf("%s path through %s: t x y z",
		con.Method, con.Input)}
	if con.Velocity {
		header[0] += " vx vy vz"
	}
	if err := io.WriteVecs(f, header, grid, cols...); err != nil {
		log.Fatal(err.Error())
	}

	if con.ValidPlotFile() {
		plotPath(con, pts, pos)
	}
}

func plotInterpolation(
	con *io.InterpolateConfig, xs, ys, grid, vals []float64,
) {
	plt.Figure()
	if con.Derivative == 0 {
		plt.Plot(xs, ys, "ok")
	}
	plt.Plot(grid, vals, plt.LW(2), plt.C("r"))
	plt.Title(fmt.Sprintf("%s interpolation", con.Method))
	plt.XLabel(`$x$`, plt.FontSize(16))
	if con.Derivative == 0 {
		plt.YLabel(`$y$`, plt.FontSize(16))
	} else {
		plt.YLabel(fmt.Sprintf(`$d^{%d}y/dx^{%d}$`,
			con.Derivative, con.Derivative), plt.FontSize(16))
	}
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(con.PlotFile)
	plt.Execute()
}

func plotPath(con *io.PathConfig, pts, pos []geom.Vec) {
	knotXs, knotYs, _ := geom.Components(pts)
	xs, ys, _ := geom.Components(pos)

	plt.Figure(plt.FigSize(8, 8))
	plt.Plot(knotXs, knotYs, "ok")
	plt.Plot(xs, ys, plt.LW(2), plt.C("r"))
	plt.Title(fmt.Sprintf("%s path", con.Method))
	plt.XLabel(`$X$`, plt.FontSize(16))
	plt.YLabel(`$Y$`, plt.FontSize(16))
	plt.SaveFig(con.PlotFile)
	plt.Execute()
}
