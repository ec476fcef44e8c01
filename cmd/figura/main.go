// Package main provides the figura binary entry point.
// Figura resolves geometric shape families from partial property input:
// enter any sufficient subset of a family's editable properties and the
// resolver derives the rest, rejecting infeasible combinations.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/quantgeom/figura/detect"
	"github.com/quantgeom/figura/planar"
	"github.com/quantgeom/figura/quadri"
	"github.com/quantgeom/figura/render"
	"github.com/quantgeom/figura/shape"
	"github.com/quantgeom/figura/solid"
	"github.com/quantgeom/figura/triangle"
)

const (
	Version = "0.1.0"
	appName = "figura"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Geometric property resolver",
		Long: `Figura resolves shape families from partial property input.

Give any sufficient subset of a family's editable properties and the
resolver derives the rest; geometrically impossible combinations are
rejected with the state left untouched.

Families cover planar curves, triangles, quadrilaterals, irregular
polygons and 3D solids (which hand off wireframe meshes).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(solveCmd(), detectCmd(), meshCmd(), drawCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// newShape maps a family name to a fresh instance. sides carries the
// structural count of the parameterized families: polygon sides, rose
// harmonic, prism and antiprism base edges.
func newShape(name string, sides int) (shape.Shape, error) {
	switch name {
	case "circle":
		return planar.NewCircle(), nil
	case "square":
		return planar.NewSquare(), nil
	case "regular_polygon":
		return planar.NewRegularPolygon(sides)
	case "annulus":
		return planar.NewAnnulus(), nil
	case "vesica":
		return planar.NewVesica(), nil
	case "rose":
		return planar.NewRose(sides)
	case "ellipse":
		return planar.NewEllipse(), nil
	case "crescent":
		return planar.NewCrescent(), nil
	case "seed_of_life":
		return planar.NewSeedOfLife(), nil
	case "flower_of_life":
		return planar.NewFlowerOfLife(), nil
	case "equilateral_triangle":
		return triangle.NewEquilateral(), nil
	case "right_triangle":
		return triangle.NewRight(), nil
	case "isosceles_triangle":
		return triangle.NewIsosceles(), nil
	case "scalene_triangle":
		return triangle.NewScalene(), nil
	case "parallelogram":
		return quadri.NewParallelogram(), nil
	case "rhombus":
		return quadri.NewRhombus(), nil
	case "trapezoid":
		return quadri.NewTrapezoid(), nil
	case "isosceles_trapezoid":
		return quadri.NewIsoTrapezoid(), nil
	case "rectangle":
		return quadri.NewRectangle(), nil
	case "kite":
		return quadri.NewKite(), nil
	case "dart":
		return quadri.NewDart(), nil
	case "cyclic_quadrilateral":
		return quadri.NewCyclic(), nil
	case "tangential_quadrilateral":
		return quadri.NewTangential(), nil
	case "bicentric_quadrilateral":
		return quadri.NewBicentric(), nil
	case "diagonal_quadrilateral":
		return quadri.NewByDiagonals(), nil
	case "pyramid":
		return solid.NewPyramid(), nil
	case "frustum":
		return solid.NewFrustum(), nil
	case "prism":
		return solid.NewPrism(sides)
	case "antiprism":
		return solid.NewAntiprism(sides)
	case "tesseract":
		return solid.NewTesseract(), nil
	default:
		// Uniform solids go by their catalog name (cube, icosahedron…).
		if u, err := solid.NewUniform(name); err == nil {
			return u, nil
		}
		return nil, fmt.Errorf("unknown shape %q (uniform solids: %s)",
			name, strings.Join(solid.UniformNames(), ", "))
	}
}

func solveCmd() *cobra.Command {
	var (
		shapeName string
		sides     int
		sets      []string
		inPath    string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Resolve a shape from property assignments",
		Example: `  figura solve --shape parallelogram --set base=5 --set side=3 --set angle=60
  figura solve --shape pyramid --set base_edge=6 --set height=4 --out pyramid.json
  figura solve --shape pyramid --in pyramid.json --set volume=48`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newShape(shapeName, sides)
			if err != nil {
				return err
			}
			if inPath != "" {
				data, err := os.ReadFile(inPath)
				if err != nil {
					return err
				}
				if err := shape.UnmarshalSnapshot(s, data); err != nil {
					return err
				}
			}
			if err := applySets(s, sets); err != nil {
				return err
			}
			printTable(cmd, s)
			if outPath != "" {
				return writeSnapshot(s, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shapeName, "shape", "", "Family name (e.g. parallelogram, cube)")
	cmd.Flags().IntVar(&sides, "sides", 0, "Structural count for regular_polygon, rose, prism, antiprism")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Property assignment key=value (repeatable, applied in order)")
	cmd.Flags().StringVar(&inPath, "in", "", "Restore state from a JSON snapshot before applying --set")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the resolved state to a JSON snapshot")
	_ = cmd.MarkFlagRequired("shape")

	return cmd
}

func detectCmd() *cobra.Command {
	var (
		pointsArg string
		sideTol   float64
		rightTol  float64
	)

	cmd := &cobra.Command{
		Use:     "detect",
		Short:   "Classify a shape from vertex coordinates",
		Example: `  figura detect --points "0,0;3,0;0,4"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := parsePoints(pointsArg)
			if err != nil {
				return err
			}
			s, err := detect.Classify(pts, detect.Options{SideTol: sideTol, RightTol: rightTol})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "detected: %s\n", s.Kind())
			printTable(cmd, s)
			return nil
		},
	}

	cmd.Flags().StringVar(&pointsArg, "points", "", `Vertices as "x,y;x,y;…" in ring order`)
	cmd.Flags().Float64Var(&sideTol, "side-tol", 0, "Relative tolerance for side equality (default 1e-4)")
	cmd.Flags().Float64Var(&rightTol, "right-tol", 0, "Relative tolerance for right angles (default 1e-4)")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

func meshCmd() *cobra.Command {
	var (
		solidName string
		sides     int
		edge      float64
		sets      []string
	)

	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Print a solved solid's wireframe mesh as JSON",
		Example: `  figura mesh --solid icosahedron --edge 2
  figura mesh --solid pyramid --set base_edge=6 --set height=4
  figura mesh --solid antiprism --sides 4 --edge 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newShape(solidName, sides)
			if err != nil {
				return err
			}
			if edge > 0 {
				if err := shape.Set(s, edgeKey(s), edge); err != nil {
					return err
				}
			}
			if err := applySets(s, sets); err != nil {
				return err
			}
			m, err := solid.MeshFor(s)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}

	cmd.Flags().StringVar(&solidName, "solid", "", "Solid name (pyramid, prism, cube, icosahedron…)")
	cmd.Flags().IntVar(&sides, "sides", 0, "Base edge count for prism and antiprism")
	cmd.Flags().Float64Var(&edge, "edge", 0, "Edge length shortcut for the canonical edge property")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Property assignment key=value (repeatable)")
	_ = cmd.MarkFlagRequired("solid")

	return cmd
}

func drawCmd() *cobra.Command {
	var (
		shapeName string
		sides     int
		sets      []string
		inPath    string
	)

	cmd := &cobra.Command{
		Use:     "draw",
		Short:   "Print a solved planar shape's drawing projection as JSON",
		Example: `  figura draw --shape kite --set side_a=2 --set side_b=3 --set angle=60`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newShape(shapeName, sides)
			if err != nil {
				return err
			}
			if inPath != "" {
				data, err := os.ReadFile(inPath)
				if err != nil {
					return err
				}
				if err := shape.UnmarshalSnapshot(s, data); err != nil {
					return err
				}
			}
			if err := applySets(s, sets); err != nil {
				return err
			}
			d, err := render.Project(s)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		},
	}

	cmd.Flags().StringVar(&shapeName, "shape", "", "Family name (planar families only)")
	cmd.Flags().IntVar(&sides, "sides", 0, "Structural count for regular_polygon and rose")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Property assignment key=value (repeatable)")
	cmd.Flags().StringVar(&inPath, "in", "", "Restore state from a JSON snapshot before applying --set")
	_ = cmd.MarkFlagRequired("shape")

	return cmd
}

// applySets applies key=value assignments in argument order, so later
// entries see the state the earlier ones resolved.
func applySets(s shape.Shape, sets []string) error {
	for _, kv := range sets {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("malformed --set %q, want key=value", kv)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("malformed --set %q: %w", kv, err)
		}
		if err := shape.Set(s, key, v); err != nil {
			return fmt.Errorf("set %s=%s: %w", key, raw, err)
		}
	}

	return nil
}

func writeSnapshot(s shape.Shape, path string) error {
	data, err := shape.MarshalSnapshot(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// edgeKey resolves the --edge shortcut against the solid's catalog:
// "edge" where the family has one, "base_edge" otherwise.
func edgeKey(s shape.Shape) string {
	if _, err := shape.SpecOf(s, "edge"); err == nil {
		return "edge"
	}

	return "base_edge"
}

func parsePoints(arg string) ([]r2.Vec, error) {
	var pts []r2.Vec
	for _, pair := range strings.Split(arg, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("malformed point %q, want x,y", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed point %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed point %q: %w", pair, err)
		}
		pts = append(pts, r2.Vec{X: x, Y: y})
	}

	return pts, nil
}

// printTable writes the property catalog in display order, resolved
// values formatted with their catalog precision, unset rows dashed.
func printTable(cmd *cobra.Command, s shape.Shape) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s\n", s.Kind())
	for _, p := range shape.Properties(s) {
		if !p.Set {
			fmt.Fprintf(w, "  %-22s -\n", p.Name)
			continue
		}
		val := strconv.FormatFloat(p.Value, 'f', p.Precision, 64)
		if p.Unit != "" {
			val += " " + p.Unit
		}
		fmt.Fprintf(w, "  %-22s %s\n", p.Name, val)
	}
}
