/*tessera4d_cmd slices 4D solids into 3D triangle meshes.

[Slice] mode builds a 4D shape, places it with a rotation, scale, and
translation, intersects it with the w = 0 hyperplane, and writes the
resulting triangle mesh as a Wavefront OBJ file. [Animate] mode does the
same once per frame, interpolating the rotation between keyframes read
from a table file.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/table"

	"github.com/tessera-dev/tessera4d/ga"
	"github.com/tessera-dev/tessera4d/la/vec"
	"github.com/tessera-dev/tessera4d/mesh"
	"github.com/tessera-dev/tessera4d/transform"
)

func main() {
	var sliceStr, animateStr, exampleConfig string
	vars := map[string]*string{
		"Slice":         &sliceStr,
		"Animate":       &animateStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&sliceStr, "Slice", "",
		"Configuration file for [Slice] mode.",
	)
	flag.StringVar(
		&animateStr, "Animate", "",
		"Configuration file for [Animate] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Slice' and 'Animate'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Slice":
		wrap := DefaultSliceWrapper()
		err := gcfg.ReadFileInto(wrap, sliceStr)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Slice

		if !con.ValidShape() {
			log.Fatal("Invalid/non-existent 'Shape' value.")
		} else if !con.ValidSize() {
			log.Fatal("Invalid/non-existent size values for the shape.")
		} else if !con.ValidScale() {
			log.Fatal("Invalid 'Scale' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		}

		sliceMain(con)

	case "Animate":
		wrap := DefaultAnimateWrapper()
		err := gcfg.ReadFileInto(wrap, animateStr)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Animate

		if !con.ValidShape() {
			log.Fatal("Invalid/non-existent 'Shape' value.")
		} else if !con.ValidSize() {
			log.Fatal("Invalid/non-existent size values for the shape.")
		} else if !con.ValidScale() {
			log.Fatal("Invalid 'Scale' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidKeyframes() {
			log.Fatal("Invalid/non-existent 'Keyframes' value.")
		} else if !con.ValidFrames() {
			log.Fatal("'Frames' must be at least 2.")
		}

		animateMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Slice":
			fmt.Println(ExampleSliceFile)
		case "Animate":
			fmt.Println(ExampleAnimateFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Slice' and 'Animate'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive
// error if the user provided less or more than one mode flag.
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
			"The following flags were set: %s, but tessera4d_cmd "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}
	return setNames[0], nil
}

// buildShape constructs the configured 4D solid at the origin.
func buildShape(con *ShapeConfig) *mesh.TetrahedronMesh[vec.Vec4] {
	switch con.Shape {
	case "Cube":
		return mesh.TesseractCube[vec.Vec4, vec.Vec3, vec.Vec2](con.Size)
	default:
		return mesh.Tesseract[vec.Vec4, vec.Vec3, vec.Vec2](
			vec.V4(con.SizeX, con.SizeY, con.SizeZ, con.SizeW))
	}
}

// placement builds the configured transform around the given rotation.
func placement(con *ShapeConfig, rotation ga.Rotor4) transform.RotateScaleTranslate4[vec.Vec4] {
	return transform.RotateScaleTranslate4[vec.Vec4]{
		Rotation:    rotation,
		Scale:       con.Scale,
		Translation: vec.V4(con.TransX, con.TransY, con.TransZ, con.TransW),
	}
}

func configRotation(con *ShapeConfig) ga.Rotor4 {
	return ga.FromBivecAngles(ga.Bivec4{
		XY: con.RotXY, XZ: con.RotXZ, XW: con.RotXW,
		YZ: con.RotYZ, WY: con.RotWY, ZW: con.RotZW,
	})
}

func sliceMain(con *SliceConfig) {
	m := buildShape(&con.ShapeConfig)
	m.ApplyTransform(placement(&con.ShapeConfig, configRotation(&con.ShapeConfig)))
	section := mesh.CrossSection[vec.Vec4, vec.Vec3](m)
	if err := writeOBJ(con.Output, section); err != nil {
		log.Fatal(err.Error())
	}
}

func animateMain(con *AnimateConfig) {
	times, rotors := readKeyframes(con.Keyframes)

	t0, t1 := times[0], times[len(times)-1]
	for frame := 0; frame < con.Frames; frame++ {
		t := t0 + (t1-t0)*float64(frame)/float64(con.Frames-1)
		rotation := rotorAt(times, rotors, t)

		m := buildShape(&con.ShapeConfig)
		m.ApplyTransform(placement(&con.ShapeConfig, rotation))
		section := mesh.CrossSection[vec.Vec4, vec.Vec3](m)

		fname := fmt.Sprintf(con.Output, frame)
		if err := writeOBJ(fname, section); err != nil {
			log.Fatal(err.Error())
		}
	}
}

// readKeyframes reads a keyframe table: one row per keyframe, columns
// time, rotXY, rotXZ, rotXW, rotYZ, rotWY, rotZW.
func readKeyframes(fname string) (times []float64, rotors []ga.Rotor4) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2, 3, 4, 5, 6}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	times = cols[0]
	if len(times) < 2 {
		log.Fatal("Keyframe table needs at least two rows.")
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			log.Fatal("Keyframe times must be strictly increasing.")
		}
	}

	rotors = make([]ga.Rotor4, len(times))
	for i := range times {
		rotors[i] = ga.FromBivecAngles(ga.Bivec4{
			XY: cols[1][i], XZ: cols[2][i], XW: cols[3][i],
			YZ: cols[4][i], WY: cols[5][i], ZW: cols[6][i],
		})
	}
	return times, rotors
}

// rotorAt interpolates the keyframed rotation at time t.
func rotorAt(times []float64, rotors []ga.Rotor4, t float64) ga.Rotor4 {
	if t <= times[0] {
		return rotors[0]
	}
	for i := 1; i < len(times); i++ {
		if t <= times[i] {
			frac := (t - times[i-1]) / (times[i] - times[i-1])
			return rotors[i-1].InterpolateWith(rotors[i], frac)
		}
	}
	return rotors[len(rotors)-1]
}

// writeOBJ writes a triangle mesh as a Wavefront OBJ file. OBJ face
// indices are 1-based.
func writeOBJ(fname string, m *mesh.TriangleMesh[vec.Vec3]) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range m.Vertices {
		fmt.Fprintf(w, "v %g %g %g\n", v.X(), v.Y(), v.Z())
	}
	for _, tri := range m.Triangles {
		fmt.Fprintf(w, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1)
	}
	return w.Flush()
}
