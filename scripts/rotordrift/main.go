/*rotordrift measures how well rotor renormalization holds up under
repeated composition. A fixed small-angle rotor is composed onto an
accumulator N times and then its inverse N times; at every step the
distance of the accumulator from the unit-norm constraint is recorded.
The resulting drift curve is plotted on a log scale.

Usage:
    rotordrift [steps] [out.png]
*/
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/tessera-dev/tessera4d/ga"
)

func main() {
	steps := 1000
	out := "rotor_drift.png"
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil {
			log.Fatal(err.Error())
		}
		steps = n
	}
	if len(os.Args) > 2 {
		out = os.Args[2]
	}

	step := ga.FromBivecAngles(ga.Bivec4{
		XY: 0.0137, XZ: -0.0071, YZ: 0.0219, ZW: 0.0053,
	})
	inv := step.Inverse()

	xs := make([]float64, 0, 2*steps)
	ys := make([]float64, 0, 2*steps)
	acc := ga.IdentityRotor4()
	for i := 0; i < 2*steps; i++ {
		if i < steps {
			acc = acc.Compose(step)
		} else {
			acc = acc.Compose(inv)
		}
		xs = append(xs, float64(i+1))
		ys = append(ys, normError(acc))
	}

	// The round trip must land back on the identity.
	final := normError(acc)
	idErr := identityError(acc)
	fmt.Printf("norm error after %d compositions: %g\n", 2*steps, final)
	fmt.Printf("distance from identity: %g\n", idErr)

	plt.Reset()
	plt.Figure()
	plt.Plot(xs, ys, "b", plt.LW(2))
	plt.Title(fmt.Sprintf("Rotor drift over %d compositions", 2*steps))
	plt.XLabel("composition step", plt.FontSize(16))
	plt.YLabel("|norm - 1|", plt.FontSize(16))
	plt.YScale("log")
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(out)
	plt.Execute()
}

// normError is the accumulator's distance from unit norm.
func normError(r ga.Rotor4) float64 {
	c, b, p := r.Components()
	return math.Abs(math.Sqrt(c*c+p*p+b.Dot(b)) - 1)
}

// identityError is the largest component-wise distance from the
// identity rotor.
func identityError(r ga.Rotor4) float64 {
	c, b, p := r.Components()
	errs := []float64{
		math.Abs(c - 1), math.Abs(p),
		math.Abs(b.XY), math.Abs(b.XZ), math.Abs(b.XW),
		math.Abs(b.YZ), math.Abs(b.WY), math.Abs(b.ZW),
	}
	max := 0.0
	for _, e := range errs {
		if e > max {
			max = e
		}
	}
	return max
}
