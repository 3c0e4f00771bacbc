package perplex_test

import (
	"fmt"

	"github.com/perplexnum/perplex"
)

func Example() {
	z := perplex.New(1.0, 0.5)
	fmt.Println(z)
	fmt.Println(z.SquaredDistance())
	fmt.Println(z.Sector())
	fmt.Println(z.PowU(2))

	inv, _ := z.Inverse()
	fmt.Println(z.Mul(inv))

	// Output:
	// 1+0.5h
	// 0.75
	// Right
	// 1.25+1h
	// 1+0h
}

func ExamplePerplex_Klein() {
	z := perplex.New(0.0, 2.0)
	k, _ := z.Klein()
	fmt.Println(z.Sector())
	fmt.Println(k)
	fmt.Println(k.Mul(z), k.Mul(z).Sector())

	// Output:
	// Up
	// 0+1h
	// 2+0h Right
}

func ExamplePolar_PowU() {
	z := perplex.New(1.0, 0.5)
	p := z.Polar().PowU(2)
	w := p.Perplex()
	fmt.Printf("%.4f %.4f\n", w.T, w.X)

	// Output:
	// 1.2500 1.0000
}
