/*
Package car implements content-aware width reduction via seam carving.

It repeatedly finds the vertical seam of least visual importance — an
8-connected, one-pixel-wide path from the top row to the bottom row — and
removes it, shrinking the image one column at a time until the requested
width is reached. Importance is measured with a Sobel gradient-magnitude
energy map; the least-cost seam is found with a dynamic-programming
cumulative path sum.

The package provides a command line wrapper under cmd/carve. To integrate
the core engine directly:

	package main

	import (
		"fmt"

		car "github.com/kevinzhe/fast-content-aware-resize"
	)

	func main() {
		in := car.NewBuffer[car.RGBPixel](width, height)
		// ... in.Set(row, col, car.RGBPixel{R: r, G: g, B: b}) for each pixel
		out := car.NewBuffer[car.RGBPixel](targetWidth, height)

		if _, err := car.Carve(in, out); err != nil {
			fmt.Printf("error carving image: %s", err)
		}
	}
*/
package car
