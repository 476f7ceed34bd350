// Command carve shrinks an image's width by removing the lowest-energy
// seams one at a time.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"

	car "github.com/kevinzhe/fast-content-aware-resize"
	"github.com/kevinzhe/fast-content-aware-resize/utils"
)

const helpBanner = `
┌─┐┌─┐┬─┐┬  ┬┌─┐
│  ├─┤├┬┘└┐┌┘├┤
└─┘┴ ┴┴└─ └┘ └─┘

Content-aware seam carving.

Usage: carve <input-path> <output-path> <seams-to-remove>
`

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	inPath, outPath := flag.Arg(0), flag.Arg(1)
	seamsToRemove, err := parseSeams(flag.Arg(2))
	if err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		os.Exit(2)
	}

	if err := run(inPath, outPath, seamsToRemove); err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		os.Exit(1)
	}
}

func parseSeams(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("seams-to-remove must be an integer, got %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("seams-to-remove must be >= 0, got %d", n)
	}
	return n, nil
}

func run(inPath, outPath string, seamsToRemove int) error {
	src, err := imaging.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if seamsToRemove >= width {
		return fmt.Errorf("seams-to-remove (%d) must be less than the input width (%d)", seamsToRemove, width)
	}
	targetWidth := width - seamsToRemove

	input := car.NewBuffer[car.RGBPixel](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			input.Set(y, x, car.RGBPixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}
	output := car.NewBuffer[car.RGBPixel](targetWidth, height)

	msg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ carve", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("⇢ removing %d seam(s) from a %dx%d image...", seamsToRemove, width, height), utils.DefaultMessage),
	)
	spinner := utils.NewSpinner(msg, time.Millisecond*80, true)
	spinner.Start()

	var totalPixels, totalBytes int
	var cyclesSum float64
	onSeam := car.WithProgress(func(seamsRemoved, totalSeams int, e car.EnergyStats, p car.PathsumStats) {
		totalPixels += e.PixelsComputed
		cyclesSum += e.CyclesPerElement * float64(e.PixelsComputed)
		totalBytes += p.BytesRecomputed
	})

	start := time.Now()
	status, err := car.Carve(input, output, onSeam)
	elapsed := time.Since(start)

	spinner.StopMsg = fmt.Sprintf("\n%s %s\n",
		utils.DecorateText("✔ done", utils.SuccessMessage),
		utils.DecorateText(fmt.Sprintf("in %s", utils.FormatTime(elapsed)), utils.DefaultMessage),
	)
	spinner.Stop()

	if status != car.StatusOK {
		return fmt.Errorf("carve failed (%s): %w", status, err)
	}

	avgCycles := 0.0
	if totalPixels > 0 {
		avgCycles = cyclesSum / float64(totalPixels)
	}
	fmt.Fprintln(os.Stderr, utils.DecorateText(
		fmt.Sprintf("⇢ %.2f ns/element energy recompute, %d bytes pathsum recomputed", avgCycles, totalBytes),
		utils.DefaultMessage,
	))

	dst := imaging.New(targetWidth, height, nil)
	for y := 0; y < height; y++ {
		for x := 0; x < targetWidth; x++ {
			p := output.At(y, x)
			dst.Set(x, y, pixelColor(p))
		}
	}

	if strings.EqualFold(filepath.Ext(outPath), ".bmp") {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("saving %s: %w", outPath, err)
		}
		defer f.Close()
		if err := bmp.Encode(f, dst); err != nil {
			return fmt.Errorf("encoding %s as bmp: %w", outPath, err)
		}
		return nil
	}
	if err := imaging.Save(dst, outPath); err != nil {
		return fmt.Errorf("saving %s: %w", outPath, err)
	}
	return nil
}

func pixelColor(p car.RGBPixel) color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255}
}
