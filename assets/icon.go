// Package assets embeds and rasterizes the application's SVG icon.
package assets

import (
	_ "embed"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed raven_icon.svg
var iconSVG string

// RenderIcon rasterizes the embedded SVG at the given square size.
func RenderIcon(size int) image.Image {
	return renderSVGToSize(iconSVG, size)
}

// RenderIconSizes rasterizes the embedded icon at the standard set of
// sizes a window manager expects via GLFW's SetIcon.
func RenderIconSizes() []image.Image {
	var icons []image.Image
	for _, size := range []int{16, 32, 48, 64, 128, 256} {
		if img := renderSVGToSize(iconSVG, size); img != nil {
			icons = append(icons, img)
		}
	}
	return icons
}

func renderSVGToSize(svgData string, size int) image.Image {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svgData))
	if err != nil {
		return nil
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	rasterizer := rasterx.NewDasher(size, size, scanner)
	icon.Draw(rasterizer, 1.0)
	return rgba
}
