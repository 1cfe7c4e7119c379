package palette

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

const maxImageColors = 512

// FromImage takes the n most common colors of an image file.
func FromImage(fname string, n int) (color.Palette, error) {
	reader, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	m, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", fname, err)
	}
	return TakeColors(m, n)
}

// TakeColors returns up to n colors of m, most frequent first.
// Ties are broken by the color value so the result is stable.
func TakeColors(m image.Image, n int) (color.Palette, error) {
	bounds := m.Bounds()
	colorMap := make(map[color.RGBA]int, 512)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			col := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			colorMap[col]++
		}
	}
	type colCount struct {
		col   color.RGBA
		count int
	}
	toSort := make([]colCount, 0, len(colorMap))
	for key, val := range colorMap {
		toSort = append(toSort, colCount{key, val})
	}
	sort.Slice(toSort, func(i, j int) bool {
		if toSort[i].count != toSort[j].count {
			return toSort[i].count > toSort[j].count
		}
		return pack(toSort[i].col) < pack(toSort[j].col)
	})
	if n > 0 && len(toSort) > n {
		toSort = toSort[:n]
	}

	pal := make(color.Palette, 0, len(toSort))
	for _, cc := range toSort {
		pal = append(pal, cc.col)
	}
	if len(pal) == 0 {
		return nil, ErrEmpty
	}
	return pal, nil
}

func pack(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
