// This file is part of Chroma.
//
// Chroma is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chroma is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chroma.  If not, see <https://www.gnu.org/licenses/>.

package imageloader

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	// decoders are registered with the image package by importing them
	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/hardware/word"
)

// Decode an image from the reader. The format is detected automatically.
// Oversized images are rejected before the image data is decoded.
func Decode(r io.Reader, label string) (*memory.Raster, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, label, err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, curated.Errorf(DecodeError, label, err)
	}
	if cfg.Width > word.MaxDimension || cfg.Height > word.MaxDimension {
		return nil, curated.Errorf(memory.OversizedImage, cfg.Width, cfg.Height, word.MaxDimension)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, curated.Errorf(DecodeError, label, err)
	}
	return FromImage(img, label, format)
}

// FromBytes decodes an image held in memory.
func FromBytes(data []byte, label string) (*memory.Raster, error) {
	return Decode(bytes.NewReader(data), label)
}

// FromImage converts an image.Image to a raster. The format argument is only
// used for log and error messages.
func FromImage(img image.Image, label string, format string) (*memory.Raster, error) {
	b := img.Bounds()

	// dimensions are checked before any conversion work
	if b.Dx() > word.MaxDimension || b.Dy() > word.MaxDimension {
		return nil, curated.Errorf(memory.OversizedImage, b.Dx(), b.Dy(), word.MaxDimension)
	}

	// the colour channels of a pixel are kept even when it is fully
	// transparent. image types that store colour without alpha
	// premultiplication are read directly because a conversion through
	// premultiplied colour loses the channels of transparent pixels
	var rgb func(x, y int) (uint8, uint8, uint8)

	switch src := img.(type) {
	case *image.NRGBA:
		rgb = func(x, y int) (uint8, uint8, uint8) {
			i := src.PixOffset(x, y)
			return src.Pix[i], src.Pix[i+1], src.Pix[i+2]
		}
	case *image.NRGBA64:
		rgb = func(x, y int) (uint8, uint8, uint8) {
			c := src.NRGBA64At(x, y)
			return uint8(c.R >> 8), uint8(c.G >> 8), uint8(c.B >> 8)
		}
	case *image.Paletted:
		rgb = func(x, y int) (uint8, uint8, uint8) {
			idx := int(src.ColorIndexAt(x, y))
			if idx >= len(src.Palette) {
				return 0, 0, 0
			}
			c := color.NRGBAModel.Convert(src.Palette[idx]).(color.NRGBA)
			return c.R, c.G, c.B
		}
	default:
		nrgba := image.NewNRGBA(b)
		draw.Draw(nrgba, b, img, b.Min, draw.Src)
		rgb = func(x, y int) (uint8, uint8, uint8) {
			i := nrgba.PixOffset(x, y)
			return nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2]
		}
	}

	pix := make([]uint8, 0, b.Dx()*b.Dy()*memory.PixelDepth)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c0, c1, c2 := rgb(x, y)
			pix = append(pix, c0, c1, c2)
		}
	}

	r, err := memory.NewRasterFromPixels(label, b.Dx(), b.Dy(), pix)
	if err != nil {
		return nil, curated.Errorf(DecodeError, format, err)
	}
	return r, nil
}

// ToImage converts a raster to an opaque image.
func ToImage(r *memory.Raster) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width(), r.Height()))
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			w, _ := r.Peek(x, y)
			b0, b1, b2 := w.Bytes()
			img.SetNRGBA(x, y, color.NRGBA{R: b0, G: b1, B: b2, A: 0xff})
		}
	}
	return img
}

// Encode the raster to the writer in the specified format.
func Encode(w io.Writer, r *memory.Raster, format Format) error {
	img := ToImage(r)

	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return curated.Errorf(UnsupportedFormat, format)
	}

	if err != nil {
		return curated.Errorf(EncodeError, format, err)
	}
	return nil
}

// Save the raster to a file. The format is chosen by the file extension.
func Save(filename string, r *memory.Raster) error {
	format, ok := FormatFromFilename(filename)
	if !ok {
		return curated.Errorf(UnsupportedFormat, filename)
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(EncodeError, filename, err)
	}

	if err := Encode(f, r, format); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(EncodeError, filename, err)
	}

	return nil
}
