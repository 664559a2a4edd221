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

package imageloader_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/hardware/word"
	"github.com/aryansw/chroma-vm/imageloader"
	"github.com/aryansw/chroma-vm/test"
)

func testRaster(t *testing.T) *memory.Raster {
	t.Helper()
	r, err := memory.NewRaster("test", 5, 3)
	test.DemandSuccess(t, err)
	for i := 0; i < r.Len(); i++ {
		x, y := r.Coords(i)
		test.DemandSuccess(t, r.Set(x, y, word.Word(i*0x050301+0x10)))
	}
	return r
}

func TestEncodeDecode(t *testing.T) {
	r := testRaster(t)

	for _, f := range []imageloader.Format{imageloader.PNG, imageloader.BMP, imageloader.TIFF} {
		b := &bytes.Buffer{}
		test.DemandSuccess(t, imageloader.Encode(b, r, f), f)

		d, err := imageloader.FromBytes(b.Bytes(), "decoded")
		test.DemandSuccess(t, err, f)
		test.ExpectSuccess(t, d.Equal(r), f)
		test.ExpectEquality(t, d.Label, "decoded")
	}

	err := imageloader.Encode(&bytes.Buffer{}, r, imageloader.Format("gif"))
	test.ExpectSuccess(t, curated.Is(err, imageloader.UnsupportedFormat))
}

func TestOversized(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4097, 1))
	b := &bytes.Buffer{}
	test.DemandSuccess(t, png.Encode(b, img))

	_, err := imageloader.FromBytes(b.Bytes(), memory.LabelProgram)
	test.ExpectSuccess(t, curated.Is(err, memory.OversizedImage))
}

func TestAlphaDiscarded(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix = []uint8{0x68, 0x01, 0x02, 0xff}

	r, err := imageloader.FromImage(img, "test", "rgba")
	test.DemandSuccess(t, err)
	w, ok := r.Peek(0, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, word.Word(0x680102))
}

func TestTransparentPixels(t *testing.T) {
	// a paletted PNG with a fully transparent palette entry
	pal := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{
		color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x00},
		color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 0xff},
	})
	pal.SetColorIndex(1, 0, 1)

	var buf bytes.Buffer
	test.DemandSuccess(t, png.Encode(&buf, pal))

	r, err := imageloader.FromBytes(buf.Bytes(), "test")
	test.DemandSuccess(t, err)
	w, _ := r.Peek(0, 0)
	test.ExpectEquality(t, w, word.Word(0x123456))
	w, _ = r.Peek(1, 0)
	test.ExpectEquality(t, w, word.Word(0xabcdef))

	// 16-bit colour with no alpha
	deep := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	deep.SetNRGBA64(0, 0, color.NRGBA64{R: 0x12ff, G: 0x3400, B: 0x5680, A: 0})
	r, err = imageloader.FromImage(deep, "test", "nrgba64")
	test.DemandSuccess(t, err)
	w, _ = r.Peek(0, 0)
	test.ExpectEquality(t, w, word.Word(0x123456))

	// sub-images have a non-zero origin
	full := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	full.SetNRGBA(1, 1, color.NRGBA{R: 0x65, G: 0x43, B: 0x21, A: 0})
	r, err = imageloader.FromImage(full.SubImage(image.Rect(1, 1, 2, 2)), "test", "nrgba")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Width(), 1)
	w, _ = r.Peek(0, 0)
	test.ExpectEquality(t, w, word.Word(0x654321))
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	r := testRaster(t)

	fn := filepath.Join(dir, "program.bmp")
	test.DemandSuccess(t, imageloader.Save(fn, r))

	ld := imageloader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "program")
	test.ExpectFailure(t, ld.HasLoaded())
	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Hash), 40)

	d, err := ld.Raster(memory.LabelProgram)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, d.Equal(r))

	// a loader with the wrong hash
	ld = imageloader.NewLoader(fn)
	ld.Hash = "0000000000000000000000000000000000000000"
	err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, imageloader.UnexpectedHash))

	err = imageloader.Save(filepath.Join(dir, "program.xyz"), r)
	test.ExpectSuccess(t, curated.Is(err, imageloader.UnsupportedFormat))

	_, err = imageloader.Load(filepath.Join(dir, "missing.png"), memory.LabelProgram)
	test.ExpectSuccess(t, curated.Is(err, imageloader.LoadError))

	// not an image
	fn = filepath.Join(dir, "text.png")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello"), 0o600))
	_, err = imageloader.Load(fn, memory.LabelProgram)
	test.ExpectSuccess(t, curated.Is(err, imageloader.DecodeError))
}

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, imageloader.IsImageFile("foo.webp"))
	test.ExpectSuccess(t, imageloader.IsImageFile("foo.PNG"))
	test.ExpectFailure(t, imageloader.IsImageFile("foo.txt"))

	f, ok := imageloader.FormatFromFilename("out.tif")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, imageloader.TIFF)
	_, ok = imageloader.FormatFromFilename("out.jpg")
	test.ExpectFailure(t, ok)
}

func TestProcessImage(t *testing.T) {
	r := func(i uint8) instructions.Operand { return instructions.Operand{Index: i} }

	p, err := memory.NewRaster("", 3, 1)
	test.DemandSuccess(t, err)
	p.Set(0, 0, instructions.Encode(instructions.NewImmediate(instructions.LoadLow, r(0), 1)))
	p.Set(1, 0, instructions.Encode(instructions.New(instructions.Alloc, r(0), r(1))))
	p.Set(2, 0, instructions.Encode(instructions.New(instructions.Halt)))

	b := &bytes.Buffer{}
	test.DemandSuccess(t, imageloader.Encode(b, p, imageloader.PNG))

	res, err := imageloader.ProcessImage(b.Bytes(), nil, hardware.Limits{})
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, len(res.Program), 0)
	test.ExpectInequality(t, len(res.Output), 0)

	out, err := imageloader.FromBytes(res.Output, memory.LabelOutput)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.Width(), 3)
	test.ExpectEquality(t, out.Height(), 1)

	// a program with no output
	p.Set(1, 0, instructions.Encode(instructions.New(instructions.Halt)))
	b.Reset()
	test.DemandSuccess(t, imageloader.Encode(b, p, imageloader.PNG))
	res, err = imageloader.ProcessImage(b.Bytes(), nil, hardware.Limits{})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, res.Output == nil)
}
