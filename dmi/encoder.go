package dmi

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/klauspost/compress/zlib"

	"gitgub.com/cam-per/hypnagogic/utils"
)

// ihdrEnd is the offset just past the signature and the fixed size IHDR chunk.
const ihdrEnd = len(pngSignature) + 4 + 4 + 13 + 4

func Encode(w io.Writer, icon *Icon) error {
	if icon.Width <= 0 || icon.Height <= 0 {
		return &EncodeError{Reason: fmt.Sprintf("Icon size %dx%d is not positive", icon.Width, icon.Height), Err: ErrBadIconSize}
	}
	sheet, err := icon.compose()
	if err != nil {
		return err
	}

	text, err := utils.EncodeLatin1(formatDescription(icon))
	if err != nil {
		return &EncodeError{Reason: "The description holds characters PNG text cannot store", Err: ErrNotLatin1}
	}
	ztxt, err := compressDescription(text)
	if err != nil {
		return &EncodeError{Reason: "The description could not be compressed", Err: err}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, sheet); err != nil {
		return &EncodeError{Reason: "The sprite sheet could not be encoded", Err: err}
	}
	data := buf.Bytes()

	if _, err := w.Write(data[:ihdrEnd]); err != nil {
		return &EncodeError{Reason: "The output could not be written", Err: err}
	}
	if err := writeChunk(w, "zTXt", ztxt); err != nil {
		return &EncodeError{Reason: "The output could not be written", Err: err}
	}
	if _, err := w.Write(data[ihdrEnd:]); err != nil {
		return &EncodeError{Reason: "The output could not be written", Err: err}
	}
	return nil
}

// SheetSize returns the grid used to lay out count icons.
func SheetSize(count int) (columns, rows int) {
	if count <= 0 {
		return 1, 1
	}
	columns = int(math.Ceil(math.Sqrt(float64(count))))
	rows = (count + columns - 1) / columns
	return columns, rows
}

func (icon *Icon) compose() (*image.NRGBA, error) {
	count := 0
	for i := range icon.States {
		state := &icon.States[i]
		if len(state.Images) != state.Dirs*state.Frames {
			return nil, &EncodeError{
				State:  state.Name,
				Reason: fmt.Sprintf("It has %d images for %d dirs and %d frames", len(state.Images), state.Dirs, state.Frames),
				Err:    ErrImageCount,
			}
		}
		count += len(state.Images)
	}

	columns, rows := SheetSize(count)
	sheet := image.NewNRGBA(image.Rect(0, 0, columns*icon.Width, rows*icon.Height))
	next := 0
	for i := range icon.States {
		state := &icon.States[i]
		for f := 0; f < state.Frames; f++ {
			for d := 0; d < state.Dirs; d++ {
				img := state.Image(d, f)
				if img == nil || img.Bounds().Dx() != icon.Width || img.Bounds().Dy() != icon.Height {
					return nil, &EncodeError{
						State:  state.Name,
						Reason: fmt.Sprintf("Frame %d of direction %d is not %dx%d", f, d, icon.Width, icon.Height),
						Err:    ErrFrameSize,
					}
				}
				x := (next % columns) * icon.Width
				y := (next / columns) * icon.Height
				copyFrame(sheet, image.Pt(x, y), img, img.Bounds())
				next++
			}
		}
	}
	return sheet, nil
}

func compressDescription(text []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(descriptionKey)
	buf.WriteByte(0) // keyword terminator
	buf.WriteByte(0) // deflate
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(text); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	if err := utils.WriteUint32BE(w, uint32(len(data))); err != nil {
		return err
	}
	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	if _, err := io.WriteString(w, typ); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return utils.WriteUint32BE(w, crc.Sum32())
}
