package dmi

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/klauspost/compress/zlib"

	"gitgub.com/cam-per/hypnagogic/utils"
)

const (
	pngSignature   = "\x89PNG\r\n\x1a\n"
	descriptionKey = "Description"
)

type chunk struct {
	Type string
	Data []byte
}

func Decode(r io.Reader) (*Icon, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, &DecodeError{Reason: "The input could not be read", Err: err}
	}
	text, err := readDescription(data)
	if err != nil {
		return nil, &DecodeError{Reason: "The DMI description could not be found", Err: err}
	}
	icon, headers, err := parseDescription(text)
	if err != nil {
		return nil, &DecodeError{Reason: "The DMI description is malformed", Err: err}
	}
	sheet, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Reason: "The sprite sheet image could not be decoded", Err: err}
	}
	if err := icon.slice(sheet, headers); err != nil {
		return nil, &DecodeError{Reason: "The sprite sheet does not match its description", Err: err}
	}
	return icon, nil
}

// DecodeDescription returns only the metadata, with no images attached.
func DecodeDescription(r io.Reader) (*Icon, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, &DecodeError{Reason: "The input could not be read", Err: err}
	}
	text, err := readDescription(data)
	if err != nil {
		return nil, &DecodeError{Reason: "The DMI description could not be found", Err: err}
	}
	icon, headers, err := parseDescription(text)
	if err != nil {
		return nil, &DecodeError{Reason: "The DMI description is malformed", Err: err}
	}
	for _, header := range headers {
		icon.States = append(icon.States, header.State)
	}
	return icon, nil
}

func readChunks(data []byte) ([]chunk, error) {
	if !bytes.HasPrefix(data, []byte(pngSignature)) {
		return nil, ErrNotPNG
	}
	r := bytes.NewReader(data[len(pngSignature):])
	var chunks []chunk
	for {
		length, err := utils.ReadUint32BE(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return chunks, nil
			}
			return nil, err
		}
		typ := make([]byte, 4)
		if _, err := io.ReadFull(r, typ); err != nil {
			return nil, err
		}
		if int64(length) > int64(r.Len()) {
			return nil, io.ErrUnexpectedEOF
		}
		body := make([]byte, length)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, err
		}
		// crc; png.Decode verifies the chunks it cares about
		if _, err := utils.ReadUint32BE(r); err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk{Type: string(typ), Data: body})
		if string(typ) == "IEND" {
			return chunks, nil
		}
	}
}

func readDescription(data []byte) (string, error) {
	chunks, err := readChunks(data)
	if err != nil {
		return "", err
	}
	for _, c := range chunks {
		keyword := utils.CString(c.Data)
		if keyword.String() != descriptionKey {
			continue
		}
		switch c.Type {
		case "tEXt":
			return utils.Latin1(keyword.Rest()), nil
		case "zTXt":
			rest := keyword.Rest()
			method, err := utils.ReadByte(bytes.NewReader(rest))
			if err != nil {
				return "", err
			}
			if method != 0 {
				return "", ErrCompression
			}
			zr, err := zlib.NewReader(bytes.NewReader(rest[1:]))
			if err != nil {
				return "", err
			}
			text, err := io.ReadAll(zr)
			if err != nil {
				return "", err
			}
			if err := zr.Close(); err != nil {
				return "", err
			}
			return utils.Latin1(text), nil
		}
	}
	return "", ErrNoDescription
}

func (icon *Icon) slice(sheet image.Image, headers []stateHeader) error {
	bounds := sheet.Bounds()
	columns := bounds.Dx() / icon.Width
	rows := bounds.Dy() / icon.Height
	if columns == 0 || rows == 0 {
		return fmt.Errorf("%w: %dx%d sheet, %dx%d icons", ErrSheetTooSmall, bounds.Dx(), bounds.Dy(), icon.Width, icon.Height)
	}

	next := 0
	icon.States = make([]State, 0, len(headers))
	for _, header := range headers {
		state := header.State
		state.Images = make([]*image.NRGBA, state.Dirs*state.Frames)
		// file order is frame-major
		for f := 0; f < state.Frames; f++ {
			for d := 0; d < state.Dirs; d++ {
				if next >= columns*rows {
					return fmt.Errorf("%w: state %q (line %d)", ErrSheetTooSmall, state.Name, header.line)
				}
				x := bounds.Min.X + (next%columns)*icon.Width
				y := bounds.Min.Y + (next/columns)*icon.Height
				frame := icon.NewFrame()
				copyFrame(frame, image.Point{}, sheet, image.Rect(x, y, x+icon.Width, y+icon.Height))
				state.Images[d*state.Frames+f] = frame
				next++
			}
		}
		icon.States = append(icon.States, state)
	}
	return nil
}
