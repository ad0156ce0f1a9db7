package dmi

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

const (
	descriptionBegin = "# BEGIN DMI"
	descriptionEnd   = "# END DMI"
	defaultIconSize  = 32
)

// stateHeader is a state as described in text, before its images are sliced.
type stateHeader struct {
	State
	line int
}

func parseDescription(text string) (*Icon, []stateHeader, error) {
	icon := &Icon{
		Version: DefaultVersion,
		Width:   defaultIconSize,
		Height:  defaultIconSize,
	}
	var states []stateHeader
	var current *stateHeader

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	begun := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !begun {
			if line != descriptionBegin {
				return nil, nil, metadataError(lineNo, "expected %q", descriptionBegin)
			}
			begun = true
			continue
		}
		if line == descriptionEnd {
			if current != nil {
				states = append(states, *current)
			}
			return icon, states, nil
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, nil, metadataError(lineNo, "expected key = value, got %q", line)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		if key == "state" {
			if current != nil {
				states = append(states, *current)
			}
			current = &stateHeader{
				State: State{Name: unquote(value), Dirs: 1, Frames: 1},
				line:  lineNo,
			}
			continue
		}

		var err error
		if current == nil {
			err = icon.setHeader(key, value)
		} else {
			err = current.set(key, value)
		}
		if err != nil {
			return nil, nil, metadataError(lineNo, "bad value for %s: %v", key, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if !begun {
		return nil, nil, metadataError(lineNo, "expected %q", descriptionBegin)
	}
	return nil, nil, metadataError(lineNo, "missing %q", descriptionEnd)
}

func (icon *Icon) setHeader(key, value string) error {
	var err error
	switch key {
	case "version":
		icon.Version = value
	case "width":
		icon.Width, err = positive(value)
	case "height":
		icon.Height, err = positive(value)
	}
	return err
}

func (header *stateHeader) set(key, value string) error {
	var err error
	switch key {
	case "dirs":
		header.Dirs, err = positive(value)
	case "frames":
		header.Frames, err = positive(value)
	case "delay":
		header.Delays, err = parseDelays(value)
	case "loop":
		header.Loop, err = strconv.Atoi(value)
	case "rewind":
		header.Rewind, err = flag(value)
	case "movement":
		header.Movement, err = flag(value)
	case "hotspot":
		var h Hotspot
		h, err = parseHotspot(value)
		header.Hotspots = append(header.Hotspots, h)
	}
	return err
}

func formatDescription(icon *Icon) string {
	var b strings.Builder
	fmt.Fprintln(&b, descriptionBegin)
	version := icon.Version
	if version == "" {
		version = DefaultVersion
	}
	fmt.Fprintf(&b, "version = %s\n", version)
	fmt.Fprintf(&b, "\twidth = %d\n", icon.Width)
	fmt.Fprintf(&b, "\theight = %d\n", icon.Height)
	for i := range icon.States {
		state := &icon.States[i]
		fmt.Fprintf(&b, "state = %s\n", strconv.Quote(state.Name))
		fmt.Fprintf(&b, "\tdirs = %d\n", state.Dirs)
		fmt.Fprintf(&b, "\tframes = %d\n", state.Frames)
		if state.Delays != nil {
			delays := make([]string, len(state.Delays))
			for j, d := range state.Delays {
				delays[j] = formatFloat(d)
			}
			fmt.Fprintf(&b, "\tdelay = %s\n", strings.Join(delays, ","))
		}
		if state.Loop != 0 {
			fmt.Fprintf(&b, "\tloop = %d\n", state.Loop)
		}
		if state.Rewind {
			fmt.Fprintln(&b, "\trewind = 1")
		}
		if state.Movement {
			fmt.Fprintln(&b, "\tmovement = 1")
		}
		for _, h := range state.Hotspots {
			fmt.Fprintf(&b, "\thotspot = %d,%d,%d\n", h.X, h.Y, h.Frame)
		}
	}
	fmt.Fprintln(&b, descriptionEnd)
	return b.String()
}

func metadataError(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrBadMetadataLine, line, fmt.Sprintf(format, args...))
}

func unquote(value string) string {
	if s, err := strconv.Unquote(value); err == nil {
		return s
	}
	return strings.Trim(value, `"`)
}

func positive(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}

func flag(value string) (bool, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

func parseHotspot(value string) (Hotspot, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return Hotspot{}, fmt.Errorf("want x,y,frame, got %q", value)
	}
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Hotspot{}, err
		}
		nums[i] = n
	}
	return Hotspot{X: nums[0], Y: nums[1], Frame: nums[2]}, nil
}
