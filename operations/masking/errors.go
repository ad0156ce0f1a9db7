package masking

import (
	"fmt"
	"strings"

	"gitgub.com/cam-per/hypnagogic/dmi"
)

// MissingStatesError lists every base and mask state that could not be found.
type MissingStatesError struct {
	Names []string
}

func (e *MissingStatesError) Error() string {
	return "missing icon states: [" + strings.Join(e.Names, ", ") + "]"
}

func (e *MissingStatesError) Summary() string { return "Missing Icon States" }

func (e *MissingStatesError) Reasons() []string {
	reasons := make([]string, 0, len(e.Names))
	for _, name := range e.Names {
		reasons = append(reasons, fmt.Sprintf("Icon state %q was expected but not found", name))
	}
	return reasons
}

func (e *MissingStatesError) Helptext() string { return "Did you remember to save?" }

type InconsistentDirectional struct {
	TargetName string
	TargetDirs int
	MaskName   string
	MaskDirs   int
}

// DirectionalMismatchError lists every pair whose direction counts differ.
type DirectionalMismatchError struct {
	Pairs []InconsistentDirectional
}

func (e *DirectionalMismatchError) Error() string {
	names := make([]string, 0, len(e.Pairs))
	for _, p := range e.Pairs {
		names = append(names, p.TargetName+"/"+p.MaskName)
	}
	return "directional mismatch: " + strings.Join(names, ", ")
}

func (e *DirectionalMismatchError) Summary() string { return "Directional Mismatch" }

func (e *DirectionalMismatchError) Reasons() []string {
	reasons := make([]string, 0, len(e.Pairs))
	for _, p := range e.Pairs {
		reasons = append(reasons, fmt.Sprintf(
			"Icon state %s's direction does not match %s (%d dirs against %d)",
			p.TargetName, p.MaskName, p.TargetDirs, p.MaskDirs,
		))
	}
	return reasons
}

func (e *DirectionalMismatchError) Helptext() string {
	return "Check if the two icon states have the same amount of directionals. Failing this, did you save?"
}

type InconsistentDelays struct {
	TargetName   string
	TargetFrames int
	TargetDelays dmi.Delays
	MaskName     string
	MaskFrames   int
	MaskDelays   dmi.Delays
}

// DelayMismatchError lists every pair whose frame timing differs.
type DelayMismatchError struct {
	Pairs []InconsistentDelays
}

func (e *DelayMismatchError) Error() string {
	names := make([]string, 0, len(e.Pairs))
	for _, p := range e.Pairs {
		names = append(names, p.TargetName+"/"+p.MaskName)
	}
	return "delay mismatch: " + strings.Join(names, ", ")
}

func (e *DelayMismatchError) Summary() string { return "Delay Mismatch" }

func (e *DelayMismatchError) Reasons() []string {
	reasons := make([]string, 0, len(e.Pairs))
	for _, p := range e.Pairs {
		if p.TargetDelays.Equal(p.MaskDelays) {
			reasons = append(reasons, fmt.Sprintf(
				"Icon state %s has %d frames but %s has %d",
				p.TargetName, p.TargetFrames, p.MaskName, p.MaskFrames,
			))
			continue
		}
		reasons = append(reasons, fmt.Sprintf(
			"Icon state %s's delays %s do not match %s's %s",
			p.TargetName, delayText(p.TargetDelays), p.MaskName, delayText(p.MaskDelays),
		))
	}
	return reasons
}

func (e *DelayMismatchError) Helptext() string {
	return "Make sure all the delays line up correctly, careful this can be a bit annoying"
}

func delayText(d dmi.Delays) string {
	if d == nil {
		return "(none)"
	}
	return d.Text("ds")
}
