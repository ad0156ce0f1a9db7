package masking

import (
	"github.com/samber/lo"

	"gitgub.com/cam-per/hypnagogic/dmi"
)

// pair holds the indices of a target state and its mask in the input icon.
type pair struct {
	target string
	base   int
	mask   int
}

// pairStates resolves every target before failing, so that one error names
// every missing state.
func pairStates(icon *dmi.Icon, targets []string) ([]pair, error) {
	var missing []string
	pairs := lo.FilterMap(targets, func(target string, _ int) (pair, bool) {
		maskName := target + MaskToken
		base, baseOK := icon.IndexOf(target)
		mask, maskOK := icon.IndexOf(maskName)
		if !baseOK {
			missing = append(missing, target)
		}
		if !maskOK {
			missing = append(missing, maskName)
		}
		return pair{target: target, base: base, mask: mask}, baseOK && maskOK
	})
	if len(missing) > 0 {
		return nil, &MissingStatesError{Names: missing}
	}
	return pairs, nil
}

// validatePairs checks directions across every pair, then delays across
// every pair. A failing check stops the later one from running.
func validatePairs(icon *dmi.Icon, pairs []pair) error {
	var dirs []InconsistentDirectional
	var delays []InconsistentDelays
	for _, p := range pairs {
		base, mask := &icon.States[p.base], &icon.States[p.mask]
		if base.Dirs != mask.Dirs {
			dirs = append(dirs, InconsistentDirectional{
				TargetName: base.Name,
				TargetDirs: base.Dirs,
				MaskName:   mask.Name,
				MaskDirs:   mask.Dirs,
			})
		}
		if !base.Delays.Equal(mask.Delays) || base.Frames != mask.Frames {
			delays = append(delays, InconsistentDelays{
				TargetName:   base.Name,
				TargetFrames: base.Frames,
				TargetDelays: base.Delays,
				MaskName:     mask.Name,
				MaskFrames:   mask.Frames,
				MaskDelays:   mask.Delays,
			})
		}
	}
	if len(dirs) > 0 {
		return &DirectionalMismatchError{Pairs: dirs}
	}
	if len(delays) > 0 {
		return &DelayMismatchError{Pairs: delays}
	}
	return nil
}
