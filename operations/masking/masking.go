// Package masking splits icon states in two using the alpha channel of a
// companion mask state.
//
// For every target X the sheet must hold X and X_mask with the same
// directions and delays. Each frame of X yields two frames: one with the
// masked region cleared, stored as X_{mask_suffix}, and its complement,
// stored as X_{unmasked_suffix}.
package masking

import (
	"github.com/samber/lo"

	"gitgub.com/cam-per/hypnagogic/config"
	"gitgub.com/cam-per/hypnagogic/dmi"
	"gitgub.com/cam-per/hypnagogic/internal/logger"
	"gitgub.com/cam-per/hypnagogic/operations"
)

const (
	Mode      = "DmiMasking"
	MaskToken = "_mask"
)

type DMIMasking struct {
	Mode           string   `toml:"mode"`
	TargetStates   []string `toml:"target_states"`
	MaskSuffix     string   `toml:"mask_suffix"`
	UnmaskedSuffix string   `toml:"unmasked_suffix"`

	lggr logger.Logger
}

func (m *DMIMasking) Name() string { return Mode }

func (m *DMIMasking) SetLogger(lggr logger.Logger) { m.lggr = lggr }

func (m *DMIMasking) logger() logger.Logger {
	if m.lggr == nil {
		return logger.Nop()
	}
	return m.lggr
}

func (m *DMIMasking) VerifyConfig() error {
	var problems config.Problems
	if len(m.TargetStates) == 0 {
		problems.Addf("target_states must name at least one icon state")
	}
	for i, target := range m.TargetStates {
		if target == "" {
			problems.Addf("target_states[%d] is empty", i)
		}
	}
	checkSuffix := func(key, suffix string) {
		switch suffix {
		case "":
			problems.Addf("%s must not be empty", key)
		case MaskToken[1:]:
			problems.Addf("%s %q would overwrite the mask states", key, suffix)
		}
	}
	checkSuffix("mask_suffix", m.MaskSuffix)
	checkSuffix("unmasked_suffix", m.UnmaskedSuffix)
	if m.MaskSuffix != "" && m.MaskSuffix == m.UnmaskedSuffix {
		problems.Addf("mask_suffix and unmasked_suffix are both %q", m.MaskSuffix)
	}
	return problems.Err()
}

func (m *DMIMasking) PerformOperation(input operations.Input, _ operations.Mode) (*operations.Payload, error) {
	lggr := m.logger()
	lggr.Debugw("Starting dmi masking", "targets", m.TargetStates)

	in, ok := input.(operations.DMIInput)
	if !ok || in.Icon == nil {
		return nil, operations.UnsupportedInput(Mode, input)
	}
	icon := in.Icon

	// Duplicate targets resolve to the same pair and the same derived states.
	pairs, err := pairStates(icon, lo.Uniq(m.TargetStates))
	if err != nil {
		return nil, operations.Wrap(Mode, err)
	}
	if err := validatePairs(icon, pairs); err != nil {
		return nil, operations.Wrap(Mode, err)
	}

	merged := newMerge(icon.States)
	for _, p := range pairs {
		base, mask := &icon.States[p.base], &icon.States[p.mask]
		masked, unmasked := maskState(base, mask)
		lggr.Debugw("Masked state", "state", base.Name, "mask", mask.Name, "frames", len(masked))

		anchor := max(p.base, p.mask)
		merged.put(base.WithImages(base.Name+"_"+m.MaskSuffix, masked), anchor)
		merged.put(base.WithImages(base.Name+"_"+m.UnmaskedSuffix, unmasked), anchor)
	}

	out := &dmi.Icon{
		Version: icon.Version,
		Width:   icon.Width,
		Height:  icon.Height,
		States:  merged.states(),
	}
	lggr.Debugw("Finished dmi masking", "pairs", len(pairs), "states", len(out.States))
	return operations.PayloadFromIcon(out), nil
}
