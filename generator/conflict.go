package generator

import (
	"fmt"
)

// ConflictResolution says what WriteFile does with a file that already exists.
type ConflictResolution int

const (
	Overwrite ConflictResolution = iota
	Keep
)

// ConflictStrategy decides how to handle an existing file.
type ConflictStrategy interface {
	Resolve(path string) ConflictResolution
}

// OverwriteStrategy always overwrites. Existing files are reported as
// "mutate" so re-runs stay visible.
type OverwriteStrategy struct{}

func (OverwriteStrategy) Resolve(string) ConflictResolution { return Overwrite }

// KeepStrategy never touches an existing file.
type KeepStrategy struct{}

func (KeepStrategy) Resolve(string) ConflictResolution { return Keep }

// ConfirmStrategy asks before each overwrite.
type ConfirmStrategy struct {
	Ask func(path string) bool
}

func (s ConfirmStrategy) Resolve(path string) ConflictResolution {
	if s.Ask != nil && s.Ask(path) {
		return Overwrite
	}
	return Keep
}

// NewConflictStrategy picks a strategy from the --skip-existing and
// --confirm-overwrite flags. The flags are mutually exclusive.
func NewConflictStrategy(skipExisting, confirm bool, ask func(path string) bool) (ConflictStrategy, error) {
	switch {
	case skipExisting && confirm:
		return nil, fmt.Errorf("--skip-existing cannot be combined with --confirm-overwrite")
	case skipExisting:
		return KeepStrategy{}, nil
	case confirm:
		if ask == nil {
			return nil, fmt.Errorf("--confirm-overwrite requires an interactive terminal")
		}
		return ConfirmStrategy{Ask: ask}, nil
	default:
		return OverwriteStrategy{}, nil
	}
}
