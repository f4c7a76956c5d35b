package views

import (
	"context"
	"errors"

	"github.com/2beens/dawarpower/internal/profile"
)

var ErrUnknownPreset = errors.New("unknown preset")

// QuickStart offers the preset catalog as one click onboarding.
type QuickStart struct {
	store     *profile.Store
	onApplied func(key string)
}

func NewQuickStart(store *profile.Store, onApplied func(key string)) *QuickStart {
	return &QuickStart{
		store:     store,
		onApplied: onApplied,
	}
}

func (q *QuickStart) Cards() []profile.PresetCard {
	return profile.PresetCards()
}

// Apply saves the preset under key as the profile.
func (q *QuickStart) Apply(ctx context.Context, key string) (*profile.CoachProfile, error) {
	preset, ok := profile.Preset(key)
	if !ok {
		return nil, ErrUnknownPreset
	}
	saved := q.store.Save(ctx, *preset)
	if q.onApplied != nil {
		q.onApplied(key)
	}
	return saved, nil
}
