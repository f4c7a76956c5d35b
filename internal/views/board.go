package views

import (
	"fmt"
	"strings"
	"sync"

	"github.com/2beens/dawarpower/internal/coachapi"
	"github.com/2beens/dawarpower/internal/derive"
	"github.com/2beens/dawarpower/internal/profile"
)

const PoolColumn = "pool"

// Weekdays are the board's day columns in display order.
var Weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var defaultExercisePool = []string{
	"Lat Pulldown",
	"Dumbbell Bench Press",
	"Shoulder Shrug",
	"Bicep Curls",
	"Tricep Pulls",
	"Russian Twist",
	"Squats",
}

type BoardState struct {
	Columns         map[string][]string `json:"columns"`
	FocusSummary    string              `json:"focusSummary"`
	ScheduleSummary string              `json:"scheduleSummary"`
}

// TaskBoard is a weekly drag and drop board: movements go from the exercise
// pool into day columns and between days.
type TaskBoard struct {
	*lifecycle

	mu              sync.Mutex
	current         *profile.CoachProfile
	columns         map[string][]string
	scheduleSummary string
}

func NewTaskBoard(store *profile.Store) *TaskBoard {
	columns := map[string][]string{
		PoolColumn: append([]string{}, defaultExercisePool...),
	}
	for _, day := range Weekdays {
		columns[day] = []string{}
	}
	return &TaskBoard{
		lifecycle: newLifecycle(store),
		columns:   columns,
	}
}

func (b *TaskBoard) Activate() {
	b.activate(b.onProfile)
}

func (b *TaskBoard) Deactivate() {
	b.deactivate()
}

func (b *TaskBoard) onProfile(p *profile.CoachProfile) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = p
}

func (b *TaskBoard) State() BoardState {
	b.mu.Lock()
	defer b.mu.Unlock()

	columns := make(map[string][]string, len(b.columns))
	for name, items := range b.columns {
		columns[name] = append([]string{}, items...)
	}
	return BoardState{
		Columns:         columns,
		FocusSummary:    derive.FocusSummary(b.current),
		ScheduleSummary: b.scheduleSummary,
	}
}

// Move drags the item at fromIdx of column from to position toIdx of column
// to. Out of range indexes are clamped, moving from an empty column is a
// no-op.
func (b *TaskBoard) Move(from string, fromIdx int, to string, toIdx int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	source, ok := b.columns[from]
	if !ok {
		return fmt.Errorf("unknown column: %s", from)
	}
	target, ok := b.columns[to]
	if !ok {
		return fmt.Errorf("unknown column: %s", to)
	}

	if from == to {
		b.columns[from] = moveItem(source, fromIdx, toIdx)
		return nil
	}

	source, target = transferItem(source, target, fromIdx, toIdx)
	b.columns[from] = source
	b.columns[to] = target
	return nil
}

// ResetWeek empties every day column. The pool keeps what is left in it.
func (b *TaskBoard) ResetWeek() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resetLocked()
}

func (b *TaskBoard) resetLocked() {
	for _, day := range Weekdays {
		b.columns[day] = []string{}
	}
}

// ApplyRecommended replaces the week with sessions, each placed on its day.
// Sessions on days the board does not know land on monday. No sessions, no
// change.
func (b *TaskBoard) ApplyRecommended(sessions []coachapi.ScheduledSession, summary string) {
	if len(sessions) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.resetLocked()
	for _, s := range sessions {
		label := fmt.Sprintf("%s (%dm, %s)", s.Focus, s.DurationMinutes, s.Intensity)
		day := strings.ToLower(strings.TrimSpace(s.Day))
		if _, ok := b.columns[day]; !ok || day == PoolColumn {
			day = "monday"
		}
		b.columns[day] = append(b.columns[day], label)
	}
	b.scheduleSummary = summary
}

func clampIndex(i, maxIdx int) int {
	return max(0, min(maxIdx, i))
}

func moveItem(items []string, fromIdx, toIdx int) []string {
	if len(items) == 0 {
		return items
	}
	from := clampIndex(fromIdx, len(items)-1)
	to := clampIndex(toIdx, len(items)-1)
	if from == to {
		return items
	}

	item := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items[:to], append([]string{item}, items[to:]...)...)
	return items
}

func transferItem(source, target []string, fromIdx, toIdx int) ([]string, []string) {
	if len(source) == 0 {
		return source, target
	}
	from := clampIndex(fromIdx, len(source)-1)
	to := clampIndex(toIdx, len(target))

	item := source[from]
	source = append(source[:from], source[from+1:]...)
	target = append(target[:to], append([]string{item}, target[to:]...)...)
	return source, target
}
