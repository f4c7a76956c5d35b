package views

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/2beens/dawarpower/internal/coachapi"
	"github.com/2beens/dawarpower/internal/profile"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	MsgExercisesFailed      = "Could not load exercises. Try again in a moment."
	MsgExerciseNotFound     = "That exercise no longer exists."
	MsgExerciseSaveFailed   = "Could not save the exercise. Try again in a moment."
	MsgExerciseDeleteFailed = "Could not delete the exercise. Try again in a moment."

	// ShowAllCategories is the filter option that disables category search.
	ShowAllCategories = "Show All"

	slotExerciseList   = "exercise-list"
	slotExerciseDetail = "exercise-detail"
	slotExerciseWrite  = "exercise-write"
)

// FilterExercises keeps the exercises whose category contains search, case
// insensitive. An empty search or ShowAllCategories keeps everything.
func FilterExercises(exercises []coachapi.Exercise, search string) []coachapi.Exercise {
	filtered := []coachapi.Exercise{}
	search = strings.TrimSpace(search)
	if search == "" || search == ShowAllCategories {
		return append(filtered, exercises...)
	}

	needle := strings.ToLower(search)
	for _, e := range exercises {
		if strings.Contains(strings.ToLower(e.Category), needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// ParseExerciseID reads a route identifier. A missing, non numeric or non
// positive value means there is nothing to load.
func ParseExerciseID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func validateExercise(e coachapi.Exercise) error {
	var err error
	if strings.TrimSpace(e.ExerciseName) == "" {
		err = multierr.Append(err, errors.New("exerciseName: required"))
	}
	if strings.TrimSpace(e.Category) == "" {
		err = multierr.Append(err, errors.New("category: required"))
	}
	if e.Sets < 0 {
		err = multierr.Append(err, fmt.Errorf("sets: %d must not be negative", e.Sets))
	}
	if e.Reps < 0 {
		err = multierr.Append(err, fmt.Errorf("reps: %d must not be negative", e.Reps))
	}
	return err
}

type ExerciseListState struct {
	Search     string              `json:"search"`
	Exercises  []coachapi.Exercise `json:"exercises"`
	Categories []string            `json:"categories"`
	Message    string              `json:"message"`
}

type ExerciseDetailState struct {
	Exercise *coachapi.Exercise `json:"exercise"`
	Message  string             `json:"message"`
}

// ExerciseCatalog lists, shows and edits the exercise library of the api.
// Every write reloads the list, the way the list screen refreshes after a
// change.
type ExerciseCatalog struct {
	*lifecycle
	api exerciseAPI

	mu        sync.Mutex
	exercises []coachapi.Exercise
	search    string
	message   string
}

func NewExerciseCatalog(store *profile.Store, api exerciseAPI) *ExerciseCatalog {
	return &ExerciseCatalog{
		lifecycle: newLifecycle(store),
		api:       api,
		exercises: []coachapi.Exercise{},
	}
}

func (c *ExerciseCatalog) Activate() {
	c.activate(nil)
}

func (c *ExerciseCatalog) Deactivate() {
	c.deactivate()
}

func (c *ExerciseCatalog) State() ExerciseListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *ExerciseCatalog) stateLocked() ExerciseListState {
	categories := []string{ShowAllCategories}
	for _, e := range c.exercises {
		if e.Category != "" && !slices.Contains(categories, e.Category) {
			categories = append(categories, e.Category)
		}
	}
	return ExerciseListState{
		Search:     c.search,
		Exercises:  FilterExercises(c.exercises, c.search),
		Categories: categories,
		Message:    c.message,
	}
}

// List reloads the library and applies search to it. A failed load keeps the
// last known list on display.
func (c *ExerciseCatalog) List(ctx context.Context, search string) (ExerciseListState, error) {
	req, err := c.begin(ctx, slotExerciseList)
	if err != nil {
		return ExerciseListState{}, err
	}

	exercises, err := c.api.ListExercises(req.ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !req.done() {
		return c.stateLocked(), nil
	}

	c.search = search
	if err != nil {
		log.Errorf("list exercises: %s", err)
		c.message = MsgExercisesFailed
		return c.stateLocked(), nil
	}
	c.message = ""
	c.exercises = append([]coachapi.Exercise{}, exercises...)
	return c.stateLocked(), nil
}

// Detail loads the exercise under the raw route id. An unusable id loads
// nothing and is not an error.
func (c *ExerciseCatalog) Detail(ctx context.Context, rawID string) (ExerciseDetailState, error) {
	id, ok := ParseExerciseID(rawID)
	if !ok {
		if !c.isActive() {
			return ExerciseDetailState{}, ErrInactive
		}
		return ExerciseDetailState{}, nil
	}

	req, err := c.begin(ctx, slotExerciseDetail)
	if err != nil {
		return ExerciseDetailState{}, err
	}

	exercise, err := c.api.GetExercise(req.ctx, id)
	if !req.done() {
		return ExerciseDetailState{}, nil
	}
	if err != nil {
		var apiErr *coachapi.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return ExerciseDetailState{Message: MsgExerciseNotFound}, nil
		}
		log.Errorf("get exercise %d: %s", id, err)
		return ExerciseDetailState{Message: MsgExercisesFailed}, nil
	}
	return ExerciseDetailState{Exercise: exercise}, nil
}

// Add creates an exercise. An invalid exercise is returned as error and
// nothing is sent.
func (c *ExerciseCatalog) Add(ctx context.Context, exercise coachapi.Exercise) (ExerciseListState, error) {
	if err := validateExercise(exercise); err != nil {
		return ExerciseListState{}, err
	}
	exercise.ID = 0

	return c.write(ctx, MsgExerciseSaveFailed, func(ctx context.Context) error {
		_, err := c.api.AddExercise(ctx, exercise)
		return err
	})
}

// Edit replaces the exercise under the raw route id. An unusable id changes
// nothing.
func (c *ExerciseCatalog) Edit(ctx context.Context, rawID string, exercise coachapi.Exercise) (ExerciseListState, error) {
	id, ok := ParseExerciseID(rawID)
	if !ok {
		return c.unchanged()
	}
	if err := validateExercise(exercise); err != nil {
		return ExerciseListState{}, err
	}
	exercise.ID = id

	return c.write(ctx, MsgExerciseSaveFailed, func(ctx context.Context) error {
		_, err := c.api.UpdateExercise(ctx, id, exercise)
		return err
	})
}

// Delete removes the exercise under the raw route id. An unusable id changes
// nothing.
func (c *ExerciseCatalog) Delete(ctx context.Context, rawID string) (ExerciseListState, error) {
	id, ok := ParseExerciseID(rawID)
	if !ok {
		return c.unchanged()
	}

	return c.write(ctx, MsgExerciseDeleteFailed, func(ctx context.Context) error {
		_, err := c.api.DeleteExercise(ctx, id)
		return err
	})
}

func (c *ExerciseCatalog) unchanged() (ExerciseListState, error) {
	if !c.isActive() {
		return ExerciseListState{}, ErrInactive
	}
	return c.State(), nil
}

// write runs one change against the api and reloads the list on success.
func (c *ExerciseCatalog) write(ctx context.Context, failMsg string, call func(ctx context.Context) error) (ExerciseListState, error) {
	req, err := c.begin(ctx, slotExerciseWrite)
	if err != nil {
		return ExerciseListState{}, err
	}

	err = call(req.ctx)

	c.mu.Lock()
	if !req.done() {
		state := c.stateLocked()
		c.mu.Unlock()
		return state, nil
	}
	if err != nil {
		log.Errorf("exercise change failed: %s", err)
		c.message = failMsg
		state := c.stateLocked()
		c.mu.Unlock()
		return state, nil
	}
	search := c.search
	c.mu.Unlock()

	return c.List(ctx, search)
}
