package views

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/2beens/dawarpower/internal/coachapi"
	"github.com/2beens/dawarpower/internal/profile"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	MsgSynced       = "Synced!"
	MsgSyncFailed   = "Something went wrong. Please try again."
	MsgImportFailed = "Could not import sample data."

	manualSource  = "manual"
	defaultEnergy = "steady"
	historyLimit  = 10

	slotWellnessSubmit  = "wellness-submit"
	slotWellnessHistory = "wellness-history"
)

var (
	EnergyOptions = []string{"low", "steady", "charged"}

	ErrUnknownSource = errors.New("unknown wellness source")
)

type WellnessForm struct {
	Steps       *int     `json:"steps"`
	SleepHours  *float64 `json:"sleepHours"`
	Readiness   *int     `json:"readiness"`
	EnergyLevel string   `json:"energyLevel"`
	Comment     string   `json:"comment"`
}

func DefaultWellnessForm() WellnessForm {
	return WellnessForm{EnergyLevel: defaultEnergy}
}

func (f WellnessForm) validate() error {
	var err error
	if f.Steps != nil && *f.Steps < 0 {
		err = multierr.Append(err, fmt.Errorf("steps: must not be negative"))
	}
	if f.SleepHours != nil && (*f.SleepHours < 0 || *f.SleepHours > 24) {
		err = multierr.Append(err, fmt.Errorf("sleepHours: %v out of range [0, 24]", *f.SleepHours))
	}
	if f.Readiness != nil && (*f.Readiness < 0 || *f.Readiness > 100) {
		err = multierr.Append(err, fmt.Errorf("readiness: %d out of range [0, 100]", *f.Readiness))
	}
	if f.EnergyLevel != "" && !slices.Contains(EnergyOptions, f.EnergyLevel) {
		err = multierr.Append(err, fmt.Errorf("energyLevel: invalid value %q", f.EnergyLevel))
	}
	return err
}

// ImportOption is a canned wearable export the user can sync in one click.
type ImportOption struct {
	Label   string                    `json:"label"`
	Source  string                    `json:"source"`
	Entries []coachapi.WellnessMetric `json:"entries"`
}

// SampleImports returns the canned exports, stamped relative to now.
func SampleImports(now time.Time) []ImportOption {
	today := now.UTC().Format(time.RFC3339)
	yesterday := now.UTC().Add(-24 * time.Hour).Format(time.RFC3339)

	return []ImportOption{
		{
			Label:  "Apple Health sample",
			Source: "apple_health",
			Entries: []coachapi.WellnessMetric{
				{Timestamp: today, Steps: profile.Ptr(9200), SleepHours: profile.Ptr(7.6), Readiness: profile.Ptr(82), EnergyLevel: "steady", Comment: "Office day, light walk at lunch."},
				{Timestamp: yesterday, Steps: profile.Ptr(11400), SleepHours: profile.Ptr(8.1), Readiness: profile.Ptr(88), EnergyLevel: "charged"},
			},
		},
		{
			Label:  "Fitbit sample",
			Source: "fitbit",
			Entries: []coachapi.WellnessMetric{
				{Timestamp: today, Steps: profile.Ptr(5400), SleepHours: profile.Ptr(5.5), Readiness: profile.Ptr(58), EnergyLevel: "low", Comment: "Red-eye flight, need recovery."},
				{Timestamp: yesterday, Steps: profile.Ptr(7800), SleepHours: profile.Ptr(6.2), Readiness: profile.Ptr(64)},
			},
		},
		{
			Label:  "Whoop sample",
			Source: "whoop",
			Entries: []coachapi.WellnessMetric{
				{Timestamp: today, Readiness: profile.Ptr(72), EnergyLevel: "steady", Comment: "Moderate strain day."},
			},
		},
	}
}

type WellnessState struct {
	Form       WellnessForm              `json:"form"`
	Submitting bool                      `json:"submitting"`
	Feedback   string                    `json:"feedback"`
	History    []coachapi.WellnessMetric `json:"history"`
}

// WellnessSync records manual check-ins and imports wearable data. It shows
// no profile data, its lifecycle only guards the remote calls.
type WellnessSync struct {
	*lifecycle
	api   wellnessAPI
	clock func() time.Time

	mu         sync.Mutex
	form       WellnessForm
	submitting bool
	feedback   string
	history    []coachapi.WellnessMetric
}

func NewWellnessSync(store *profile.Store, api wellnessAPI, clock func() time.Time) *WellnessSync {
	if clock == nil {
		clock = time.Now
	}
	return &WellnessSync{
		lifecycle: newLifecycle(store),
		api:       api,
		clock:     clock,
		form:      DefaultWellnessForm(),
		history:   []coachapi.WellnessMetric{},
	}
}

func (ws *WellnessSync) Activate() {
	ws.activate(nil)
}

func (ws *WellnessSync) Deactivate() {
	ws.deactivate()
	ws.mu.Lock()
	ws.submitting = false
	ws.mu.Unlock()
}

func (ws *WellnessSync) State() WellnessState {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.stateLocked()
}

func (ws *WellnessSync) stateLocked() WellnessState {
	return WellnessState{
		Form:       ws.form,
		Submitting: ws.submitting,
		Feedback:   ws.feedback,
		History:    append([]coachapi.WellnessMetric{}, ws.history...),
	}
}

func (ws *WellnessSync) ImportOptions() []ImportOption {
	return SampleImports(ws.clock())
}

// Submit records a manual check-in. A failed call keeps the form for a retry.
func (ws *WellnessSync) Submit(ctx context.Context, form WellnessForm) (WellnessState, error) {
	if err := form.validate(); err != nil {
		return WellnessState{}, err
	}
	if form.EnergyLevel == "" {
		form.EnergyLevel = defaultEnergy
	}

	req, err := ws.begin(ctx, slotWellnessSubmit)
	if err != nil {
		return WellnessState{}, err
	}
	ws.startSubmitting(form)

	metric := coachapi.WellnessMetric{
		Timestamp:   ws.clock().UTC().Format(time.RFC3339Nano),
		Source:      manualSource,
		Steps:       form.Steps,
		SleepHours:  form.SleepHours,
		Readiness:   form.Readiness,
		EnergyLevel: form.EnergyLevel,
		Comment:     form.Comment,
	}
	_, err = ws.api.RecordWellnessMetric(req.ctx, metric)
	if !ws.finishSubmit(req, err, MsgSynced, MsgSyncFailed, true) {
		return ws.State(), nil
	}

	return ws.RefreshHistory(ctx)
}

// ImportSample uploads the canned export of source.
func (ws *WellnessSync) ImportSample(ctx context.Context, source string) (WellnessState, error) {
	idx := slices.IndexFunc(ws.ImportOptions(), func(o ImportOption) bool { return o.Source == source })
	if idx < 0 {
		return WellnessState{}, ErrUnknownSource
	}
	option := ws.ImportOptions()[idx]

	req, err := ws.begin(ctx, slotWellnessSubmit)
	if err != nil {
		return WellnessState{}, err
	}
	ws.startSubmitting(ws.State().Form)

	_, err = ws.api.ImportWellnessMetrics(req.ctx, option.Source, option.Entries)
	if !ws.finishSubmit(req, err, option.Label+" synced", MsgImportFailed, false) {
		return ws.State(), nil
	}

	return ws.RefreshHistory(ctx)
}

// ImportProvider pulls the provider's sample feed from the api and imports
// it as one batch.
func (ws *WellnessSync) ImportProvider(ctx context.Context, provider string) (WellnessState, error) {
	req, err := ws.begin(ctx, slotWellnessSubmit)
	if err != nil {
		return WellnessState{}, err
	}
	ws.startSubmitting(ws.State().Form)

	entries, err := ws.api.ProviderSample(req.ctx, provider)
	if err == nil {
		_, err = ws.api.ImportWellnessMetrics(req.ctx, provider, entries)
	}
	if !ws.finishSubmit(req, err, providerLabel(provider)+" synced", MsgImportFailed, false) {
		return ws.State(), nil
	}

	return ws.RefreshHistory(ctx)
}

// RefreshHistory loads the latest metrics, newest first. A failure empties
// the list.
func (ws *WellnessSync) RefreshHistory(ctx context.Context) (WellnessState, error) {
	req, err := ws.begin(ctx, slotWellnessHistory)
	if err != nil {
		return WellnessState{}, err
	}

	metrics, err := ws.api.ListWellnessMetrics(req.ctx, historyLimit)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	apply := req.done()
	if !apply {
		return ws.stateLocked(), nil
	}
	if err != nil {
		log.Errorf("wellness history: %s", err)
		ws.history = []coachapi.WellnessMetric{}
		return ws.stateLocked(), nil
	}

	history := append([]coachapi.WellnessMetric{}, metrics...)
	slices.Reverse(history)
	ws.history = history
	return ws.stateLocked(), nil
}

func (ws *WellnessSync) startSubmitting(form WellnessForm) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.form = form
	ws.submitting = true
	ws.feedback = ""
}

// finishSubmit applies the outcome of a submit or import and reports whether
// it succeeded and was applied.
func (ws *WellnessSync) finishSubmit(req *request, err error, okMsg, failMsg string, resetForm bool) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	apply := req.done()
	if !apply {
		return false
	}

	ws.submitting = false
	if err != nil {
		log.Errorf("wellness sync: %s", err)
		ws.feedback = failMsg
		return false
	}
	ws.feedback = okMsg
	if resetForm {
		ws.form = DefaultWellnessForm()
	}
	return true
}

func providerLabel(provider string) string {
	for _, o := range SampleImports(time.Time{}) {
		if o.Source == provider {
			return o.Label
		}
	}
	return provider
}
