package views

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/dawarpower/internal/coachapi"
	"github.com/2beens/dawarpower/internal/profile"
	"github.com/2beens/dawarpower/internal/telemetry/tracing"
	"github.com/2beens/dawarpower/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type BoardMoveRequest struct {
	From      string `json:"from"`
	FromIndex int    `json:"fromIndex"`
	To        string `json:"to"`
	ToIndex   int    `json:"toIndex"`
}

type BoardApplyRequest struct {
	Sessions []coachapi.ScheduledSession `json:"sessions"`
	Summary  string                      `json:"summary"`
}

type RecommendationParams struct {
	FocusAreas []string `json:"focusAreas"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	views *Views
}

func NewHandler(views *Views) *Handler {
	return &Handler{
		views: views,
	}
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.profile.get")
	defer span.End()

	pkg.WriteJSON(w, handler.views.Editor.State(), http.StatusOK)
}

func (handler *Handler) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.profile.save")
	defer span.End()

	var form profile.CoachProfile
	if !decodeBody(w, r, &form, false) {
		return
	}

	if err := handler.views.Editor.Submit(ctx, form); err != nil {
		writeViewError(w, "save profile", err, http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, handler.views.Editor.State(), http.StatusOK)
}

func (handler *Handler) HandleClearProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.profile.clear")
	defer span.End()

	if err := handler.views.Editor.Clear(ctx); err != nil {
		writeViewError(w, "clear profile", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, handler.views.Editor.State(), http.StatusOK)
}

func (handler *Handler) HandleOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.onboarding")
	defer span.End()

	var form OnboardingForm
	if !decodeBody(w, r, &form, false) {
		return
	}

	saved, err := handler.views.Onboarding.Submit(ctx, form)
	if err != nil {
		writeViewError(w, "onboarding", err, http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, saved, http.StatusCreated)
}

func (handler *Handler) HandleListPresets(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.presets.list")
	defer span.End()

	pkg.WriteJSON(w, handler.views.QuickStart.Cards(), http.StatusOK)
}

func (handler *Handler) HandleApplyPreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.presets.apply")
	defer span.End()

	key := mux.Vars(r)["key"]
	applied, err := handler.views.QuickStart.Apply(ctx, key)
	if errors.Is(err, ErrUnknownPreset) {
		pkg.WriteJSON(w, ErrorResponse{Error: "unknown preset: " + key}, http.StatusNotFound)
		return
	}
	if err != nil {
		writeViewError(w, "apply preset", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, applied, http.StatusOK)
}

// HandleGetMealPlan shows the current plan, loading the sample on first use.
func (handler *Handler) HandleGetMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.mealPlan.get")
	defer span.End()

	if handler.views.MealPlan.HasPlan() {
		pkg.WriteJSON(w, handler.views.MealPlan.State(), http.StatusOK)
		return
	}

	state, err := handler.views.MealPlan.LoadSample(ctx)
	if err != nil {
		writeViewError(w, "load sample meal plan", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleGenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.mealPlan.generate")
	defer span.End()

	var form *coachapi.MealPlanForm
	if !decodeBody(w, r, &form, true) {
		return
	}

	state, err := handler.views.MealPlan.Generate(ctx, form)
	if err != nil {
		writeViewError(w, "generate meal plan", err, http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleGetSchedule(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.schedule.get")
	defer span.End()

	pkg.WriteJSON(w, handler.views.Schedule.State(), http.StatusOK)
}

func (handler *Handler) HandleBuildSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.schedule.build")
	defer span.End()

	state, err := handler.views.Schedule.Build(ctx)
	if err != nil {
		writeViewError(w, "build schedule", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleFetchSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.schedule.fetch")
	defer span.End()

	state, err := handler.views.Schedule.FetchStored(ctx)
	if err != nil {
		writeViewError(w, "fetch schedule", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.schedule.recommendation")
	defer span.End()

	var params RecommendationParams
	if !decodeBody(w, r, &params, true) {
		return
	}

	state, err := handler.views.Schedule.Recommend(ctx, params.FocusAreas)
	if err != nil {
		writeViewError(w, "coach recommendation", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.board.get")
	defer span.End()

	pkg.WriteJSON(w, handler.views.Board.State(), http.StatusOK)
}

func (handler *Handler) HandleBoardMove(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.board.move")
	defer span.End()

	var move BoardMoveRequest
	if !decodeBody(w, r, &move, false) {
		return
	}

	if err := handler.views.Board.Move(move.From, move.FromIndex, move.To, move.ToIndex); err != nil {
		pkg.WriteJSON(w, ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, handler.views.Board.State(), http.StatusOK)
}

func (handler *Handler) HandleBoardReset(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.board.reset")
	defer span.End()

	handler.views.Board.ResetWeek()
	pkg.WriteJSON(w, handler.views.Board.State(), http.StatusOK)
}

// HandleBoardApply fills the week with the given sessions, or with the
// latest schedule when none are given.
func (handler *Handler) HandleBoardApply(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.board.apply")
	defer span.End()

	var params BoardApplyRequest
	if !decodeBody(w, r, &params, true) {
		return
	}
	if len(params.Sessions) == 0 {
		params.Sessions, params.Summary = handler.views.Schedule.Sessions()
	}

	handler.views.Board.ApplyRecommended(params.Sessions, params.Summary)
	pkg.WriteJSON(w, handler.views.Board.State(), http.StatusOK)
}

func (handler *Handler) HandleGetWellness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.wellness.get")
	defer span.End()

	state, err := handler.views.Wellness.RefreshHistory(ctx)
	if err != nil {
		writeViewError(w, "wellness history", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleWellnessImports(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.wellness.imports")
	defer span.End()

	pkg.WriteJSON(w, handler.views.Wellness.ImportOptions(), http.StatusOK)
}

func (handler *Handler) HandleSubmitWellness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.wellness.submit")
	defer span.End()

	var form WellnessForm
	if !decodeBody(w, r, &form, false) {
		return
	}

	state, err := handler.views.Wellness.Submit(ctx, form)
	if err != nil {
		writeViewError(w, "submit wellness", err, http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleImportSample(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.wellness.importSample")
	defer span.End()

	source := mux.Vars(r)["source"]
	state, err := handler.views.Wellness.ImportSample(ctx, source)
	if errors.Is(err, ErrUnknownSource) {
		pkg.WriteJSON(w, ErrorResponse{Error: "unknown source: " + source}, http.StatusNotFound)
		return
	}
	if err != nil {
		writeViewError(w, "import wellness sample", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleImportProvider(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.wellness.importProvider")
	defer span.End()

	state, err := handler.views.Wellness.ImportProvider(ctx, mux.Vars(r)["provider"])
	if err != nil {
		writeViewError(w, "import wellness provider", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.exercises.list")
	defer span.End()

	state, err := handler.views.Exercises.List(ctx, r.URL.Query().Get("search"))
	if err != nil {
		writeViewError(w, "list exercises", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

// HandleGetExercise answers an empty state when the route carries no usable id.
func (handler *Handler) HandleGetExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.exercises.get")
	defer span.End()

	state, err := handler.views.Exercises.Detail(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeViewError(w, "get exercise", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.exercises.add")
	defer span.End()

	var exercise coachapi.Exercise
	if !decodeBody(w, r, &exercise, false) {
		return
	}

	state, err := handler.views.Exercises.Add(ctx, exercise)
	if err != nil {
		writeViewError(w, "add exercise", err, http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleEditExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.exercises.edit")
	defer span.End()

	var exercise coachapi.Exercise
	if !decodeBody(w, r, &exercise, false) {
		return
	}

	state, err := handler.views.Exercises.Edit(ctx, mux.Vars(r)["id"], exercise)
	if err != nil {
		writeViewError(w, "edit exercise", err, http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.exercises.delete")
	defer span.End()

	state, err := handler.views.Exercises.Delete(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeViewError(w, "delete exercise", err, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.signup")
	defer span.End()

	var form SignupForm
	if !decodeBody(w, r, &form, false) {
		return
	}

	state, err := handler.views.Signup.Submit(ctx, form)
	if err != nil {
		writeViewError(w, "signup", err, http.StatusBadRequest)
		return
	}

	statusCode := http.StatusOK
	if state.User != nil {
		statusCode = http.StatusCreated
	}
	pkg.WriteJSON(w, state, statusCode)
}

// decodeBody reads a JSON body into v. With optional set, an empty body is
// accepted and leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	log.Errorf("%s %s, unmarshal json body: %s", r.Method, r.URL.Path, err)
	pkg.WriteJSON(w, ErrorResponse{Error: "invalid request body"}, http.StatusBadRequest)
	return false
}

// writeViewError answers 503 for an inactive view and statusCode otherwise.
func writeViewError(w http.ResponseWriter, action string, err error, statusCode int) {
	if errors.Is(err, ErrInactive) {
		pkg.WriteJSON(w, ErrorResponse{Error: err.Error()}, http.StatusServiceUnavailable)
		return
	}
	log.Errorf("%s: %s", action, err)
	pkg.WriteJSON(w, ErrorResponse{Error: err.Error()}, statusCode)
}
