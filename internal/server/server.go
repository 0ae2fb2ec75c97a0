// Package server provides the JSON HTTP handlers of the practice and game services.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	"github.com/at-ishikawa/wordloop/internal/game"
	"github.com/at-ishikawa/wordloop/internal/practice"
)

const maxBodyBytes = 1 << 20

// Options configures the middleware around the handlers.
type Options struct {
	AllowedOrigins    []string
	RequestsPerSecond float64
	Burst             int
}

// Handler serves the practice engine and game sessions over JSON.
type Handler struct {
	engine  PracticeEngine
	scorer  *game.Scorer
	tracker *game.Tracker
	options Options
}

// NewHandler creates a new Handler.
func NewHandler(engine PracticeEngine, scorer *game.Scorer, tracker *game.Tracker, options Options) *Handler {
	return &Handler{
		engine:  engine,
		scorer:  scorer,
		tracker: tracker,
		options: options,
	}
}

// Routes returns the HTTP handler with CORS and rate limiting applied.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.healthz)
	mux.HandleFunc("POST /v1/learners/{learnerID}/plans", h.createPlan)
	mux.HandleFunc("POST /v1/learners/{learnerID}/sessions", h.createSession)
	mux.HandleFunc("POST /v1/learners/{learnerID}/questions", h.createQuestion)
	mux.HandleFunc("POST /v1/learners/{learnerID}/answers", h.recordAnswer)
	mux.HandleFunc("POST /v1/games/score", h.scoreGame)
	mux.HandleFunc("POST /v1/games", h.startGame)
	mux.HandleFunc("POST /v1/games/{sessionID}/finish", h.finishGame)

	limiter := NewRateLimiter(h.options.RequestsPerSecond, h.options.Burst)
	return corsMiddleware(limiter.middleware(mux), h.options.AllowedOrigins)
}

type planRequest struct {
	TargetCount int `json:"target_count"`
}

type questionRequest struct {
	VocabularyID int64 `json:"vocabulary_id"`
	// RecentAccuracy is computed from the learner's recent answers when omitted.
	RecentAccuracy *float64 `json:"recent_accuracy,omitempty"`
}

type scoreRequest struct {
	GameType         game.GameType `json:"game_type"`
	CorrectCount     int           `json:"correct_count"`
	TotalCount       int           `json:"total_count"`
	TimeSpentSeconds float64       `json:"time_spent_seconds"`
	BestStreak       int           `json:"best_streak"`
}

type scoreResponse struct {
	Points int `json:"points"`
}

type startGameRequest struct {
	GameType      game.GameType `json:"game_type"`
	QuestionCount int           `json:"question_count"`
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decode(r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}
	plan, err := h.engine.PlanDailyPractice(r.Context(), r.PathValue("learnerID"), req.TargetCount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decode(r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}
	session, err := h.engine.BuildSession(r.Context(), r.PathValue("learnerID"), req.TargetCount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := decode(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}
	learnerID := r.PathValue("learnerID")

	var accuracy float64
	if req.RecentAccuracy != nil {
		accuracy = *req.RecentAccuracy
	} else {
		var err error
		if accuracy, err = h.engine.RecentAccuracy(r.Context(), learnerID); err != nil {
			writeError(w, r, err)
			return
		}
	}

	question, err := h.engine.GenerateQuestion(r.Context(), learnerID, req.VocabularyID, accuracy)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func (h *Handler) recordAnswer(w http.ResponseWriter, r *http.Request) {
	var input practice.AnswerInput
	if err := decode(r, &input, false); err != nil {
		writeError(w, r, err)
		return
	}
	input.LearnerID = r.PathValue("learnerID")

	result, err := h.engine.RecordAnswer(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) scoreGame(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decode(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}
	points, err := h.scorer.ScoreGameSession(req.GameType, req.CorrectCount, req.TotalCount, req.TimeSpentSeconds, req.BestStreak)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreResponse{Points: points})
}

func (h *Handler) startGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := decode(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}
	session, err := h.tracker.Start(req.GameType, req.QuestionCount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/games/"+session.ID)
	writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) finishGame(w http.ResponseWriter, r *http.Request) {
	var outcome game.Outcome
	if err := decode(r, &outcome, false); err != nil {
		writeError(w, r, err)
		return
	}
	result, err := h.tracker.Finish(r.PathValue("sessionID"), outcome)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// decode reads a JSON body into v. Unknown fields are rejected.
func decode(r *http.Request, v any, allowEmpty bool) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return nil
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return apperr.Validation("field %s must be %s", typeErr.Field, typeErr.Type.String())
		}
		return apperr.Validation("invalid request body: %s", strconv.Quote(err.Error()))
	}
	return nil
}
