package game

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/wordloop/internal/apperr"
)

// Session is a game in progress or finished.
type Session struct {
	ID            string    `json:"id"`
	GameType      GameType  `json:"game_type"`
	QuestionCount int       `json:"question_count"`
	StartedAt     time.Time `json:"started_at"`
	Result        *Result   `json:"result,omitempty"`
}

// Outcome is what the learner achieved in a session.
type Outcome struct {
	CorrectCount int `json:"correct_count"`
	BestStreak   int `json:"best_streak"`
	// TimeSpentSeconds is measured from the session start when nil.
	TimeSpentSeconds *float64 `json:"time_spent_seconds,omitempty"`
}

// Result is the immutable score of a finished session.
type Result struct {
	SessionID        string    `json:"session_id"`
	GameType         GameType  `json:"game_type"`
	CorrectCount     int       `json:"correct_count"`
	TotalCount       int       `json:"total_count"`
	TimeSpentSeconds float64   `json:"time_spent_seconds"`
	BestStreak       int       `json:"best_streak"`
	Score            int       `json:"score"`
	Points           int       `json:"points"`
	Perfect          bool      `json:"perfect"`
	FinishedAt       time.Time `json:"finished_at"`
}

// DefaultSessionTTL is how long a session is kept after it started or finished.
const DefaultSessionTTL = 24 * time.Hour

// Tracker keeps game sessions in memory and finalizes each of them once.
// Sessions older than the TTL are dropped when a new session starts.
type Tracker struct {
	scorer *Scorer
	now    func() time.Time
	newID  func() string
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewTracker(scorer *Scorer) *Tracker {
	return &Tracker{
		scorer:   scorer,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
		ttl:      DefaultSessionTTL,
		sessions: make(map[string]*Session),
	}
}

// WithSessionTTL sets how long sessions are kept. A non-positive ttl keeps the default.
func (t *Tracker) WithSessionTTL(ttl time.Duration) *Tracker {
	if ttl > 0 {
		t.ttl = ttl
	}
	return t
}

// Start opens a session with a fixed number of questions.
func (t *Tracker) Start(gameType GameType, questionCount int) (Session, error) {
	if _, err := t.scorer.Bundle(gameType); err != nil {
		return Session{}, err
	}
	if questionCount <= 0 {
		return Session{}, apperr.Validation("question count must be positive, got %d", questionCount)
	}

	session := &Session{
		ID:            t.newID(),
		GameType:      gameType,
		QuestionCount: questionCount,
		StartedAt:     t.now(),
	}
	t.mu.Lock()
	t.evictExpired(session.StartedAt)
	t.sessions[session.ID] = session
	t.mu.Unlock()
	return *session, nil
}

// evictExpired must be called with t.mu held.
func (t *Tracker) evictExpired(now time.Time) {
	for id, session := range t.sessions {
		lastActivity := session.StartedAt
		if session.Result != nil {
			lastActivity = session.Result.FinishedAt
		}
		if now.Sub(lastActivity) > t.ttl {
			delete(t.sessions, id)
		}
	}
}

// Get returns a copy of the session.
func (t *Tracker) Get(id string) (Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	session, ok := t.sessions[id]
	if !ok {
		return Session{}, apperr.NotFound("game session %s", id)
	}
	return *session, nil
}

// Finish scores the session. A session can be finished only once.
func (t *Tracker) Finish(id string, outcome Outcome) (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	session, ok := t.sessions[id]
	if !ok {
		return Result{}, apperr.NotFound("game session %s", id)
	}
	if session.Result != nil {
		return Result{}, apperr.Validation("game session %s is already finalized", id)
	}

	finishedAt := t.now()
	timeSpent := finishedAt.Sub(session.StartedAt).Seconds()
	if outcome.TimeSpentSeconds != nil {
		timeSpent = *outcome.TimeSpentSeconds
	}
	points, err := t.scorer.ScoreGameSession(session.GameType, outcome.CorrectCount, session.QuestionCount, timeSpent, outcome.BestStreak)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		SessionID:        session.ID,
		GameType:         session.GameType,
		CorrectCount:     outcome.CorrectCount,
		TotalCount:       session.QuestionCount,
		TimeSpentSeconds: timeSpent,
		BestStreak:       outcome.BestStreak,
		Score:            int(math.Round(float64(outcome.CorrectCount) * 100 / float64(session.QuestionCount))),
		Points:           points,
		Perfect:          outcome.CorrectCount == session.QuestionCount,
		FinishedAt:       finishedAt,
	}
	session.Result = &result
	slog.Default().Info("game session finished",
		"sessionID", session.ID,
		"gameType", session.GameType,
		"points", points,
	)
	return result, nil
}
