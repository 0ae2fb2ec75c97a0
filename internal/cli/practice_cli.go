package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/at-ishikawa/wordloop/internal/exercise"
	"github.com/at-ishikawa/wordloop/internal/game"
	"github.com/at-ishikawa/wordloop/internal/practice"
)

//go:generate mockgen -source=practice_cli.go -destination=../mocks/cli/mock_practicer.go -package=mock_cli Practicer

// Practicer is the part of practice.Engine the terminal session drives.
type Practicer interface {
	BuildSession(ctx context.Context, learnerID string, targetCount int) (*practice.Session, error)
	RecordAnswer(ctx context.Context, input practice.AnswerInput) (practice.AnswerResult, error)
}

// Summary counts the answers of one terminal practice.
type Summary struct {
	Correct          int
	Total            int
	BestStreak       int
	TimeSpentSeconds float64

	streak int
}

func (s *Summary) add(isCorrect bool, seconds float64) {
	s.Total++
	s.TimeSpentSeconds += seconds
	if !isCorrect {
		s.streak = 0
		return
	}
	s.Correct++
	s.streak++
	if s.streak > s.BestStreak {
		s.BestStreak = s.streak
	}
}

// PracticeCLI asks the questions of today's session one by one in the terminal
type PracticeCLI struct {
	*InteractiveCLI
	engine    Practicer
	scorer    *game.Scorer
	learnerID string
	questions []exercise.Question
	asked     int
	summary   Summary
	now       func() time.Time
}

// NewPracticeCLI creates a practice CLI. scorer may be nil, then no points are shown.
func NewPracticeCLI(engine Practicer, scorer *game.Scorer, learnerID string, stdin io.Reader, stdout io.Writer) *PracticeCLI {
	return &PracticeCLI{
		InteractiveCLI: newInteractiveCLI(stdin, stdout),
		engine:         engine,
		scorer:         scorer,
		learnerID:      learnerID,
		now:            time.Now,
	}
}

// Prepare builds today's session and returns the number of questions.
func (cli *PracticeCLI) Prepare(ctx context.Context, targetCount int) (int, error) {
	session, err := cli.engine.BuildSession(ctx, cli.learnerID, targetCount)
	if err != nil {
		return 0, fmt.Errorf("engine.BuildSession(%s) > %w", cli.learnerID, err)
	}
	cli.questions = session.Questions
	cli.asked = 0
	cli.summary = Summary{}

	if session.Plan != nil {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Today: %d reviews, %d new words (recent accuracy %.0f%%)\n",
			len(session.Plan.ReviewItems), len(session.Plan.NewItems), session.Accuracy*100)
	}
	for _, skipped := range session.Skipped {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Skipped %s: %s\n", cli.bold.Sprint(skipped.Word), skipped.Reason)
	}
	_, _ = fmt.Fprintln(cli.stdoutWriter)
	return len(cli.questions), nil
}

// Summary returns the answers counted so far.
func (cli *PracticeCLI) Summary() Summary {
	return cli.summary
}

func (cli *PracticeCLI) Session(ctx context.Context) error {
	if cli.asked >= len(cli.questions) {
		cli.printSummary()
		return errEnd
	}
	question := cli.questions[cli.asked]

	_, _ = fmt.Fprintf(cli.stdoutWriter, "[%d/%d] %s\n", cli.asked+1, len(cli.questions), question.Prompt)
	for i, option := range question.Options {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "  %d) %s\n", i+1, option)
	}
	_, _ = cli.bold.Fprint(cli.stdoutWriter, "Answer: ")

	startedAt := cli.now()
	line, err := cli.readLine()
	if err != nil {
		return err
	}
	seconds := cli.now().Sub(startedAt).Seconds()
	submitted := chooseOption(question.Options, line)

	result, err := cli.engine.RecordAnswer(ctx, practice.AnswerInput{
		LearnerID:           cli.learnerID,
		QuestionID:          question.ID,
		VocabularyID:        question.VocabularyID,
		ExerciseType:        question.Type,
		SubmittedAnswer:     submitted,
		CorrectAnswer:       question.CorrectAnswer,
		ResponseTimeSeconds: seconds,
	})
	if err != nil {
		return fmt.Errorf("engine.RecordAnswer(%s) > %w", question.Word, err)
	}
	cli.asked++
	cli.summary.add(result.IsCorrect, seconds)

	if result.IsCorrect {
		_, _ = fmt.Fprint(cli.stdoutWriter, "✅ ")
		_, _ = cli.correct.Fprintf(cli.stdoutWriter, "It's correct. %s is %q\n",
			cli.bold.Sprint(question.Word),
			cli.italic.Sprint(question.CorrectAnswer),
		)
	} else {
		_, _ = fmt.Fprint(cli.stdoutWriter, "❌ ")
		_, _ = cli.wrong.Fprintf(cli.stdoutWriter, "It's wrong. The answer is %q\n",
			cli.italic.Sprint(question.CorrectAnswer),
		)
	}
	if question.Explanation != "" {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "   %s\n", question.Explanation)
	}
	_, _ = fmt.Fprintf(cli.stdoutWriter, "   Next review: %s (%s)\n\n",
		result.NextReviewDate.Format(time.DateOnly),
		result.NewMasteryLevel,
	)
	return nil
}

func (cli *PracticeCLI) printSummary() {
	s := cli.summary
	if s.Total == 0 {
		_, _ = fmt.Fprintln(cli.stdoutWriter, "No more questions to practice!")
		return
	}
	_, _ = fmt.Fprintf(cli.stdoutWriter, "Finished: %d/%d correct, best streak %d, %.0fs\n",
		s.Correct, s.Total, s.BestStreak, s.TimeSpentSeconds)
	if cli.scorer == nil {
		return
	}
	points, err := cli.scorer.ScoreGameSession(game.GameTypeQuiz, s.Correct, s.Total, s.TimeSpentSeconds, s.BestStreak)
	if err != nil {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "No points: %v\n", err)
		return
	}
	_, _ = cli.bold.Fprintf(cli.stdoutWriter, "Points: %d\n", points)
}

// chooseOption maps a 1-based option number to its text. Other input is used as typed.
func chooseOption(options []string, line string) string {
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		return line
	}
	return options[n-1]
}
