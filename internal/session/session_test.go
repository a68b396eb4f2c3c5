package session

import (
	"testing"

	"docquiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuiz(n int) *dto.QuizDetailResponse {
	questions := make([]dto.QuestionResponse, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, dto.QuestionResponse{
			ID:            i + 1,
			Question:      "What is discussed?",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: i % 4,
			Explanation:   "Explained.",
			DiveDeeper:    "More detail.",
		})
	}
	return &dto.QuizDetailResponse{
		QuizID:    "01HZXF3V5T9R2K7M4N6P8Q0S1T",
		Title:     "Quiz from notes.pdf",
		Questions: questions,
	}
}

func TestNew_RequiresQuizData(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	_, err = New(&dto.QuizDetailResponse{})
	require.Error(t, err)
}

func TestNew_StartsInProgressAtFirstQuestion(t *testing.T) {
	s, err := New(newTestQuiz(3))
	require.NoError(t, err)

	assert.Equal(t, StateInProgress, s.State())
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, -1, s.SelectedAnswer())
	assert.False(t, s.ShowFeedback())
	assert.Empty(t, s.Answers())
}

func TestSubmit_WithoutSelectionRejected(t *testing.T) {
	s, err := New(newTestQuiz(2))
	require.NoError(t, err)

	_, err = s.Submit()
	require.Error(t, err)
	assert.False(t, s.ShowFeedback())
	assert.Empty(t, s.Answers())
}

func TestSubmit_RecordsAnswerAndShowsFeedback(t *testing.T) {
	s, err := New(newTestQuiz(2))
	require.NoError(t, err)

	require.NoError(t, s.Select(0))
	correct, err := s.Submit()
	require.NoError(t, err)

	assert.True(t, correct)
	assert.True(t, s.ShowFeedback())

	answers := s.Answers()
	require.Len(t, answers, 1)
	assert.Equal(t, 0, answers[1].SelectedAnswer)
	assert.True(t, answers[1].Correct)
}

func TestSubmit_ReplacesEarlierAnswerForSameQuestion(t *testing.T) {
	s, err := New(newTestQuiz(2))
	require.NoError(t, err)

	require.NoError(t, s.Select(3))
	correct, err := s.Submit()
	require.NoError(t, err)
	assert.False(t, correct)

	require.NoError(t, s.Select(0))
	correct, err = s.Submit()
	require.NoError(t, err)
	assert.True(t, correct)

	answers := s.Answers()
	require.Len(t, answers, 1)
	assert.Equal(t, 0, answers[1].SelectedAnswer)
	assert.True(t, answers[1].Correct)
}

func TestSelect_OutOfRangeRejected(t *testing.T) {
	s, err := New(newTestQuiz(1))
	require.NoError(t, err)

	require.Error(t, s.Select(-1))
	require.Error(t, s.Select(4))
	assert.Equal(t, -1, s.SelectedAnswer())
}

func TestNext_AdvancesAndClearsFeedback(t *testing.T) {
	s, err := New(newTestQuiz(3))
	require.NoError(t, err)

	require.NoError(t, s.Select(0))
	_, err = s.Submit()
	require.NoError(t, err)

	s.Next()

	assert.Equal(t, StateInProgress, s.State())
	assert.Equal(t, 1, s.CurrentIndex())
	assert.Equal(t, -1, s.SelectedAnswer())
	assert.False(t, s.ShowFeedback())
}

func TestNext_FromLastQuestionCompletes(t *testing.T) {
	s, err := New(newTestQuiz(1))
	require.NoError(t, err)

	require.NoError(t, s.Select(0))
	_, err = s.Submit()
	require.NoError(t, err)

	s.Next()

	assert.Equal(t, StateCompleted, s.State())
}

func TestPrevious_RestoresRecordedAnswer(t *testing.T) {
	s, err := New(newTestQuiz(3))
	require.NoError(t, err)

	require.NoError(t, s.Select(2))
	_, err = s.Submit()
	require.NoError(t, err)
	s.Next()

	s.Previous()

	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, 2, s.SelectedAnswer())
	assert.True(t, s.ShowFeedback())
}

func TestPrevious_UnansweredQuestionClearsSelection(t *testing.T) {
	s, err := New(newTestQuiz(3))
	require.NoError(t, err)

	// Skip the first question without answering.
	s.Next()
	require.NoError(t, s.Select(1))

	s.Previous()

	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, -1, s.SelectedAnswer())
	assert.False(t, s.ShowFeedback())
}

func TestPrevious_AtFirstQuestionIsNoOp(t *testing.T) {
	s, err := New(newTestQuiz(2))
	require.NoError(t, err)

	s.Previous()

	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, StateInProgress, s.State())
}

func TestRestart_ResetsEverything(t *testing.T) {
	s, err := New(newTestQuiz(2))
	require.NoError(t, err)

	require.NoError(t, s.Select(0))
	_, err = s.Submit()
	require.NoError(t, err)
	s.Next()
	require.NoError(t, s.Select(1))
	_, err = s.Submit()
	require.NoError(t, err)
	s.Next()
	require.Equal(t, StateCompleted, s.State())

	s.Restart()

	assert.Equal(t, StateInProgress, s.State())
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, -1, s.SelectedAnswer())
	assert.False(t, s.ShowFeedback())
	assert.Empty(t, s.Answers())
}

func TestScore_MatchesServerRounding(t *testing.T) {
	quiz := newTestQuiz(3)
	s, err := New(quiz)
	require.NoError(t, err)

	// Answer only the first question, correctly.
	require.NoError(t, s.Select(quiz.Questions[0].CorrectAnswer))
	_, err = s.Submit()
	require.NoError(t, err)

	correct, total, percent := s.Score()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 3, total)
	assert.Equal(t, 33, percent)
}

func TestCompletedSessionRejectsPlay(t *testing.T) {
	s, err := New(newTestQuiz(1))
	require.NoError(t, err)

	require.NoError(t, s.Select(0))
	_, err = s.Submit()
	require.NoError(t, err)
	s.Next()
	require.Equal(t, StateCompleted, s.State())

	require.Error(t, s.Select(1))
	_, err = s.Submit()
	require.Error(t, err)

	// Next and Previous are no-ops after completion.
	s.Next()
	s.Previous()
	assert.Equal(t, StateCompleted, s.State())
}
