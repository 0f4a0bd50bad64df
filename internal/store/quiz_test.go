package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quizforge/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testQuiz(id, title string) quiz.Quiz {
	return quiz.Quiz{
		ID:    id,
		Title: title,
		Questions: []quiz.Question{
			{
				Text:          "What sound do cats make?",
				Options:       []string{"Purr", "Bark", "Moo", "Quack"},
				CorrectAnswer: "Purr",
			},
		},
		CreatedAt: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
	}
}

func TestQuizRepo_RoundTrip(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	ctx := context.Background()

	q := testQuiz("q1", "Animals")
	require.NoError(t, repo.Append(ctx, q))

	all := repo.ListAll(ctx)
	require.Len(t, all, 1)
	require.Equal(t, q.ID, all[0].ID)
	require.Equal(t, q.Title, all[0].Title)
	require.Equal(t, q.Questions, all[0].Questions)
	require.True(t, q.CreatedAt.Equal(all[0].CreatedAt))

	found, err := repo.FindByID(ctx, "q1")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, q.ID, found.ID)
}

func TestQuizRepo_PreservesAppendOrder(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Append(ctx, testQuiz(id, "Quiz "+id)))
	}

	all := repo.ListAll(ctx)
	require.Len(t, all, 3)
	require.Equal(t, "a", all[0].ID)
	require.Equal(t, "b", all[1].ID)
	require.Equal(t, "c", all[2].ID)
}

func TestQuizRepo_FindAbsent(t *testing.T) {
	repo := openTestStore(t).QuizRepo()

	found, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestQuizRepo_DeleteByID(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testQuiz("q1", "Animals")))
	deleted, err := repo.DeleteByID(ctx, "q1")
	require.NoError(t, err)
	require.True(t, deleted)

	found, err := repo.FindByID(ctx, "q1")
	require.NoError(t, err)
	require.Nil(t, found)
	require.Empty(t, repo.ListAll(ctx))
}

func TestQuizRepo_DeleteIdempotent(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testQuiz("q1", "Animals")))

	deleted, err := repo.DeleteByID(ctx, "q1")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.DeleteByID(ctx, "q1")
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestQuizRepo_ListAllEmpty(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	require.Empty(t, repo.ListAll(context.Background()))
}

func TestQuizRepo_DuplicateIDRejected(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testQuiz("q1", "Animals")))
	require.Error(t, repo.Append(ctx, testQuiz("q1", "Animals again")))
}
