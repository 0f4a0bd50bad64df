package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quizforge/internal/quiz"
)

// QuizRepo is the persistence boundary the quiz pipeline's callers use.
// The collection is ordered by insertion; quizzes are never updated in
// place.
type QuizRepo interface {
	// Append adds a quiz to the end of the collection.
	Append(ctx context.Context, q quiz.Quiz) error

	// ListAll returns every quiz in append order. It never fails the
	// caller: on an underlying read error it degrades to an empty list.
	ListAll(ctx context.Context) []quiz.Quiz

	// FindByID returns the quiz with the given id, or nil if absent.
	FindByID(ctx context.Context, id string) (*quiz.Quiz, error)

	// DeleteByID removes the quiz with the given id and reports whether
	// a quiz was removed. Deleting an id that is not present is a no-op,
	// not an error.
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type quizRepo struct {
	db *sql.DB
}

func (r *quizRepo) Append(ctx context.Context, q quiz.Quiz) error {
	questions, err := json.Marshal(q.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO quizzes (id, title, questions, created_at) VALUES (?, ?, ?, ?)`,
		q.ID, q.Title, string(questions), q.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append quiz: %w", err)
	}
	return nil
}

func (r *quizRepo) ListAll(ctx context.Context) []quiz.Quiz {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, questions, created_at FROM quizzes ORDER BY seq`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var quizzes []quiz.Quiz
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil
		}
		quizzes = append(quizzes, q)
	}
	if rows.Err() != nil {
		return nil
	}
	return quizzes
}

func (r *quizRepo) FindByID(ctx context.Context, id string) (*quiz.Quiz, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, questions, created_at FROM quizzes WHERE id = ?`, id)

	q, err := scanQuiz(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find quiz %s: %w", id, err)
	}
	return &q, nil
}

func (r *quizRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete quiz %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete quiz %s: %w", id, err)
	}
	return n > 0, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanQuiz(s scanner) (quiz.Quiz, error) {
	var q quiz.Quiz
	var questions, createdAt string

	if err := s.Scan(&q.ID, &q.Title, &questions, &createdAt); err != nil {
		return quiz.Quiz{}, err
	}
	if err := json.Unmarshal([]byte(questions), &q.Questions); err != nil {
		return quiz.Quiz{}, fmt.Errorf("unmarshal questions: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return quiz.Quiz{}, fmt.Errorf("parse created_at: %w", err)
	}
	q.CreatedAt = t
	return q, nil
}
