package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrInterviewNotFound covers both a missing id and a non-active record;
	// candidates must not be able to tell the two apart.
	ErrInterviewNotFound = errors.New("interview not found")
	// ErrEmptyQuestions rejects record creation before any write is attempted.
	ErrEmptyQuestions = errors.New("interview must have at least one question")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}
