package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrInvalidInput marks a malformed attempt submission: answer/question
	// mismatch, unknown difficulty, missing user id.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a reference to a user or attempt that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyScored marks a re-save of an attempt that was already
	// completed; accepting it would double-count points.
	ErrAlreadyScored = errors.New("attempt already scored")
)

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
