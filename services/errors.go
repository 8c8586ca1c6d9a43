package services

import "errors"

var (
	// ErrDuplicateUsername is returned by Register when the username is taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown-user and wrong-password so the
	// login page cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when an article id or slug does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotOwner is returned when the acting user does not own the article.
	ErrNotOwner = errors.New("not the article owner")
)
