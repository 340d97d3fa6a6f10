package domain

import "errors"

// Lending and catalog failures the boundary layer maps to HTTP statuses.
var (
	ErrBookNotFound      = errors.New("book not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateISBN     = errors.New("a book with this ISBN already exists")
	ErrDuplicateEmail    = errors.New("email is already registered")
	ErrNoCopiesAvailable = errors.New("no copies available")
	ErrAlreadyBorrowed   = errors.New("user already borrowed this book")
	ErrNoActiveLoan      = errors.New("no active loan for this user and book")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
