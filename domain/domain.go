package domain

import "strings"

type AddBookRequest struct {
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publication_year"`
	TotalCopies     int    `json:"total_copies"`
}

type AddUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoanRequest is shared by the borrow and return endpoints.
type LoanRequest struct {
	ISBN   string `json:"isbn"`
	UserID string `json:"user_id"`
}

type BookResponse struct {
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publication_year"`
	TotalCopies     uint   `json:"total_copies"`
	AvailableCopies uint   `json:"available_copies"`
}

type UserResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// BookSummary is the listing shape; it omits fields the listing never shows.
type BookSummary struct {
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	AvailableCopies uint   `json:"available_copies"`
}

func (r AddBookRequest) Validate() error {
	if r.ISBN == "" {
		return &ValidationError{Field: "isbn", Message: "ISBN must not be empty."}
	}
	if len(r.ISBN) != 13 {
		return &ValidationError{Field: "isbn", Message: "ISBN must be 13 characters long."}
	}
	if r.Title == "" {
		return &ValidationError{Field: "title", Message: "Title must not be empty."}
	}
	if len(r.Title) > 255 {
		return &ValidationError{Field: "title", Message: "Title is too long."}
	}
	if r.Author == "" {
		return &ValidationError{Field: "author", Message: "Author must not be empty."}
	}
	if len(r.Author) > 255 {
		return &ValidationError{Field: "author", Message: "Author is too long."}
	}
	if r.PublicationYear < 1000 || r.PublicationYear > 2100 {
		return &ValidationError{Field: "publication_year", Message: "Publication year must be a valid number between 1000 and 2100."}
	}
	if r.TotalCopies < 0 {
		return &ValidationError{Field: "total_copies", Message: "Total copies must not be negative."}
	}
	return nil
}

func (r AddUserRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "Name must not be empty."}
	}
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "Email must not be empty."}
	}
	if !strings.Contains(r.Email, "@") {
		return &ValidationError{Field: "email", Message: "Email must be a valid address."}
	}
	return nil
}

func (r LoanRequest) Validate() error {
	if r.ISBN == "" {
		return &ValidationError{Field: "isbn", Message: "ISBN must not be empty."}
	}
	if r.UserID == "" {
		return &ValidationError{Field: "user_id", Message: "User id must not be empty."}
	}
	return nil
}
