package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBookRequest() AddBookRequest {
	return AddBookRequest{
		ISBN:            "9780134190440",
		Title:           "The Go Programming Language",
		Author:          "Alan A. A. Donovan",
		PublicationYear: 2015,
		TotalCopies:     2,
	}
}

func TestAddBookRequestValidate(t *testing.T) {
	require.NoError(t, validBookRequest().Validate())

	cases := []struct {
		name    string
		mutate  func(*AddBookRequest)
		message string
	}{
		{"empty isbn", func(r *AddBookRequest) { r.ISBN = "" }, "ISBN must not be empty."},
		{"short isbn", func(r *AddBookRequest) { r.ISBN = "123" }, "ISBN must be 13 characters long."},
		{"empty title", func(r *AddBookRequest) { r.Title = "" }, "Title must not be empty."},
		{"empty author", func(r *AddBookRequest) { r.Author = "" }, "Author must not be empty."},
		{"year too early", func(r *AddBookRequest) { r.PublicationYear = 999 }, "Publication year must be a valid number between 1000 and 2100."},
		{"year too late", func(r *AddBookRequest) { r.PublicationYear = 2101 }, "Publication year must be a valid number between 1000 and 2100."},
		{"negative copies", func(r *AddBookRequest) { r.TotalCopies = -1 }, "Total copies must not be negative."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBookRequest()
			tc.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.message, err.Error())

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestAddUserRequestValidate(t *testing.T) {
	assert.NoError(t, AddUserRequest{Name: "Alice", Email: "alice@example.com"}.Validate())
	assert.EqualError(t, AddUserRequest{Email: "alice@example.com"}.Validate(), "Name must not be empty.")
	assert.EqualError(t, AddUserRequest{Name: "Alice"}.Validate(), "Email must not be empty.")
	assert.EqualError(t, AddUserRequest{Name: "Alice", Email: "not-an-address"}.Validate(), "Email must be a valid address.")
}

func TestLoanRequestValidate(t *testing.T) {
	assert.NoError(t, LoanRequest{ISBN: "9780134190440", UserID: "u-1"}.Validate())
	assert.EqualError(t, LoanRequest{UserID: "u-1"}.Validate(), "ISBN must not be empty.")
	assert.EqualError(t, LoanRequest{ISBN: "9780134190440"}.Validate(), "User id must not be empty.")
}
