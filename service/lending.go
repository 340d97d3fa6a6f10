package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"library-management/domain"
	"library-management/repository"
)

type lendingService struct {
	database *gorm.DB
	books    repository.BookRepository
	users    repository.UserRepository
	loans    repository.LoanRepository
}

// Borrow hands one copy of a book to a user. The whole read-modify-write runs
// in a single transaction with the book row locked, so a failed check rolls
// back with no side effects.
func (s *lendingService) Borrow(ctx context.Context, isbn, userID string) (repository.Book, error) {
	var book repository.Book
	err := s.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		books := s.books.WithTx(tx)
		loans := s.loans.WithTx(tx)

		b, err := books.GetByISBNForUpdate(ctx, isbn)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBookNotFound
		}
		if err != nil {
			return fmt.Errorf("look up book %q: %w", isbn, err)
		}
		if _, err = s.users.WithTx(tx).GetByUserID(ctx, userID); errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		} else if err != nil {
			return fmt.Errorf("look up user %q: %w", userID, err)
		}
		if b.AvailableCopies == 0 {
			return domain.ErrNoCopiesAvailable
		}
		if _, err = loans.GetOutstanding(ctx, userID, isbn); err == nil {
			return domain.ErrAlreadyBorrowed
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("look up loan: %w", err)
		}

		b.AvailableCopies--
		if err = books.Save(ctx, &b); err != nil {
			return fmt.Errorf("update book %q: %w", isbn, err)
		}
		if err = loans.Create(ctx, &repository.Loan{UserID: userID, ISBN: isbn}); err != nil {
			return fmt.Errorf("create loan: %w", err)
		}
		book = b
		return nil
	})
	return book, err
}

// Return closes the user's loan and frees the copy. The available count is
// capped at total_copies; the cap is unreachable when borrows and returns
// pair up.
func (s *lendingService) Return(ctx context.Context, isbn, userID string) (repository.Book, error) {
	var book repository.Book
	err := s.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		books := s.books.WithTx(tx)
		loans := s.loans.WithTx(tx)

		b, err := books.GetByISBNForUpdate(ctx, isbn)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBookNotFound
		}
		if err != nil {
			return fmt.Errorf("look up book %q: %w", isbn, err)
		}
		if _, err = s.users.WithTx(tx).GetByUserID(ctx, userID); errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		} else if err != nil {
			return fmt.Errorf("look up user %q: %w", userID, err)
		}
		loan, err := loans.GetOutstanding(ctx, userID, isbn)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNoActiveLoan
		}
		if err != nil {
			return fmt.Errorf("look up loan: %w", err)
		}

		if err = loans.Delete(ctx, loan.ID); err != nil {
			return fmt.Errorf("close loan: %w", err)
		}
		if b.AvailableCopies < b.TotalCopies {
			b.AvailableCopies++
		}
		if err = books.Save(ctx, &b); err != nil {
			return fmt.Errorf("update book %q: %w", isbn, err)
		}
		book = b
		return nil
	})
	return book, err
}

type LendingService interface {
	Borrow(ctx context.Context, isbn, userID string) (repository.Book, error)
	Return(ctx context.Context, isbn, userID string) (repository.Book, error)
}

func NewLendingService(
	db *gorm.DB,
	books repository.BookRepository,
	users repository.UserRepository,
	loans repository.LoanRepository,
) LendingService {
	return &lendingService{
		database: db,
		books:    books,
		users:    users,
		loans:    loans,
	}
}
