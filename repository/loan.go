package repository

import (
	"context"

	"gorm.io/gorm"
)

type loanRepository struct {
	database *gorm.DB
}

func (l *loanRepository) WithTx(tx *gorm.DB) LoanRepository {
	return &loanRepository{database: tx}
}

func (l *loanRepository) Create(ctx context.Context, loan *Loan) error {
	return l.database.WithContext(ctx).Model(Loan{}).Create(loan).Error
}

// GetOutstanding finds the open loan for a (user, book) pair. Returned loans
// are soft-deleted and never match.
func (l *loanRepository) GetOutstanding(ctx context.Context, userID, isbn string) (Loan, error) {
	var loan Loan
	err := l.database.WithContext(ctx).Model(Loan{}).
		Where("user_id = ? AND isbn = ?", userID, isbn).
		First(&loan).Error
	return loan, err
}

func (l *loanRepository) Delete(ctx context.Context, loanID uint) error {
	return l.database.WithContext(ctx).Model(Loan{}).Delete(&Loan{}, loanID).Error
}

type LoanRepository interface {
	WithTx(tx *gorm.DB) LoanRepository
	Create(ctx context.Context, loan *Loan) error
	GetOutstanding(ctx context.Context, userID, isbn string) (Loan, error)
	Delete(ctx context.Context, loanID uint) error
}

func NewLoanRepo(db *gorm.DB) LoanRepository {
	return &loanRepository{database: db}
}
