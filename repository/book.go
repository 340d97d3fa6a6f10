package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookRepository struct {
	database *gorm.DB
}

func (b *bookRepository) WithTx(tx *gorm.DB) BookRepository {
	return &bookRepository{database: tx}
}

func (b *bookRepository) Create(ctx context.Context, book *Book) error {
	return b.database.WithContext(ctx).Model(Book{}).Create(book).Error
}

func (b *bookRepository) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	var book Book
	err := b.database.WithContext(ctx).Model(Book{}).Where("isbn = ?", isbn).First(&book).Error
	return book, err
}

// GetByISBNForUpdate locks the book row for the rest of the transaction so
// concurrent borrows cannot lose copy-count updates.
func (b *bookRepository) GetByISBNForUpdate(ctx context.Context, isbn string) (Book, error) {
	var book Book
	err := b.database.WithContext(ctx).Model(Book{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("isbn = ?", isbn).
		First(&book).Error
	return book, err
}

func (b *bookRepository) Save(ctx context.Context, book *Book) error {
	return b.database.WithContext(ctx).Save(book).Error
}

// List returns books in catalog insertion order.
func (b *bookRepository) List(ctx context.Context, availableOnly bool) ([]Book, error) {
	var books []Book
	query := b.database.WithContext(ctx).Model(Book{}).Order("id")
	if availableOnly {
		query = query.Where("available_copies > 0")
	}
	err := query.Find(&books).Error
	return books, err
}

type BookRepository interface {
	WithTx(tx *gorm.DB) BookRepository
	Create(ctx context.Context, book *Book) error
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	GetByISBNForUpdate(ctx context.Context, isbn string) (Book, error)
	Save(ctx context.Context, book *Book) error
	List(ctx context.Context, availableOnly bool) ([]Book, error)
}

func NewBookRepo(db *gorm.DB) BookRepository {
	return &bookRepository{database: db}
}
