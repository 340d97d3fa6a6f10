package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"library-management/domain"
	"library-management/repository"
)

type catalogService struct {
	database *gorm.DB
	books    repository.BookRepository
}

func (s *catalogService) AddBook(ctx context.Context, req domain.AddBookRequest) (repository.Book, error) {
	var book repository.Book
	err := s.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		books := s.books.WithTx(tx)
		_, err := books.GetByISBN(ctx, req.ISBN)
		if err == nil {
			return domain.ErrDuplicateISBN
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("look up isbn %q: %w", req.ISBN, err)
		}
		book = repository.Book{
			ISBN:            req.ISBN,
			Title:           req.Title,
			Author:          req.Author,
			PublicationYear: req.PublicationYear,
			TotalCopies:     uint(req.TotalCopies),
			AvailableCopies: uint(req.TotalCopies),
		}
		if err = books.Create(ctx, &book); err != nil {
			return fmt.Errorf("create book %q: %w", req.ISBN, err)
		}
		return nil
	})
	return book, err
}

func (s *catalogService) GetBook(ctx context.Context, isbn string) (repository.Book, error) {
	book, err := s.books.GetByISBN(ctx, isbn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.Book{}, domain.ErrBookNotFound
	}
	if err != nil {
		return repository.Book{}, fmt.Errorf("look up isbn %q: %w", isbn, err)
	}
	return book, nil
}

type CatalogService interface {
	AddBook(ctx context.Context, req domain.AddBookRequest) (repository.Book, error)
	GetBook(ctx context.Context, isbn string) (repository.Book, error)
}

func NewCatalogService(db *gorm.DB, books repository.BookRepository) CatalogService {
	return &catalogService{database: db, books: books}
}
