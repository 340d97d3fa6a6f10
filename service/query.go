package service

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"

	"library-management/domain"
	"library-management/repository"
)

// StatusAvailable restricts listings to books with free copies; any other
// status value lists the whole catalog.
const StatusAvailable = "available"

type queryService struct {
	books repository.BookRepository
}

// ListBooks returns book summaries in catalog insertion order. The sequence
// can be ranged over more than once.
func (s *queryService) ListBooks(ctx context.Context, status string) (iter.Seq[domain.BookSummary], error) {
	books, err := s.books.List(ctx, status == StatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	summaries := lo.Map(books, func(b repository.Book, _ int) domain.BookSummary {
		return domain.BookSummary{
			ISBN:            b.ISBN,
			Title:           b.Title,
			Author:          b.Author,
			AvailableCopies: b.AvailableCopies,
		}
	})
	return slices.Values(summaries), nil
}

type QueryService interface {
	ListBooks(ctx context.Context, status string) (iter.Seq[domain.BookSummary], error)
}

func NewQueryService(books repository.BookRepository) QueryService {
	return &queryService{books: books}
}
