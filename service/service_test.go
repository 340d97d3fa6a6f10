package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"library-management/domain"
	"library-management/repository"
)

type fixture struct {
	db         *gorm.DB
	catalog    CatalogService
	membership MembershipService
	lending    LendingService
	query      QueryService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "library.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	books := repository.NewBookRepo(db)
	users := repository.NewUserRepo(db)
	loans := repository.NewLoanRepo(db)
	return &fixture{
		db:         db,
		catalog:    NewCatalogService(db, books),
		membership: NewMembershipService(db, users),
		lending:    NewLendingService(db, books, users, loans),
		query:      NewQueryService(books),
	}
}

func (f *fixture) addBook(t *testing.T, isbn string, copies int) repository.Book {
	t.Helper()
	book, err := f.catalog.AddBook(context.Background(), domain.AddBookRequest{
		ISBN:            isbn,
		Title:           "The Go Programming Language",
		Author:          "Alan A. A. Donovan",
		PublicationYear: 2015,
		TotalCopies:     copies,
	})
	require.NoError(t, err)
	return book
}

func (f *fixture) addUser(t *testing.T, email string) repository.User {
	t.Helper()
	user, err := f.membership.AddUser(context.Background(), domain.AddUserRequest{
		Name:  "Reader",
		Email: email,
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) getBook(t *testing.T, isbn string) repository.Book {
	t.Helper()
	book, err := f.catalog.GetBook(context.Background(), isbn)
	require.NoError(t, err)
	return book
}

// requireInvariant checks 0 <= available <= total for one book.
func requireInvariant(t *testing.T, book repository.Book) {
	t.Helper()
	require.LessOrEqual(t, book.AvailableCopies, book.TotalCopies)
}
