package repository

import "gorm.io/gorm"

type Book struct {
	gorm.Model
	ISBN            string `gorm:"type:varchar(13);column:isbn;uniqueIndex;not null"`
	Title           string `gorm:"type:varchar(255);column:title;not null"`
	Author          string `gorm:"type:varchar(255);column:author;not null"`
	PublicationYear int    `gorm:"column:publication_year;not null"`
	TotalCopies     uint   `gorm:"type:int unsigned;column:total_copies;not null"`
	AvailableCopies uint   `gorm:"type:int unsigned;column:available_copies;not null"`
}

type User struct {
	gorm.Model
	UserID string `gorm:"type:varchar(36);column:user_id;uniqueIndex;not null"`
	Name   string `gorm:"type:varchar(255);column:name;not null"`
	Email  string `gorm:"type:varchar(255);column:email;uniqueIndex;not null"`
}

// Loan rows are soft-deleted on return, so the ledger keeps history while
// outstanding-loan lookups only see open loans.
type Loan struct {
	gorm.Model
	UserID string `gorm:"type:varchar(36);column:user_id;index;not null"`
	ISBN   string `gorm:"type:varchar(13);column:isbn;index;not null"`
}
