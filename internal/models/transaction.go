package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionCategory string

const (
	CategoryFoodDining     TransactionCategory = "Food & Dining"
	CategoryShopping       TransactionCategory = "Shopping"
	CategoryTransportation TransactionCategory = "Transportation"
	CategoryEntertainment  TransactionCategory = "Entertainment"
	CategoryUtilities      TransactionCategory = "Utilities"
	CategoryHealthcare     TransactionCategory = "Healthcare"
	CategoryTransfer       TransactionCategory = "Transfer"
	CategoryIncome         TransactionCategory = "Income"
	CategoryOther          TransactionCategory = "Other"
)

// Categories lists every valid category in display order.
var Categories = []TransactionCategory{
	CategoryFoodDining,
	CategoryShopping,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryTransfer,
	CategoryIncome,
	CategoryOther,
}

func (c TransactionCategory) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Transaction is the persisted result of one extraction. Records are immutable
// after creation; deletion only happens transitively with the organization.
type Transaction struct {
	ID             uuid.UUID            `db:"id"`
	OrganizationID uuid.UUID            `db:"organization_id"`
	UserID         uuid.UUID            `db:"user_id"`
	Text           string               `db:"text"`
	Amount         *float64             `db:"amount"`
	Date           *time.Time           `db:"date"`
	Description    *string              `db:"description"`
	Category       *TransactionCategory `db:"category"`
	Confidence     float64              `db:"confidence"`
	Reasoning      *string              `db:"reasoning"`
	CreatedAt      time.Time            `db:"created_at"`
	UpdatedAt      time.Time            `db:"updated_at"`
}
