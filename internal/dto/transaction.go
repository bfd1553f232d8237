package dto

import (
	"time"

	"github.com/allenkiakshay/vessify/internal/models"
)

// The transaction endpoints keep the camelCase wire contract the original API
// consumers depend on.

type ExtractRequest struct {
	Text           string `json:"text"`
	OrganizationID string `json:"organizationId"`
}

type TransactionResponse struct {
	ID             string   `json:"id"`
	Text           string   `json:"text"`
	OrganizationID string   `json:"organizationId"`
	UserID         string   `json:"userId"`
	Amount         *float64 `json:"amount"`
	Date           *string  `json:"date"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category"`
	Confidence     float64  `json:"confidence"`
	Reasoning      *string  `json:"reasoning,omitempty"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	NextCursor *string               `json:"nextCursor"`
	HasMore    bool                  `json:"hasMore"`
	Count      int                   `json:"count"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:             tx.ID.String(),
		Text:           tx.Text,
		OrganizationID: tx.OrganizationID.String(),
		UserID:         tx.UserID.String(),
		Amount:         tx.Amount,
		Description:    tx.Description,
		Confidence:     tx.Confidence,
		Reasoning:      tx.Reasoning,
		CreatedAt:      tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      tx.UpdatedAt.Format(time.RFC3339),
	}

	if tx.Date != nil {
		// Pure calendar date, no time or zone component.
		date := tx.Date.Format("2006-01-02")
		resp.Date = &date
	}
	if tx.Category != nil {
		category := string(*tx.Category)
		resp.Category = &category
	}

	return resp
}

func NewTransactionListResponse(transactions []*models.Transaction, hasMore bool) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, NewTransactionResponse(tx))
	}

	resp := TransactionListResponse{
		Items:   items,
		HasMore: hasMore,
		Count:   len(items),
	}
	if hasMore && len(transactions) > 0 {
		cursor := transactions[len(transactions)-1].ID.String()
		resp.NextCursor = &cursor
	}

	return resp
}
