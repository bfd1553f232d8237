package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/allenkiakshay/vessify/internal/dto"
	"github.com/allenkiakshay/vessify/internal/extraction"
	"github.com/allenkiakshay/vessify/internal/models"
	"github.com/allenkiakshay/vessify/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

var (
	ErrForbidden           = errors.New("user is not a member of the organization")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrEmptyText           = errors.New("text is required")
	ErrInvalidLimit        = errors.New("limit must be between 1 and 100")
	ErrInvalidCursor       = errors.New("cursor does not identify a known transaction")
)

// TransactionStore is the persistence surface the service needs.
type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id, orgID uuid.UUID) (*models.Transaction, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, limit int, cursor *uuid.UUID) ([]*models.Transaction, bool, error)
}

// MembershipChecker is the access-control predicate consulted before any
// organization-scoped read or write.
type MembershipChecker interface {
	HasAccess(ctx context.Context, userID, orgID uuid.UUID) (bool, error)
}

// TextExtractor produces exactly one ParsedTransaction per input and never
// fails; extraction uncertainty is expressed in the confidence field.
type TextExtractor interface {
	Extract(ctx context.Context, text string) extraction.ParsedTransaction
}

type TransactionService struct {
	txRepo    TransactionStore
	members   MembershipChecker
	extractor TextExtractor
	logger    *zap.Logger
}

func NewTransactionService(txRepo TransactionStore, members MembershipChecker, extractor TextExtractor, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo:    txRepo,
		members:   members,
		extractor: extractor,
		logger:    logger,
	}
}

// Extract runs the pipeline for one statement fragment and persists the
// result. Membership is checked before any extraction work so an unauthorized
// caller never spends AI budget. A low-confidence or empty extraction is still
// a success; only infrastructure failures surface as errors.
func (s *TransactionService) Extract(ctx context.Context, userID, orgID uuid.UUID, text string) (*dto.TransactionResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	if err := s.checkAccess(ctx, userID, orgID); err != nil {
		return nil, err
	}

	parsed := s.extractor.Extract(ctx, text)

	now := time.Now()
	tx := &models.Transaction{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         userID,
		Text:           text,
		Amount:         parsed.Amount,
		Date:           parsed.Date,
		Description:    parsed.Description,
		Category:       parsed.Category,
		Confidence:     parsed.Confidence,
		Reasoning:      parsed.Reasoning,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("persist transaction: %w", err)
	}

	s.logger.Info("Transaction extracted",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("organization_id", orgID.String()),
		zap.Float64("confidence", tx.Confidence),
	)

	resp := dto.NewTransactionResponse(tx)
	return &resp, nil
}

// List returns one cursor page, newest first.
func (s *TransactionService) List(ctx context.Context, userID, orgID uuid.UUID, limit int, cursor *uuid.UUID) (*dto.TransactionListResponse, error) {
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit < 1 || limit > maxListLimit {
		return nil, ErrInvalidLimit
	}

	if err := s.checkAccess(ctx, userID, orgID); err != nil {
		return nil, err
	}

	transactions, hasMore, err := s.txRepo.ListByOrganization(ctx, orgID, limit, cursor)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCursor
	}
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	resp := dto.NewTransactionListResponse(transactions, hasMore)
	return &resp, nil
}

// Get fetches one transaction. A record in another organization is reported
// as not found, never as forbidden, so existence does not leak across tenants.
func (s *TransactionService) Get(ctx context.Context, userID, orgID, id uuid.UUID) (*dto.TransactionResponse, error) {
	if err := s.checkAccess(ctx, userID, orgID); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.GetByID(ctx, id, orgID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	resp := dto.NewTransactionResponse(tx)
	return &resp, nil
}

func (s *TransactionService) checkAccess(ctx context.Context, userID, orgID uuid.UUID) error {
	ok, err := s.members.HasAccess(ctx, userID, orgID)
	if err != nil {
		return fmt.Errorf("membership check: %w", err)
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}
