package repository

import (
	"context"
	"errors"
	"time"

	"github.com/allenkiakshay/vessify/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var transactionColumns = []string{
	"id", "organization_id", "user_id", "text", "amount", "date",
	"description", "category", "confidence", "reasoning", "created_at", "updated_at",
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	var category *string
	if tx.Category != nil {
		s := string(*tx.Category)
		category = &s
	}

	query := squirrel.Insert("transactions").
		Columns(transactionColumns...).
		Values(tx.ID, tx.OrganizationID, tx.UserID, tx.Text, tx.Amount, tx.Date,
			tx.Description, category, tx.Confidence, tx.Reasoning, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetByID is always filtered by organization: a record belonging to another
// organization is indistinguishable from a missing one.
func (r *TransactionRepository) GetByID(ctx context.Context, id, orgID uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"id": id, "organization_id": orgID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	tx, err := scanTransaction(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// ListByOrganization returns one page of transactions, newest first, with ties
// on created_at broken by id so pagination stays deterministic. It fetches
// limit+1 rows past the cursor; the extra row only signals hasMore and is not
// returned. A cursor that does not resolve inside the organization yields
// ErrNotFound.
func (r *TransactionRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, limit int, cursor *uuid.UUID) ([]*models.Transaction, bool, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"organization_id": orgID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit + 1)).
		PlaceholderFormat(squirrel.Dollar)

	if cursor != nil {
		cursorCreatedAt, err := r.cursorPosition(ctx, orgID, *cursor)
		if err != nil {
			return nil, false, err
		}
		// Strictly after the cursor record in (created_at DESC, id DESC) order.
		query = query.Where(squirrel.Expr("(created_at, id) < (?, ?)", cursorCreatedAt, *cursor))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, false, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, false, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	hasMore := len(transactions) > limit
	if hasMore {
		transactions = transactions[:limit]
	}

	return transactions, hasMore, nil
}

func (r *TransactionRepository) cursorPosition(ctx context.Context, orgID, cursor uuid.UUID) (time.Time, error) {
	query := squirrel.Select("created_at").
		From("transactions").
		Where(squirrel.Eq{"id": cursor, "organization_id": orgID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return time.Time{}, err
	}

	var createdAt time.Time
	err = r.db.QueryRow(ctx, sql, args...).Scan(&createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, err
	}

	return createdAt, nil
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var tx models.Transaction
	var category *string
	err := row.Scan(
		&tx.ID, &tx.OrganizationID, &tx.UserID, &tx.Text, &tx.Amount, &tx.Date,
		&tx.Description, &category, &tx.Confidence, &tx.Reasoning, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if category != nil {
		c := models.TransactionCategory(*category)
		tx.Category = &c
	}
	return &tx, nil
}
