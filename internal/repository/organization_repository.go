package repository

import (
	"context"
	"errors"

	"github.com/allenkiakshay/vessify/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type OrganizationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewOrganizationRepository(db *pgxpool.Pool, logger *zap.Logger) *OrganizationRepository {
	return &OrganizationRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the organization and its owner membership in one transaction.
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization, owner *models.OrganizationMember) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	orgQuery := squirrel.Insert("organizations").
		Columns("id", "name", "created_by", "created_at", "updated_at").
		Values(org.ID, org.Name, org.CreatedBy, org.CreatedAt, org.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := orgQuery.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	memberQuery := squirrel.Insert("organization_members").
		Columns("organization_id", "user_id", "role", "created_at").
		Values(owner.OrganizationID, owner.UserID, string(owner.Role), owner.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = memberQuery.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	query := squirrel.Select("id", "name", "created_by", "created_at", "updated_at").
		From("organizations").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var org models.Organization
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&org.ID, &org.Name, &org.CreatedBy, &org.CreatedAt, &org.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &org, nil
}

// ListByUser returns every organization the user is a member of.
func (r *OrganizationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Organization, error) {
	query := squirrel.Select("o.id", "o.name", "o.created_by", "o.created_at", "o.updated_at").
		From("organizations o").
		Join("organization_members m ON m.organization_id = o.id").
		Where(squirrel.Eq{"m.user_id": userID}).
		OrderBy("o.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []*models.Organization
	for rows.Next() {
		var org models.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.CreatedBy, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, &org)
	}

	return orgs, rows.Err()
}

func (r *OrganizationRepository) AddMember(ctx context.Context, member *models.OrganizationMember) error {
	query := squirrel.Insert("organization_members").
		Columns("organization_id", "user_id", "role", "created_at").
		Values(member.OrganizationID, member.UserID, string(member.Role), member.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *OrganizationRepository) RemoveMember(ctx context.Context, orgID, userID uuid.UUID) error {
	query := squirrel.Delete("organization_members").
		Where(squirrel.Eq{"organization_id": orgID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OrganizationRepository) GetMember(ctx context.Context, orgID, userID uuid.UUID) (*models.OrganizationMember, error) {
	query := squirrel.Select("organization_id", "user_id", "role", "created_at").
		From("organization_members").
		Where(squirrel.Eq{"organization_id": orgID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var member models.OrganizationMember
	var role string
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&member.OrganizationID, &member.UserID, &role, &member.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	member.Role = models.OrganizationRole(role)

	return &member, nil
}

// HasAccess is the membership predicate the extraction pipeline and every
// transaction read path consult before touching organization data.
func (r *OrganizationRepository) HasAccess(ctx context.Context, userID, orgID uuid.UUID) (bool, error) {
	query := squirrel.Select("1").
		From("organization_members").
		Where(squirrel.Eq{"organization_id": orgID, "user_id": userID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
