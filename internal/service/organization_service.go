package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/allenkiakshay/vessify/internal/dto"
	"github.com/allenkiakshay/vessify/internal/models"
	"github.com/allenkiakshay/vessify/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrAlreadyMember        = errors.New("user is already a member")
	ErrMemberNotFound       = errors.New("member not found")
	ErrCannotRemoveOwner    = errors.New("the owner cannot be removed")
	ErrInvalidRole          = errors.New("role must be admin or member")
)

type OrganizationService struct {
	orgRepo  *repository.OrganizationRepository
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewOrganizationService(orgRepo *repository.OrganizationRepository, userRepo *repository.UserRepository, logger *zap.Logger) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create makes a new organization with the creator as its owner.
func (s *OrganizationService) Create(ctx context.Context, userID uuid.UUID, name string) (*dto.OrganizationResponse, error) {
	now := time.Now()
	org := &models.Organization{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	owner := &models.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         userID,
		Role:           models.RoleOwner,
		CreatedAt:      now,
	}

	if err := s.orgRepo.Create(ctx, org, owner); err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}

	s.logger.Info("Organization created",
		zap.String("organization_id", org.ID.String()),
		zap.String("owner_id", userID.String()),
	)

	return organizationResponse(org), nil
}

// Get returns an organization the caller belongs to. Non-members get the same
// not-found answer as for a missing organization.
func (s *OrganizationService) Get(ctx context.Context, userID, orgID uuid.UUID) (*dto.OrganizationResponse, error) {
	ok, err := s.orgRepo.HasAccess(ctx, userID, orgID)
	if err != nil {
		return nil, fmt.Errorf("membership check: %w", err)
	}
	if !ok {
		return nil, ErrOrganizationNotFound
	}

	org, err := s.orgRepo.GetByID(ctx, orgID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}

	return organizationResponse(org), nil
}

func (s *OrganizationService) List(ctx context.Context, userID uuid.UUID) ([]dto.OrganizationResponse, error) {
	orgs, err := s.orgRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}

	responses := make([]dto.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, *organizationResponse(org))
	}
	return responses, nil
}

// AddMember adds a user (looked up by email) to the organization. Only owners
// and admins may manage members, and ownership is never granted this way.
func (s *OrganizationService) AddMember(ctx context.Context, actorID, orgID uuid.UUID, email, role string) (*dto.MemberResponse, error) {
	if err := s.checkCanManage(ctx, actorID, orgID); err != nil {
		return nil, err
	}

	memberRole := models.OrganizationRole(role)
	if memberRole != models.RoleAdmin && memberRole != models.RoleMember {
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if _, err := s.orgRepo.GetMember(ctx, orgID, user.ID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup member: %w", err)
	}

	member := &models.OrganizationMember{
		OrganizationID: orgID,
		UserID:         user.ID,
		Role:           memberRole,
		CreatedAt:      time.Now(),
	}
	if err := s.orgRepo.AddMember(ctx, member); err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}

	return &dto.MemberResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     string(memberRole),
	}, nil
}

func (s *OrganizationService) RemoveMember(ctx context.Context, actorID, orgID, memberID uuid.UUID) error {
	if err := s.checkCanManage(ctx, actorID, orgID); err != nil {
		return err
	}

	member, err := s.orgRepo.GetMember(ctx, orgID, memberID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMemberNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup member: %w", err)
	}
	if member.Role == models.RoleOwner {
		return ErrCannotRemoveOwner
	}

	if err := s.orgRepo.RemoveMember(ctx, orgID, memberID); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}

func (s *OrganizationService) checkCanManage(ctx context.Context, actorID, orgID uuid.UUID) error {
	member, err := s.orgRepo.GetMember(ctx, orgID, actorID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrForbidden
	}
	if err != nil {
		return fmt.Errorf("lookup member: %w", err)
	}
	if !member.Role.CanManageMembers() {
		return ErrForbidden
	}
	return nil
}

func organizationResponse(org *models.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:        org.ID.String(),
		Name:      org.Name,
		CreatedBy: org.CreatedBy.String(),
		CreatedAt: org.CreatedAt.Format(time.RFC3339),
	}
}
