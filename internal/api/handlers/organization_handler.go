package handlers

import (
	"errors"

	"github.com/allenkiakshay/vessify/internal/dto"
	"github.com/allenkiakshay/vessify/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrganizationHandler struct {
	orgService *service.OrganizationService
	logger     *zap.Logger
}

func NewOrganizationHandler(orgService *service.OrganizationService, logger *zap.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
		logger:     logger,
	}
}

// Create makes a new organization owned by the caller.
func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	resp, err := h.orgService.Create(c.Context(), userID, req.Name)
	if err != nil {
		h.logger.Error("Failed to create organization", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create organization",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List returns the organizations the caller belongs to.
func (h *OrganizationHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.orgService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list organizations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list organizations",
		})
	}

	return c.JSON(resp)
}

// Get returns one organization the caller belongs to.
func (h *OrganizationHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid organization ID",
		})
	}

	resp, err := h.orgService.Get(c.Context(), userID, orgID)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Organization not found",
			})
		}
		h.logger.Error("Failed to get organization", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get organization",
		})
	}

	return c.JSON(resp)
}

// AddMember adds a user to the organization by email.
func (h *OrganizationHandler) AddMember(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid organization ID",
		})
	}

	var req dto.AddMemberRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email is required",
		})
	}
	if req.Role == "" {
		req.Role = "member"
	}

	resp, err := h.orgService.AddMember(c.Context(), userID, orgID, req.Email, req.Role)
	if err != nil {
		return h.mapMemberError(c, err, "Failed to add member")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// RemoveMember removes a user from the organization.
func (h *OrganizationHandler) RemoveMember(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid organization ID",
		})
	}

	memberID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid member ID",
		})
	}

	if err := h.orgService.RemoveMember(c.Context(), userID, orgID, memberID); err != nil {
		return h.mapMemberError(c, err, "Failed to remove member")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *OrganizationHandler) mapMemberError(c *fiber.Ctx, err error, logMsg string) error {
	switch {
	case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrCannotRemoveOwner):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only owners and admins can manage members",
		})
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrMemberNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrAlreadyMember):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		h.logger.Error(logMsg, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": logMsg,
		})
	}
}
