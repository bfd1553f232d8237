package handlers

import (
	"errors"
	"strconv"

	"github.com/allenkiakshay/vessify/internal/dto"
	"github.com/allenkiakshay/vessify/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// Extract runs the extraction pipeline on a statement fragment and stores the
// result. An extraction that recognized nothing is still a 201: uncertainty is
// carried in the confidence field, not in the status code.
func (h *TransactionHandler) Extract(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ExtractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "organizationId is required",
		})
	}

	resp, err := h.txService.Extract(c.Context(), userID, orgID, req.Text)
	if err != nil {
		return h.mapError(c, err, "Extraction failed")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List returns one cursor page of the organization's transactions.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	orgID, err := uuid.Parse(c.Query("organizationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "organizationId is required",
		})
	}

	// A missing limit means the service default; an explicit limit, including
	// 0 or garbage, must survive to validation instead of silently defaulting.
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": service.ErrInvalidLimit.Error(),
			})
		}
		limit = v
	}

	var cursor *uuid.UUID
	if raw := c.Query("cursor"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid cursor",
			})
		}
		cursor = &id
	}

	resp, err := h.txService.List(c.Context(), userID, orgID, limit, cursor)
	if err != nil {
		return h.mapError(c, err, "Failed to list transactions")
	}

	return c.JSON(resp)
}

// Get returns a single transaction within the caller's organization.
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	orgID, err := uuid.Parse(c.Query("organizationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "organizationId is required",
		})
	}

	resp, err := h.txService.Get(c.Context(), userID, orgID, txID)
	if err != nil {
		return h.mapError(c, err, "Failed to get transaction")
	}

	return c.JSON(resp)
}

func (h *TransactionHandler) mapError(c *fiber.Ctx, err error, logMsg string) error {
	switch {
	case errors.Is(err, service.ErrEmptyText),
		errors.Is(err, service.ErrInvalidLimit),
		errors.Is(err, service.ErrInvalidCursor):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You are not a member of this organization",
		})
	case errors.Is(err, service.ErrTransactionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Transaction not found",
		})
	default:
		h.logger.Error(logMsg, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": logMsg,
		})
	}
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
