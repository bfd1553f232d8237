package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/allenkiakshay/vessify/internal/extraction"
	"github.com/allenkiakshay/vessify/internal/models"
	"github.com/allenkiakshay/vessify/internal/repository"
	"github.com/allenkiakshay/vessify/internal/service"
)

type emptyStore struct{}

func (emptyStore) Create(ctx context.Context, tx *models.Transaction) error { return nil }

func (emptyStore) GetByID(ctx context.Context, id, orgID uuid.UUID) (*models.Transaction, error) {
	return nil, repository.ErrNotFound
}

func (emptyStore) ListByOrganization(ctx context.Context, orgID uuid.UUID, limit int, cursor *uuid.UUID) ([]*models.Transaction, bool, error) {
	return nil, false, nil
}

type openMembers struct{}

func (openMembers) HasAccess(ctx context.Context, userID, orgID uuid.UUID) (bool, error) {
	return true, nil
}

type nopExtractor struct{}

func (nopExtractor) Extract(ctx context.Context, text string) extraction.ParsedTransaction {
	return extraction.ParsedTransaction{}
}

func newListTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := service.NewTransactionService(emptyStore{}, openMembers{}, nopExtractor{}, zap.NewNop())
	handler := NewTransactionHandler(svc, zap.NewNop())

	userID := uuid.New().String()
	app := fiber.New()
	app.Get("/transactions", func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return handler.List(c)
	})
	return app
}

func TestTransactionHandler_ListLimitValidation(t *testing.T) {
	app := newListTestApp(t)
	orgID := uuid.New().String()

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{"missing_limit_defaults", "organizationId=" + orgID, fiber.StatusOK},
		{"explicit_zero_rejected", "organizationId=" + orgID + "&limit=0", fiber.StatusBadRequest},
		{"garbage_rejected", "organizationId=" + orgID + "&limit=abc", fiber.StatusBadRequest},
		{"negative_rejected", "organizationId=" + orgID + "&limit=-1", fiber.StatusBadRequest},
		{"over_max_rejected", "organizationId=" + orgID + "&limit=101", fiber.StatusBadRequest},
		{"in_range_accepted", "organizationId=" + orgID + "&limit=50", fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/transactions?"+tt.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
