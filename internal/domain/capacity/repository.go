package capacity

import (
	"context"

	"github.com/BruksfildServices01/office-scheduler/internal/models"
)

// Pair identifies the cells of one provider at one site.
type Pair struct {
	SiteID     uint
	ProviderID uint
}

type Repository interface {
	Transaction(
		ctx context.Context,
		fn func(r Repository) error,
	) error

	// GetSite resolves a site inside the tenant; foreign or unknown sites
	// are NotFound.
	GetSite(
		ctx context.Context,
		tenantID uint,
		siteID uint,
	) (*models.Site, error)

	// LockCells takes row locks on every cell of the pair, in day order.
	LockCells(
		ctx context.Context,
		siteID uint,
		providerID uint,
	) ([]models.CapacityCell, error)

	ListCells(
		ctx context.Context,
		siteID uint,
		providerID uint,
	) ([]models.CapacityCell, error)

	SaveCell(
		ctx context.Context,
		cell *models.CapacityCell,
	) error

	CreateConsumption(
		ctx context.Context,
		row *models.SiteClientAssignment,
	) error

	// ReleaseConsumption deactivates the canonical row for the client and
	// day and reports how many rows changed.
	ReleaseConsumption(
		ctx context.Context,
		siteID uint,
		providerID uint,
		clientID uint,
		day Day,
	) (int64, error)

	ListActivePairs(
		ctx context.Context,
	) ([]Pair, error)

	// Canonical and Fallback are bound to the repository's transaction.
	Canonical() ConsumptionSource
	Fallback() ConsumptionSource
}
