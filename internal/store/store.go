package store

import (
	"context"
	"errors"

	"carrier-booking-api-server/internal/models"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("store: not found")

// ErrConflict is returned when a unique key already exists.
var ErrConflict = errors.New("store: already exists")

// OrderStore persists storefront orders and the per-item package metadata
// attached to their shipping lines.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)

	// ItemPackages returns the flat indexed package metadata map for one
	// shipping line, nil if none is stored.
	ItemPackages(ctx context.Context, orderID, itemID string) (map[string]string, error)
	SetItemPackages(ctx context.Context, orderID, itemID string, packages map[string]string) error
}

// LabelStore persists shipping labels, the unit linked to exactly one
// waybill once booked.
type LabelStore interface {
	CreateLabel(ctx context.Context, label *models.Label) (string, error)
	GetLabel(ctx context.Context, id string) (*models.Label, error)

	// UnbookedLabels lists draft labels without a waybill back-reference,
	// filtered by test mode.
	UnbookedLabels(ctx context.Context, testMode bool) ([]models.Label, error)

	// ClaimLabel attaches a label to a waybill document and publishes it.
	ClaimLabel(ctx context.Context, id, waybillID string) error

	SetLabelPDF(ctx context.Context, id, url string) error
}

// WaybillStore persists waybill documents. RequestData is the single
// reconciliation record set per document.
type WaybillStore interface {
	CreateWaybill(ctx context.Context, waybill *models.Waybill) (string, error)
	GetWaybill(ctx context.Context, id string) (*models.Waybill, error)
	RequestData(ctx context.Context, id string) (models.RequestData, error)
	SaveRequestData(ctx context.Context, id string, data models.RequestData) error
	SetTitle(ctx context.Context, id, title string) error
}

// UserStore persists operator accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// MessageStore keeps the deduplicated one-line admin messages surfaced to
// operators.
type MessageStore interface {
	AddMessage(ctx context.Context, message string) error
	Messages(ctx context.Context, limit int) ([]string, error)
}
