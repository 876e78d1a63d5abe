package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"carrier-booking-api-server/config"
	"carrier-booking-api-server/internal/models"
	"carrier-booking-api-server/internal/packaging"
)

// shippingTimeLayout is the carrier's local date-time format.
const shippingTimeLayout = "2006-01-02T15:04:05"

// Builder assembles carrier-compliant booking payloads from an order, one
// of its shipping lines and the store configuration.
type Builder struct {
	carrier   config.CarrierConfig
	sender    config.SenderConfig
	extractor *packaging.Extractor
}

func NewBuilder(carrier config.CarrierConfig, sender config.SenderConfig, extractor *packaging.Extractor) *Builder {
	return &Builder{carrier: carrier, sender: sender, extractor: extractor}
}

// BuildOptions carries the per-request inputs of a booking.
type BuildOptions struct {
	CustomerNumber string
	// AdditionalInfo is operator-supplied free text for the sender
	// address. Sanitized before use.
	AdditionalInfo string
	// CorrelationID is caller-supplied and may stay empty.
	CorrelationID string
	// ShippingTime defaults to now when zero.
	ShippingTime time.Time
}

// Build produces the booking payload for one shipping line. A malformed
// package metadata map degrades to an empty package list, the booking
// still proceeds.
func (b *Builder) Build(ctx context.Context, order *models.Order, item *models.ShippingItem, opts BuildOptions) (models.BookingPayload, error) {
	recipient := b.recipientAddress(order)

	packages, err := b.extractor.Extract(ctx, order, item.ItemID)
	if err != nil {
		if !errors.Is(err, packaging.ErrMalformedPackageData) {
			return models.BookingPayload{}, err
		}
		packages = []models.Package{}
	}

	shippingTime := opts.ShippingTime
	if shippingTime.IsZero() {
		shippingTime = time.Now()
	}

	payload := models.BookingPayload{
		ShippingDateTime: shippingTime.Format(shippingTimeLayout),
		Parties: models.Parties{
			Sender:      b.senderAddress(opts.AdditionalInfo),
			Recipient:   recipient,
			PickupPoint: pickupPoint(order, item),
		},
		Product: models.Product{
			ID:             ParseMethodID(item.MethodID).Service,
			CustomerNumber: opts.CustomerNumber,
		},
		PurchaseOrder: order.OrderID,
		CorrelationID: opts.CorrelationID,
		Packages:      packages,
	}

	if b.carrier.RecipientNotification {
		payload.Product.Services.RecipientNotification = &models.RecipientNotification{
			Email:  recipient.Contact.Email,
			Mobile: recipient.Contact.PhoneNumber,
		}
	}

	return payload, nil
}

// senderAddress is the store's booking address from configuration.
func (b *Builder) senderAddress(additionalInfo string) models.Address {
	reference := b.sender.Reference
	return models.Address{
		Name:                  b.sender.StoreName,
		AddressLine:           b.sender.Street1,
		AddressLine2:          b.sender.Street2,
		PostalCode:            b.sender.PostCode,
		City:                  b.sender.City,
		CountryCode:           b.sender.Country,
		Reference:             &reference,
		AdditionalAddressInfo: Sanitize(additionalInfo),
		Contact: models.Contact{
			Name:        b.sender.ContactPerson,
			Email:       b.sender.Email,
			PhoneNumber: b.sender.Phone,
		},
	}
}

// recipientAddress is derived from the order's shipping address. The
// customer note travels as additional address info.
func (b *Builder) recipientAddress(order *models.Order) models.Address {
	return models.Address{
		Name:                  order.RecipientName(),
		AddressLine:           order.Shipping.Address1,
		AddressLine2:          order.Shipping.Address2,
		PostalCode:            order.Shipping.PostCode,
		City:                  order.Shipping.City,
		CountryCode:           order.Shipping.Country,
		Reference:             nil,
		AdditionalAddressInfo: order.CustomerNote,
		Contact: models.Contact{
			Name:        order.FullName(),
			Email:       order.BillingEmail,
			PhoneNumber: order.BillingPhone,
		},
	}
}

// pickupPoint resolves the stored pickup point of a shipping line. Lines
// of other integrations, or lines without a stored id, yield none.
func pickupPoint(order *models.Order, item *models.ShippingItem) *models.PickupPoint {
	method := ParseMethodID(item.MethodID)
	if !method.Recognized() {
		return nil
	}
	id := item.PickupPointID
	if id == "" {
		id = method.PickupPointID
	}
	if id == "" {
		return nil
	}
	return &models.PickupPoint{
		ID:          id,
		CountryCode: order.Shipping.Country,
	}
}

// Sanitize strips markup and control characters from operator-supplied
// free text.
func Sanitize(raw string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range raw {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case inTag:
		case r < 0x20 && r != '\n' && r != '\t':
		default:
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}
