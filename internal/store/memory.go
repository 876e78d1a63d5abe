package store

import (
	"context"
	"sync"

	"carrier-booking-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory implementation of every store interface.
// Used by tests and local development without a Mongo instance.
type MemoryStore struct {
	mu       sync.RWMutex
	orders   map[string]*models.Order
	labels   map[string]*models.Label
	waybills map[string]*models.Waybill
	users    map[string]*models.User
	messages []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders:   make(map[string]*models.Order),
		labels:   make(map[string]*models.Label),
		waybills: make(map[string]*models.Waybill),
		users:    make(map[string]*models.User),
	}
}

func (s *MemoryStore) CreateOrder(ctx context.Context, order *models.Order) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[order.OrderID]; ok {
		return ErrConflict
	}
	copied := *order
	s.orders[order.OrderID] = &copied
	return nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *MemoryStore) ItemPackages(ctx context.Context, orderID, itemID string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	for _, item := range order.ShippingItems {
		if item.ItemID == itemID {
			return copyStringMap(item.Packages), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) SetItemPackages(ctx context.Context, orderID, itemID string, packages map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return ErrNotFound
	}
	for i := range order.ShippingItems {
		if order.ShippingItems[i].ItemID == itemID {
			order.ShippingItems[i].Packages = copyStringMap(packages)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) CreateLabel(ctx context.Context, label *models.Label) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *label
	copied.ID = primitive.NewObjectID()
	s.labels[copied.ID.Hex()] = &copied
	label.ID = copied.ID
	return copied.ID.Hex(), nil
}

func (s *MemoryStore) GetLabel(ctx context.Context, id string) (*models.Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	label, ok := s.labels[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *label
	return &copied, nil
}

func (s *MemoryStore) UnbookedLabels(ctx context.Context, testMode bool) ([]models.Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.Label
	for _, label := range s.labels {
		if label.WaybillID == "" && label.Status == "draft" && label.TestMode == testMode {
			result = append(result, *label)
		}
	}
	return result, nil
}

func (s *MemoryStore) ClaimLabel(ctx context.Context, id, waybillID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	label, ok := s.labels[id]
	if !ok {
		return ErrNotFound
	}
	label.WaybillID = waybillID
	label.Status = "published"
	return nil
}

func (s *MemoryStore) SetLabelPDF(ctx context.Context, id, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	label, ok := s.labels[id]
	if !ok {
		return ErrNotFound
	}
	label.PDFURL = url
	return nil
}

func (s *MemoryStore) CreateWaybill(ctx context.Context, waybill *models.Waybill) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *waybill
	copied.ID = primitive.NewObjectID()
	copied.RequestData = cloneRequestData(waybill.RequestData)
	s.waybills[copied.ID.Hex()] = &copied
	waybill.ID = copied.ID
	return copied.ID.Hex(), nil
}

func (s *MemoryStore) GetWaybill(ctx context.Context, id string) (*models.Waybill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	waybill, ok := s.waybills[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *waybill
	copied.RequestData = cloneRequestData(waybill.RequestData)
	return &copied, nil
}

func (s *MemoryStore) RequestData(ctx context.Context, id string) (models.RequestData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	waybill, ok := s.waybills[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRequestData(waybill.RequestData), nil
}

func (s *MemoryStore) SaveRequestData(ctx context.Context, id string, data models.RequestData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	waybill, ok := s.waybills[id]
	if !ok {
		return ErrNotFound
	}
	waybill.RequestData = cloneRequestData(data)
	return nil
}

func (s *MemoryStore) SetTitle(ctx context.Context, id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	waybill, ok := s.waybills[id]
	if !ok {
		return ErrNotFound
	}
	waybill.Title = title
	return nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return ErrConflict
	}
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryStore) AddMessage(ctx context.Context, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.messages {
		if existing == message {
			return nil
		}
	}
	s.messages = append(s.messages, message)
	return nil
}

func (s *MemoryStore) Messages(ctx context.Context, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := make([]string, len(s.messages))
	copy(messages, s.messages)
	if limit > 0 && limit < len(messages) {
		messages = messages[:limit]
	}
	return messages, nil
}

func copyStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// cloneRequestData deep-copies a record set so callers never share state
// with the store, matching the isolation a real database round trip gives.
func cloneRequestData(data models.RequestData) models.RequestData {
	if data == nil {
		return nil
	}
	out := make(models.RequestData, len(data))
	for customerNumber, record := range data {
		copied := &models.ConsignmentRecord{
			ConsignmentNumbers:         copyStringMap(record.ConsignmentNumbers),
			InactiveConsignmentNumbers: copyStringMap(record.InactiveConsignmentNumbers),
		}
		if record.Errors != nil {
			copied.Errors = append([]string{}, record.Errors...)
		}
		if record.Waybill != nil {
			waybill := *record.Waybill
			copied.Waybill = &waybill
		}
		out[customerNumber] = copied
	}
	return out
}
