package store

import (
	"context"
	"time"

	"carrier-booking-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements every store interface on top of a Mongo database.
type MongoStore struct {
	DB *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{DB: db}
}

func (s *MongoStore) CreateOrder(ctx context.Context, order *models.Order) error {
	collection := s.DB.Collection("orders")

	count, err := collection.CountDocuments(ctx, bson.M{"orderID": order.OrderID})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}

	order.CreatedAt = time.Now()
	result, err := collection.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return nil
}

func (s *MongoStore) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.DB.Collection("orders").FindOne(ctx, bson.M{"orderID": orderID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *MongoStore) ItemPackages(ctx context.Context, orderID, itemID string) (map[string]string, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, item := range order.ShippingItems {
		if item.ItemID == itemID {
			return item.Packages, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MongoStore) SetItemPackages(ctx context.Context, orderID, itemID string, packages map[string]string) error {
	result, err := s.DB.Collection("orders").UpdateOne(ctx,
		bson.M{"orderID": orderID, "shippingItems.itemID": itemID},
		bson.M{"$set": bson.M{"shippingItems.$.packages": packages}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) CreateLabel(ctx context.Context, label *models.Label) (string, error) {
	label.CreatedAt = time.Now()
	result, err := s.DB.Collection("labels").InsertOne(ctx, label)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", ErrNotFound
	}
	label.ID = oid
	return oid.Hex(), nil
}

func (s *MongoStore) GetLabel(ctx context.Context, id string) (*models.Label, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var label models.Label
	err = s.DB.Collection("labels").FindOne(ctx, bson.M{"_id": oid}).Decode(&label)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &label, nil
}

func (s *MongoStore) UnbookedLabels(ctx context.Context, testMode bool) ([]models.Label, error) {
	filter := bson.M{
		"status":   "draft",
		"testMode": testMode,
		"waybillID": bson.M{
			"$exists": false,
		},
	}
	cursor, err := s.DB.Collection("labels").Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var labels []models.Label
	if err = cursor.All(ctx, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

func (s *MongoStore) ClaimLabel(ctx context.Context, id, waybillID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.DB.Collection("labels").UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"waybillID": waybillID, "status": "published"}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) SetLabelPDF(ctx context.Context, id, url string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.DB.Collection("labels").UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"pdfURL": url}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) CreateWaybill(ctx context.Context, waybill *models.Waybill) (string, error) {
	waybill.CreatedAt = time.Now()
	waybill.UpdatedAt = waybill.CreatedAt
	result, err := s.DB.Collection("waybills").InsertOne(ctx, waybill)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", ErrNotFound
	}
	waybill.ID = oid
	return oid.Hex(), nil
}

func (s *MongoStore) GetWaybill(ctx context.Context, id string) (*models.Waybill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var waybill models.Waybill
	err = s.DB.Collection("waybills").FindOne(ctx, bson.M{"_id": oid}).Decode(&waybill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &waybill, nil
}

func (s *MongoStore) RequestData(ctx context.Context, id string) (models.RequestData, error) {
	waybill, err := s.GetWaybill(ctx, id)
	if err != nil {
		return nil, err
	}
	return waybill.RequestData, nil
}

func (s *MongoStore) SaveRequestData(ctx context.Context, id string, data models.RequestData) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.DB.Collection("waybills").UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"requestData": data, "status": "booked", "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) SetTitle(ctx context.Context, id, title string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.DB.Collection("waybills").UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"title": title, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	collection := s.DB.Collection("users")

	count, err := collection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}

	user.CreatedAt = time.Now()
	_, err = collection.InsertOne(ctx, user)
	return err
}

func (s *MongoStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Admin messages live in a single document; $addToSet keeps them unique.
func (s *MongoStore) AddMessage(ctx context.Context, message string) error {
	_, err := s.DB.Collection("adminMessages").UpdateOne(ctx,
		bson.M{"_id": "admin"},
		bson.M{"$addToSet": bson.M{"messages": message}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) Messages(ctx context.Context, limit int) ([]string, error) {
	var doc struct {
		Messages []string `bson:"messages"`
	}
	err := s.DB.Collection("adminMessages").FindOne(ctx, bson.M{"_id": "admin"}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []string{}, nil
		}
		return nil, err
	}
	if limit > 0 && limit < len(doc.Messages) {
		return doc.Messages[:limit], nil
	}
	return doc.Messages, nil
}
