package repository

import (
	"context"
	"errors"
	"time"
	"vowline/internal/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrBillNotFound = errors.New("bill not found")

type BillRepository interface {
	Create(ctx context.Context, bill entity.Bill) (string, error)
	Get(ctx context.Context, billId string) (entity.Bill, error)
	GetByUser(ctx context.Context, userId string) ([]entity.Bill, error)
	MarkPaid(ctx context.Context, billId string, paidAt time.Time) error
}

type billRepository struct {
	db mongo.Database
}

func NewBillRepository(db mongo.Database) BillRepository {
	return &billRepository{
		db: db,
	}
}

func (r *billRepository) Create(ctx context.Context, bill entity.Bill) (string, error) {
	collection := r.db.Collection("bills")

	bill.Id = uuid.New().String()
	if bill.Status == "" {
		bill.Status = entity.BillStatusUnpaid
	}
	bill.IssuedAt = time.Now()

	_, err := collection.InsertOne(ctx, bill)
	if err != nil {
		return "", err
	}

	return bill.Id, nil
}

func (r *billRepository) Get(ctx context.Context, billId string) (entity.Bill, error) {
	collection := r.db.Collection("bills")

	var bill entity.Bill
	err := collection.FindOne(ctx, bson.M{"_id": billId}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.Bill{}, ErrBillNotFound
		}
		return entity.Bill{}, err
	}

	return bill, nil
}

func (r *billRepository) GetByUser(ctx context.Context, userId string) ([]entity.Bill, error) {
	collection := r.db.Collection("bills")
	opts := options.Find().SetSort(bson.D{{Key: "issuedAt", Value: -1}})

	cursor, err := collection.Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, err
	}

	var bills []entity.Bill
	err = cursor.All(ctx, &bills)
	if err != nil {
		return nil, err
	}

	return bills, nil
}

func (r *billRepository) MarkPaid(ctx context.Context, billId string, paidAt time.Time) error {
	collection := r.db.Collection("bills")

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": billId},
		bson.M{"$set": bson.M{
			"status": entity.BillStatusPaid,
			"paidAt": paidAt,
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrBillNotFound
	}

	return nil
}
