package services

import (
	"codemate/app/models"
	"codemate/config"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Membership plan prices in INR
var membershipAmount = map[string]int64{
	"silver": 300,
	"gold":   700,
}

// PaymentService creates membership orders against the payment gateway
// and records them in the payments collection.
type PaymentService struct {
	client             *razorpay.Client
	paymentsCollection *mongo.Collection
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentsCollection *mongo.Collection) *PaymentService {
	return &PaymentService{
		client:             razorpay.NewClient(config.RazorpayKeyID, config.RazorpaySecret),
		paymentsCollection: paymentsCollection,
	}
}

// CreateOrder creates a gateway order for the given plan and persists
// the resulting payment record
func (s *PaymentService) CreateOrder(ctx context.Context, user *models.User, planType string) (*models.Payment, error) {
	amount, ok := membershipAmount[planType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown plan type %q", ErrValidation, planType)
	}

	receipt := "rcpt_" + uuid.New().String()
	orderData := map[string]interface{}{
		// Amount is in currency subunits (paise)
		"amount":   amount * 100,
		"currency": "INR",
		"receipt":  receipt,
		"notes": map[string]interface{}{
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"emailId":   user.EmailID,
			"planType":  planType,
		},
	}

	order, err := s.client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %v", err)
	}

	orderID, _ := order["id"].(string)
	status, _ := order["status"].(string)

	payment := models.Payment{
		UserID:   user.ID,
		OrderID:  orderID,
		Amount:   amount * 100,
		Currency: "INR",
		Receipt:  receipt,
		Notes: models.PaymentNotes{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			EmailID:   user.EmailID,
			PlanType:  planType,
		},
		Status:    status,
		CreatedAt: time.Now(),
	}

	result, err := s.paymentsCollection.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to save payment: %v", err)
	}
	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		payment.ID = insertedID
	}

	return &payment, nil
}
