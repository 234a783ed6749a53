package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentNotes carries the purchaser details attached to an order
type PaymentNotes struct {
	FirstName string `bson:"first_name,omitempty" json:"firstName,omitempty"`
	LastName  string `bson:"last_name,omitempty" json:"lastName,omitempty"`
	EmailID   string `bson:"email_id,omitempty" json:"emailId,omitempty"`
	PlanType  string `bson:"plan_type,omitempty" json:"planType,omitempty"`
}

// Payment records a membership order created against the payment gateway
type Payment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	OrderID   string             `bson:"order_id" json:"orderId"`
	Amount    int64              `bson:"amount" json:"amount"`
	Currency  string             `bson:"currency" json:"currency"`
	Receipt   string             `bson:"receipt" json:"receipt"`
	Notes     PaymentNotes       `bson:"notes" json:"notes"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// CreatePaymentRequest represents a membership purchase payload
type CreatePaymentRequest struct {
	PlanType string `json:"planType" validate:"required,oneof=silver gold"`
}
