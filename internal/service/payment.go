package service

import (
	"context"

	"chatorder-service/internal/paystack"

	"github.com/google/uuid"
)

// PaymentGateway wraps the Paystack client behind an interface so tests can
// fake the gateway.
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, in paystack.InitializeRequest) (*paystack.Transaction, error)
	VerifyTransaction(ctx context.Context, reference string) (*paystack.Verification, error)
}

type PaymentInitResult struct {
	AuthorizationURL string `json:"authorizationUrl"`
	AccessCode       string `json:"accessCode,omitempty"`
	Reference        string `json:"reference"`
}

type VerifyResult struct {
	Success bool                  `json:"success"`
	Data    *paystack.Verification `json:"data"`
}

// PaymentService initiates and reconciles payments for placed orders.
type PaymentService interface {
	// Initialize starts a gateway transaction for a placed order and persists
	// the generated reference on the order.
	Initialize(ctx context.Context, orderID uuid.UUID, email string) (*PaymentInitResult, error)
	// Verify reconciles a gateway reference; on gateway success it marks the
	// referenced order paid. Safe to call at any time, from any conversation
	// state, and idempotent for already-paid orders.
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}
