package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"chatorder-service/internal/models"
	"chatorder-service/internal/paystack"
	"chatorder-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const paystackSuccessStatus = "success"

type paymentService struct {
	repo        *repository.Repository
	gateway     PaymentGateway // nil when no secret key is configured
	events      EventBus
	callbackURL string
	log         *zap.Logger
	now         func() time.Time
}

func NewPaymentService(repo *repository.Repository, gateway PaymentGateway, events EventBus, callbackURL string, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:        repo,
		gateway:     gateway,
		events:      events,
		callbackURL: callbackURL,
		log:         log,
		now:         time.Now,
	}
}

func (s *paymentService) Initialize(ctx context.Context, orderID uuid.UUID, email string) (*PaymentInitResult, error) {
	if s.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}

	order, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusPlaced {
		return nil, ErrOrderNotReady
	}
	if order.TotalAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	// Unique per (order, attempt): a retry after a failed attempt gets a
	// fresh reference.
	reference := fmt.Sprintf("order_%s_%d", order.ID, s.now().UnixMilli())
	amountMinor := int64(math.Round(order.TotalAmount * 100))

	s.log.Info("initializing payment",
		zap.String("order_id", order.ID.String()),
		zap.String("reference", reference),
		zap.Int64("amount_minor", amountMinor),
	)

	tx, err := s.gateway.InitializeTransaction(ctx, paystack.InitializeRequest{
		Email:       email,
		AmountMinor: amountMinor,
		Reference:   reference,
		CallbackURL: s.callbackURL,
		Metadata:    map[string]string{"orderId": order.ID.String()},
	})
	if err != nil {
		s.log.Error("payment initialization failed",
			zap.String("order_id", order.ID.String()),
			zap.String("reference", reference),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrPaymentInitFailed, err)
	}

	if err := s.repo.Orders.UpdatePaymentReference(ctx, order.ID, reference); err != nil {
		return nil, err
	}

	return &PaymentInitResult{
		AuthorizationURL: tx.AuthorizationURL,
		AccessCode:       tx.AccessCode,
		Reference:        reference,
	}, nil
}

func (s *paymentService) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	if reference == "" {
		return nil, ErrReferenceRequired
	}
	if s.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}

	verification, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		if errors.Is(err, paystack.ErrTransactionNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	orderID, idErr := uuid.Parse(verification.Metadata["orderId"])
	if verification.Status != paystackSuccessStatus || idErr != nil {
		// Not a settled transaction (or no order to settle against): report
		// without touching any order.
		return &VerifyResult{Success: false, Data: verification}, nil
	}

	order, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	alreadyPaid := order.Status == models.OrderStatusPaid

	if err := s.repo.Orders.UpdateStatus(ctx, order.ID, models.OrderStatusPaid); err != nil {
		return nil, err
	}
	if err := s.repo.Orders.UpdatePaymentReference(ctx, order.ID, reference); err != nil {
		return nil, err
	}

	// Re-verifying a paid order re-applies the same overwrite; the paid event
	// goes out only on the first transition.
	if s.events != nil && !alreadyPaid {
		_ = s.events.PublishOrderPaid(ctx, OrderPaidEvent{
			OrderID:     order.ID,
			SessionID:   order.SessionID,
			TotalAmount: order.TotalAmount,
			Reference:   reference,
			PaidAt:      s.now(),
		})
	}

	s.log.Info("payment verified",
		zap.String("order_id", order.ID.String()),
		zap.String("reference", reference),
		zap.Bool("already_paid", alreadyPaid),
	)

	return &VerifyResult{Success: true, Data: verification}, nil
}
