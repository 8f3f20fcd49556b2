package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// PaymentService records and lists rent payments.
type PaymentService interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error)
	ListPayments(ctx context.Context, req dto.ListPaymentsRequest) (*dto.ListPaymentsResponse, error)
}

type paymentService struct {
	ServiceParams
}

func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{
		ServiceParams: params,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The tenant and unit must exist in the landlord scope.
	if _, err := s.TenantRepo.Get(ctx, req.TenantID); err != nil {
		return nil, err
	}
	if _, err := s.UnitRepo.Get(ctx, req.UnitID); err != nil {
		return nil, err
	}

	p := req.ToPayment(ctx)

	response := &dto.PaymentResponse{Payment: p}
	if req.Method == types.PaymentMethodMpesa && s.Config.Mpesa.Enabled && s.MpesaClient != nil {
		status, err := s.MpesaClient.VerifyTransaction(ctx, req.TxnRef, req.Amount)
		if err != nil {
			// Verification is advisory. The payment is still recorded
			// and can be reconciled later.
			s.Logger.WithContext(ctx).Warnw("mpesa verification failed, recording unverified",
				"txn_ref", req.TxnRef,
				"error", err,
			)
		} else {
			response.Verified = lo.ToPtr(status.AmountMatches)
			if !status.AmountMatches {
				s.Logger.WithContext(ctx).Warnw("mpesa amount mismatch",
					"txn_ref", req.TxnRef,
					"recorded_amount", req.Amount.String(),
					"gateway_amount", status.Amount.String(),
				)
			}
		}
	}

	if err := s.PaymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	// A new payment changes every cached report for this landlord.
	if s.Cache != nil {
		s.Cache.DeleteByPrefix(ctx, financialReportCacheScope(types.GetLandlordID(ctx)))
	}

	s.Logger.WithContext(ctx).Infow("recorded payment",
		"payment_id", p.ID,
		"tenant_id", p.TenantID,
		"amount", p.Amount.String(),
		"method", p.Method,
	)
	return response, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	if id == "" {
		return nil, ierr.NewError("payment id is required").
			WithHint("Payment id is required").
			Mark(ierr.ErrValidation)
	}

	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentResponse{Payment: p}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, req dto.ListPaymentsRequest) (*dto.ListPaymentsResponse, error) {
	dateRange, err := req.Resolve(time.Now().UTC())
	if err != nil {
		return nil, err
	}

	filter := req.ToFilter(dateRange)
	payments, err := s.PaymentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.PaymentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, &dto.PaymentResponse{Payment: p})
	}
	return &dto.ListPaymentsResponse{
		Items: items,
		Total: total,
	}, nil
}
