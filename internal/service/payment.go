package service

import (
	"context"
	"fmt"
	"time"

	"asaas-integration-service/internal/checkout"
	"asaas-integration-service/internal/client"
	"asaas-integration-service/internal/dto"
	"asaas-integration-service/internal/model"
	"asaas-integration-service/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// A PIX payload shorter than this cannot be a scannable copy-paste key.
const minPixPayloadLen = 10

const qrCodeExpirationFallback = 30 * time.Minute

type PaymentService interface {
	CreatePixPayment(ctx context.Context, req *checkout.Request) (*dto.PaymentResult, error)
	CheckPaymentStatus(ctx context.Context, paymentID string) (*dto.PaymentStatusResult, error)
}

type paymentServiceImpl struct {
	asaasClient     client.AsaasClient
	apiKey          string
	paymentRepo     repository.PaymentRepository
	orderRepo       repository.OrderRepository
	emailConfigRepo repository.EmailConfigRepository
}

func NewPaymentService(
	asaasClient client.AsaasClient,
	apiKey string,
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	emailConfigRepo repository.EmailConfigRepository,
) PaymentService {
	return &paymentServiceImpl{
		asaasClient:     asaasClient,
		apiKey:          apiKey,
		paymentRepo:     paymentRepo,
		orderRepo:       orderRepo,
		emailConfigRepo: emailConfigRepo,
	}
}

// CreatePixPayment runs the payment flow: customer -> charge -> QR code ->
// persist -> link to order. Steps are strictly sequential; a failure aborts
// the rest, and nothing created remotely is rolled back. The email-override
// read and the order-link update are best-effort only.
//
// A new Asaas customer is created on every call, even for a repeat buyer,
// and concurrent calls for the same order can both create charges; neither
// is coordinated here.
func (s *paymentServiceImpl) CreatePixPayment(ctx context.Context, req *checkout.Request) (*dto.PaymentResult, error) {
	if s.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	log.WithFields(log.Fields{
		"order_id": req.OrderID,
		"value":    req.Value,
	}).Info("starting pix payment flow")

	email := req.Email
	if emailCfg, err := s.emailConfigRepo.Get(ctx); err != nil {
		log.WithError(err).Warn("could not read email override config, keeping customer email")
	} else if emailCfg.UseTempEmail && emailCfg.TempEmail != "" {
		log.WithField("temp_email", emailCfg.TempEmail).Info("replacing customer email with configured override")
		email = emailCfg.TempEmail
	}

	customer, err := s.asaasClient.CreateCustomer(ctx, req.Name, req.CpfCnpj, email, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("create asaas customer: %w", err)
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Pedido #%s", req.OrderID)
	}

	charge, err := s.asaasClient.CreatePixCharge(ctx, customer.ID, req.Value, description, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("create asaas charge: %w", err)
	}

	qrCode, err := s.asaasClient.GetPixQrCode(ctx, charge.ID)
	if err != nil {
		return nil, fmt.Errorf("get pix qr code: %w", err)
	}

	if len(qrCode.Payload) < minPixPayloadLen {
		log.WithFields(log.Fields{
			"payment_id":     charge.ID,
			"payload_length": len(qrCode.Payload),
		}).Error("pix payload too short, refusing to persist charge")
		return nil, ErrUnusableCharge
	}

	expirationDate := qrCode.ExpirationDate
	if expirationDate == "" {
		expirationDate = time.Now().Add(qrCodeExpirationFallback).Format(time.RFC3339)
	}

	payment := &model.PixPayment{
		ID:             uuid.NewString(),
		OrderID:        req.OrderID,
		PaymentID:      charge.ID,
		Status:         charge.Status,
		Amount:         req.Value,
		QrCode:         qrCode.Payload,
		QrCodeImage:    qrCode.EncodedImage,
		CopyPasteKey:   qrCode.Payload,
		ExpirationDate: expirationDate,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		// The charge already exists on the gateway side at this point. The
		// caller gets an error but the charge is live; a later status check
		// for charge.ID still works against the gateway.
		return nil, &PersistenceError{Op: "save payment record", Err: err}
	}

	if err := s.orderRepo.LinkPayment(ctx, req.OrderID, charge.ID); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"order_id":   req.OrderID,
			"payment_id": charge.ID,
		}).Warn("could not link payment to order")
	}

	log.WithFields(log.Fields{
		"order_id":   req.OrderID,
		"payment_id": charge.ID,
		"status":     charge.Status,
	}).Info("pix payment created")

	return &dto.PaymentResult{
		Customer:       customer,
		Payment:        charge,
		PixQrCode:      qrCode,
		PaymentData:    payment,
		QrCodeImage:    checkout.RepairQrImage(qrCode.EncodedImage),
		QrCode:         qrCode.Payload,
		CopyPasteKey:   qrCode.Payload,
		ExpirationDate: expirationDate,
	}, nil
}

// CheckPaymentStatus fetches the charge's current status from the gateway
// and mirrors it onto the stored payment and order rows. The gateway fetch
// is the only hard step: local rows being missing or failing to update is
// logged and the fresh status is still returned.
func (s *paymentServiceImpl) CheckPaymentStatus(ctx context.Context, paymentID string) (*dto.PaymentStatusResult, error) {
	if s.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	charge, err := s.asaasClient.GetCharge(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("fetch charge from asaas: %w", err)
	}

	now := time.Now()

	record, err := s.paymentRepo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		log.WithError(err).WithField("payment_id", paymentID).
			Warn("payment record not found locally, returning gateway status only")
	} else {
		if err := s.paymentRepo.UpdateStatus(ctx, paymentID, charge.Status, now); err != nil {
			log.WithError(err).WithField("payment_id", paymentID).
				Warn("could not update payment record status")
		}
		if err := s.orderRepo.UpdateStatus(ctx, record.OrderID, charge.Status, now); err != nil {
			log.WithError(err).WithField("order_id", record.OrderID).
				Warn("could not update order status")
		}
	}

	return &dto.PaymentStatusResult{
		PaymentID: paymentID,
		Status:    charge.Status,
		UpdatedAt: now.Format(time.RFC3339),
	}, nil
}
