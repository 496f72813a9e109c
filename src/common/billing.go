package common

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"hms/src/config"
	"hms/src/db"
	"hms/src/lib"
	"hms/src/models"
	"hms/src/types"
	"hms/src/utils"

	"gorm.io/gorm"
)

var ErrRefundExceedsPayment = errors.New("refund amount exceeds original payment")

// SumInvoiceTotals derives subtotal, tax and total from line items. Pure:
// calling it again with the same inputs yields the same outputs.
func SumInvoiceTotals(items []models.InvoiceLineItem, taxRate, discount float64) (subtotal, tax, total float64) {
	for _, item := range items {
		subtotal += item.TotalAmount
	}
	subtotal = math.Round(subtotal*100) / 100
	tax = math.Round(subtotal*taxRate*100) / 100
	total = math.Round((subtotal+tax-discount)*100) / 100
	return subtotal, tax, total
}

// RecalculateInvoiceTotals recomputes the derived amounts from the current
// line items. Callers must invoke this after changing line items; totals are
// not recomputed on line-item writes.
func RecalculateInvoiceTotals(cfg config.Hotel, invoiceId uint) (*models.Invoice, error) {
	var invoice models.Invoice
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("LineItems").First(&invoice, invoiceId).Error; err != nil {
			return err
		}
		subtotal, tax, total := SumInvoiceTotals(invoice.LineItems, cfg.TaxRate, invoice.DiscountAmount)
		invoice.Subtotal = subtotal
		invoice.TaxAmount = tax
		invoice.TotalAmount = total
		return tx.Save(&invoice).Error
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// CreateInvoice opens a draft invoice with a generated INV number.
func CreateInvoice(body *types.CreateInvoiceRequestBody) (*models.Invoice, error) {
	invoice := models.Invoice{
		GuestID:        body.GuestID,
		ReservationID:  body.ReservationID,
		DiscountAmount: body.DiscountAmount,
		Notes:          body.Notes,
		Status:         types.INVOICE_DRAFT,
	}
	if body.IssueDate != "" {
		issueDate, err := ParseDate(body.IssueDate)
		if err != nil {
			return nil, err
		}
		invoice.IssueDate = issueDate
	}
	if body.DueDate != "" {
		dueDate, err := ParseDate(body.DueDate)
		if err != nil {
			return nil, err
		}
		invoice.DueDate = dueDate
	}
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, body.GuestID).Error; err != nil {
			return err
		}
		invoice.InvoiceNumber = utils.GenerateDocumentNumber(tx, &models.Invoice{}, "invoice_number", "INV")
		return tx.Create(&invoice).Error
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// RecordPayment writes a payment ledger entry. It never touches
// Invoice.paid_amount: payments and invoices are reconciled manually, as
// two independent ledgers.
func RecordPayment(cfg config.Hotel, userId *uint, body *types.RecordPaymentRequestBody) (*models.Payment, error) {
	payment := models.Payment{
		GuestID:         body.GuestID,
		InvoiceID:       body.InvoiceID,
		ReservationID:   body.ReservationID,
		Amount:          body.Amount,
		PaymentMethod:   body.Method,
		PaymentDate:     time.Now(),
		ReferenceNumber: body.Reference,
		Notes:           body.Notes,
		Status:          types.PAYMENT_PENDING,
		ProcessedByID:   userId,
	}
	if body.Method == types.PAYMENT_ONLINE {
		description := fmt.Sprintf("Guest %d payment", body.GuestID)
		intentId, err := lib.CreatePaymentIntent(context.Background(), body.Amount, cfg.Currency, description)
		if err != nil {
			return nil, err
		}
		payment.TransactionID = intentId
	} else {
		payment.Status = types.PAYMENT_COMPLETED
	}
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		payment.PaymentNumber = utils.GenerateDocumentNumber(tx, &models.Payment{}, "payment_number", "PAY")
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		utils.RecordAudit(tx, userId, types.AUDIT_PAYMENT, "Payment", payment.ID, payment.PaymentNumber, types.JSONB{
			"amount": payment.Amount,
			"method": string(payment.PaymentMethod),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// RecordRefund opens a pending refund against a completed payment.
func RecordRefund(userId *uint, body *types.RecordRefundRequestBody) (*models.Refund, error) {
	var refund models.Refund
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, body.PaymentID).Error; err != nil {
			return err
		}
		if body.Amount > payment.Amount {
			return ErrRefundExceedsPayment
		}
		refund = models.Refund{
			OriginalPaymentID: payment.ID,
			GuestID:           payment.GuestID,
			Amount:            body.Amount,
			Reason:            body.Reason,
			Notes:             body.Notes,
			Status:            types.REFUND_PENDING,
			RequestedByID:     userId,
		}
		refund.RefundNumber = utils.GenerateDocumentNumber(tx, &models.Refund{}, "refund_number", "REF")
		if err := tx.Create(&refund).Error; err != nil {
			return err
		}
		utils.RecordAudit(tx, userId, types.AUDIT_REFUND, "Refund", refund.ID, refund.RefundNumber, types.JSONB{
			"amount": refund.Amount,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &refund, nil
}

// TransitionRefund advances a refund along its approval workflow.
func TransitionRefund(userId *uint, id uint, newStatus types.RefundStatus) (*models.Refund, error) {
	var refund models.Refund
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&refund, id).Error; err != nil {
			return err
		}
		now := time.Now()
		switch newStatus {
		case types.REFUND_APPROVED:
			if refund.Status != types.REFUND_PENDING {
				return fmt.Errorf("cannot approve refund in status %s", refund.Status)
			}
			refund.ApprovedByID = userId
			refund.ApprovedAt = &now
		case types.REFUND_PROCESSED:
			if refund.Status != types.REFUND_APPROVED {
				return fmt.Errorf("cannot process refund in status %s", refund.Status)
			}
			refund.ProcessedByID = userId
			refund.ProcessedAt = &now
		case types.REFUND_REJECTED:
			if refund.Status != types.REFUND_PENDING {
				return fmt.Errorf("cannot reject refund in status %s", refund.Status)
			}
		default:
			return fmt.Errorf("invalid refund status %s", newStatus)
		}
		refund.Status = newStatus
		return tx.Save(&refund).Error
	})
	if err != nil {
		return nil, err
	}
	return &refund, nil
}
