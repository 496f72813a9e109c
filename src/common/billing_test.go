package common

import (
	"testing"

	"hms/src/models"

	"github.com/stretchr/testify/assert"
)

func TestSumInvoiceTotals(t *testing.T) {
	items := []models.InvoiceLineItem{
		{TotalAmount: 200},
		{TotalAmount: 49.99},
		{TotalAmount: 15.5},
	}
	subtotal, tax, total := SumInvoiceTotals(items, 0.0875, 0)
	assert.Equal(t, 265.49, subtotal)
	assert.Equal(t, 23.23, tax)
	assert.Equal(t, 288.72, total)
}

func TestSumInvoiceTotalsDiscount(t *testing.T) {
	items := []models.InvoiceLineItem{{TotalAmount: 100}}
	subtotal, tax, total := SumInvoiceTotals(items, 0.0875, 25)
	assert.Equal(t, 100.0, subtotal)
	assert.Equal(t, 8.75, tax)
	assert.Equal(t, 83.75, total)
}

func TestSumInvoiceTotalsEmpty(t *testing.T) {
	subtotal, tax, total := SumInvoiceTotals(nil, 0.0875, 0)
	assert.Equal(t, 0.0, subtotal)
	assert.Equal(t, 0.0, tax)
	assert.Equal(t, 0.0, total)
}

func TestSumInvoiceTotalsIdempotent(t *testing.T) {
	items := []models.InvoiceLineItem{
		{TotalAmount: 120.33},
		{TotalAmount: 79.67},
	}
	s1, t1, tot1 := SumInvoiceTotals(items, 0.0875, 10)
	s2, t2, tot2 := SumInvoiceTotals(items, 0.0875, 10)
	assert.Equal(t, s1, s2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, tot1, tot2)
}
