package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the aggregated monetary summary over a document set.
// All values carry cent precision via decimal arithmetic.
type Ledger struct {
	TotalInvoiced  decimal.Decimal
	TotalCollected decimal.Decimal
	Outstanding    decimal.Decimal
	InvoiceCount   int
	PaidCount      int
}

// AggregateLedger sums invoice totals over documents. Only documents of type
// INVOICE participate; amount/paid on any other type are ignored entirely.
// A nil projectID aggregates globally, otherwise only documents of that
// project count. Absent amounts contribute zero. Only paid == true moves an
// amount into TotalCollected; nil and false are both excluded. Outstanding
// may go negative when upstream data is inconsistent; it is not clamped.
//
// Pure and stateless: inputs are never mutated, so re-running over the same
// snapshot yields the same ledger.
func AggregateLedger(docs []Document, projectID *uuid.UUID) Ledger {
	ledger := Ledger{
		TotalInvoiced:  decimal.Zero,
		TotalCollected: decimal.Zero,
		Outstanding:    decimal.Zero,
	}

	for i := range docs {
		doc := &docs[i]
		if !doc.IsInvoice() {
			continue
		}
		if projectID != nil && doc.ProjectID != *projectID {
			continue
		}

		amount := doc.InvoiceAmount()
		ledger.TotalInvoiced = ledger.TotalInvoiced.Add(amount)
		ledger.InvoiceCount++

		if doc.Paid != nil && *doc.Paid {
			ledger.TotalCollected = ledger.TotalCollected.Add(amount)
			ledger.PaidCount++
		}
	}

	ledger.Outstanding = ledger.TotalInvoiced.Sub(ledger.TotalCollected)
	return ledger
}
