package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode is how a payment was made.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "cash"
	PaymentOnline PaymentMode = "online"
)

// SettlementNote is the sentinel note marking a full-balance settlement
// payment. At most one payment per party may carry it.
const SettlementNote = "Full Balance Settlement"

// Payment is an immutable payment fact. Amount is always stored as a positive
// magnitude; its direction is derived from the party's type at read time, so
// the stored fact stays correct even if party data is later amended.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	OwnerUserID string          `json:"-"`
	PartyID     string          `json:"partyID"`
	Amount      decimal.Decimal `json:"amount"`
	Mode        PaymentMode     `json:"mode"`
	Date        time.Time       `json:"date"`
	Note        string          `json:"note"`
	CreatedAt   time.Time       `json:"createdAt"`

	// Joined display fields, populated on reads only.
	PartyName string    `json:"partyName,omitempty"`
	PartyType PartyType `json:"partyType,omitempty"`
}

// IsSettlement reports whether the payment is a full-balance settlement marker.
func (p Payment) IsSettlement() bool {
	return p.Note == SettlementNote
}
