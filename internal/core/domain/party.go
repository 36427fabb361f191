package domain

import (
	"github.com/shopspring/decimal"
)

// PartyType distinguishes the two counterparty roles. The role decides the
// sign convention applied to every balance computation for the party, so it
// is immutable after creation.
type PartyType string

const (
	PartyClient   PartyType = "client"
	PartySupplier PartyType = "supplier"
)

// Party represents a client or supplier counterparty with a running balance.
// All of a party's facts (stock transactions, payments) are scoped to the
// owning user, and so is the party row itself.
type Party struct {
	PartyID        string          `json:"partyID"`
	OwnerUserID    string          `json:"-"`
	Name           string          `json:"name"`
	Type           PartyType       `json:"type"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	AuditFields
}
