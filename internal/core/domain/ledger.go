package domain

import "time"

// TransactionType classifies a ledger row. Deposits are written by the
// payment flow, not by this service.
type TransactionType string

const (
	TransactionSpend TransactionType = "SPEND"
)

// TransactionStatus is the settlement state of a ledger row.
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "COMPLETED"
)

// Transaction is an immutable, append-only ledger row.
type Transaction struct {
	ID           string
	AdvertiserID int64
	Type         TransactionType
	Amount       int64
	Status       TransactionStatus
	Metadata     TransactionMetadata
	CreatedAt    time.Time
}

// TransactionMetadata records which event caused a spend.
type TransactionMetadata struct {
	Event      EventType `json:"event"`
	CampaignID int64     `json:"campaign_id"`
	CreativeID int64     `json:"creative_id"`
}

// Charge is a request to bill one event against an advertiser's balance.
type Charge struct {
	AdvertiserID int64
	CampaignID   int64
	CreativeID   int64
	Amount       int64
	Event        EventType
	At           time.Time
}

// ChargeResult describes a committed charge.
type ChargeResult struct {
	TransactionID string
	BalanceAfter  int64
	// Exhausted is set when the charge drove the balance to zero or below.
	Exhausted bool
	// Suspended is the number of campaigns flipped to OUT_OF_BUDGET.
	Suspended int64
}
