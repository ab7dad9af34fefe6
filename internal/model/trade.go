package model

import "time"

// TradeType distinguishes a two-way exchange from a giveaway
type TradeType string

const (
	TradeTypeTrade    TradeType = "TRADE"
	TradeTypeGiveaway TradeType = "GIVEAWAY"
)

// String returns the string representation of TradeType
func (tt TradeType) String() string {
	return string(tt)
}

// TradeStatus represents the lifecycle state of a trade request
type TradeStatus string

const (
	TradeStatusOpen      TradeStatus = "OPEN"
	TradeStatusPending   TradeStatus = "PENDING"
	TradeStatusCompleted TradeStatus = "COMPLETED"
)

// String returns the string representation of TradeStatus
func (ts TradeStatus) String() string {
	return string(ts)
}

// TradeResponseStatus represents the state of a single response to a trade
type TradeResponseStatus string

const (
	TradeResponsePending  TradeResponseStatus = "PENDING"
	TradeResponseAccepted TradeResponseStatus = "ACCEPTED"
	TradeResponseRejected TradeResponseStatus = "REJECTED"
)

// String returns the string representation of TradeResponseStatus
func (rs TradeResponseStatus) String() string {
	return string(rs)
}

// TradeUrgency indicates how soon the author needs the shift covered
type TradeUrgency string

const (
	UrgencyLow    TradeUrgency = "low"
	UrgencyMedium TradeUrgency = "medium"
	UrgencyHigh   TradeUrgency = "high"
)

// ShiftTradeResponse is another employee's offer against a trade request
type ShiftTradeResponse struct {
	ID           int                 `json:"id"`
	Respondent   User                `json:"respondent"`
	OfferedShift *Schedule           `json:"offered_shift,omitempty"`
	Status       TradeResponseStatus `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
}

// ShiftTradeRequest is an employee-initiated offer to exchange or give away a
// shift, open to responses from other employees.
type ShiftTradeRequest struct {
	ID             int                  `json:"id"`
	Type           TradeType            `json:"type"`
	Author         User                 `json:"author"`
	OriginalShift  Schedule             `json:"original_shift"`
	PreferredShift *Schedule            `json:"preferred_shift,omitempty"`
	Status         TradeStatus          `json:"status"`
	Urgency        TradeUrgency         `json:"urgency"`
	Reason         string               `json:"reason,omitempty"`
	Responses      []ShiftTradeResponse `json:"responses"`
	CreatedAt      time.Time            `json:"created_at"`
}
