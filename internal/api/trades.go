package api

import (
	"context"
	"fmt"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// CreateTradeRequest opens a new trade or giveaway
type CreateTradeRequest struct {
	Type             model.TradeType    `json:"type" validate:"required,oneof=TRADE GIVEAWAY"`
	OriginalShiftID  int                `json:"original_shift_id" validate:"required"`
	PreferredShiftID int                `json:"preferred_shift_id,omitempty"`
	Urgency          model.TradeUrgency `json:"urgency" validate:"required,oneof=low medium high"`
	Reason           string             `json:"reason"`
}

// RespondTradeRequest offers a shift (or accepts a giveaway) against a trade
type RespondTradeRequest struct {
	OfferedShiftID int `json:"offered_shift_id,omitempty"`
}

// SettleTradeResponse accepts or rejects one response as the trade's author
type SettleTradeResponse struct {
	Status model.TradeResponseStatus `json:"status" validate:"required,oneof=ACCEPTED REJECTED"`
}

// ListTrades returns open trade requests visible to the caller
func (c *Client) ListTrades(ctx context.Context) ([]model.ShiftTradeRequest, error) {
	var trades []model.ShiftTradeRequest
	if err := c.get(ctx, "/shift-trades", nil, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// CreateTrade opens a new trade request
func (c *Client) CreateTrade(ctx context.Context, req CreateTradeRequest) (*model.ShiftTradeRequest, error) {
	var trade model.ShiftTradeRequest
	if err := c.post(ctx, "/shift-trades", req, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// DeleteTrade withdraws the caller's own trade request
func (c *Client) DeleteTrade(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/shift-trades/%d", id))
}

// RespondToTrade adds a response to an open trade
func (c *Client) RespondToTrade(ctx context.Context, tradeID int, req RespondTradeRequest) (*model.ShiftTradeRequest, error) {
	var trade model.ShiftTradeRequest
	if err := c.post(ctx, fmt.Sprintf("/shift-trades/%d/responses", tradeID), req, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// SettleResponse accepts or rejects one response; the server returns the
// updated trade including any status transition it triggered.
func (c *Client) SettleResponse(ctx context.Context, tradeID, responseID int, req SettleTradeResponse) (*model.ShiftTradeRequest, error) {
	var trade model.ShiftTradeRequest
	if err := c.patch(ctx, fmt.Sprintf("/shift-trades/%d/responses/%d", tradeID, responseID), req, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}
