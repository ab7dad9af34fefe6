package store

import (
	"context"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/model"
)

// TradeSlice caches shift trade requests and their nested responses
type TradeSlice struct {
	slice
	items []model.ShiftTradeRequest
}

// Items returns a snapshot of the cached trade requests
func (s *TradeSlice) Items() []model.ShiftTradeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ShiftTradeRequest(nil), s.items...)
}

// Refresh replaces the cache from the backend
func (s *TradeSlice) Refresh(ctx context.Context) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	items, err := s.store.client.ListTrades(ctx)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = items
	})
}

// Create opens a trade and prepends it once the server acknowledged
func (s *TradeSlice) Create(ctx context.Context, req api.CreateTradeRequest) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	created, err := s.store.client.CreateTrade(ctx, req)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.items = append([]model.ShiftTradeRequest{*created}, s.items...)
	})
}

// Delete withdraws the caller's trade and filters it from the cache
func (s *TradeSlice) Delete(ctx context.Context, id int) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	if err := s.store.client.DeleteTrade(ctx, id); err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		kept := s.items[:0]
		for _, item := range s.items {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		s.items = kept
	})
}

// Respond offers against a trade; the server returns the whole updated trade
func (s *TradeSlice) Respond(ctx context.Context, tradeID int, req api.RespondTradeRequest) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	updated, err := s.store.client.RespondToTrade(ctx, tradeID, req)
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.replace(*updated)
	})
}

// Settle accepts or rejects one response as the trade's author
func (s *TradeSlice) Settle(ctx context.Context, tradeID, responseID int, status model.TradeResponseStatus) {
	seq, ok := s.begin()
	if !ok {
		return
	}

	updated, err := s.store.client.SettleResponse(ctx, tradeID, responseID, api.SettleTradeResponse{Status: status})
	if err != nil {
		s.fail(seq, err)
		return
	}

	s.commit(seq, func() {
		s.replace(*updated)
	})
}

// replace swaps the trade with the same id; callers hold the mutex
func (s *TradeSlice) replace(updated model.ShiftTradeRequest) {
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = updated
			return
		}
	}
}

func (s *TradeSlice) reset() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.resetState()
}
