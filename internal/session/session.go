// Package session owns the buyer's mutable state: the registered user with
// their wallet, and their orders. State is loaded once at startup and saved
// after every mutation.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cropconnect-backend/internal/model"
	"cropconnect-backend/internal/pricing"
	"cropconnect-backend/internal/store"
	"cropconnect-backend/internal/validation"
)

var (
	ErrNoUser              = errors.New("session: no registered user")
	ErrInsufficientBalance = errors.New("session: wallet balance would go negative")
	ErrOrderNotFound       = errors.New("session: order not found")
	ErrNotReviewable       = errors.New("session: order is not delivered or already reviewed")
)

// State is what gets persisted.
type State struct {
	User   *model.User   `json:"user,omitempty"`
	Orders []model.Order `json:"orders"`
}

// Session is safe for concurrent use; mutations are serialized.
type Session struct {
	mu     sync.Mutex
	kv     store.KV
	key    string
	events EventSink
	state  State
	now    func() time.Time
}

// Load reads the session stored at key. A missing or unreadable value is
// logged and replaced by defaults, never returned as an error.
func Load(ctx context.Context, kv store.KV, key string, events EventSink, defaults State) *Session {
	if events == nil {
		events = NopSink{}
	}
	s := &Session{kv: kv, key: key, events: events, now: time.Now}

	var st State
	err := store.GetJSON(ctx, kv, key, &st)
	switch {
	case err == nil:
		s.state = st
	case errors.Is(err, store.ErrNotFound):
		s.state = cloneState(defaults)
	default:
		log.Printf("Session: load %s failed, starting empty: %v", key, err)
		s.state = cloneState(defaults)
	}
	if s.state.Orders == nil {
		s.state.Orders = []model.Order{}
	}
	return s
}

func cloneState(st State) State {
	out := State{Orders: append([]model.Order(nil), st.Orders...)}
	if st.User != nil {
		u := *st.User
		out.User = &u
	}
	return out
}

func (s *Session) save(ctx context.Context) error {
	if err := store.SetJSON(ctx, s.kv, s.key, s.state); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}

// User returns the registered user.
func (s *Session) User() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return model.User{}, false
	}
	return *s.state.User, true
}

// SetUser stores the user produced by registration.
func (s *Session) SetUser(ctx context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = &u
	return s.save(ctx)
}

// Orders returns the order history, newest first.
func (s *Session) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.state.Orders))
	copy(out, s.state.Orders)
	return out
}

// applyDelta must be called with mu held.
func (s *Session) applyDelta(delta float64) (float64, error) {
	if s.state.User == nil {
		return 0, ErrNoUser
	}
	next := decimal.NewFromFloat(s.state.User.WalletBalance).
		Add(decimal.NewFromFloat(delta)).
		Round(2)
	if next.IsNegative() {
		return 0, ErrInsufficientBalance
	}
	balance, _ := next.Float64()
	s.state.User.WalletBalance = balance
	return balance, nil
}

// ApplyWalletDelta adds delta (signed) to the wallet. A delta that would
// leave the balance below zero is rejected and nothing changes.
func (s *Session) ApplyWalletDelta(ctx context.Context, delta float64, reason string) (float64, error) {
	s.mu.Lock()
	prev := cloneState(s.state)
	balance, err := s.applyDelta(delta)
	if err == nil {
		if err = s.save(ctx); err != nil {
			s.state = prev
		}
	}
	s.mu.Unlock()
	if err != nil {
		return 0, err
	}

	s.publishWallet(ctx, delta, balance, reason)
	return balance, nil
}

// Apply performs the side effects described by a finalization: the wallet
// deduction, then the new order at the head of the history.
func (s *Session) Apply(ctx context.Context, f pricing.Finalization) (model.Order, error) {
	s.mu.Lock()
	prev := cloneState(s.state)
	var balance float64
	var err error
	if f.WalletDelta != 0 {
		balance, err = s.applyDelta(f.WalletDelta)
	}
	if err == nil {
		s.state.Orders = append([]model.Order{f.Order}, s.state.Orders...)
		if err = s.save(ctx); err != nil {
			s.state = prev
		}
	}
	s.mu.Unlock()
	if err != nil {
		return model.Order{}, err
	}

	if f.WalletDelta != 0 {
		s.publishWallet(ctx, f.WalletDelta, balance, "order")
	}
	evt := model.OrderPlaced{
		EventID:     uuid.NewString(),
		OrderID:     f.Order.ID,
		CropName:    f.Order.CropName,
		SellerName:  f.Order.SellerName,
		TotalAmount: f.Order.TotalAmount,
		Status:      f.Order.Status,
		Date:        f.Order.Date,
		Timestamp:   s.now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.events.PublishOrderPlaced(ctx, evt); err != nil {
		log.Printf("Session: publish order %s: %v", f.Order.ID, err)
	}
	return f.Order, nil
}

// AttachReview adds the one allowed review to a delivered order.
func (s *Session) AttachReview(ctx context.Context, orderID string, rating int, comment string) (model.Order, error) {
	if rating < 1 || rating > 5 {
		return model.Order{}, &validation.Error{Kind: validation.MalformedField, Field: "rating", Message: "Please provide a rating."}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Orders {
		o := &s.state.Orders[i]
		if o.ID != orderID {
			continue
		}
		if !o.Reviewable() {
			return model.Order{}, ErrNotReviewable
		}
		o.Review = &model.OrderReview{Rating: rating, Comment: comment}
		if err := s.save(ctx); err != nil {
			o.Review = nil
			return model.Order{}, err
		}
		return *o, nil
	}
	return model.Order{}, ErrOrderNotFound
}

func (s *Session) publishWallet(ctx context.Context, delta, balance float64, reason string) {
	evt := model.WalletAdjusted{
		EventID:   uuid.NewString(),
		Delta:     delta,
		Balance:   balance,
		Reason:    reason,
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.events.PublishWalletAdjusted(ctx, evt); err != nil {
		log.Printf("Session: publish wallet adjustment: %v", err)
	}
}
