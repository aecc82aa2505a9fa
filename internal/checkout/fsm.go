// Package checkout drives the buyer payment and wallet top-up flows as
// explicit state machines.
package checkout

import (
	"errors"
	"fmt"
)

// State is a named step of a flow.
type State string

const (
	AmountEntry      State = "AmountEntry"
	AuthorizeMandate State = "AuthorizeMandate"
	EnterPin         State = "EnterPin"
	Success          State = "Success"
)

// ErrInvalidTransition is returned for moves the transition table forbids.
var ErrInvalidTransition = errors.New("checkout: invalid transition")

type transitions map[State][]State

// Both flows share this table. AmountEntry may jump straight to Success when
// no mandate is needed; the payment flow decides that, top-up never does.
var table = transitions{
	AmountEntry:      {AuthorizeMandate, Success},
	AuthorizeMandate: {EnterPin, AmountEntry},
	EnterPin:         {Success, AuthorizeMandate},
	Success:          {},
}

var previous = map[State]State{
	AuthorizeMandate: AmountEntry,
	EnterPin:         AuthorizeMandate,
}

type machine struct {
	state State
}

func (m *machine) State() State { return m.state }

func (m *machine) to(next State) error {
	for _, s := range table[m.state] {
		if s == next {
			m.state = next
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.state, next)
}

func (m *machine) require(s State) error {
	if m.state != s {
		return fmt.Errorf("%w: action needs %s, flow is in %s", ErrInvalidTransition, s, m.state)
	}
	return nil
}

// Back returns to the previous step. AmountEntry and Success have none.
func (m *machine) Back() error {
	prev, ok := previous[m.state]
	if !ok {
		return fmt.Errorf("%w: no step before %s", ErrInvalidTransition, m.state)
	}
	return m.to(prev)
}
