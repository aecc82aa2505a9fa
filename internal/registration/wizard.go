// Package registration walks a new buyer through the sign-up steps and
// produces the registered user.
package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cropconnect-backend/internal/mock"
	"cropconnect-backend/internal/model"
	"cropconnect-backend/internal/validation"
)

// Step is a named wizard screen.
type Step string

const (
	Welcome  Step = "Welcome"
	Personal Step = "Personal"
	OTP      Step = "OTP"
	GST      Step = "GST"
	Bank     Step = "Bank"
	Complete Step = "Complete"
)

var next = map[Step]Step{
	Welcome:  Personal,
	Personal: OTP,
	OTP:      GST,
	GST:      Bank,
	Bank:     Complete,
}

var (
	ErrWrongStep = errors.New("registration: action not allowed at this step")
	ErrBadOTP    = &validation.Error{Kind: validation.MalformedField, Field: "otp", Message: "Invalid OTP."}
)

// Options tune the mock parts of the flow.
type Options struct {
	VerifyDelay   time.Duration
	InitialWallet float64
	Now           func() time.Time
}

// Wizard holds the form as it is filled in. Each step validates only its own
// fields and blocks progression on any malformed value.
type Wizard struct {
	opts Options
	step Step
	user model.User
}

// New starts a wizard on the Welcome screen.
func New(opts Options) *Wizard {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Wizard{opts: opts, step: Welcome}
}

// Step is the current screen.
func (w *Wizard) Step() Step { return w.step }

func (w *Wizard) advance(from Step) {
	if w.step == from {
		w.step = next[from]
	}
}

func (w *Wizard) at(s Step) error {
	if w.step != s {
		return fmt.Errorf("%w: expected %s, at %s", ErrWrongStep, s, w.step)
	}
	return nil
}

// Start leaves the Welcome screen.
func (w *Wizard) Start() error {
	if err := w.at(Welcome); err != nil {
		return err
	}
	w.advance(Welcome)
	return nil
}

// SubmitPersonal records name and contact number.
func (w *Wizard) SubmitPersonal(name, contact string) error {
	if err := w.at(Personal); err != nil {
		return err
	}
	var errs validation.Errors
	if e := validation.Required(validation.FieldName, strings.TrimSpace(name)); e != nil {
		errs = append(errs, e)
	}
	if e := required(validation.FieldContactNumber, "contact", contact); e != nil {
		errs = append(errs, e)
	}
	if err := errs.OrNil(); err != nil {
		return err
	}
	w.user.Name = strings.TrimSpace(name)
	w.user.ContactNumber = contact
	w.advance(Personal)
	return nil
}

// VerifyOTP checks the code after the simulated verification round-trip.
func (w *Wizard) VerifyOTP(ctx context.Context, code string) error {
	if err := w.at(OTP); err != nil {
		return err
	}
	if err := mock.Pause(ctx, w.opts.VerifyDelay); err != nil {
		return err
	}
	if code != mock.OTP {
		return ErrBadOTP
	}
	w.advance(OTP)
	return nil
}

// SubmitGST records the GST id.
func (w *Wizard) SubmitGST(gstID string) error {
	if err := w.at(GST); err != nil {
		return err
	}
	if e := required(validation.FieldGSTID, "gstin", gstID); e != nil {
		return e
	}
	w.user.GSTID = gstID
	w.advance(GST)
	return nil
}

// SubmitBank records the payout details and completes registration.
func (w *Wizard) SubmitBank(account, ifsc, upiID string) error {
	if err := w.at(Bank); err != nil {
		return err
	}
	var errs validation.Errors
	for _, f := range []struct{ field, tag, value string }{
		{validation.FieldBankAccount, "bankacct", account},
		{validation.FieldIFSC, "ifsc", ifsc},
		{validation.FieldUPIID, "upi", upiID},
	} {
		if e := required(f.field, f.tag, f.value); e != nil {
			errs = append(errs, e)
		}
	}
	if err := errs.OrNil(); err != nil {
		return err
	}
	w.user.BankAccountNumber = account
	w.user.IFSC = ifsc
	w.user.UPIID = upiID
	w.user.RegisteredDate = w.opts.Now().Format("2006-01-02")
	w.user.WalletBalance = w.opts.InitialWallet
	w.advance(Bank)
	return nil
}

// User is the registered buyer once the wizard is Complete.
func (w *Wizard) User() (model.User, bool) {
	if w.step != Complete {
		return model.User{}, false
	}
	return w.user, true
}

func required(field, tag, value string) *validation.Error {
	if e := validation.Required(field, value); e != nil {
		return e
	}
	return validation.CheckField(field, tag, value)
}
