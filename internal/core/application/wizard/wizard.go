package wizard

import (
	"errors"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/services"
)

// Step boundaries of the creation flow.
const (
	StepParties = 1
	StepRoute   = 2
	StepWeight  = 3
	StepReview  = 4
)

var (
	// ErrWizardNotReady is returned when Confirm is attempted before the
	// review step.
	ErrWizardNotReady = errors.New("wizard has not reached the review step")

	// ErrNoQuote is returned when the review step is reached without a
	// pinned price quote. This indicates a programming error in the flow.
	ErrNoQuote = errors.New("no price quote pinned")
)

// Wizard is one user's in-flight parcel creation. It advances strictly
// through steps 1 to 4, validating on each Next, and pins the price quote
// when the weight step passes. All state is transient until Confirm.
//
// A wizard is not safe for concurrent use; the Sessions store hands out
// one per user and the HTTP layer serializes access through it.
type Wizard struct {
	ownerID kernel.UUID
	step    int
	form    Form
	quote   *services.PriceQuote

	touchedAt time.Time
}

// New creates a fresh wizard at step 1 for ownerID.
func New(ownerID kernel.UUID) *Wizard {
	return &Wizard{
		ownerID:   ownerID,
		step:      StepParties,
		touchedAt: time.Now(),
	}
}

// OwnerID returns the user this wizard belongs to.
func (w *Wizard) OwnerID() kernel.UUID {
	return w.ownerID
}

// Step returns the current step, between StepParties and StepReview.
func (w *Wizard) Step() int {
	return w.step
}

// Form returns a snapshot of the accumulated form state.
func (w *Wizard) Form() Form {
	return w.form
}

// Quote returns the price quote pinned when the weight step passed, or nil
// before that.
func (w *Wizard) Quote() *services.PriceQuote {
	if w.quote == nil {
		return nil
	}
	quote := *w.quote
	return &quote
}

// TouchedAt returns the time of the last interaction, used for expiry.
func (w *Wizard) TouchedAt() time.Time {
	return w.touchedAt
}

// Update merges the submitted fields into the form without advancing.
// Editing the weight after a quote was pinned drops the stale quote.
func (w *Wizard) Update(in Form) {
	w.touchedAt = time.Now()
	if in.WeightKg != 0 && w.quote != nil && in.WeightKg != w.form.WeightKg {
		w.quote = nil
	}
	w.form = w.form.merge(in)
}

// Next validates the current step and advances on success. A FieldError
// keeps the wizard on the current step with all state intact. Advancing
// from the weight step pins the quote that Confirm will charge.
// At the review step Next is a no-op.
func (w *Wizard) Next(tariff services.Tariff) *FieldError {
	w.touchedAt = time.Now()

	switch w.step {
	case StepParties:
		if fieldErr := ValidateParties(w.form); fieldErr != nil {
			return fieldErr
		}
	case StepRoute:
		if fieldErr := ValidateRoute(w.form); fieldErr != nil {
			return fieldErr
		}
	case StepWeight:
		if fieldErr := ValidateWeight(w.form); fieldErr != nil {
			return fieldErr
		}
		quote, err := tariff.Quote(w.form.WeightKg)
		if err != nil || quote.Total <= 0 {
			return &FieldError{Field: "weightKg", Message: MsgPriceUnavailable}
		}
		w.quote = &quote
	case StepReview:
		return nil
	}

	if w.step < StepReview {
		w.step++
	}
	return nil
}

// Back moves one step towards the start. It always succeeds while the
// wizard is past step 1 and never discards state.
func (w *Wizard) Back() {
	w.touchedAt = time.Now()
	if w.step > StepParties {
		w.step--
	}
}

// ReadyToConfirm reports whether the wizard reached the review step with a
// pinned quote.
func (w *Wizard) ReadyToConfirm() error {
	if w.step != StepReview {
		return ErrWizardNotReady
	}
	if w.quote == nil {
		return ErrNoQuote
	}
	return nil
}

// Reset returns the wizard to a fresh step 1 state, discarding the form
// and any pinned quote.
func (w *Wizard) Reset() {
	w.step = StepParties
	w.form = Form{}
	w.quote = nil
	w.touchedAt = time.Now()
}
