package booking

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"staybook/internal/domain"
)

const (
	MsgConfirmed    = "Booking confirmed!"
	MsgSubmitFailed = "Failed to submit booking. Please try again."
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Form is one user's booking form. It is safe for concurrent use; at most one
// submission runs at a time.
type Form struct {
	creator BookingCreator

	mu        sync.Mutex
	fields    domain.BookingFields
	status    Status
	errMsg    string
	success   string
	requestID string
	token     uint64
	closed    bool
}

func NewForm(creator BookingCreator) *Form {
	return &Form{
		creator:   creator,
		status:    StatusIdle,
		requestID: uuid.NewString(),
	}
}

// Update replaces a single field. A finished form goes back to idle.
func (f *Form) Update(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.fields.Set(name, value) {
		return ErrUnknownField
	}
	if f.status == StatusSucceeded || f.status == StatusFailed {
		f.status = StatusIdle
	}
	return nil
}

// SetFields replaces the whole record, as a full form post does.
func (f *Form) SetFields(in domain.BookingFields) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fields = in
	if f.status == StatusSucceeded || f.status == StatusFailed {
		f.status = StatusIdle
	}
}

// Submit validates the record and, if it passes, sends it to the backend.
//
// Validation failures return a *ValidationError and never reach the network.
// On success the fields are cleared and a new request id is drawn for the next
// booking; on failure the fields are kept and the request id is reused so the
// backend can recognise the retry.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}

	f.errMsg = ""
	f.success = ""

	if err := Validate(f.fields); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			f.errMsg = ve.Message
		}
		f.mu.Unlock()
		return err
	}

	f.status = StatusSubmitting
	f.token++
	token := f.token
	fields := f.fields
	requestID := f.requestID
	f.mu.Unlock()

	succeeded := false
	defer func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.closed || token != f.token {
			return
		}
		if succeeded {
			f.status = StatusSucceeded
		} else {
			f.status = StatusFailed
		}
	}()

	err := f.creator.CreateBooking(ctx, fields, requestID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || token != f.token {
		return ErrFormClosed
	}

	if err != nil {
		log.Printf("booking_submit_error request_id=%s error=%q", requestID, err.Error())
		f.errMsg = MsgSubmitFailed
		return errors.Join(ErrSubmitFailed, err)
	}

	succeeded = true
	f.success = MsgConfirmed
	f.fields = domain.BookingFields{}
	f.requestID = uuid.NewString()
	return nil
}

// Close discards the form. A response still in flight will not touch it.
func (f *Form) Close() {
	f.mu.Lock()
	f.closed = true
	f.token++
	f.mu.Unlock()
}

// Snapshot is a copy of the form's display state.
type Snapshot struct {
	Fields     domain.BookingFields
	Status     Status
	Submitting bool
	Error      string
	Success    string
	RequestID  string
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return Snapshot{
		Fields:     f.fields,
		Status:     f.status,
		Submitting: f.status == StatusSubmitting,
		Error:      f.errMsg,
		Success:    f.success,
		RequestID:  f.requestID,
	}
}
