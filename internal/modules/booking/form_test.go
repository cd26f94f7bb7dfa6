package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"staybook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingCreator struct {
	mock.Mock
}

func (m *MockBookingCreator) CreateBooking(ctx context.Context, fields domain.BookingFields, requestID string) error {
	args := m.Called(ctx, fields, requestID)
	return args.Error(0)
}

// gatedCreator blocks each call until release is closed.
type gatedCreator struct {
	started chan struct{}
	release chan struct{}
	err     error
}

func newGatedCreator(err error) *gatedCreator {
	return &gatedCreator{started: make(chan struct{}), release: make(chan struct{}), err: err}
}

func (g *gatedCreator) CreateBooking(ctx context.Context, fields domain.BookingFields, requestID string) error {
	close(g.started)
	<-g.release
	return g.err
}

func fill(t *testing.T, f *Form, fields domain.BookingFields) {
	t.Helper()
	values := map[string]string{
		domain.FieldFirstName:      fields.FirstName,
		domain.FieldLastName:       fields.LastName,
		domain.FieldEmail:          fields.Email,
		domain.FieldPhoneNumber:    fields.PhoneNumber,
		domain.FieldCardNumber:     fields.CardNumber,
		domain.FieldExpirationDate: fields.ExpirationDate,
		domain.FieldCVV:            fields.CVV,
		domain.FieldBillingAddress: fields.BillingAddress,
	}
	for name, value := range values {
		require.NoError(t, f.Update(name, value))
	}
}

func TestForm_UpdateReplacesOnlyThatField(t *testing.T) {
	f := NewForm(new(MockBookingCreator))
	require.NoError(t, f.Update(domain.FieldFirstName, "Ann"))
	require.NoError(t, f.Update(domain.FieldCVV, "999"))
	require.NoError(t, f.Update(domain.FieldFirstName, "Anna"))

	snap := f.Snapshot()
	assert.Equal(t, domain.BookingFields{FirstName: "Anna", CVV: "999"}, snap.Fields)
	assert.Equal(t, StatusIdle, snap.Status)
}

func TestForm_UpdateUnknownField(t *testing.T) {
	f := NewForm(new(MockBookingCreator))

	assert.ErrorIs(t, f.Update("password", "x"), ErrUnknownField)
	assert.Equal(t, domain.BookingFields{}, f.Snapshot().Fields)
}

func TestForm_SubmitInvalidCardMakesNoCall(t *testing.T) {
	creator := new(MockBookingCreator)
	f := NewForm(creator)
	fields := validFields()
	fields.CardNumber = "1234 5678 9012 3456"
	fill(t, f, fields)

	err := f.Submit(context.Background())

	assert.ErrorIs(t, err, ErrValidation)
	snap := f.Snapshot()
	assert.Equal(t, MsgInvalidCardNumber, snap.Error)
	assert.Empty(t, snap.Success)
	assert.False(t, snap.Submitting)
	assert.Equal(t, fields, snap.Fields)
	creator.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestForm_SubmitInvalidCVV(t *testing.T) {
	creator := new(MockBookingCreator)
	f := NewForm(creator)
	fields := validFields()
	fields.CVV = "12"
	fill(t, f, fields)

	assert.ErrorIs(t, f.Submit(context.Background()), ErrValidation)
	assert.Equal(t, MsgInvalidCVV, f.Snapshot().Error)
	creator.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestForm_SubmitSuccessResetsFields(t *testing.T) {
	creator := new(MockBookingCreator)
	f := NewForm(creator)
	fields := validFields()
	fields.ExpirationDate = "2027-01"
	fields.BillingAddress = "1 Main St"
	fill(t, f, fields)
	firstKey := f.Snapshot().RequestID

	creator.On("CreateBooking", mock.Anything, fields, firstKey).Return(nil).Once()

	require.NoError(t, f.Submit(context.Background()))

	snap := f.Snapshot()
	assert.Equal(t, domain.BookingFields{}, snap.Fields)
	assert.Equal(t, MsgConfirmed, snap.Success)
	assert.Empty(t, snap.Error)
	assert.False(t, snap.Submitting)
	assert.Equal(t, StatusSucceeded, snap.Status)
	assert.NotEqual(t, firstKey, snap.RequestID)
	creator.AssertNumberOfCalls(t, "CreateBooking", 1)
}

func TestForm_SubmitFailureKeepsFieldsAndKey(t *testing.T) {
	creator := new(MockBookingCreator)
	f := NewForm(creator)
	fill(t, f, validFields())
	key := f.Snapshot().RequestID

	creator.On("CreateBooking", mock.Anything, validFields(), key).Return(errors.New("502 bad gateway")).Twice()

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitFailed)

	snap := f.Snapshot()
	assert.Equal(t, validFields(), snap.Fields)
	assert.Equal(t, MsgSubmitFailed, snap.Error)
	assert.Empty(t, snap.Success)
	assert.False(t, snap.Submitting)
	assert.Equal(t, StatusFailed, snap.Status)

	// a retry carries the same idempotency key
	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmitFailed)
	assert.Equal(t, key, f.Snapshot().RequestID)
	creator.AssertExpectations(t)
}

func TestForm_SubmitClearsPreviousMessages(t *testing.T) {
	creator := new(MockBookingCreator)
	f := NewForm(creator)

	assert.ErrorIs(t, f.Submit(context.Background()), ErrValidation)
	assert.Equal(t, MsgFieldsRequired, f.Snapshot().Error)

	fill(t, f, validFields())
	creator.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, f.Submit(context.Background()))

	snap := f.Snapshot()
	assert.Empty(t, snap.Error)
	assert.Equal(t, MsgConfirmed, snap.Success)

	assert.ErrorIs(t, f.Submit(context.Background()), ErrValidation)
	snap = f.Snapshot()
	assert.Empty(t, snap.Success)
	assert.Equal(t, MsgFieldsRequired, snap.Error)
}

func TestForm_EditAfterFinishReturnsToIdle(t *testing.T) {
	creator := new(MockBookingCreator)
	creator.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("down")).Once()
	f := NewForm(creator)
	fill(t, f, validFields())

	_ = f.Submit(context.Background())
	require.Equal(t, StatusFailed, f.Snapshot().Status)

	require.NoError(t, f.Update(domain.FieldCVV, "4321"))
	assert.Equal(t, StatusIdle, f.Snapshot().Status)
}

func TestForm_SetFieldsReplacesRecord(t *testing.T) {
	creator := new(MockBookingCreator)
	creator.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("down")).Once()
	f := NewForm(creator)
	fill(t, f, validFields())

	_ = f.Submit(context.Background())
	require.Equal(t, StatusFailed, f.Snapshot().Status)

	f.SetFields(domain.BookingFields{FirstName: "Bea"})

	snap := f.Snapshot()
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Equal(t, domain.BookingFields{FirstName: "Bea"}, snap.Fields)
}

func TestForm_RejectsSecondSubmissionInFlight(t *testing.T) {
	creator := newGatedCreator(nil)
	f := NewForm(creator)
	fill(t, f, validFields())

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	<-creator.started
	snap := f.Snapshot()
	assert.True(t, snap.Submitting)
	assert.Equal(t, StatusSubmitting, snap.Status)

	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmissionInFlight)

	close(creator.release)
	require.NoError(t, <-done)
	assert.False(t, f.Snapshot().Submitting)
}

func TestForm_ConcurrentSubmitsSendOnce(t *testing.T) {
	creator := newGatedCreator(nil)
	f := NewForm(creator)
	fill(t, f, validFields())

	first := make(chan error, 1)
	go func() { first <- f.Submit(context.Background()) }()
	<-creator.started

	var wg sync.WaitGroup
	var rejected int
	var mu sync.Mutex
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if errors.Is(f.Submit(context.Background()), ErrSubmissionInFlight) {
				mu.Lock()
				rejected++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	close(creator.release)

	require.NoError(t, <-first)
	assert.Equal(t, 10, rejected)
}

func TestForm_CloseDropsLateResponse(t *testing.T) {
	creator := newGatedCreator(nil)
	f := NewForm(creator)
	fill(t, f, validFields())

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()
	<-creator.started

	f.Close()
	close(creator.release)

	assert.ErrorIs(t, <-done, ErrFormClosed)
	snap := f.Snapshot()
	assert.Equal(t, validFields(), snap.Fields)
	assert.Empty(t, snap.Success)

	assert.ErrorIs(t, f.Submit(context.Background()), ErrFormClosed)
}

func TestForm_PanicInCreatorStillClearsSubmitting(t *testing.T) {
	creator := new(MockBookingCreator)
	creator.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).Panic("transport exploded").Once()
	f := NewForm(creator)
	fill(t, f, validFields())

	assert.Panics(t, func() { _ = f.Submit(context.Background()) })

	snap := f.Snapshot()
	assert.False(t, snap.Submitting)
	assert.Equal(t, StatusFailed, snap.Status)
}
