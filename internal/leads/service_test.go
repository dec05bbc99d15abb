package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/nobug-il/leadgen/pkg/logging"
)

type fakeDispatcher struct {
	leads   []*Lead
	err     error
	logOnly bool
}

func (f *fakeDispatcher) NotifyNewLead(ctx context.Context, lead *Lead) error {
	f.leads = append(f.leads, lead)
	return f.err
}

func (f *fakeDispatcher) LogOnly() bool {
	return f.logOnly
}

func TestSubmit_Success(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	svc := NewService(dispatcher, nil, logging.Default())

	result, err := svc.Submit(context.Background(), SubmitRequest{
		Name:  "שרה",
		Phone: "0501234567",
		City:  "תל אביב-יפו",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Error("expected success result")
	}
	if result.Message != "" {
		t.Errorf("expected no message outside fallback, got %q", result.Message)
	}

	if len(dispatcher.leads) != 1 {
		t.Fatalf("expected exactly one dispatch, got %d", len(dispatcher.leads))
	}
	lead := dispatcher.leads[0]
	if lead.Name != "שרה" || lead.City != "תל אביב-יפו" {
		t.Errorf("unexpected lead: %+v", lead)
	}
	if lead.SubmittedAt.IsZero() {
		t.Error("expected SubmittedAt to be set")
	}
}

func TestSubmit_ValidationFailureSkipsDispatch(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	svc := NewService(dispatcher, nil, logging.Default())

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:  "",
		Phone: "0501234567",
		City:  "חיפה",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Kind != KindMissingField {
		t.Errorf("expected KindMissingField, got %s", verr.Kind)
	}
	if len(dispatcher.leads) != 0 {
		t.Errorf("expected no dispatch attempt, got %d", len(dispatcher.leads))
	}
}

func TestSubmit_InvalidPhone(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	svc := NewService(dispatcher, nil, logging.Default())

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:  "דוד",
		Phone: "123",
		City:  "חיפה",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Kind != KindInvalidPhone {
		t.Errorf("expected KindInvalidPhone, got %s", verr.Kind)
	}
}

func TestSubmit_DispatchFailure(t *testing.T) {
	dispatchErr := errors.New("provider down")
	dispatcher := &fakeDispatcher{err: dispatchErr}
	svc := NewService(dispatcher, nil, logging.Default())

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:  "דוד",
		Phone: "0501234567",
		City:  "חיפה",
	})
	if !errors.Is(err, dispatchErr) {
		t.Fatalf("expected dispatch error to propagate, got %v", err)
	}
}

func TestSubmit_FallbackMessage(t *testing.T) {
	dispatcher := &fakeDispatcher{logOnly: true}
	svc := NewService(dispatcher, nil, logging.Default())

	result, err := svc.Submit(context.Background(), SubmitRequest{
		Name:  "שרה",
		Phone: "0501234567",
		City:  "תל אביב-יפו",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Error("expected success in fallback mode")
	}
	if result.Message != "Form submitted successfully (logged to console)" {
		t.Errorf("unexpected fallback message %q", result.Message)
	}
}

func TestSubmit_PhonePassedThroughAsTyped(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	svc := NewService(dispatcher, nil, logging.Default())

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:  "דוד",
		Phone: "050-123-4567",
		City:  "חיפה",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dispatcher.leads[0].Phone != "050-123-4567" {
		t.Errorf("expected phone to keep display formatting, got %q", dispatcher.leads[0].Phone)
	}
}
