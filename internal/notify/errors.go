package notify

// DispatchError wraps a provider failure for the owner notification. The
// underlying provider detail is logged, never shown to the submitting client.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return "notify: failed to send owner notification"
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
