package chat

// Rejection reasons passed to Recorder.Rejected.
const (
	ReasonTooLong      = "too_long"
	ReasonUnauthorized = "unauthorized"
	ReasonInvalid      = "invalid"
)

// Recorder receives service events, typically to export them as metrics.
// Implementations must be safe for concurrent use.
type Recorder interface {
	Joined(accepted bool)
	Posted()
	Rejected(op, reason string)
	// Size reports the current member and message counts.
	Size(members, messages int)
}

type nopRecorder struct{}

func (nopRecorder) Joined(bool)             {}
func (nopRecorder) Posted()                 {}
func (nopRecorder) Rejected(string, string) {}
func (nopRecorder) Size(int, int)           {}
