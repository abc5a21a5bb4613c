package contact

// Phase is the submission lifecycle position of a contact form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ResultMessage is the banner shown after a submission resolves.
type ResultMessage struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

const (
	// SuccessText is shown when the message was delivered.
	SuccessText = "Your message has been sent! I'll get back to you soon."
	// FailureText is shown when delivery failed. Input is kept for a retry.
	FailureText = "Something went wrong. Please try again later."
)

// State is everything a contact form renders from. Transitions are pure: each
// method returns a new State and leaves the receiver untouched.
type State struct {
	Fields Fields         `json:"fields"`
	Phase  Phase          `json:"phase"`
	Result *ResultMessage `json:"result,omitempty"`
}

// Submitting reports whether the submit control must be disabled.
func (s State) Submitting() bool {
	return s.Phase == PhaseSubmitting
}

// WithField overwrites a single input. Allowed in every phase.
func (s State) WithField(field Field, value string) State {
	s.Fields = s.Fields.With(field, value)
	return s
}

// Begin starts a submission and drops any banner still on screen.
func (s State) Begin() State {
	s.Phase = PhaseSubmitting
	s.Result = nil
	return s
}

// Succeed records a delivered message and clears the form.
func (s State) Succeed(text string) State {
	s.Phase = PhaseSucceeded
	s.Result = &ResultMessage{Success: true, Text: text}
	s.Fields = Fields{}
	return s
}

// Fail records a failed delivery. Fields are left as typed.
func (s State) Fail(text string) State {
	s.Phase = PhaseFailed
	s.Result = &ResultMessage{Success: false, Text: text}
	return s
}

// Settle returns a resolved submission to the editable idle phase.
func (s State) Settle() State {
	s.Phase = PhaseIdle
	return s
}

// ExpireResult removes the banner.
func (s State) ExpireResult() State {
	s.Result = nil
	return s
}
