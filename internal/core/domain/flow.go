package domain

// FlowStatus is the observable status of a user-initiated operation.
// At most one of ErrorMessage and SuccessMessage is set.
type FlowStatus struct {
	InProgress     bool   `json:"in_progress"`
	ErrorMessage   string `json:"error_message,omitempty"`
	SuccessMessage string `json:"success_message,omitempty"`
}

// Begin marks the start of a request and clears previous outcomes.
func (s *FlowStatus) Begin() {
	s.InProgress = true
	s.ErrorMessage = ""
	s.SuccessMessage = ""
}

// Fail records a terminal failure.
func (s *FlowStatus) Fail(msg string) {
	s.InProgress = false
	s.SuccessMessage = ""
	s.ErrorMessage = msg
}

// Succeed records a terminal success.
func (s *FlowStatus) Succeed(msg string) {
	s.InProgress = false
	s.ErrorMessage = ""
	s.SuccessMessage = msg
}
