package service

import (
	"sync"

	"github.com/jovens-paroquia/membership/internal/core/domain"
)

// flowStatus guards a domain.FlowStatus shared between a flow and its readers.
type flowStatus struct {
	mu sync.Mutex
	st domain.FlowStatus
}

func (f *flowStatus) begin() {
	f.mu.Lock()
	f.st.Begin()
	f.mu.Unlock()
}

func (f *flowStatus) fail(msg string) {
	f.mu.Lock()
	f.st.Fail(msg)
	f.mu.Unlock()
}

func (f *flowStatus) succeed(msg string) {
	f.mu.Lock()
	f.st.Succeed(msg)
	f.mu.Unlock()
}

func (f *flowStatus) snapshot() domain.FlowStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.st
}
