package ai

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockGrader.
type MockResponse struct {
	Output GradeOutput
	Err    error
}

// MockGrader is a deterministic Grader for testing. It returns canned
// responses in FIFO order and records every input it receives.
type MockGrader struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []GradeInput
}

// NewMockGrader creates a MockGrader with the given canned responses.
func NewMockGrader(responses ...MockResponse) *MockGrader {
	return &MockGrader{responses: responses}
}

// GradeAnswer returns the next canned response, or ErrNoMockResponse once
// the queue is empty.
func (m *MockGrader) GradeAnswer(_ context.Context, input GradeInput) (GradeOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, input)

	if len(m.responses) == 0 {
		return GradeOutput{}, ErrNoMockResponse
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return GradeOutput{}, resp.Err
	}
	return resp.Output, nil
}
