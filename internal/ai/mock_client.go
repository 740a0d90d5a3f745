package ai

import "context"

// MockClient is a configurable stand-in for the OpenAI client in tests.
type MockClient struct {
	Reply string
	Err   error

	Calls           int
	LastPrompt      string
	LastTemperature float64
}

// Complete records the call and returns the configured reply or error.
func (m *MockClient) Complete(_ context.Context, prompt string, temperature float64) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastTemperature = temperature
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
