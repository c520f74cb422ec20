package oracle

import "context"

// MockLookup is an in-memory Lookup, useful for tests and for CLI users
// running against a canned set of known-active addresses.
type MockLookup struct {
	Active map[string]bool
	// FailAfter, when non-zero, makes the (FailAfter+1)th call return
	// Inactive regardless of the address, simulating an oracle going
	// terminally unavailable mid-run.
	FailAfter int
	calls     int
}

// NewMockLookup builds a MockLookup that reports active for exactly the
// given addresses.
func NewMockLookup(active ...string) *MockLookup {
	m := &MockLookup{Active: make(map[string]bool, len(active))}
	for _, a := range active {
		m.Active[a] = true
	}
	return m
}

// Check implements Lookup.
func (m *MockLookup) Check(ctx context.Context, stakeAddress string) (bool, error) {
	m.calls++
	if m.FailAfter > 0 && m.calls > m.FailAfter {
		return false, Inactive
	}
	return m.Active[stakeAddress], nil
}

// Calls reports how many times Check has been invoked.
func (m *MockLookup) Calls() int { return m.calls }
