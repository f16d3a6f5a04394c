package factory

import (
	"time"

	"github.com/mcoot/connectn/internal/dependencies/mocks"
	"github.com/mcoot/connectn/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	return &TestApp{
		App:        newWithDependencies(mockClock, mockRandom, testutil.NopLogger()),
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
