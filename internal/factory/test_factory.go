package factory

import (
	"time"

	"github.com/broadsidegame/broadside-go/internal/dependencies/mocks"
	"github.com/broadsidegame/broadside-go/internal/services/auth"
	"github.com/broadsidegame/broadside-go/internal/services/cpu"
	"github.com/broadsidegame/broadside-go/internal/storage/memory"
	"github.com/broadsidegame/broadside-go/internal/testutil"
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
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), cpu.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
