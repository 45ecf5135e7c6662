package factory

import (
	"time"

	"github.com/mcoot/bingo-server/internal/dependencies/mocks"
	"github.com/mcoot/bingo-server/internal/services/auth"
	sessionmemory "github.com/mcoot/bingo-server/internal/session/memory"
	"github.com/mcoot/bingo-server/internal/storage/memory"
	"github.com/mcoot/bingo-server/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	sessions := sessionmemory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, sessions, mockClock, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
