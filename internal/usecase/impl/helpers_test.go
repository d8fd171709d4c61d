package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"urjabandhu/config"
	"urjabandhu/internal/domain/repository"
	mockRepo "urjabandhu/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const txFuncType = "func(repository.RepositoryFactory) error"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Energy: &config.EnergyConfig{
			DefaultRate:     8,
			DefaultCurrency: "INR",
		},
		Analytics: &config.AnalyticsConfig{
			FixtureFallback:     true,
			MovingAverageWindow: 7,
		},
	}
}

// expectTx runs the transaction body against a mock factory prepared by setup
// and returns whatever the body returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(f *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType(txFuncType)).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}
