package ratefeed_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
	"github.com/safarnama/travel_booking_app/internal/platform/metrics"
	"github.com/safarnama/travel_booking_app/internal/platform/ratefeed"
)

var testMetrics = metrics.NewBookingMetrics()

// capturingWriter records upserted rates and signals when the expected
// number arrived.
type capturingWriter struct {
	mu    sync.Mutex
	rates []domain.CurrencyRate
	done  chan struct{}
	want  int
}

func newCapturingWriter(want int) *capturingWriter {
	return &capturingWriter{done: make(chan struct{}), want: want}
}

func (w *capturingWriter) UpsertCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rates = append(w.rates, rate)
	if len(w.rates) == w.want {
		close(w.done)
	}
	return nil
}

func (w *capturingWriter) snapshot() []domain.CurrencyRate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.CurrencyRate(nil), w.rates...)
}

// reloadRecorder counts converter reloads.
type reloadRecorder struct {
	mu      sync.Mutex
	reloads int
}

func (r *reloadRecorder) Convert(amount decimal.Decimal, fromCode, toCode string) domain.Conversion {
	return domain.Conversion{OriginalAmount: amount, Amount: amount}
}

func (r *reloadRecorder) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reloads++
	return nil
}

func (r *reloadRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reloads
}

func TestUpdater_InitialRefreshStoresFeedRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base": "USD", "rates": {"EUR": 0.91, "INR": 83.5, "USD": 1}}`))
	}))
	defer server.Close()

	writer := newCapturingWriter(2) // USD->USD is skipped
	converter := &reloadRecorder{}
	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))

	updater := ratefeed.NewUpdater(server.URL, time.Hour, writer, converter, testMetrics, logger)
	updater.Start(context.Background())
	defer updater.Stop()

	select {
	case <-writer.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for feed rates to be stored")
	}

	rates := writer.snapshot()
	require.Len(t, rates, 2)
	for _, r := range rates {
		assert.Equal(t, "USD", r.FromCurrencyCode)
		assert.True(t, r.Rate.IsPositive())
		assert.Equal(t, "rate-feed", r.CreatedBy)
	}

	// Reload follows the successful refresh.
	assert.Eventually(t, func() bool { return converter.count() >= 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestUpdater_FeedErrorDoesNotStopLoop(t *testing.T) {
	writer := newCapturingWriter(1)
	converter := &reloadRecorder{}
	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))

	updater := ratefeed.NewUpdater("http://127.0.0.1:1", time.Hour, writer, converter, testMetrics, logger)
	updater.Start(context.Background())

	// The initial refresh fails; Stop must still join cleanly.
	updater.Stop()

	assert.Empty(t, writer.snapshot())
	assert.Equal(t, 0, converter.count())
}

// testWriter routes slog output through t.Log.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
