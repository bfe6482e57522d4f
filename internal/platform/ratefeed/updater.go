package ratefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
	portsrepo "github.com/safarnama/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/platform/metrics"
)

const updaterActor = "rate-feed"

// feedResponse is the provider's payload: every rate is quoted from the base
// currency.
type feedResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Updater periodically pulls fresh exchange rates from an external feed,
// stores them, and reloads the in-memory converter snapshot.
type Updater struct {
	feedURL    string
	interval   time.Duration
	rateWriter portsrepo.CurrencyRateWriter
	converter  portssvc.ConverterSvc
	metrics    *metrics.BookingMetrics
	logger     *slog.Logger
	httpClient *http.Client

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewUpdater creates a rate feed updater. It does not start polling until
// Start is called.
func NewUpdater(feedURL string, interval time.Duration, rateWriter portsrepo.CurrencyRateWriter, converter portssvc.ConverterSvc, m *metrics.BookingMetrics, logger *slog.Logger) *Updater {
	return &Updater{
		feedURL:    feedURL,
		interval:   interval,
		rateWriter: rateWriter,
		converter:  converter,
		metrics:    m,
		logger:     logger,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		stopCh:     make(chan struct{}),
	}
}

// Start launches the polling loop. The first refresh runs immediately so the
// converter has rates before the first request arrives.
func (u *Updater) Start(ctx context.Context) {
	if u.feedURL == "" {
		u.logger.Info("rate feed URL not configured, updater disabled")
		return
	}

	u.wg.Add(1)
	go func() {
		defer u.wg.Done()

		if err := u.refresh(ctx); err != nil {
			u.logger.Error("initial rate feed refresh failed", "error", err)
		}

		ticker := time.NewTicker(u.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := u.refresh(ctx); err != nil {
					u.logger.Error("rate feed refresh failed", "error", err)
				}
			case <-u.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop signals the loop to exit and waits for the in-flight refresh.
func (u *Updater) Stop() {
	close(u.stopCh)
	u.wg.Wait()
}

func (u *Updater) refresh(ctx context.Context) error {
	feed, err := u.fetch(ctx)
	if err != nil {
		u.metrics.RecordRateFeedRun("fetch_failed")
		return err
	}

	now := time.Now()
	stored := 0
	for code, rate := range feed.Rates {
		if code == feed.Base || !rate.IsPositive() {
			continue
		}

		domainRate := domain.CurrencyRate{
			RateID:           uuid.NewString(),
			FromCurrencyCode: feed.Base,
			ToCurrencyCode:   code,
			Rate:             rate,
			UpdatedAt:        now,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     updaterActor,
				LastUpdatedAt: now,
				LastUpdatedBy: updaterActor,
			},
		}
		if err := u.rateWriter.UpsertCurrencyRate(ctx, domainRate); err != nil {
			u.logger.Error("failed to store rate from feed",
				"from", feed.Base, "to", code, "error", err)
			continue
		}
		stored++
	}

	if stored == 0 {
		u.metrics.RecordRateFeedRun("empty")
		return fmt.Errorf("rate feed returned no usable rates for base %s", feed.Base)
	}

	if err := u.converter.Reload(ctx); err != nil {
		u.metrics.RecordRateFeedRun("reload_failed")
		return fmt.Errorf("failed to reload converter after feed refresh: %w", err)
	}

	u.metrics.RecordRateFeedRun("success")
	u.logger.Info("rate feed refreshed", "base", feed.Base, "rates_stored", stored)
	return nil
}

func (u *Updater) fetch(ctx context.Context) (*feedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate feed request: %w", err)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate feed request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate feed response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rate feed returned status %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode rate feed response: %w", err)
	}
	if feed.Base == "" {
		return nil, fmt.Errorf("rate feed response missing base currency")
	}

	return &feed, nil
}
