package pricefeed

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

const navRequestTimeout = 30 * time.Second

// navDateLayout is the date format used in the NAV flat file, e.g. "28-Aug-2026".
const navDateLayout = "02-Jan-2006"

// NAVClient fetches the daily published NAV flat file and looks up a scheme
// code in it. Feed lines are semicolon separated:
//
//	code;ISIN payout;ISIN reinvest;scheme name;NAV;date
type NAVClient struct {
	feedURL    string
	httpClient *http.Client
}

// NewNAVClient creates a client for the NAV flat file feed.
func NewNAVClient(feedURL string) *NAVClient {
	return &NAVClient{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: navRequestTimeout,
		},
	}
}

// NAV returns the published net asset value for a scheme code. It returns
// ErrPriceNotFound when the feed does not carry the code, and a plain error
// when the feed itself cannot be fetched.
func (c *NAVClient) NAV(ctx context.Context, code string) (*domain.PriceQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create NAV feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch NAV feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NAV feed returned status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, ";")
		if len(fields) < 6 {
			// Header, section titles and blank lines.
			continue
		}
		if strings.TrimSpace(fields[0]) != code {
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(fields[4]))
		if err != nil {
			return nil, fmt.Errorf("invalid NAV %q for scheme %s: %w", fields[4], code, err)
		}
		asOf, err := time.Parse(navDateLayout, strings.TrimSpace(fields[5]))
		if err != nil {
			return nil, fmt.Errorf("invalid NAV date %q for scheme %s: %w", fields[5], code, err)
		}
		return &domain.PriceQuote{Price: price, AsOf: asOf}, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read NAV feed: %w", err)
	}

	return nil, fmt.Errorf("%w: scheme code %s not in NAV feed", ErrPriceNotFound, code)
}
