package pricefeed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/innajain/ledger-sub000/internal/pricefeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const navFeedBody = `Scheme Code;ISIN Div Payout/ ISIN Growth;ISIN Div Reinvestment;Scheme Name;Net Asset Value;Date

Open Ended Schemes(Equity Scheme - Large Cap Fund)

Axis Mutual Fund

120503;INF846K01EW2;INF846K01EX0;Axis Bluechip Fund - Direct Plan - Growth;58.93;28-Aug-2026
119551;INF846K01CH7;-;Axis Bluechip Fund - Growth;51.02;28-Aug-2026
`

func TestNAVClient_NAV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(navFeedBody))
	}))
	defer srv.Close()

	client := pricefeed.NewNAVClient(srv.URL)

	quote, err := client.NAV(context.Background(), "120503")
	require.NoError(t, err)
	assert.Equal(t, "58.93", quote.Price.String())
	assert.Equal(t, "2026-08-28", quote.AsOf.Format("2006-01-02"))
}

func TestNAVClient_CodeNotInFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(navFeedBody))
	}))
	defer srv.Close()

	client := pricefeed.NewNAVClient(srv.URL)

	_, err := client.NAV(context.Background(), "999999")
	assert.ErrorIs(t, err, pricefeed.ErrPriceNotFound)
}

func TestNAVClient_FeedDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := pricefeed.NewNAVClient(srv.URL)

	_, err := client.NAV(context.Background(), "120503")
	require.Error(t, err)
	// A feed outage is not the same as an unknown code.
	assert.NotErrorIs(t, err, pricefeed.ErrPriceNotFound)
}
