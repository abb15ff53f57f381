// Package pricefeed contains clients for the external price sources: the
// daily mutual fund NAV flat file and the market quote API, plus the Redis
// cache that memoizes lookups.
package pricefeed

import "errors"

// ErrPriceNotFound indicates the source answered but had no price for the
// requested code. Transport and decoding failures are returned as ordinary
// errors so callers can tell "no data" from "source down".
var ErrPriceNotFound = errors.New("price not found")
