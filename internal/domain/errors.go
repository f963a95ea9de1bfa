package domain

import "errors"

var (
	// ErrNFTNotFound is returned when the ledger has no live NFT with the requested id
	ErrNFTNotFound = errors.New("nft not found")

	// ErrSerieNotFound is returned when the ledger has no series with the requested id
	ErrSerieNotFound = errors.New("serie not found")

	// ErrProfileNotFound is returned when no profile exists for a wallet
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUnknownCategory is returned when a category code is not in the catalog
	ErrUnknownCategory = errors.New("unknown category")

	// ErrSelfFollow is returned when a wallet tries to follow itself
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrUpstreamUnavailable is returned when an upstream source cannot be reached or answers with an error
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamTimeout is returned when an upstream source does not answer in time
	ErrUpstreamTimeout = errors.New("upstream timeout")
)
