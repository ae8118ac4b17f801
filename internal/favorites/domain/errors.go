package domain

import "errors"

// Ledger errors. All of these are normal request outcomes, mapped to 4xx
// responses with stable reason strings at the HTTP layer.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOwnerNotFound     = errors.New("owner not found")
	ErrDuplicateFavorite = errors.New("product is already in favorites")
	ErrNotInFavorites    = errors.New("product is not in favorites")
)
