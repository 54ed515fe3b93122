package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/m4rkovic/succulent-shop/internal/domains/orders/ports"
)

type normalizedPlaceOrderInput struct {
	UserID     int64   `json:"userId"`
	ProductIDs []int64 `json:"productIds"`
}

// FingerprintPlaceOrder builds a deterministic hash of the placement payload,
// excluding the idempotency key itself. Product ids are sorted so that
// payloads differing only in line-item order hash identically.
func FingerprintPlaceOrder(input ports.PlaceOrderInput) (string, error) {
	ids := append([]int64{}, input.ProductIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	payload, err := json.Marshal(normalizedPlaceOrderInput{UserID: input.UserID, ProductIDs: ids})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
