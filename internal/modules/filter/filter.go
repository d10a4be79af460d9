// Package filter provides implementations for filter modules.
// Filter modules are the table transformation stages of the preprocessing
// pipeline: cleaning, outlier capping, binning, encoding, scaling, and
// pruning. Every stage takes a table snapshot and returns a new one; the
// input table is never mutated.
package filter

import (
	"context"

	"github.com/tableprep/runtime/pkg/dataset"
)

// Module represents a filter module that transforms a table.
type Module interface {
	// Process transforms the input table and returns the result.
	// Implementations must not mutate the input table.
	Process(ctx context.Context, table *dataset.Table) (*dataset.Table, error)
}

// Default column names for the credit-card fraud dataset. Stage configs can
// override each of them.
const (
	ColTransactionID    = "transaction_id"
	ColAmount           = "amount"
	ColTransactionHour  = "transaction_hour"
	ColDeviceTrustScore = "device_trust_score"
	ColVelocity24h      = "velocity_last_24h"
	ColCardholderAge    = "cardholder_age"
	ColMerchantCategory = "merchant_category"
	ColIsFraud          = "is_fraud"
)

// Derived bin column names added by the binning stage.
const (
	ColAmountBin  = "amount_bin"
	ColAgeGroup   = "age_group"
	ColTimePeriod = "time_period"
)

// EncodedSuffix is appended to a categorical column's name by the encoding
// stage.
const EncodedSuffix = "_encoded"

// checkCtx returns the context error, if any. Stages call it once per
// table pass; tables are fully materialized so per-row checks are not
// needed.
func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
