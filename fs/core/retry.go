package core

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryInterval is the pause between attempts made by Retry.
var RetryInterval = 100 * time.Millisecond

// Retry calls op until it succeeds, fails with an error IsTransient rejects,
// or has been attempted maxRetries+1 times. The last error is returned
// unchanged.
func Retry(maxRetries int, op func() error) error {
	if maxRetries < 0 {
		maxRetries = 0
	}

	_, err := backoff.Retry(context.Background(), func() (struct{}, error) {
		err := op()
		if err != nil && !IsTransient(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(RetryInterval)),
		backoff.WithMaxTries(uint(maxRetries+1)),
	)
	return err
}
