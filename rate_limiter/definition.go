package rate_limiter

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
)

// Definition configures a [Limiter]
// a zero FillRate disables rate limiting, a zero MaxConcurrency disables the concurrency limit
type Definition struct {
	Name string
	// requests per second, and the burst allowed above it
	FillRate   rate.Limit
	BucketSize int
	// the max number of requests in flight
	MaxConcurrency int64
}

func (d *Definition) String() string {
	var parts []string
	if d.FillRate > 0 {
		parts = append(parts, fmt.Sprintf("Limit(/s): %v, Burst: %d", d.FillRate, d.BucketSize))
	}
	if d.MaxConcurrency > 0 {
		parts = append(parts, fmt.Sprintf("MaxConcurrency: %d", d.MaxConcurrency))
	}
	return fmt.Sprintf("%s %s", d.Name, strings.Join(parts, " "))
}

func (d *Definition) Validate() error {
	var errList []error
	if d.Name == "" {
		errList = append(errList, errors.New("rate limiter definition must specify a name"))
	}
	if d.FillRate < 0 || d.BucketSize < 0 || d.MaxConcurrency < 0 {
		errList = append(errList, fmt.Errorf("rate limiter '%s' has a negative setting", d.Name))
	}
	if d.FillRate > 0 && d.BucketSize == 0 {
		errList = append(errList, fmt.Errorf("rate limiter '%s' sets a fill rate with a zero bucket size", d.Name))
	}
	return errors.Join(errList...)
}
