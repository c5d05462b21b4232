package service

import "time"

// Metrics records recipe query and mutation outcomes.
type Metrics interface {
	// ObserveFilter records one filter execution and the number of recipes it returned.
	ObserveFilter(elapsed time.Duration, results int)

	// ObserveMutation records the outcome of a write operation such as "create_recipe".
	ObserveMutation(operation string, err error)
}
