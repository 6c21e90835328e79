package dto

import "time"

// AggregationQuery is a parsed dashboard request. Start and End are inclusive.
type AggregationQuery struct {
	Start       time.Time
	End         time.Time
	Status      *string
	RequestType *string
	City        *string
}
