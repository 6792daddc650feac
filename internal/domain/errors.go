package domain

import "errors"

var (
	// ErrEmptyDataset is returned when a run is requested over zero items.
	ErrEmptyDataset = errors.New("dataset is empty")
	// ErrInvalidCost is returned for items whose cost is not strictly positive.
	ErrInvalidCost = errors.New("item cost must be positive")

	ErrInvalidConfig   = errors.New("invalid solver configuration")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrPlanNotFound    = errors.New("plan not found")
)
