package plans

import "errors"

var (
	ErrNotFound   = errors.New("plan not found")
	ErrNoArchive  = errors.New("assessment not archived for plan")
	ErrMissingIDs = errors.New("user id and plan id are required")
)
