package object

import (
	"context"
	"io"
	"path"

	"planner-backend/internal/shared/util"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
type ObjectStore interface {
	Put(ctx context.Context, storageKey string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// AssessmentKey returns the storage key for the raw assessment behind a plan.
// Owners are namespaced by a hash of their user ID.
func AssessmentKey(userID, planID, ext string) (string, error) {
	name, err := util.SanitizeFileName(planID + "." + ext)
	if err != nil {
		return "", err
	}
	return path.Join("assessments", util.HashUserKey(userID), name), nil
}
