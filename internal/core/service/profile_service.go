package service

import (
	"context"
	"fmt"

	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/ports"
)

// ProfileReader loads a member's profile record.
type ProfileReader struct {
	store ports.ProfileStore
	appID string
}

func NewProfileReader(store ports.ProfileStore, appID string) *ProfileReader {
	return &ProfileReader{store: store, appID: appID}
}

// Current loads the profile of userID, the account the request was
// authenticated as. An empty userID means nobody is signed in.
func (r *ProfileReader) Current(ctx context.Context, userID string) (*domain.ProfileRecord, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	fields, err := r.store.FindDocument(ctx, domain.ProfilesPath(r.appID), userID)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", userID, err)
	}
	record := domain.ProfileRecordFromFields(fields)
	return &record, nil
}
