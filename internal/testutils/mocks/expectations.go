// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/repositories/profile"
	profilemock "github.com/KirkDiggler/critter-arena/internal/repositories/profile/mock"
)

// ExpectProfileGet returns p for one load of userID
func ExpectProfileGet(repo *profilemock.MockRepository, userID string, p *entities.Profile) *gomock.Call {
	return repo.EXPECT().
		Get(gomock.Any(), profile.GetInput{UserID: userID}).
		Return(&profile.GetOutput{Profile: p}, nil)
}

// ExpectProfileSave captures the saved profile into saved and echoes it back
// with the next version, the way the real repositories do
func ExpectProfileSave(repo *profilemock.MockRepository, saved **entities.Profile) *gomock.Call {
	return repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input profile.SaveInput) (*profile.SaveOutput, error) {
			*saved = input.Profile
			next := input.Profile.Clone()
			next.Version++
			return &profile.SaveOutput{Profile: next}, nil
		})
}
