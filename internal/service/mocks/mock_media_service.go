package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"lmsapi/internal/model"
)

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, orgID string, category model.MediaCategory, entityID, filename, contentType string, size int64, r io.Reader) (*model.Media, error) {
	args := m.Called(ctx, orgID, category, entityID, filename, contentType, size, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Media), args.Error(1)
}

func (m *MockMediaService) Get(ctx context.Context, orgID, id string) (*model.Media, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Media), args.Error(1)
}

func (m *MockMediaService) DownloadURL(ctx context.Context, orgID, id string) (string, error) {
	args := m.Called(ctx, orgID, id)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) Delete(ctx context.Context, orgID, id string) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}
