package ingestion

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/store"
)

// MockDatabase implements store.Database for testing using testify/mock
type MockDatabase struct {
	mock.Mock
}

var _ store.Database = (*MockDatabase)(nil)

func (m *MockDatabase) Transaction(ctx context.Context, fn func(tx store.Database) error) error {
	m.Called(ctx)
	return fn(m)
}

func (m *MockDatabase) AddOrUpdateEntity(ctx context.Context, req catalog.AddEntityRequest) (*catalog.EntityResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.EntityResponse), args.Error(1)
}

func (m *MockDatabase) Entities(ctx context.Context) ([]catalog.EntityResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.EntityResponse), args.Error(1)
}

func (m *MockDatabase) Entity(ctx context.Context, name string, namespace *string) (*catalog.EntityResponse, error) {
	args := m.Called(ctx, name, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.EntityResponse), args.Error(1)
}

func (m *MockDatabase) EntityByUID(ctx context.Context, uid string) (*catalog.EntityResponse, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.EntityResponse), args.Error(1)
}

func (m *MockDatabase) RemoveEntity(ctx context.Context, uid string) error {
	return m.Called(ctx, uid).Error(0)
}

func (m *MockDatabase) AddLocation(ctx context.Context, location catalog.Location) (*catalog.Location, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Location), args.Error(1)
}

func (m *MockDatabase) RemoveLocation(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDatabase) Location(ctx context.Context, id string) (*catalog.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Location), args.Error(1)
}

func (m *MockDatabase) Locations(ctx context.Context) ([]catalog.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Location), args.Error(1)
}

func (m *MockDatabase) AddLocationUpdateLogEvent(ctx context.Context, locationID string, status catalog.Status, componentName, message *string) error {
	return m.Called(ctx, locationID, status, componentName, message).Error(0)
}

func (m *MockDatabase) LocationHistory(ctx context.Context, locationID string) ([]catalog.LocationUpdateLogEvent, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).([]catalog.LocationUpdateLogEvent), args.Error(1)
}
