package gorm

import (
	"github.com/google/uuid"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/store"
)

func (s *DatabaseSuite) TestAddLocation() {
	loc, err := s.db.AddLocation(s.ctx, catalog.Location{ID: "ignored", Type: "file", Target: "/srv/catalog/a.yaml"})
	s.Require().NoError(err)

	s.NotEmpty(loc.ID)
	s.NotEqual("ignored", loc.ID)
	s.Equal("file", loc.Type)
	s.Equal("/srv/catalog/a.yaml", loc.Target)
}

func (s *DatabaseSuite) TestAddLocation_DuplicateTargetReturnsExisting() {
	first := s.addLocation("/srv/catalog/a.yaml")

	second, err := s.db.AddLocation(s.ctx, catalog.Location{Type: "url", Target: "/srv/catalog/a.yaml"})
	s.Require().NoError(err)
	s.Equal(first, second)

	locations, err := s.db.Locations(s.ctx)
	s.Require().NoError(err)
	s.Len(locations, 1)
}

func (s *DatabaseSuite) TestAddLocation_Invalid() {
	_, err := s.db.AddLocation(s.ctx, catalog.Location{Type: "file"})
	s.Error(err)
}

func (s *DatabaseSuite) TestLocation() {
	created := s.addLocation("/srv/catalog/a.yaml")

	found, err := s.db.Location(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created, found)

	_, err = s.db.Location(s.ctx, uuid.NewString())
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *DatabaseSuite) TestLocations() {
	s.addLocation("/srv/catalog/b.yaml")
	s.addLocation("/srv/catalog/a.yaml")

	locations, err := s.db.Locations(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(locations, 2)
	s.Equal("/srv/catalog/a.yaml", locations[0].Target)
	s.Equal("/srv/catalog/b.yaml", locations[1].Target)
}

func (s *DatabaseSuite) TestRemoveLocation() {
	created := s.addLocation("/srv/catalog/a.yaml")

	s.Require().NoError(s.db.RemoveLocation(s.ctx, created.ID))

	_, err := s.db.Location(s.ctx, created.ID)
	s.ErrorIs(err, store.ErrNotFound)

	err = s.db.RemoveLocation(s.ctx, created.ID)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *DatabaseSuite) TestRemoveLocation_ReferencedByEntity() {
	loc := s.addLocation("/srv/catalog/a.yaml")
	entity, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{LocationID: &loc.ID, Entity: component("payments", "finance")})
	s.Require().NoError(err)

	err = s.db.RemoveLocation(s.ctx, loc.ID)
	s.Require().Error(err)
	s.NotErrorIs(err, store.ErrNotFound)

	_, err = s.db.EntityByUID(s.ctx, entity.Entity.UID())
	s.NoError(err)
	_, err = s.db.Location(s.ctx, loc.ID)
	s.NoError(err)
}

func (s *DatabaseSuite) TestLocationHistory() {
	loc := s.addLocation("/srv/catalog/a.yaml")
	component := "payments"
	message := "yaml: line 3: mapping values are not allowed in this context"

	s.Require().NoError(s.db.AddLocationUpdateLogEvent(s.ctx, loc.ID, catalog.StatusSuccess, &component, nil))
	s.Require().NoError(s.db.AddLocationUpdateLogEvent(s.ctx, loc.ID, catalog.StatusFail, nil, &message))
	s.Require().NoError(s.db.AddLocationUpdateLogEvent(s.ctx, uuid.NewString(), catalog.StatusSuccess, nil, nil))

	events, err := s.db.LocationHistory(s.ctx, loc.ID)
	s.Require().NoError(err)
	s.Require().Len(events, 2)

	s.Equal(catalog.StatusSuccess, events[0].Status)
	s.Equal(loc.ID, events[0].LocationID)
	s.Require().NotNil(events[0].ComponentName)
	s.Equal("payments", *events[0].ComponentName)
	s.Nil(events[0].Message)
	s.False(events[0].CreatedAt.IsZero())

	s.Equal(catalog.StatusFail, events[1].Status)
	s.Nil(events[1].ComponentName)
	s.Require().NotNil(events[1].Message)
	s.Equal(message, *events[1].Message)
	s.NotEqual(events[0].ID, events[1].ID)
}
