package gorm

import (
	"errors"

	"github.com/google/uuid"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/model"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/store"
)

func (s *DatabaseSuite) TestAddEntity_Insert() {
	entity := component("payments", "finance")
	entity.Metadata.Generation = 7

	resp, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: entity})
	s.Require().NoError(err)

	s.NotEmpty(resp.Entity.UID())
	s.Equal(int64(1), resp.Entity.Generation(), "client generation is ignored on create")
	s.Equal("payments", resp.Entity.Name())
	s.Equal("finance", resp.Entity.Metadata.Namespace)
	s.Equal(map[string]string{"tier": "backend"}, resp.Entity.Metadata.Labels)
	s.Equal("service", resp.Entity.Spec["type"])
	s.Nil(resp.LocationID)

	var row model.Entity
	s.Require().NoError(s.gormDB.Where("id = ?", resp.Entity.UID()).First(&row).Error)
	s.NotContains(string(row.Metadata), "uid")
	s.NotContains(string(row.Metadata), "generation")
	s.Require().NotNil(row.Namespace)
	s.Equal("finance", *row.Namespace)
}

func (s *DatabaseSuite) TestAddEntity_EmptyNamespaceStoredAsNull() {
	resp, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("web", "")})
	s.Require().NoError(err)

	var row model.Entity
	s.Require().NoError(s.gormDB.Where("id = ?", resp.Entity.UID()).First(&row).Error)
	s.Nil(row.Namespace)
	s.Nil(resp.Entity.Namespace())
}

func (s *DatabaseSuite) TestAddEntity_WithoutMetadataOrSpec() {
	resp, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{
		Entity: catalog.Entity{APIVersion: "v1", Kind: "Group"},
	})
	s.Require().NoError(err)

	s.NotEmpty(resp.Entity.UID())
	s.Equal(int64(1), resp.Entity.Generation())
	s.Empty(resp.Entity.Name())
	s.Nil(resp.Entity.Spec)
}

func (s *DatabaseSuite) TestAddEntity_Invalid() {
	_, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{
		Entity: catalog.Entity{Kind: "Component"},
	})
	s.ErrorIs(err, store.ErrInvalidEntity)

	entities, err := s.db.Entities(s.ctx)
	s.Require().NoError(err)
	s.Empty(entities)
}

func (s *DatabaseSuite) TestAddEntity_UnknownUID() {
	entity := component("payments", "finance")
	entity.Metadata.UID = uuid.NewString()

	_, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: entity})
	s.ErrorIs(err, store.ErrConflict)

	entities, err := s.db.Entities(s.ctx)
	s.Require().NoError(err)
	s.Empty(entities)
}

func (s *DatabaseSuite) TestAddEntity_WithLocation() {
	loc := s.addLocation("/srv/catalog/payments.yaml")

	resp, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{
		LocationID: &loc.ID,
		Entity:     component("payments", "finance"),
	})
	s.Require().NoError(err)
	s.Require().NotNil(resp.LocationID)
	s.Equal(loc.ID, *resp.LocationID)
}

func (s *DatabaseSuite) TestAddEntity_UnknownLocation() {
	missing := uuid.NewString()
	_, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{
		LocationID: &missing,
		Entity:     component("payments", "finance"),
	})
	s.Error(err)
}

func (s *DatabaseSuite) TestUpdateEntity_ByUID() {
	created, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("payments", "finance")})
	s.Require().NoError(err)

	entity := created.Entity
	entity.Spec = map[string]any{"type": "service", "lifecycle": "deprecated"}

	updated, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: entity})
	s.Require().NoError(err)

	s.Equal(created.Entity.UID(), updated.Entity.UID())
	s.Equal(int64(2), updated.Entity.Generation())
	s.Equal("deprecated", updated.Entity.Spec["lifecycle"])
}

func (s *DatabaseSuite) TestUpdateEntity_ByNameAndNamespace() {
	created, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("payments", "finance")})
	s.Require().NoError(err)

	entity := component("payments", "finance")
	entity.Metadata.Labels = nil

	updated, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: entity})
	s.Require().NoError(err)

	s.Equal(created.Entity.UID(), updated.Entity.UID())
	s.Equal(int64(2), updated.Entity.Generation())
	s.Nil(updated.Entity.Metadata.Labels)

	entities, err := s.db.Entities(s.ctx)
	s.Require().NoError(err)
	s.Len(entities, 1)
}

func (s *DatabaseSuite) TestUpdateEntity_SameNameDifferentNamespaceInserts() {
	first, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("payments", "finance")})
	s.Require().NoError(err)
	second, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("payments", "retail")})
	s.Require().NoError(err)

	s.NotEqual(first.Entity.UID(), second.Entity.UID())
	s.Equal(int64(1), second.Entity.Generation())
}

func (s *DatabaseSuite) TestUpdateEntity_StaleGeneration() {
	created, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("payments", "finance")})
	s.Require().NoError(err)

	_, err = s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: created.Entity})
	s.Require().NoError(err)

	// created still carries generation 1, the row is now at 2
	_, err = s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: created.Entity})
	s.ErrorIs(err, store.ErrConflict)

	current, err := s.db.EntityByUID(s.ctx, created.Entity.UID())
	s.Require().NoError(err)
	s.Equal(int64(2), current.Entity.Generation())
}

func (s *DatabaseSuite) TestUpdateEntity_RenameCollision() {
	_, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("billing", "finance")})
	s.Require().NoError(err)
	payments, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("payments", "finance")})
	s.Require().NoError(err)

	renamed := payments.Entity
	meta := *renamed.Metadata
	meta.Name = "billing"
	renamed.Metadata = &meta

	_, err = s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: renamed})
	s.ErrorIs(err, store.ErrConflict)

	current, err := s.db.EntityByUID(s.ctx, payments.Entity.UID())
	s.Require().NoError(err)
	s.Equal("payments", current.Entity.Name())
	s.Equal(int64(1), current.Entity.Generation())
}

func (s *DatabaseSuite) TestUpdateEntity_Rename() {
	payments, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("payments", "finance")})
	s.Require().NoError(err)

	renamed := payments.Entity
	meta := *renamed.Metadata
	meta.Name = "payments-v2"
	renamed.Metadata = &meta

	updated, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: renamed})
	s.Require().NoError(err)
	s.Equal("payments-v2", updated.Entity.Name())
	s.Equal(payments.Entity.UID(), updated.Entity.UID())

	ns := "finance"
	_, err = s.db.Entity(s.ctx, "payments", &ns)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *DatabaseSuite) TestUpdateEntity_LocationKeptUnlessSupplied() {
	first := s.addLocation("/srv/catalog/a.yaml")
	second := s.addLocation("/srv/catalog/b.yaml")

	_, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{LocationID: &first.ID, Entity: component("payments", "finance")})
	s.Require().NoError(err)

	kept, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("payments", "finance")})
	s.Require().NoError(err)
	s.Require().NotNil(kept.LocationID)
	s.Equal(first.ID, *kept.LocationID)

	moved, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{LocationID: &second.ID, Entity: component("payments", "finance")})
	s.Require().NoError(err)
	s.Require().NotNil(moved.LocationID)
	s.Equal(second.ID, *moved.LocationID)
	s.Equal(int64(3), moved.Entity.Generation())
}

func (s *DatabaseSuite) TestEntities_Ordered() {
	for _, e := range []catalog.Entity{
		component("zeta", "b"),
		component("alpha", "b"),
		component("omega", "a"),
	} {
		_, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: e})
		s.Require().NoError(err)
	}

	entities, err := s.db.Entities(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entities, 3)

	var refs []string
	for _, e := range entities {
		refs = append(refs, e.Entity.Ref())
	}
	s.Equal([]string{"Component:a/omega", "Component:b/alpha", "Component:b/zeta"}, refs)
}

func (s *DatabaseSuite) TestEntity() {
	created, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("payments", "finance")})
	s.Require().NoError(err)
	_, err = s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("web", "")})
	s.Require().NoError(err)

	ns := "finance"
	found, err := s.db.Entity(s.ctx, "payments", &ns)
	s.Require().NoError(err)
	s.Equal(created.Entity.UID(), found.Entity.UID())

	_, err = s.db.Entity(s.ctx, "payments", nil)
	s.ErrorIs(err, store.ErrNotFound)

	empty := ""
	web, err := s.db.Entity(s.ctx, "web", &empty)
	s.Require().NoError(err)
	s.Equal("web", web.Entity.Name())

	other := "retail"
	_, err = s.db.Entity(s.ctx, "payments", &other)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *DatabaseSuite) TestEntity_AmbiguousIsNotFound() {
	// SQLite treats NULLs as distinct in UNIQUE constraints
	for i := 0; i < 2; i++ {
		name := "dup"
		s.Require().NoError(s.gormDB.Create(&model.Entity{
			Generation: 1,
			APIVersion: "v1",
			Kind:       "Component",
			Name:       &name,
		}).Error)
	}

	_, err := s.db.Entity(s.ctx, "dup", nil)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *DatabaseSuite) TestEntityByUID_NotFound() {
	_, err := s.db.EntityByUID(s.ctx, uuid.NewString())
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *DatabaseSuite) TestRemoveEntity() {
	created, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("payments", "finance")})
	s.Require().NoError(err)

	value := "service"
	s.Require().NoError(s.gormDB.Create(&model.EntitySearch{
		EntityID: created.Entity.UID(),
		Key:      "spec.type",
		Value:    &value,
	}).Error)

	s.Require().NoError(s.db.RemoveEntity(s.ctx, created.Entity.UID()))

	var count int64
	s.Require().NoError(s.gormDB.Model(&model.EntitySearch{}).Where("entity_id = ?", created.Entity.UID()).Count(&count).Error)
	s.Zero(count)

	err = s.db.RemoveEntity(s.ctx, created.Entity.UID())
	s.True(errors.Is(err, store.ErrNotFound))
}

func (s *DatabaseSuite) TestTransaction_Rollback() {
	boom := errors.New("boom")
	err := s.db.Transaction(s.ctx, func(tx store.Database) error {
		if _, err := tx.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: component("payments", "finance")}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	entities, err := s.db.Entities(s.ctx)
	s.Require().NoError(err)
	s.Empty(entities)
}

func (s *DatabaseSuite) TestTransaction_Commit() {
	err := s.db.Transaction(s.ctx, func(tx store.Database) error {
		loc, err := tx.AddLocation(s.ctx, catalog.Location{Type: "file", Target: "/srv/catalog/a.yaml"})
		if err != nil {
			return err
		}
		_, err = tx.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{LocationID: &loc.ID, Entity: component("payments", "finance")})
		return err
	})
	s.Require().NoError(err)

	entities, err := s.db.Entities(s.ctx)
	s.Require().NoError(err)
	s.Len(entities, 1)
}

func (s *DatabaseSuite) TestAddEntity_MinimalComponent() {
	resp, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{
		Entity: catalog.Entity{
			APIVersion: "v1",
			Kind:       "Component",
			Metadata:   &catalog.EntityMeta{Name: "a"},
			Spec:       map[string]any{},
		},
	})
	s.Require().NoError(err)

	s.Equal("a", resp.Entity.Metadata.Name)
	s.Equal(int64(1), resp.Entity.Generation())
	_, err = uuid.Parse(resp.Entity.UID())
	s.NoError(err)
	s.Equal(map[string]any{}, resp.Entity.Spec)
}

func (s *DatabaseSuite) TestAddEntity_RoundTrip() {
	entity := component("payments", "finance")
	entity.Metadata.Annotations = map[string]string{"owner": "team-a"}
	entity.Spec["ports"] = []any{float64(8080), float64(9090)}

	created, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: entity})
	s.Require().NoError(err)

	ns := "finance"
	found, err := s.db.Entity(s.ctx, "payments", &ns)
	s.Require().NoError(err)

	s.Equal(entity.APIVersion, found.Entity.APIVersion)
	s.Equal(entity.Kind, found.Entity.Kind)
	s.Equal(entity.Metadata.Name, found.Entity.Metadata.Name)
	s.Equal(entity.Metadata.Namespace, found.Entity.Metadata.Namespace)
	s.Equal(entity.Metadata.Labels, found.Entity.Metadata.Labels)
	s.Equal(entity.Metadata.Annotations, found.Entity.Metadata.Annotations)
	s.Equal(entity.Spec, found.Entity.Spec)
	s.Equal(created.Entity.UID(), found.Entity.UID())
	s.Equal(int64(1), found.Entity.Generation())
}

func (s *DatabaseSuite) TestEntity_Missing() {
	_, err := s.db.Entity(s.ctx, "missing", nil)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *DatabaseSuite) TestAddEntity_KeepsExtraMetadata() {
	entity := component("a", "")
	entity.Metadata.Extra = map[string]any{
		"description": "payments service",
		"tags":        []any{"java"},
	}

	created, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: entity})
	s.Require().NoError(err)
	s.Equal(entity.Metadata.Extra, created.Entity.Metadata.Extra)

	var row model.Entity
	s.Require().NoError(s.gormDB.Where("id = ?", created.Entity.UID()).First(&row).Error)
	s.NotContains(string(row.Metadata), `"uid"`)
	s.NotContains(string(row.Metadata), `"generation"`)
	s.Contains(string(row.Metadata), `"description":"payments service"`)

	update := component("a", "")
	update.Metadata.Extra = map[string]any{"description": "billing service"}
	updated, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: update})
	s.Require().NoError(err)
	s.Equal(int64(2), updated.Entity.Generation())
	s.Equal(map[string]any{"description": "billing service"}, updated.Entity.Metadata.Extra)
}

func (s *DatabaseSuite) TestEntities_NullNamespaceFirst() {
	for _, e := range []catalog.Entity{
		component("zeta", "a"),
		component("web", ""),
		component("alpha", "a"),
		component("api", ""),
	} {
		_, err := s.db.AddOrUpdateEntity(s.ctx, catalog.AddEntityRequest{Entity: e})
		s.Require().NoError(err)
	}

	entities, err := s.db.Entities(s.ctx)
	s.Require().NoError(err)

	var refs []string
	for _, e := range entities {
		refs = append(refs, e.Entity.Ref())
	}
	s.Equal([]string{"Component:api", "Component:web", "Component:a/alpha", "Component:a/zeta"}, refs)
}
