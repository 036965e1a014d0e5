package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/ingestion"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/store"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc       *TestContext
	dir      string
	location *catalog.Location
	result   ingestion.Result
	err      error
}

// NewStepsContext creates a new steps context writing descriptor files to dir
func NewStepsContext(tc *TestContext, dir string) *StepsContext {
	return &StepsContext{tc: tc, dir: dir}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, s.tc.Reset(ctx)
	})

	sc.Step(`^an empty catalog$`, s.anEmptyCatalog)
	sc.Step(`^a descriptor file "([^"]*)" with:$`, s.aDescriptorFileWith)
	sc.Step(`^I register a file location for "([^"]*)"$`, s.iRegisterAFileLocationFor)
	sc.Step(`^registering a file location for "([^"]*)" again returns the same location$`, s.registeringAgainReturnsTheSameLocation)
	sc.Step(`^I refresh the location$`, s.iRefreshTheLocation)
	sc.Step(`^the refresh should succeed$`, s.theRefreshShouldSucceed)
	sc.Step(`^the refresh should fail$`, s.theRefreshShouldFail)
	sc.Step(`^the catalog should contain (\d+) entit(?:y|ies)$`, s.theCatalogShouldContainEntities)
	sc.Step(`^entity "([^"]*)" in namespace "([^"]*)" should have generation (\d+)$`, s.entityShouldHaveGeneration)
	sc.Step(`^entity "([^"]*)" without namespace should exist$`, s.entityWithoutNamespaceShouldExist)
	sc.Step(`^the location log should contain (\d+) "([^"]*)" events?$`, s.theLocationLogShouldContain)
	sc.Step(`^removing the location should fail$`, s.removingTheLocationShouldFail)
	sc.Step(`^removing the location should succeed$`, s.removingTheLocationShouldSucceed)
	sc.Step(`^I remove entity "([^"]*)" in namespace "([^"]*)"$`, s.iRemoveEntity)
	sc.Step(`^applying entity "([^"]*)" in namespace "([^"]*)" with generation (\d+) should conflict$`, s.applyingWithGenerationShouldConflict)
}

func (s *StepsContext) anEmptyCatalog(ctx context.Context) error {
	entities, err := s.tc.Store.Entities(ctx)
	if err != nil {
		return err
	}
	if len(entities) != 0 {
		return fmt.Errorf("expected an empty catalog, found %d entities", len(entities))
	}
	return nil
}

func (s *StepsContext) aDescriptorFileWith(name string, content *godog.DocString) error {
	return os.WriteFile(filepath.Join(s.dir, name), []byte(content.Content), 0o600)
}

func (s *StepsContext) iRegisterAFileLocationFor(ctx context.Context, name string) error {
	loc, err := s.tc.Store.AddLocation(ctx, catalog.Location{
		Type:   ingestion.LocationTypeFile,
		Target: filepath.Join(s.dir, name),
	})
	if err != nil {
		return err
	}
	s.location = loc
	return nil
}

func (s *StepsContext) registeringAgainReturnsTheSameLocation(ctx context.Context, name string) error {
	loc, err := s.tc.Store.AddLocation(ctx, catalog.Location{
		Type:   ingestion.LocationTypeFile,
		Target: filepath.Join(s.dir, name),
	})
	if err != nil {
		return err
	}
	if loc.ID != s.location.ID {
		return fmt.Errorf("expected location %s, got %s", s.location.ID, loc.ID)
	}
	return nil
}

func (s *StepsContext) iRefreshTheLocation(ctx context.Context) error {
	s.result, s.err = ingestion.NewRefresher(s.tc.Store).Refresh(ctx, *s.location)
	return nil
}

func (s *StepsContext) theRefreshShouldSucceed() error {
	if s.err != nil {
		return fmt.Errorf("expected refresh to succeed: %w", s.err)
	}
	if len(s.result.Failed) > 0 {
		return fmt.Errorf("expected no failed entities, got %d: %v", len(s.result.Failed), s.result.Failed[0].Err)
	}
	return nil
}

func (s *StepsContext) theRefreshShouldFail() error {
	if s.err == nil && len(s.result.Failed) == 0 {
		return fmt.Errorf("expected refresh to fail")
	}
	return nil
}

func (s *StepsContext) theCatalogShouldContainEntities(ctx context.Context, count int) error {
	entities, err := s.tc.Store.Entities(ctx)
	if err != nil {
		return err
	}
	if len(entities) != count {
		return fmt.Errorf("expected %d entities, found %d", count, len(entities))
	}
	return nil
}

func (s *StepsContext) entityShouldHaveGeneration(ctx context.Context, name, namespace string, generation int) error {
	resp, err := s.tc.Store.Entity(ctx, name, &namespace)
	if err != nil {
		return err
	}
	if got := resp.Entity.Generation(); got != int64(generation) {
		return fmt.Errorf("expected generation %d, got %d", generation, got)
	}
	if resp.LocationID == nil || *resp.LocationID != s.location.ID {
		return fmt.Errorf("expected entity to reference location %s", s.location.ID)
	}
	return nil
}

func (s *StepsContext) entityWithoutNamespaceShouldExist(ctx context.Context, name string) error {
	_, err := s.tc.Store.Entity(ctx, name, nil)
	return err
}

func (s *StepsContext) theLocationLogShouldContain(ctx context.Context, count int, status string) error {
	want, err := catalog.StatusString(status)
	if err != nil {
		return err
	}

	events, err := s.tc.Store.LocationHistory(ctx, s.location.ID)
	if err != nil {
		return err
	}

	got := 0
	for _, event := range events {
		if event.Status == want {
			got++
		}
	}
	if got != count {
		return fmt.Errorf("expected %d %s events, found %d", count, status, got)
	}
	return nil
}

func (s *StepsContext) removingTheLocationShouldFail(ctx context.Context) error {
	err := s.tc.Store.RemoveLocation(ctx, s.location.ID)
	if err == nil {
		return fmt.Errorf("expected removing location %s to fail", s.location.ID)
	}
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("expected a foreign key error, got %w", err)
	}
	return nil
}

func (s *StepsContext) removingTheLocationShouldSucceed(ctx context.Context) error {
	return s.tc.Store.RemoveLocation(ctx, s.location.ID)
}

func (s *StepsContext) iRemoveEntity(ctx context.Context, name, namespace string) error {
	resp, err := s.tc.Store.Entity(ctx, name, &namespace)
	if err != nil {
		return err
	}
	return s.tc.Store.RemoveEntity(ctx, resp.Entity.UID())
}

func (s *StepsContext) applyingWithGenerationShouldConflict(ctx context.Context, name, namespace string, generation int) error {
	resp, err := s.tc.Store.Entity(ctx, name, &namespace)
	if err != nil {
		return err
	}

	entity := resp.Entity
	meta := *entity.Metadata
	meta.Generation = int64(generation)
	entity.Metadata = &meta

	_, err = s.tc.Store.AddOrUpdateEntity(ctx, catalog.AddEntityRequest{Entity: entity})
	if !errors.Is(err, store.ErrConflict) {
		return fmt.Errorf("expected a conflict, got %v", err)
	}
	return nil
}
