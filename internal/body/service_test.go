package body_test

import (
	"context"
	"log/slog"
	"testing"

	"starsystem-server/internal/body"
	"starsystem-server/internal/shared/database"
	"starsystem-server/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *body.Service {
	return body.NewService(nil, nil, slog.Default())
}

func float64Ptr(v float64) *float64 { return &v }

// fakeStore keeps bodies in memory so service behavior around persistence
// can be tested without a database.
type fakeStore struct {
	nextID int
	bodies map[int]body.Body
}

func newFakeStore() *fakeStore {
	return &fakeStore{bodies: make(map[int]body.Body)}
}

func (f *fakeStore) CreateBody(_ context.Context, universeID int, name string, kind body.Kind, massKg, radiusKm float64, temperatureK *float64, _ *database.Tx) (*body.Body, error) {
	f.nextID++
	b := body.Body{
		ID:           f.nextID,
		UniverseID:   universeID,
		Name:         name,
		Kind:         kind,
		MassKg:       massKg,
		RadiusKm:     radiusKm,
		TemperatureK: temperatureK,
	}
	f.bodies[b.ID] = b
	return &b, nil
}

func (f *fakeStore) GetBody(_ context.Context, id int, _ *database.Tx) (*body.Body, error) {
	b, ok := f.bodies[id]
	if !ok {
		return nil, errors.NotFoundf("body %d not found", id)
	}
	return &b, nil
}

func (f *fakeStore) GetBodiesByUniverseID(_ context.Context, universeID int) ([]body.Body, error) {
	bodies := []body.Body{}
	for _, b := range f.bodies {
		if b.UniverseID == universeID {
			bodies = append(bodies, b)
		}
	}
	return bodies, nil
}

func (f *fakeStore) DeleteBody(_ context.Context, id int) error {
	if _, ok := f.bodies[id]; !ok {
		return errors.NotFoundf("body %d not found", id)
	}
	delete(f.bodies, id)
	return nil
}

// spyInvalidator records which universes had their caches dropped.
type spyInvalidator struct {
	universeIDs []int
}

func (s *spyInvalidator) InvalidateUniverse(_ context.Context, universeID int) {
	s.universeIDs = append(s.universeIDs, universeID)
}

func TestComputeStatsPlanet(t *testing.T) {
	svc := newTestService()

	earth := &body.Body{
		ID:       1,
		Name:     "Earth",
		Kind:     body.KindPlanet,
		MassKg:   5.972e24,
		RadiusKm: 6371,
	}

	stats, err := svc.ComputeStats(earth)
	require.NoError(t, err)

	assert.InEpsilon(t, 1.0832e12, stats.VolumeKm3, 0.001)
	assert.InEpsilon(t, 5513, stats.DensityKgM3, 0.01)
	assert.InEpsilon(t, 9.81, stats.GravityMS2, 0.01)
	assert.Nil(t, stats.LuminosityWatts)
	assert.Nil(t, stats.EventHorizonKm)
}

func TestComputeStatsStar(t *testing.T) {
	svc := newTestService()

	sun := &body.Body{
		ID:           2,
		Name:         "Sun",
		Kind:         body.KindStar,
		MassKg:       1.989e30,
		RadiusKm:     6.963e5,
		TemperatureK: float64Ptr(5778),
	}

	stats, err := svc.ComputeStats(sun)
	require.NoError(t, err)

	require.NotNil(t, stats.LuminosityWatts)
	assert.InEpsilon(t, 3.828e26, *stats.LuminosityWatts, 0.01)
	assert.Nil(t, stats.EventHorizonKm)
}

func TestComputeStatsBlackHole(t *testing.T) {
	svc := newTestService()

	// Sagittarius A*, radius stored as the Schwarzschild radius in km.
	sgrA := &body.Body{
		ID:       3,
		Name:     "Sagittarius A*",
		Kind:     body.KindBlackHole,
		MassKg:   8.26e36,
		RadiusKm: 1.227e7,
	}

	stats, err := svc.ComputeStats(sgrA)
	require.NoError(t, err)

	require.NotNil(t, stats.EventHorizonKm)
	assert.InEpsilon(t, 1.227e7, *stats.EventHorizonKm, 0.01)
	assert.Nil(t, stats.LuminosityWatts)
}

func TestCreateBodyValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  body.CreateRequest
	}{
		{"missing name", body.CreateRequest{UniverseID: 1, Kind: body.KindPlanet, MassKg: 1, RadiusKm: 1}},
		{"unknown kind", body.CreateRequest{UniverseID: 1, Name: "X", Kind: "asteroid", MassKg: 1, RadiusKm: 1}},
		{"non-positive mass", body.CreateRequest{UniverseID: 1, Name: "X", Kind: body.KindPlanet, MassKg: 0, RadiusKm: 1}},
		{"non-positive radius", body.CreateRequest{UniverseID: 1, Name: "X", Kind: body.KindPlanet, MassKg: 1, RadiusKm: -1}},
		{"black hole with explicit radius", body.CreateRequest{UniverseID: 1, Name: "X", Kind: body.KindBlackHole, MassKg: 1e30, RadiusKm: 10}},
		{"star without temperature", body.CreateRequest{UniverseID: 1, Name: "X", Kind: body.KindStar, MassKg: 1e30, RadiusKm: 1e5}},
		{"non-positive temperature", body.CreateRequest{UniverseID: 1, Name: "X", Kind: body.KindPlanet, MassKg: 1, RadiusKm: 1, TemperatureK: float64Ptr(-10)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBody(ctx, tc.req, nil)
			require.Error(t, err)
			assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
		})
	}
}

func TestCreateBodyInvalidatesUniverseCache(t *testing.T) {
	ctx := context.Background()
	spy := &spyInvalidator{}
	svc := body.NewService(newFakeStore(), spy, slog.Default())

	_, err := svc.CreateBody(ctx, body.CreateRequest{
		UniverseID: 42,
		Name:       "Earth",
		Kind:       body.KindPlanet,
		MassKg:     5.972e24,
		RadiusKm:   6371,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{42}, spy.universeIDs)
}

func TestCreateBodyInTransactionDefersInvalidation(t *testing.T) {
	ctx := context.Background()
	spy := &spyInvalidator{}
	svc := body.NewService(newFakeStore(), spy, slog.Default())

	// The caller owns the transaction and refreshes caches after commit.
	_, err := svc.CreateBody(ctx, body.CreateRequest{
		UniverseID: 42,
		Name:       "Mars",
		Kind:       body.KindPlanet,
		MassKg:     6.39e23,
		RadiusKm:   3389.5,
	}, &database.Tx{})
	require.NoError(t, err)

	assert.Empty(t, spy.universeIDs)
}

func TestDeleteBodyInvalidatesUniverseCache(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	spy := &spyInvalidator{}
	svc := body.NewService(store, spy, slog.Default())

	b, err := svc.CreateBody(ctx, body.CreateRequest{
		UniverseID: 7,
		Name:       "Moon",
		Kind:       body.KindMoon,
		MassKg:     7.342e22,
		RadiusKm:   1737.4,
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBody(ctx, b.ID))

	assert.Equal(t, []int{7, 7}, spy.universeIDs)
}
