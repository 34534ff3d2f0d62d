package orbit_test

import (
	"context"
	"log/slog"
	"testing"

	"starsystem-server/internal/body"
	"starsystem-server/internal/orbit"
	"starsystem-server/internal/shared/database"
	"starsystem-server/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }

var (
	sun = &body.Body{
		ID:           1,
		UniverseID:   7,
		Name:         "Sun",
		Kind:         body.KindStar,
		MassKg:       1.989e30,
		RadiusKm:     6.963e5,
		TemperatureK: float64Ptr(5778),
	}
	earth = &body.Body{
		ID:         2,
		UniverseID: 7,
		Name:       "Earth",
		Kind:       body.KindPlanet,
		MassKg:     5.972e24,
		RadiusKm:   6371,
	}
)

func TestComputeElementsEarthSun(t *testing.T) {
	o := &orbit.Orbit{
		ID:              1,
		PrimaryBodyID:   sun.ID,
		OrbitingBodyID:  earth.ID,
		SemimajorAxisKm: 1.496e8,
		Eccentricity:    0.0167,
	}

	elements, err := orbit.ComputeElements(o, sun, earth)
	require.NoError(t, err)

	assert.InEpsilon(t, 1.49579e8, elements.SemiminorAxisKm, 0.001)
	assert.InEpsilon(t, 1.47101e8, elements.PerihelionKm, 0.001)
	assert.InEpsilon(t, 1.52099e8, elements.AphelionKm, 0.001)
	assert.InEpsilon(t, 365.25, elements.PeriodDays, 0.005)

	require.NotNil(t, elements.EquilibriumTempK)
	assert.InEpsilon(t, 279, *elements.EquilibriumTempK, 0.01)
}

func TestComputeElementsNoTemperatureWithoutStar(t *testing.T) {
	moon := &body.Body{
		ID:       3,
		Name:     "Moon",
		Kind:     body.KindMoon,
		MassKg:   7.342e22,
		RadiusKm: 1737.4,
	}
	o := &orbit.Orbit{
		PrimaryBodyID:   earth.ID,
		OrbitingBodyID:  moon.ID,
		SemimajorAxisKm: 384400,
		Eccentricity:    0.0549,
	}

	elements, err := orbit.ComputeElements(o, earth, moon)
	require.NoError(t, err)

	assert.InEpsilon(t, 27.3, elements.PeriodDays, 0.01)
	assert.Nil(t, elements.EquilibriumTempK)
}

func TestCheckGeometry(t *testing.T) {
	t.Run("valid orbit passes", func(t *testing.T) {
		err := orbit.CheckGeometry(sun, earth, 1.496e8, 0.0167)
		assert.NoError(t, err)
	})

	t.Run("perihelion inside combined radii", func(t *testing.T) {
		// Perihelion of 2e6 km at e=0.8 is 4e5 km, under the Sun's radius,
		// while the semi-minor axis of 1.2e6 km clears it.
		err := orbit.CheckGeometry(sun, earth, 2e6, 0.8)
		require.Error(t, err)
		assert.Equal(t, errors.ErrorTypeConflict, errors.GetType(err))
	})

	t.Run("semi-minor axis inside combined radii", func(t *testing.T) {
		err := orbit.CheckGeometry(sun, earth, 7e5, 0)
		require.Error(t, err)
		assert.Equal(t, errors.ErrorTypeConflict, errors.GetType(err))
	})

	t.Run("eccentricity out of range", func(t *testing.T) {
		err := orbit.CheckGeometry(sun, earth, 1.496e8, 1.2)
		require.Error(t, err)
		assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
	})
}

func TestWouldCycle(t *testing.T) {
	// Sun(1) <- Earth(2) <- Moon(3)
	existing := []orbit.Orbit{
		{PrimaryBodyID: 1, OrbitingBodyID: 2},
		{PrimaryBodyID: 2, OrbitingBodyID: 3},
	}

	t.Run("new leaf is fine", func(t *testing.T) {
		assert.False(t, orbit.WouldCycle(existing, 2, 4))
	})

	t.Run("direct cycle rejected", func(t *testing.T) {
		assert.True(t, orbit.WouldCycle(existing, 2, 1))
	})

	t.Run("transitive cycle rejected", func(t *testing.T) {
		assert.True(t, orbit.WouldCycle(existing, 3, 1))
	})

	t.Run("empty graph never cycles", func(t *testing.T) {
		assert.False(t, orbit.WouldCycle(nil, 1, 2))
	})
}

// fakeBodyStore serves a fixed set of bodies.
type fakeBodyStore struct {
	nextID int
	bodies map[int]body.Body
}

func (f *fakeBodyStore) CreateBody(_ context.Context, universeID int, name string, kind body.Kind, massKg, radiusKm float64, temperatureK *float64, _ *database.Tx) (*body.Body, error) {
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

func (f *fakeBodyStore) GetBody(_ context.Context, id int, _ *database.Tx) (*body.Body, error) {
	b, ok := f.bodies[id]
	if !ok {
		return nil, errors.NotFoundf("body %d not found", id)
	}
	return &b, nil
}

func (f *fakeBodyStore) GetBodiesByUniverseID(_ context.Context, universeID int) ([]body.Body, error) {
	bodies := []body.Body{}
	for _, b := range f.bodies {
		if b.UniverseID == universeID {
			bodies = append(bodies, b)
		}
	}
	return bodies, nil
}

func (f *fakeBodyStore) DeleteBody(_ context.Context, id int) error {
	if _, ok := f.bodies[id]; !ok {
		return errors.NotFoundf("body %d not found", id)
	}
	delete(f.bodies, id)
	return nil
}

// fakeOrbitStore mimics the repository, including the invariants it
// enforces at insert time: one primary per orbiting body and no cycles.
type fakeOrbitStore struct {
	nextID int
	orbits []orbit.Orbit
}

func (f *fakeOrbitStore) CreateOrbit(_ context.Context, universeID, primaryBodyID, orbitingBodyID int, semimajorAxisKm, eccentricity float64, _ *database.Tx) (*orbit.Orbit, error) {
	for _, o := range f.orbits {
		if o.OrbitingBodyID == orbitingBodyID {
			return nil, errors.Conflictf("body %d already orbits another body", orbitingBodyID)
		}
	}
	if orbit.WouldCycle(f.orbits, primaryBodyID, orbitingBodyID) {
		return nil, errors.Conflictf("orbit of body %d around body %d would close a cycle", orbitingBodyID, primaryBodyID)
	}

	f.nextID++
	o := orbit.Orbit{
		ID:              f.nextID,
		UniverseID:      universeID,
		PrimaryBodyID:   primaryBodyID,
		OrbitingBodyID:  orbitingBodyID,
		SemimajorAxisKm: semimajorAxisKm,
		Eccentricity:    eccentricity,
	}
	f.orbits = append(f.orbits, o)
	return &o, nil
}

func (f *fakeOrbitStore) GetOrbit(_ context.Context, id int) (*orbit.Orbit, error) {
	for _, o := range f.orbits {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, errors.NotFoundf("orbit %d not found", id)
}

func (f *fakeOrbitStore) GetOrbitsByUniverseID(_ context.Context, universeID int, _ *database.Tx) ([]orbit.Orbit, error) {
	orbits := []orbit.Orbit{}
	for _, o := range f.orbits {
		if o.UniverseID == universeID {
			orbits = append(orbits, o)
		}
	}
	return orbits, nil
}

func (f *fakeOrbitStore) DeleteOrbit(_ context.Context, id int) error {
	for i, o := range f.orbits {
		if o.ID == id {
			f.orbits = append(f.orbits[:i], f.orbits[i+1:]...)
			return nil
		}
	}
	return errors.NotFoundf("orbit %d not found", id)
}

// spyInvalidator records which universes had their caches dropped.
type spyInvalidator struct {
	universeIDs []int
}

func (s *spyInvalidator) InvalidateUniverse(_ context.Context, universeID int) {
	s.universeIDs = append(s.universeIDs, universeID)
}

func newTestService(spy *spyInvalidator) *orbit.Service {
	bodies := &fakeBodyStore{bodies: map[int]body.Body{sun.ID: *sun, earth.ID: *earth}}
	bodyService := body.NewService(bodies, nil, slog.Default())
	return orbit.NewService(&fakeOrbitStore{}, bodyService, spy, slog.Default())
}

func TestCreateOrbitInvalidatesUniverseCache(t *testing.T) {
	ctx := context.Background()
	spy := &spyInvalidator{}
	svc := newTestService(spy)

	_, err := svc.CreateOrbit(ctx, orbit.CreateRequest{
		PrimaryBodyID:   sun.ID,
		OrbitingBodyID:  earth.ID,
		SemimajorAxisKm: 1.496e8,
		Eccentricity:    0.0167,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{7}, spy.universeIDs)
}

func TestCreateOrbitInTransactionDefersInvalidation(t *testing.T) {
	ctx := context.Background()
	spy := &spyInvalidator{}
	svc := newTestService(spy)

	// The caller owns the transaction and refreshes caches after commit.
	_, err := svc.CreateOrbit(ctx, orbit.CreateRequest{
		PrimaryBodyID:   sun.ID,
		OrbitingBodyID:  earth.ID,
		SemimajorAxisKm: 1.496e8,
		Eccentricity:    0.0167,
	}, &database.Tx{})
	require.NoError(t, err)

	assert.Empty(t, spy.universeIDs)
}

func TestDeleteOrbitInvalidatesUniverseCache(t *testing.T) {
	ctx := context.Background()
	spy := &spyInvalidator{}
	svc := newTestService(spy)

	o, err := svc.CreateOrbit(ctx, orbit.CreateRequest{
		PrimaryBodyID:   sun.ID,
		OrbitingBodyID:  earth.ID,
		SemimajorAxisKm: 1.496e8,
		Eccentricity:    0.0167,
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrbit(ctx, o.ID))

	assert.Equal(t, []int{7, 7}, spy.universeIDs)
}

func TestCreateOrbitRejectsMutualOrbits(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&spyInvalidator{})

	_, err := svc.CreateOrbit(ctx, orbit.CreateRequest{
		PrimaryBodyID:   sun.ID,
		OrbitingBodyID:  earth.ID,
		SemimajorAxisKm: 1.496e8,
		Eccentricity:    0.0167,
	}, nil)
	require.NoError(t, err)

	// The reverse orbit reaches the insert-time check and must conflict,
	// even though nothing orbits the Sun's would-be primary yet.
	_, err = svc.CreateOrbit(ctx, orbit.CreateRequest{
		PrimaryBodyID:   earth.ID,
		OrbitingBodyID:  sun.ID,
		SemimajorAxisKm: 1.496e8,
		Eccentricity:    0.0167,
	}, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeConflict, errors.GetType(err))
}
