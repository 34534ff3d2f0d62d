package universe

import (
	"starsystem-server/internal/body"
	"starsystem-server/internal/orbit"
)

// BuildTree assembles the orbit hierarchy of a universe. Roots are the
// bodies that orbit nothing, in the order given. Satellites keep the order
// of orbits, which the repository returns sorted by semi-major axis. Levels
// with no bodies are empty slices, never nil, so the JSON shows [] rather
// than null.
func BuildTree(bodies []body.Body, orbits []orbit.Orbit) []TreeNode {
	orbitsByPrimary := make(map[int][]orbit.Orbit)
	orbiting := make(map[int]bool, len(orbits))
	for _, o := range orbits {
		orbitsByPrimary[o.PrimaryBodyID] = append(orbitsByPrimary[o.PrimaryBodyID], o)
		orbiting[o.OrbitingBodyID] = true
	}

	bodiesByID := make(map[int]body.Body, len(bodies))
	for _, b := range bodies {
		bodiesByID[b.ID] = b
	}

	roots := []TreeNode{}
	for _, b := range bodies {
		if orbiting[b.ID] {
			continue
		}
		roots = append(roots, buildNode(b, nil, bodiesByID, orbitsByPrimary))
	}
	return roots
}

func buildNode(b body.Body, via *orbit.Orbit, bodiesByID map[int]body.Body, orbitsByPrimary map[int][]orbit.Orbit) TreeNode {
	node := TreeNode{
		BodyID:     b.ID,
		Name:       b.Name,
		Kind:       b.Kind,
		MassKg:     b.MassKg,
		RadiusKm:   b.RadiusKm,
		Satellites: []TreeNode{},
	}
	if via != nil {
		node.OrbitID = &via.ID
		node.SemimajorAxisKm = &via.SemimajorAxisKm
		node.Eccentricity = &via.Eccentricity
	}

	for i, o := range orbitsByPrimary[b.ID] {
		satellite, ok := bodiesByID[o.OrbitingBodyID]
		if !ok {
			continue
		}
		node.Satellites = append(node.Satellites, buildNode(satellite, &orbitsByPrimary[b.ID][i], bodiesByID, orbitsByPrimary))
	}
	return node
}

// Untethered lists the bodies that neither orbit anything nor have anything
// orbiting them.
func Untethered(bodies []body.Body, orbits []orbit.Orbit) []body.Body {
	tethered := make(map[int]bool, len(orbits)*2)
	for _, o := range orbits {
		tethered[o.PrimaryBodyID] = true
		tethered[o.OrbitingBodyID] = true
	}

	untethered := []body.Body{}
	for _, b := range bodies {
		if !tethered[b.ID] {
			untethered = append(untethered, b)
		}
	}
	return untethered
}
