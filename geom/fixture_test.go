package geom

import (
	"embed"
	"log"
)

// Fixtures are SVG files in the fixtures/ directory, loaded by name sans
// extension. Anything going wrong while loading is fatal.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) []Shape {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	shapes, err := ParseSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return shapes
}

// Load the first path in a fixture.
func loadPathFixture(name string) *LinearPath {
	for _, shape := range loadFixture(name) {
		if path, ok := shape.(*LinearPath); ok {
			return path
		}
	}
	log.Fatalf("No path found in fixture %q", name)
	return nil
}
