package solar

// Record describes one celestial body. All values are real-world figures;
// the builder compresses them into renderable ranges.
type Record struct {
	Texture            string  // path relative to the resources directory
	Diameter           float32 // km
	RotationalVelocity float32 // surface speed at the equator, km/h
	OrbitalRadius      float32 // 10^6 km
	OrbitalPeriod      float32 // days
	Inclination        float32 // degrees
}

// Catalog is the full parameter table for one system: a sun, its planets
// in orbit order, and a single moon attached to the third planet. It is a
// plain value so tests can build alternate systems.
type Catalog struct {
	Sun     Record
	Moon    Record
	Planets []Record
}

// DefaultCatalog returns the solar system table.
//
// Sources:
// https://nssdc.gsfc.nasa.gov/planetary/factsheet/
// https://sos.noaa.gov/catalog/datasets/planet-rotations/
// https://www.solarsystemscope.com/textures/
func DefaultCatalog() Catalog {
	return Catalog{
		Sun: Record{
			Texture:  "images/sun.jpeg",
			Diameter: 1392684,
		},
		Moon: Record{
			Texture:            "images/moon.jpeg",
			Diameter:           3475,
			RotationalVelocity: 16.7,
			OrbitalRadius:      0.384,
			OrbitalPeriod:      27.3,
			Inclination:        5.1,
		},
		Planets: []Record{
			{
				Texture:            "images/mercury.jpeg",
				Diameter:           4879,
				RotationalVelocity: 10.83,
				OrbitalRadius:      57.9,
				OrbitalPeriod:      88,
				Inclination:        7.0,
			},
			{
				Texture:            "images/venus.jpeg",
				Diameter:           12104,
				RotationalVelocity: 6.52,
				OrbitalRadius:      108.2,
				OrbitalPeriod:      224.7,
				Inclination:        3.4,
			},
			{
				Texture:            "images/earth.jpeg",
				Diameter:           12756,
				RotationalVelocity: 1574,
				OrbitalRadius:      149.6,
				OrbitalPeriod:      365.2,
			},
			{
				Texture:            "images/mars.jpeg",
				Diameter:           6792,
				RotationalVelocity: 866,
				OrbitalRadius:      228,
				OrbitalPeriod:      687,
				Inclination:        1.8,
			},
			{
				Texture:            "images/jupiter.jpeg",
				Diameter:           142984,
				RotationalVelocity: 45583,
				OrbitalRadius:      778.5,
				OrbitalPeriod:      4331,
				Inclination:        1.3,
			},
			{
				Texture:            "images/saturn.jpeg",
				Diameter:           120536,
				RotationalVelocity: 36840,
				OrbitalRadius:      1432,
				OrbitalPeriod:      10747,
				Inclination:        2.5,
			},
			{
				Texture:            "images/uranus.jpeg",
				Diameter:           51118,
				RotationalVelocity: 14798,
				OrbitalRadius:      2867,
				OrbitalPeriod:      30589,
				Inclination:        0.8,
			},
			{
				Texture:            "images/neptune.jpeg",
				Diameter:           49528,
				RotationalVelocity: 9719,
				OrbitalRadius:      4515,
				OrbitalPeriod:      59800,
				Inclination:        1.8,
			},
		},
	}
}
