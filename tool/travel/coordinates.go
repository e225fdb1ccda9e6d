package travel

import "strings"

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// cityCoordinates maps known city names to coordinates for the weather
// endpoint. Lookup is case-insensitive; an unknown city is a hard
// failure for the weather tool.
var cityCoordinates = map[string]Coordinate{
	"mumbai":     {19.0760, 72.8777},
	"delhi":      {28.7041, 77.1025},
	"bangalore":  {12.9716, 77.5946},
	"kolkata":    {22.5726, 88.3639},
	"chennai":    {13.0827, 80.2707},
	"hyderabad":  {17.3850, 78.4867},
	"pune":       {18.5204, 73.8567},
	"ahmedabad":  {23.0225, 72.5714},
	"jaipur":     {26.9124, 75.7873},
	"goa":        {15.2993, 74.1240},
	"kochi":      {9.9312, 76.2673},
	"udaipur":    {24.5854, 73.7125},
	"varanasi":   {25.3176, 82.9739},
	"shimla":     {31.1048, 77.1734},
	"manali":     {32.2432, 77.1892},
	"darjeeling": {27.0410, 88.2663},
	"agra":       {27.1767, 78.0081},
	"amritsar":   {31.6340, 74.8723},
	"mysore":     {12.2958, 76.6394},
	"rishikesh":  {30.0869, 78.2676},
}

// CityCoordinates resolves a city name to coordinates.
func CityCoordinates(city string) (Coordinate, bool) {
	coord, ok := cityCoordinates[strings.ToLower(strings.TrimSpace(city))]
	return coord, ok
}
