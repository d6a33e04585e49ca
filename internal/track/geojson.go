// Package track exports storm tracks as GeoJSON LineString features.
package track

import (
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"

	"github.com/couchcryptid/bdeck-ace/internal/domain"
	"github.com/couchcryptid/bdeck-ace/internal/pipeline"
)

// Feature builds a LineString feature from one storm's fix sequence.
// Coordinates are emitted lon-lat; longitudes stored 0-360 are folded back
// to the ±180 range GeoJSON consumers expect.
func Feature(stats domain.StormStats, fixes []domain.FixRecord) *geojson.Feature {
	coords := make([][]float64, 0, len(fixes))
	for _, fix := range fixes {
		lon := fix.Lon
		if lon > 180 {
			lon -= 360
		}
		coords = append(coords, []float64{lon, fix.Lat})
	}

	f := geojson.NewLineStringFeature(coords)
	f.SetProperty("atcf_code", stats.ATCFCode)
	f.SetProperty("max_wind", stats.MaxWind)
	f.SetProperty("ace", float64(stats.ACE.Total())/10000)
	return f
}

// Collection assembles one feature per storm into a FeatureCollection.
func Collection(storms []pipeline.StormResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, s := range storms {
		fc.AddFeature(Feature(s.Stats, s.Fixes))
	}
	return fc
}

// Export writes the storms' tracks as a GeoJSON file.
func Export(path string, storms []pipeline.StormResult) error {
	data, err := Collection(storms).MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal track collection: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write track geojson: %w", err)
	}
	return nil
}
