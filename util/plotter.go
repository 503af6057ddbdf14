package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/rneedle3/play-now/models"
)

// PlotCourtMap generates an HTML snapshot of the marker set, split into
// available and unavailable series. Ops tooling only; the interactive map is
// a MapSurface implementation, not this.
func PlotCourtMap(view models.MapView, outPath string) {
	var available, unavailable []opts.GeoData
	for _, m := range view.Markers {
		point := opts.GeoData{Name: m.VenueName, Value: []float64{m.Lng, m.Lat}}
		if m.Available {
			available = append(available, point)
		} else {
			unavailable = append(unavailable, point)
		}
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Court Availability Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Available", types.ChartScatter, available,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("Unavailable", types.ChartScatter, unavailable,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Court availability map generated: " + outPath)
}
