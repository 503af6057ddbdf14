package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rneedle3/play-now/api/recus"
	"github.com/rneedle3/play-now/config"
	"github.com/rneedle3/play-now/di"
	"github.com/rneedle3/play-now/middleware"
	"github.com/rneedle3/play-now/models"
	services "github.com/rneedle3/play-now/service"
	"github.com/rneedle3/play-now/util"
)

func testMockedRecUsAPIClient(recUsAPIClient recus.RecUsAPI) {
	log.Println("Running: testMockedRecUsAPIClient")
	response, err := recUsAPIClient.GetLocation("95745483-6b38-4e99-8ba2-a3e23cda8587")
	if err != nil {
		log.Println("Error while running testMockedRecUsAPIClient: ", err)
		return
	}

	util.PrintLocationResponsePartially(response)
}

// testCourtViewWithFixtures builds a full view from the JSON fixtures and
// renders the ops snapshot map, without touching Redis or Postgres.
func testCourtViewWithFixtures(renderer *services.AnnotationRenderer) {
	log.Println("Running: testCourtViewWithFixtures")

	venues, err := util.ReadVenuesFromJSON(config.GetResourcePath(config.VENUES_RESOURCE))
	if err != nil {
		log.Fatalf("Failed to read venues fixture: %v", err)
	}
	slots, err := util.ReadSlotsFromJSON(config.GetResourcePath(config.SLOTS_RESOURCE))
	if err != nil {
		log.Fatalf("Failed to read slots fixture: %v", err)
	}

	grouped := services.GroupSlotsByVenue(venues, slots)
	filtered := services.ApplySportFilter(grouped, models.FilterAll)
	vp := services.ComputeViewport(filtered)
	markers := renderer.BuildMarkers(filtered, vp.Zoom)

	available, unavailable := services.Partition(filtered)
	log.Printf("Fixture view: %d venues with availability, %d without",
		len(available), len(unavailable))

	view := models.MapView{Viewport: vp, Markers: markers}
	util.PlotCourtMap(view, "court_map.html")
}

func main() {
	config.LoadEnv()
	middleware.InitPrometheus()

	container := di.NewContainer("prod")

	// testMockedRecUsAPIClient(container.RecUsAPI)
	// testCourtViewWithFixtures(container.AnnotationRenderer)

	ctx := context.Background()

	fmt.Println("refreshing availability!")
	if err := container.AvailabilityRefresherService.RefreshAvailabilityData(ctx); err != nil {
		fmt.Println("initial refresh failed:", err)
	}

	fmt.Println("starting periodic job!")
	container.AvailabilityRefresherService.StartPeriodicJob(
		ctx, config.AVAILABILITY_REFRESHER_SCHEDULE_MINUTES*time.Minute)

	go middleware.CleanupVisitors()

	fmt.Println("starting server!")
	container.PlayNowHttpServer.Start()
}
