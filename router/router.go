package router

import (
	"github.com/labstack/echo/v4"

	calendarCtrl "garden/pkg/calendar/controller"
	cropCtrl "garden/pkg/crop/controller"
	dashboardCtrl "garden/pkg/dashboard/controller"
	diaryCtrl "garden/pkg/diary/controller"
	harvestCtrl "garden/pkg/harvest/controller"
	locationCtrl "garden/pkg/location/controller"
	plantingCtrl "garden/pkg/planting/controller"
	taskCtrl "garden/pkg/task/controller"
)

func New(
	e *echo.Echo,
	crops cropCtrl.CropController,
	locations locationCtrl.LocationController,
	plantings plantingCtrl.PlantingController,
	harvests harvestCtrl.HarvestController,
	diaries diaryCtrl.DiaryController,
	tasks taskCtrl.TaskController,
	calendar calendarCtrl.CalendarController,
	dashboard dashboardCtrl.DashboardController,
	health interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", health.Health)
	e.GET("/dashboard", dashboard.Summary)
	e.GET("/calendar", calendar.Month)

	c := e.Group("/crops")
	c.GET("", crops.List)
	c.POST("", crops.Create)
	c.GET("/:id", crops.Get)
	c.PUT("/:id", crops.Update)
	c.DELETE("/:id", crops.Delete)

	l := e.Group("/locations")
	l.GET("", locations.List)
	l.POST("", locations.Create)
	l.GET("/:id", locations.Get)
	l.PUT("/:id", locations.Update)
	l.DELETE("/:id", locations.Delete)
	l.GET("/:id/canvas", locations.Canvas)
	l.POST("/:id/canvas", locations.SaveCanvas)
	l.GET("/:id/plantings", locations.Plantings)

	p := e.Group("/plantings")
	p.GET("", plantings.ListActive)
	p.POST("", plantings.Plant)
	p.GET("/:id", plantings.Get)
	p.PUT("/:id", plantings.Update)
	p.POST("/:id/harvested", plantings.MarkHarvested)
	p.POST("/:id/removed", plantings.Remove)
	p.DELETE("/:id", plantings.Delete)
	p.PATCH("/:id/position", plantings.Position)

	h := e.Group("/harvests")
	h.GET("", harvests.List)
	h.POST("", harvests.Create)
	h.GET("/export", harvests.Export)
	h.GET("/:id", harvests.Get)
	h.PUT("/:id", harvests.Update)
	h.DELETE("/:id", harvests.Delete)

	d := e.Group("/diaries")
	d.GET("", diaries.List)
	d.POST("", diaries.Create)
	d.GET("/:id", diaries.Get)
	d.PUT("/:id", diaries.Update)
	d.DELETE("/:id", diaries.Delete)

	t := e.Group("/tasks")
	t.GET("", tasks.List)
	t.POST("", tasks.Create)
	t.GET("/:id", tasks.Get)
	t.PUT("/:id", tasks.Update)
	t.PATCH("/:id/status", tasks.UpdateStatus)
	t.DELETE("/:id", tasks.Delete)

	return e
}
