package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"garden/config"
	"garden/database"
	"garden/pkg/clock"
	"garden/pkg/relation"
	"garden/pkg/upload"
	"garden/router"

	calCtrlImp "garden/pkg/calendar/controllerImp"
	calSvcImp "garden/pkg/calendar/serviceImp"

	cropCtrlImp "garden/pkg/crop/controllerImp"
	cropRepoImp "garden/pkg/crop/repositoryImp"

	locCtrlImp "garden/pkg/location/controllerImp"
	locRepoImp "garden/pkg/location/repositoryImp"
	locSvcImp "garden/pkg/location/serviceImp"

	plantCtrlImp "garden/pkg/planting/controllerImp"
	plantRepoImp "garden/pkg/planting/repositoryImp"
	plantSvcImp "garden/pkg/planting/serviceImp"

	harvCtrlImp "garden/pkg/harvest/controllerImp"
	harvRepoImp "garden/pkg/harvest/repositoryImp"

	diaryCtrlImp "garden/pkg/diary/controllerImp"
	diaryRepoImp "garden/pkg/diary/repositoryImp"

	taskCtrlImp "garden/pkg/task/controllerImp"
	taskRepoImp "garden/pkg/task/repositoryImp"

	relRepoImp "garden/pkg/relation/repositoryImp"

	dashCtrlImp "garden/pkg/dashboard/controllerImp"
	healthCtrlImp "garden/pkg/health/controllerImp"
)

func main() {
	cfg := config.Load()
	clk := clock.System()

	db := database.OpenSQLite(cfg.DBPath)
	database.RunMigrations(db, cfg.MigrationsDir)

	images := upload.New(cfg.UploadDir)

	// Repositories
	crops := cropRepoImp.New(db, clk)
	locations := locRepoImp.New(db, clk)
	plantings := plantRepoImp.New(db, clk)
	harvests := harvRepoImp.New(db, clk)
	diaries := diaryRepoImp.New(db, clk)
	tasks := taskRepoImp.New(db, clk)
	diaryRels := relRepoImp.New(db, relation.DiaryOwner)
	taskRels := relRepoImp.New(db, relation.TaskOwner)

	// Services
	plantingSvc := plantSvcImp.New(plantings, crops, locations)
	locationSvc := locSvcImp.New(locations, plantings)
	calendarSvc := calSvcImp.New(db)

	// Controllers
	cropCtrl := cropCtrlImp.New(crops, plantingSvc, harvests, diaries, images)
	locCtrl := locCtrlImp.New(locations, locationSvc, diaries, images)
	plantCtrl := plantCtrlImp.New(plantingSvc, harvests)
	harvCtrl := harvCtrlImp.New(harvests, plantings, images)
	diaryCtrl := diaryCtrlImp.New(diaries, diaryRels, images)
	taskCtrl := taskCtrlImp.New(tasks, taskRels)
	calCtrl := calCtrlImp.New(calendarSvc, clk)
	dashCtrl := dashCtrlImp.New(crops, locations, plantingSvc, harvests, diaries, tasks)
	healthCtrl := healthCtrlImp.New(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Static("/uploads", cfg.UploadDir)

	r := router.New(e,
		cropCtrl, locCtrl, plantCtrl, harvCtrl,
		diaryCtrl, taskCtrl, calCtrl, dashCtrl, healthCtrl)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
