package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"garden/pkg/dashboard/controller"
	diaryRepo "garden/pkg/diary/repository"
	harvestRepo "garden/pkg/harvest/repository"
	"garden/pkg/httperr"
	locationRepo "garden/pkg/location/repository"
	plantingSvc "garden/pkg/planting/service"
	taskRepo "garden/pkg/task/repository"

	cropRepo "garden/pkg/crop/repository"
)

const recentLimit = 5

type DashboardCtrl struct {
	crops     cropRepo.CropRepository
	locations locationRepo.LocationRepository
	plantings plantingSvc.PlantingService
	harvests  harvestRepo.HarvestRepository
	diaries   diaryRepo.DiaryRepository
	tasks     taskRepo.TaskRepository
}

func New(
	crops cropRepo.CropRepository,
	locations locationRepo.LocationRepository,
	plantings plantingSvc.PlantingService,
	harvests harvestRepo.HarvestRepository,
	diaries diaryRepo.DiaryRepository,
	tasks taskRepo.TaskRepository,
) controller.DashboardController {
	return &DashboardCtrl{crops, locations, plantings, harvests, diaries, tasks}
}

// Summary rolls up the counts and recent records the start page renders.
func (h *DashboardCtrl) Summary(c echo.Context) error {
	cropCount, err := h.crops.Count()
	if err != nil {
		return httperr.JSON(c, err)
	}
	locationCount, err := h.locations.Count()
	if err != nil {
		return httperr.JSON(c, err)
	}
	activeCount, err := h.plantings.CountActive()
	if err != nil {
		return httperr.JSON(c, err)
	}
	harvestCount, err := h.harvests.Count()
	if err != nil {
		return httperr.JSON(c, err)
	}
	diaryCount, err := h.diaries.Count()
	if err != nil {
		return httperr.JSON(c, err)
	}
	pendingTasks, err := h.tasks.Pending(recentLimit)
	if err != nil {
		return httperr.JSON(c, err)
	}
	recentDiaries, err := h.diaries.Recent(recentLimit)
	if err != nil {
		return httperr.JSON(c, err)
	}
	recentHarvests, err := h.harvests.Recent(recentLimit)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"counts": map[string]int64{
			"crops":            cropCount,
			"locations":        locationCount,
			"active_plantings": activeCount,
			"harvests":         harvestCount,
			"diaries":          diaryCount,
		},
		"pending_tasks":   pendingTasks,
		"recent_diaries":  recentDiaries,
		"recent_harvests": recentHarvests,
	})
}
