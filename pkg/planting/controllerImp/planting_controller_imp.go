package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	harvestRepo "garden/pkg/harvest/repository"
	"garden/pkg/httperr"
	"garden/pkg/planting/controller"
	"garden/pkg/planting/service"
)

type PlantingCtrl struct {
	svc      service.PlantingService
	harvests harvestRepo.HarvestRepository
}

func New(svc service.PlantingService, harvests harvestRepo.HarvestRepository) controller.PlantingController {
	return &PlantingCtrl{svc, harvests}
}

func (h *PlantingCtrl) Plant(c echo.Context) error {
	in := service.PlantInput{
		LocationID:  c.FormValue("location_id"),
		CropID:      c.FormValue("crop_id"),
		PlantedDate: c.FormValue("planted_date"),
		Quantity:    c.FormValue("quantity"),
		Notes:       c.FormValue("notes"),
	}
	id, err := h.svc.Plant(in)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]uint{"id": id})
}

func (h *PlantingCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.svc.Get(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	harvests, err := h.harvests.ByPlanting(p.ID)
	if err != nil {
		return httperr.JSON(c, err)
	}
	summary, err := h.harvests.SummaryByPlanting(p.ID)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"planting": p,
		"harvests": harvests,
		"summary":  summary,
	})
}

func (h *PlantingCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	in := service.UpdateInput{
		PlantedDate: c.FormValue("planted_date"),
		Quantity:    c.FormValue("quantity"),
		Notes:       c.FormValue("notes"),
		Status:      c.FormValue("status"),
	}
	if err := h.svc.Update(uint(id), in); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *PlantingCtrl) MarkHarvested(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.MarkHarvested(uint(id)); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "harvested"})
}

func (h *PlantingCtrl) Remove(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Remove(uint(id)); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "removed"})
}

func (h *PlantingCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uint(id)); err != nil {
		return httperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type positionReq struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (h *PlantingCtrl) Position(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req positionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.UpdatePosition(uint(id), req.X, req.Y); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "positioned"})
}

func (h *PlantingCtrl) ListActive(c echo.Context) error {
	out, err := h.svc.AllActive()
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
