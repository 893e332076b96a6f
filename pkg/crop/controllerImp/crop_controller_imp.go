package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"garden/entities"
	"garden/pkg/crop/controller"
	"garden/pkg/crop/repository"
	diaryRepo "garden/pkg/diary/repository"
	harvestRepo "garden/pkg/harvest/repository"
	"garden/pkg/httperr"
	plantingSvc "garden/pkg/planting/service"
	"garden/pkg/upload"
)

type CropCtrl struct {
	crops     repository.CropRepository
	plantings plantingSvc.PlantingService
	harvests  harvestRepo.HarvestRepository
	diaries   diaryRepo.DiaryRepository
	images    *upload.Store
}

func New(crops repository.CropRepository, plantings plantingSvc.PlantingService,
	harvests harvestRepo.HarvestRepository, diaries diaryRepo.DiaryRepository,
	images *upload.Store) controller.CropController {
	return &CropCtrl{crops, plantings, harvests, diaries, images}
}

func (h *CropCtrl) List(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	var (
		out []entities.Crop
		err error
	)
	if keyword != "" {
		out, err = h.crops.Search(keyword)
	} else {
		out, err = h.crops.All()
	}
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	crop, err := h.crops.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	active, err := h.plantings.ActiveForCrop(crop.ID)
	if err != nil {
		return httperr.JSON(c, err)
	}
	harvests, err := h.harvests.ByCrop(crop.ID)
	if err != nil {
		return httperr.JSON(c, err)
	}
	diaries, err := h.diaries.ByCrop(crop.ID)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"crop":             crop,
		"active_plantings": active,
		"harvests":         harvests,
		"related_diaries":  diaries,
	})
}

func (h *CropCtrl) Create(c echo.Context) error {
	crop := &entities.Crop{
		Name:            c.FormValue("name"),
		CropType:        c.FormValue("crop_type"),
		Variety:         optForm(c, "variety"),
		Characteristics: optForm(c, "characteristics"),
		PlantingSeason:  optForm(c, "planting_season"),
		HarvestSeason:   optForm(c, "harvest_season"),
		Notes:           optForm(c, "notes"),
	}
	if crop.Name == "" || crop.CropType == "" {
		return httperr.JSON(c, fmt.Errorf("%w: name and crop_type are required", entities.ErrValidation))
	}

	if fh, err := c.FormFile("image"); err == nil {
		path, err := h.images.Save(fh, "crops")
		if err != nil {
			return httperr.JSON(c, err)
		}
		if path != "" {
			crop.ImagePath = &path
		}
	}

	if err := h.crops.Create(crop); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, crop)
}

func (h *CropCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	crop, err := h.crops.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}

	crop.Name = c.FormValue("name")
	crop.CropType = c.FormValue("crop_type")
	crop.Variety = optForm(c, "variety")
	crop.Characteristics = optForm(c, "characteristics")
	crop.PlantingSeason = optForm(c, "planting_season")
	crop.HarvestSeason = optForm(c, "harvest_season")
	crop.Notes = optForm(c, "notes")
	if crop.Name == "" || crop.CropType == "" {
		return httperr.JSON(c, fmt.Errorf("%w: name and crop_type are required", entities.ErrValidation))
	}

	// Image untouched unless a new file arrives or removal is requested.
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		path, err := h.images.Save(fh, "crops")
		if err != nil {
			return httperr.JSON(c, err)
		}
		if path != "" {
			if crop.ImagePath != nil {
				h.images.Delete(*crop.ImagePath)
			}
			crop.ImagePath = &path
		}
	} else if c.FormValue("remove_image") == "1" && crop.ImagePath != nil {
		h.images.Delete(*crop.ImagePath)
		crop.ImagePath = nil
	}

	if err := h.crops.Update(crop); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	crop, err := h.crops.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	if crop.ImagePath != nil {
		h.images.Delete(*crop.ImagePath)
	}
	if err := h.crops.Delete(crop.ID); err != nil {
		return httperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func optForm(c echo.Context, key string) *string {
	v := c.FormValue(key)
	if v == "" {
		return nil
	}
	return &v
}
