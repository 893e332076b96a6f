package controllerImp

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"garden/entities"
	diaryRepo "garden/pkg/diary/repository"
	"garden/pkg/httperr"
	"garden/pkg/location/controller"
	"garden/pkg/location/repository"
	"garden/pkg/location/service"
	"garden/pkg/upload"
)

type LocationCtrl struct {
	locations repository.LocationRepository
	svc       service.LocationService
	diaries   diaryRepo.DiaryRepository
	images    *upload.Store
}

func New(locations repository.LocationRepository, svc service.LocationService,
	diaries diaryRepo.DiaryRepository, images *upload.Store) controller.LocationController {
	return &LocationCtrl{locations, svc, diaries, images}
}

func (h *LocationCtrl) List(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	var (
		out []entities.Location
		err error
	)
	if keyword != "" {
		out, err = h.locations.Search(keyword)
	} else {
		out, err = h.locations.All()
	}
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LocationCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	loc, err := h.locations.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	active, err := h.svc.PlantingsWithPositions(loc.ID)
	if err != nil {
		return httperr.JSON(c, err)
	}
	diaries, err := h.diaries.ByLocation(loc.ID)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"location":         loc,
		"active_plantings": active,
		"related_diaries":  diaries,
	})
}

func (h *LocationCtrl) Create(c echo.Context) error {
	loc := &entities.Location{
		Name:         c.FormValue("name"),
		LocationType: c.FormValue("location_type"),
		AreaSize:     optForm(c, "area_size"),
		SunExposure:  optForm(c, "sun_exposure"),
		Notes:        optForm(c, "notes"),
	}
	if loc.Name == "" || loc.LocationType == "" {
		return httperr.JSON(c, fmt.Errorf("%w: name and location_type are required", entities.ErrValidation))
	}

	if fh, err := c.FormFile("image"); err == nil {
		path, err := h.images.Save(fh, "locations")
		if err != nil {
			return httperr.JSON(c, err)
		}
		if path != "" {
			loc.ImagePath = &path
		}
	}

	if err := h.locations.Create(loc); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, loc)
}

func (h *LocationCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	loc, err := h.locations.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}

	loc.Name = c.FormValue("name")
	loc.LocationType = c.FormValue("location_type")
	loc.AreaSize = optForm(c, "area_size")
	loc.SunExposure = optForm(c, "sun_exposure")
	loc.Notes = optForm(c, "notes")
	if loc.Name == "" || loc.LocationType == "" {
		return httperr.JSON(c, fmt.Errorf("%w: name and location_type are required", entities.ErrValidation))
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		path, err := h.images.Save(fh, "locations")
		if err != nil {
			return httperr.JSON(c, err)
		}
		if path != "" {
			if loc.ImagePath != nil {
				h.images.Delete(*loc.ImagePath)
			}
			loc.ImagePath = &path
		}
	} else if c.FormValue("remove_image") == "1" && loc.ImagePath != nil {
		h.images.Delete(*loc.ImagePath)
		loc.ImagePath = nil
	}

	if err := h.locations.Update(loc); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, loc)
}

func (h *LocationCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	loc, err := h.locations.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	if err := h.svc.Delete(loc.ID); err != nil {
		return httperr.JSON(c, err)
	}
	if loc.ImagePath != nil {
		h.images.Delete(*loc.ImagePath)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LocationCtrl) Canvas(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	data, err := h.svc.Canvas(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"canvas": data})
}

func (h *LocationCtrl) SaveCanvas(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return httperr.JSON(c, fmt.Errorf("%w: read canvas body: %v", entities.ErrStorage, err))
	}
	if err := h.svc.SaveCanvas(uint(id), raw); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "saved"})
}

func (h *LocationCtrl) Plantings(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.svc.PlantingsWithPositions(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func optForm(c echo.Context, key string) *string {
	v := c.FormValue(key)
	if v == "" {
		return nil
	}
	return &v
}
