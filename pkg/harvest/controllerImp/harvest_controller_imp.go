package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"garden/entities"
	"garden/pkg/harvest/controller"
	"garden/pkg/harvest/repository"
	"garden/pkg/httperr"
	plantingRepo "garden/pkg/planting/repository"
	"garden/pkg/report"
	"garden/pkg/upload"
)

type HarvestCtrl struct {
	harvests  repository.HarvestRepository
	plantings plantingRepo.PlantingRepository
	images    *upload.Store
}

func New(harvests repository.HarvestRepository, plantings plantingRepo.PlantingRepository,
	images *upload.Store) controller.HarvestController {
	return &HarvestCtrl{harvests, plantings, images}
}

func searchFilter(c echo.Context) (repository.SearchFilter, bool, error) {
	f := repository.SearchFilter{
		Keyword:  c.QueryParam("keyword"),
		DateFrom: c.QueryParam("date_from"),
		DateTo:   c.QueryParam("date_to"),
	}
	if v := c.QueryParam("location_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return f, false, fmt.Errorf("%w: location_id %q is not numeric", entities.ErrValidation, v)
		}
		f.LocationID = uint(n)
	}
	if v := c.QueryParam("crop_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return f, false, fmt.Errorf("%w: crop_id %q is not numeric", entities.ErrValidation, v)
		}
		f.CropID = uint(n)
	}
	filtered := f.Keyword != "" || f.DateFrom != "" || f.DateTo != "" || f.LocationID != 0 || f.CropID != 0
	return f, filtered, nil
}

func (h *HarvestCtrl) List(c echo.Context) error {
	f, filtered, err := searchFilter(c)
	if err != nil {
		return httperr.JSON(c, err)
	}
	var out []entities.HarvestDetail
	if filtered {
		out, err = h.harvests.Search(f)
	} else {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		out, err = h.harvests.All(limit, offset)
	}
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HarvestCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.harvests.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HarvestCtrl) Create(c echo.Context) error {
	plantingID, err := strconv.ParseUint(c.FormValue("planting_id"), 10, 64)
	if err != nil {
		return httperr.JSON(c, fmt.Errorf("%w: planting_id %q is not numeric", entities.ErrValidation, c.FormValue("planting_id")))
	}
	if _, err := h.plantings.FindByID(uint(plantingID)); err != nil {
		return httperr.JSON(c, fmt.Errorf("%w: planting %d does not exist", entities.ErrValidation, plantingID))
	}
	date := c.FormValue("harvest_date")
	if date == "" {
		return httperr.JSON(c, fmt.Errorf("%w: harvest_date is required", entities.ErrValidation))
	}
	qty, err := parseOptionalFloat(c.FormValue("quantity"))
	if err != nil {
		return httperr.JSON(c, err)
	}

	harvest := &entities.Harvest{
		PlantingID:  uint(plantingID),
		HarvestDate: date,
		Quantity:    qty,
		Unit:        optForm(c, "unit"),
		Notes:       optForm(c, "notes"),
	}

	if fh, err := c.FormFile("image"); err == nil {
		path, err := h.images.Save(fh, "harvests")
		if err != nil {
			return httperr.JSON(c, err)
		}
		if path != "" {
			harvest.ImagePath = &path
		}
	}

	if err := h.harvests.Create(harvest); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, harvest)
}

func (h *HarvestCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	cur, err := h.harvests.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}

	date := c.FormValue("harvest_date")
	if date == "" {
		return httperr.JSON(c, fmt.Errorf("%w: harvest_date is required", entities.ErrValidation))
	}
	qty, err := parseOptionalFloat(c.FormValue("quantity"))
	if err != nil {
		return httperr.JSON(c, err)
	}

	harvest := cur.Harvest
	harvest.HarvestDate = date
	harvest.Quantity = qty
	harvest.Unit = optForm(c, "unit")
	harvest.Notes = optForm(c, "notes")

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		path, err := h.images.Save(fh, "harvests")
		if err != nil {
			return httperr.JSON(c, err)
		}
		if path != "" {
			if harvest.ImagePath != nil {
				h.images.Delete(*harvest.ImagePath)
			}
			harvest.ImagePath = &path
		}
	}

	if err := h.harvests.Update(&harvest); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, harvest)
}

func (h *HarvestCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	cur, err := h.harvests.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	if cur.ImagePath != nil {
		h.images.Delete(*cur.ImagePath)
	}
	if err := h.harvests.Delete(cur.ID); err != nil {
		return httperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Export streams the (optionally filtered) harvest list as an .xlsx file.
func (h *HarvestCtrl) Export(c echo.Context) error {
	f, filtered, err := searchFilter(c)
	if err != nil {
		return httperr.JSON(c, err)
	}
	var rows []entities.HarvestDetail
	if filtered {
		rows, err = h.harvests.Search(f)
	} else {
		rows, err = h.harvests.All(0, 0)
	}
	if err != nil {
		return httperr.JSON(c, err)
	}
	wb, err := report.HarvestWorkbook(rows)
	if err != nil {
		return httperr.JSON(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="harvests.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return wb.Write(c.Response())
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: quantity %q is not numeric", entities.ErrValidation, raw)
	}
	return &v, nil
}

func optForm(c echo.Context, key string) *string {
	v := c.FormValue(key)
	if v == "" {
		return nil
	}
	return &v
}
