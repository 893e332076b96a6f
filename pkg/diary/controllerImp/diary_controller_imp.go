package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"garden/entities"
	"garden/pkg/diary/controller"
	"garden/pkg/diary/repository"
	"garden/pkg/httperr"
	"garden/pkg/relation"
	relationRepo "garden/pkg/relation/repository"
	"garden/pkg/upload"
)

type DiaryCtrl struct {
	diaries   repository.DiaryRepository
	relations relationRepo.RelationRepository
	images    *upload.Store
}

func New(diaries repository.DiaryRepository, relations relationRepo.RelationRepository,
	images *upload.Store) controller.DiaryController {
	return &DiaryCtrl{diaries, relations, images}
}

func (h *DiaryCtrl) List(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	dateFrom := c.QueryParam("date_from")
	dateTo := c.QueryParam("date_to")
	var (
		out []entities.DiaryEntry
		err error
	)
	if keyword != "" || dateFrom != "" || dateTo != "" {
		out, err = h.diaries.Search(keyword, dateFrom, dateTo)
	} else {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		out, err = h.diaries.All(limit, offset)
	}
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DiaryCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	entry, err := h.diaries.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	rels, err := h.relations.Get(entry.ID)
	if err != nil {
		return httperr.JSON(c, err)
	}
	prev, next, err := h.diaries.Adjacent(entry.ID)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"entry":     entry,
		"relations": rels,
		"prev":      prev,
		"next":      next,
	})
}

func (h *DiaryCtrl) Create(c echo.Context) error {
	entry := &entities.DiaryEntry{
		Title:     c.FormValue("title"),
		Content:   optForm(c, "content"),
		EntryDate: c.FormValue("entry_date"),
		Weather:   optForm(c, "weather"),
		Status:    c.FormValue("status"),
	}
	if entry.Title == "" || entry.EntryDate == "" {
		return httperr.JSON(c, fmt.Errorf("%w: title and entry_date are required", entities.ErrValidation))
	}

	if fh, err := c.FormFile("image"); err == nil {
		path, err := h.images.Save(fh, "diary")
		if err != nil {
			return httperr.JSON(c, err)
		}
		if path != "" {
			entry.ImagePath = &path
		}
	}

	if err := h.diaries.Create(entry); err != nil {
		return httperr.JSON(c, err)
	}

	in, err := relationInput(c)
	if err != nil {
		return httperr.JSON(c, err)
	}
	if err := h.relations.Save(entry.ID, in); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *DiaryCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	entry, err := h.diaries.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}

	entry.Title = c.FormValue("title")
	entry.Content = optForm(c, "content")
	entry.EntryDate = c.FormValue("entry_date")
	entry.Weather = optForm(c, "weather")
	if s := c.FormValue("status"); s != "" {
		entry.Status = s
	}
	if entry.Title == "" || entry.EntryDate == "" {
		return httperr.JSON(c, fmt.Errorf("%w: title and entry_date are required", entities.ErrValidation))
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		path, err := h.images.Save(fh, "diary")
		if err != nil {
			return httperr.JSON(c, err)
		}
		if path != "" {
			if entry.ImagePath != nil {
				h.images.Delete(*entry.ImagePath)
			}
			entry.ImagePath = &path
		}
	} else if c.FormValue("remove_image") == "1" && entry.ImagePath != nil {
		h.images.Delete(*entry.ImagePath)
		entry.ImagePath = nil
	}

	if err := h.diaries.Update(entry); err != nil {
		return httperr.JSON(c, err)
	}

	// Relations are replaced wholesale on every save; categories missing
	// from the form are cleared.
	in, err := relationInput(c)
	if err != nil {
		return httperr.JSON(c, err)
	}
	if err := h.relations.Save(entry.ID, in); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *DiaryCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	entry, err := h.diaries.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	if err := h.relations.Save(entry.ID, relation.Input{}); err != nil {
		return httperr.JSON(c, err)
	}
	if entry.ImagePath != nil {
		h.images.Delete(*entry.ImagePath)
	}
	if err := h.diaries.Delete(entry.ID); err != nil {
		return httperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// relationInput reads the repeated id fields of a diary or task form.
func relationInput(c echo.Context) (relation.Input, error) {
	form, err := c.FormParams()
	if err != nil {
		return relation.Input{}, fmt.Errorf("%w: parse form: %v", entities.ErrValidation, err)
	}
	var in relation.Input
	if in.CropIDs, err = relation.ParseIDs(form["crop_ids"]); err != nil {
		return relation.Input{}, err
	}
	if in.LocationIDs, err = relation.ParseIDs(form["location_ids"]); err != nil {
		return relation.Input{}, err
	}
	if in.PlantingIDs, err = relation.ParseIDs(form["location_crop_ids"]); err != nil {
		return relation.Input{}, err
	}
	if in.HarvestIDs, err = relation.ParseIDs(form["harvest_ids"]); err != nil {
		return relation.Input{}, err
	}
	return in, nil
}

func optForm(c echo.Context, key string) *string {
	v := c.FormValue(key)
	if v == "" {
		return nil
	}
	return &v
}
