package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"garden/entities"
	"garden/pkg/httperr"
	"garden/pkg/relation"
	relationRepo "garden/pkg/relation/repository"
	"garden/pkg/task/controller"
	"garden/pkg/task/repository"
)

type TaskCtrl struct {
	tasks     repository.TaskRepository
	relations relationRepo.RelationRepository
}

func New(tasks repository.TaskRepository, relations relationRepo.RelationRepository) controller.TaskController {
	return &TaskCtrl{tasks, relations}
}

func (h *TaskCtrl) List(c echo.Context) error {
	f := repository.SearchFilter{
		Keyword:  c.QueryParam("keyword"),
		Status:   c.QueryParam("status"),
		DateFrom: c.QueryParam("date_from"),
		DateTo:   c.QueryParam("date_to"),
	}
	var (
		out []entities.Task
		err error
	)
	if f.Keyword != "" || f.Status != "" || f.DateFrom != "" || f.DateTo != "" {
		out, err = h.tasks.Search(f)
	} else {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		includeCompleted := c.QueryParam("include_completed") != "0"
		out, err = h.tasks.All(limit, offset, includeCompleted)
	}
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	task, err := h.tasks.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	rels, err := h.relations.Get(task.ID)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"task":      task,
		"relations": rels,
	})
}

func (h *TaskCtrl) Create(c echo.Context) error {
	task := &entities.Task{
		Title:       c.FormValue("title"),
		Description: optForm(c, "description"),
		DueDate:     optForm(c, "due_date"),
		Status:      c.FormValue("status"),
	}
	if task.Title == "" {
		return httperr.JSON(c, fmt.Errorf("%w: title is required", entities.ErrValidation))
	}
	if task.Status != "" && !entities.ValidTaskStatus(task.Status) {
		return httperr.JSON(c, fmt.Errorf("%w: unknown task status %q", entities.ErrValidation, task.Status))
	}

	if err := h.tasks.Create(task); err != nil {
		return httperr.JSON(c, err)
	}

	in, err := relationInput(c)
	if err != nil {
		return httperr.JSON(c, err)
	}
	if err := h.relations.Save(task.ID, in); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *TaskCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	task, err := h.tasks.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}

	task.Title = c.FormValue("title")
	task.Description = optForm(c, "description")
	task.DueDate = optForm(c, "due_date")
	if s := c.FormValue("status"); s != "" {
		if !entities.ValidTaskStatus(s) {
			return httperr.JSON(c, fmt.Errorf("%w: unknown task status %q", entities.ErrValidation, s))
		}
		task.Status = s
	}
	if task.Title == "" {
		return httperr.JSON(c, fmt.Errorf("%w: title is required", entities.ErrValidation))
	}

	if err := h.tasks.Update(task); err != nil {
		return httperr.JSON(c, err)
	}

	in, err := relationInput(c)
	if err != nil {
		return httperr.JSON(c, err)
	}
	if err := h.relations.Save(task.ID, in); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *TaskCtrl) UpdateStatus(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.tasks.UpdateStatus(uint(id), req.Status); err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": req.Status})
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	task, err := h.tasks.FindByID(uint(id))
	if err != nil {
		return httperr.JSON(c, err)
	}
	if err := h.relations.Save(task.ID, relation.Input{}); err != nil {
		return httperr.JSON(c, err)
	}
	if err := h.tasks.Delete(task.ID); err != nil {
		return httperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

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
