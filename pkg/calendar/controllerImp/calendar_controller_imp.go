package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"garden/pkg/calendar/controller"
	"garden/pkg/calendar/service"
	"garden/pkg/clock"
	"garden/pkg/httperr"
)

type CalendarCtrl struct {
	calendar service.CalendarService
	clock    clock.Clock
}

func New(calendar service.CalendarService, clk clock.Clock) controller.CalendarController {
	return &CalendarCtrl{calendar: calendar, clock: clk}
}

// Month serves one month of calendar data. Missing or invalid year/month
// params fall back to the current month.
func (h *CalendarCtrl) Month(c echo.Context) error {
	now := h.clock.Now().In(clock.JST)
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 1 {
		year = now.Year()
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}

	days, err := h.calendar.MonthData(year, month)
	if err != nil {
		return httperr.JSON(c, err)
	}

	weeks := h.calendar.Weeks(year, month)
	grid := make([][]*string, len(weeks))
	for i, w := range weeks {
		row := make([]*string, len(w))
		for j, d := range w {
			if d != nil {
				s := d.Format(time.DateOnly)
				row[j] = &s
			}
		}
		grid[i] = row
	}

	return c.JSON(http.StatusOK, map[string]any{
		"year":  year,
		"month": month,
		"days":  days,
		"weeks": grid,
	})
}
