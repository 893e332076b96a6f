package controller

import "github.com/labstack/echo/v4"

type CalendarController interface {
	Month(c echo.Context) error
}
