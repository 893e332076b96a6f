package controller

import "github.com/labstack/echo/v4"

type LocationController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error

	Canvas(c echo.Context) error
	SaveCanvas(c echo.Context) error
	Plantings(c echo.Context) error
}
