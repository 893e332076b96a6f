package controller

import "github.com/labstack/echo/v4"

type PlantingController interface {
	Plant(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	MarkHarvested(c echo.Context) error
	Remove(c echo.Context) error
	Delete(c echo.Context) error
	Position(c echo.Context) error
	ListActive(c echo.Context) error
}
