package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// statusResponse is the envelope every API endpoint uses for errors and
// simple success messages.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func errorJSON(c echo.Context, code int, message string) error {
	return c.JSON(code, statusResponse{Status: "error", Message: message})
}

func successJSON(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, statusResponse{Status: "success", Message: message})
}
