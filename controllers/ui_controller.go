// controllers/ui_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/karetou/karetou_backend/models"
	"github.com/karetou/karetou_backend/utils"
	"github.com/labstack/echo/v4"
)

// UIController serves the design tokens the mobile client scales its
// layout from.
type UIController struct{}

// NewUIController creates a new UI controller
func NewUIController() *UIController {
	return &UIController{}
}

// GetDesignTokens returns the token table plus the sizing baseline. If
// the client reports its screen width we echo back the breakpoint.
func (uc *UIController) GetDesignTokens(c echo.Context) error {
	data := map[string]interface{}{
		"tokens":           utils.Tokens(),
		"baseScreenWidth":  utils.BaseScreenWidth,
		"baseScreenHeight": utils.BaseScreenHeight,
		"minFontSize":      utils.MinFontSize,
	}

	if widthParam := c.QueryParam("screenWidth"); widthParam != "" {
		if width, err := strconv.ParseFloat(widthParam, 64); err == nil && width > 0 {
			data["breakpoint"] = utils.Breakpoint(width)
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Design tokens fetched successfully",
		Data:    data,
	})
}
