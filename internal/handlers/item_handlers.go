package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"binsight/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ItemHandlers handles item lookup and mutation requests.
type ItemHandlers struct {
	itemService services.ItemService
}

func NewItemHandlers(itemService services.ItemService) *ItemHandlers {
	return &ItemHandlers{itemService: itemService}
}

// LookupItemRequest is the payload for POST /api/item.
type LookupItemRequest struct {
	ItemName string `json:"item_name"`
}

// GetItem returns an item with its bin details and recent movement history.
func (h *ItemHandlers) GetItem(c echo.Context) error {
	var req LookupItemRequest
	if err := c.Bind(&req); err != nil || req.ItemName == "" {
		return errorJSON(c, http.StatusBadRequest, "Missing item_name parameter")
	}

	details, err := h.itemService.Lookup(c.Request().Context(), req.ItemName)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return errorJSON(c, http.StatusNotFound, "Item not found")
		}
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status": "success",
		"data":   details,
	})
}

// AddItem inserts a new item and its synthetic "in" movement entry.
func (h *ItemHandlers) AddItem(c echo.Context) error {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return errorJSON(c, http.StatusBadRequest, "Request must be JSON")
	}

	var payload map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Request must be JSON")
	}

	if _, err := h.itemService.Add(c.Request().Context(), payload); err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return errorJSON(c, http.StatusBadRequest, ve.Message)
		}
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	return successJSON(c, "Item added successfully")
}

// DeleteItemRequest accepts the internal identifier from either a JSON or
// form-encoded body.
type DeleteItemRequest struct {
	ItemID string `json:"item_id" form:"item_id"`
}

// DeleteItem removes an item by internal identifier.
func (h *ItemHandlers) DeleteItem(c echo.Context) error {
	var req DeleteItemRequest
	if err := c.Bind(&req); err != nil || req.ItemID == "" {
		return errorJSON(c, http.StatusBadRequest, "Missing item_id parameter")
	}

	id, err := uuid.Parse(req.ItemID)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	if err := h.itemService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return errorJSON(c, http.StatusNotFound, "Item not found")
		}
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	return successJSON(c, "Item deleted")
}
