package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fintrack-backend-go/internal/core"
	"fintrack-backend-go/internal/models"
)

// AssetHandler handles the /assets endpoints.
type AssetHandler struct {
	assetService core.AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(as core.AssetService) *AssetHandler {
	return &AssetHandler{assetService: as}
}

func mapAssetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrAssetNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrAssetNotFound.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// List handles GET /assets.
func (h *AssetHandler) List(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	assets, err := h.assetService.List(c.Request.Context(), identity.Subject)
	if err != nil {
		mapAssetError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

// Get handles GET /assets/:assetId.
func (h *AssetHandler) Get(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	assetID := c.Param("assetId")
	if assetID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Asset ID is required"})
		return
	}

	asset, err := h.assetService.Get(c.Request.Context(), identity.Subject, assetID)
	if err != nil {
		mapAssetError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// Create handles POST /assets.
func (h *AssetHandler) Create(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	raw := map[string]interface{}{}
	if !bindBody(c, &raw) {
		return
	}
	if missing := ValidateRequired(raw, []string{"name", "currentValue", "annualAPY"}); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields", Details: strings.Join(missing, ", ")})
		return
	}

	var req models.CreateAssetRequest
	if !bindBody(c, &req) {
		return
	}

	asset, err := h.assetService.Create(c.Request.Context(), identity.Subject, req)
	if err != nil {
		mapAssetError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// Update handles PUT /assets/:assetId.
func (h *AssetHandler) Update(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	assetID := c.Param("assetId")
	if assetID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Asset ID is required"})
		return
	}

	fields := map[string]interface{}{}
	if !bindBody(c, &fields) {
		return
	}

	asset, err := h.assetService.Update(c.Request.Context(), identity.Subject, assetID, fields)
	if err != nil {
		mapAssetError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// Delete handles DELETE /assets/:assetId.
func (h *AssetHandler) Delete(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	assetID := c.Param("assetId")
	if assetID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Asset ID is required"})
		return
	}

	if err := h.assetService.Delete(c.Request.Context(), identity.Subject, assetID); err != nil {
		mapAssetError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Asset deleted successfully"})
}
