package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fintrack-backend-go/internal/core"
	"fintrack-backend-go/internal/models"
)

// UserHandler handles the /users endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

func mapUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrUserNotFound.Error()})
	case errors.Is(err, core.ErrSnapshotNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrSnapshotNotFound.Error()})
	case errors.Is(err, core.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: core.ErrUserAlreadyExists.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// GetMe handles GET /users/me. A missing profile is synthesized from token
// claims; this is the only implicit-creation path in the system.
func (h *UserHandler) GetMe(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	user, _, err := h.userService.GetOrProvision(c.Request.Context(), identity)
	if err != nil {
		mapUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PUT /users/me.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	fields := map[string]interface{}{}
	if !bindBody(c, &fields) {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), identity.Subject, fields)
	if err != nil {
		mapUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	raw := map[string]interface{}{}
	if !bindBody(c, &raw) {
		return
	}
	if missing := ValidateRequired(raw, []string{"displayName", "email"}); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields", Details: strings.Join(missing, ", ")})
		return
	}

	var req models.CreateUserRequest
	if !bindBody(c, &req) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), identity, req)
	if err != nil {
		mapUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetVersions handles GET /users/versions, returning the latest aggregate
// version snapshot for client cache invalidation.
func (h *UserHandler) GetVersions(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	snapshot, err := h.userService.LatestVersionSnapshot(c.Request.Context(), identity.Subject)
	if err != nil {
		mapUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
