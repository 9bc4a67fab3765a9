package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"fintrack-backend-go/internal/core"
	"fintrack-backend-go/internal/middleware"
)

// ValidateRequired reports which of the named fields are missing from the
// decoded body. A field is missing when absent, null, or falsy: 0, "" and
// false all count as missing. Clients that need to create a record with a
// zero or false value in a required field must send a truthy placeholder
// and correct it with an update.
func ValidateRequired(body map[string]interface{}, fields []string) []string {
	var missing []string
	for _, field := range fields {
		if !truthy(body[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		// JSON numbers decode as float64.
		return val != 0
	default:
		// Arrays and objects count as present, even when empty.
		return true
	}
}

// callerIdentity pulls the verified identity out of the context, answering
// the uniform 401 itself when it is absent.
func callerIdentity(c *gin.Context) (core.Identity, bool) {
	v, exists := c.Get(middleware.IdentityKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized access"})
		return core.Identity{}, false
	}
	identity, ok := v.(core.Identity)
	if !ok || identity.Subject == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized access"})
		return core.Identity{}, false
	}
	return identity, true
}

// bindBody decodes the JSON request body into out, answering 400 on
// malformed input. An empty body decodes to nothing, leaving out at its
// zero value (an empty object). The body is cached so a handler can bind it
// both as a raw map and as a typed request.
func bindBody(c *gin.Context, out interface{}) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindBodyWith(out, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}
