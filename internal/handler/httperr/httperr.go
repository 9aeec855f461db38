package httperr

import (
	"net/http"

	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/request"
	"foodbridge/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const CodeInternal = "internal"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// conflict codes more specific than the state_conflict kind
var conflictCodes = []struct {
	err  error
	code string
}{
	{inventory.ErrInsufficientQuantity, "insufficient_quantity"},
	{inventory.ErrInvalidTransition, "invalid_transition"},
	{inventory.ErrItemRetired, "item_retired"},
	{inventory.ErrNotListing, "not_listing"},
	{inventory.ErrPendingRequests, "pending_requests"},
	{inventory.ErrVersionConflict, "concurrent_modification"},
	{inventory.ErrConcurrentUpdates, "concurrent_modification"},
	{request.ErrAlreadyResolved, "already_resolved"},
}

// AbortWithDomainError maps the error taxonomy onto HTTP statuses.
func AbortWithDomainError(c *gin.Context, err error) {
	kind := errs.Kind(err)
	switch kind {
	case "validation":
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), gin.H{"code": kind})
	case "unauthorized":
		AbortWithError(c, http.StatusForbidden, err, err.Error(), gin.H{"code": kind})
	case "not_found":
		AbortWithError(c, http.StatusNotFound, err, err.Error(), gin.H{"code": kind})
	case "state_conflict":
		AbortWithError(c, http.StatusConflict, err, err.Error(), gin.H{"code": conflictCode(err)})
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", gin.H{"code": CodeInternal})
	}
}

func conflictCode(err error) string {
	for _, cc := range conflictCodes {
		if errs.Is(err, cc.err) {
			return cc.code
		}
	}
	return "state_conflict"
}
