package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/middleware"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
	"github.com/ssms/scholarship/internal/pkg/helpers"
)

// bindJSON decodes the request body into req. On failure the error response
// has been written and false is returned.
func bindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewMalformedRequestError("Invalid JSON: "+err.Error()))
		return false
	}
	return true
}

// pathID reads the :id path parameter
func pathID(ctx *gin.Context) (int64, bool) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}
	return id, true
}
