package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// RequestContextMiddleware stamps every request with a request id and the
// landlord scope from the X-Landlord-ID header. All repository access is
// scoped by landlord, so a missing header is a hard 400.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(types.HeaderRequestID)
		if requestID == "" {
			requestID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST)
		}

		landlordID := c.GetHeader(types.HeaderLandlord)
		if landlordID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, ierr.NewErrorResponse(
				ierr.NewError("missing landlord scope").
					WithHintf("The %s header is required", types.HeaderLandlord).
					Mark(ierr.ErrValidation),
			))
			return
		}

		ctx := c.Request.Context()
		ctx = types.SetRequestID(ctx, requestID)
		ctx = types.SetLandlordID(ctx, landlordID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("request_id", requestID)
		c.Set("landlord_id", landlordID)
		c.Writer.Header().Set(types.HeaderRequestID, requestID)

		c.Next()
	}
}
