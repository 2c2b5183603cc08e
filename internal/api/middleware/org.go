package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/org"
	apperrors "waterline.io/waterline/internal/pkg/errors"
)

const ctxKeyOrgID = "org_id"

// RequireOrg resolves the tenant from the X-Org-ID header and verifies it
// exists. Every org-scoped route sits behind this; handlers read the id via
// OrgID and never touch the header directly.
func RequireOrg(client *ent.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID := strings.TrimSpace(c.GetHeader(OrgIDHeader))
		if orgID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    apperrors.CodeOrgHeaderMissing,
				"message": "X-Org-ID header is required",
			})
			return
		}

		exists, err := client.Org.Query().Where(org.ID(orgID)).Exist(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "failed to resolve org",
			})
			return
		}
		if !exists {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"code":    apperrors.CodeOrgNotFound,
				"message": "org does not exist",
			})
			return
		}

		c.Set(ctxKeyOrgID, orgID)
		c.Next()
	}
}

// OrgID extracts the resolved tenant id from the Gin context.
func OrgID(c *gin.Context) string {
	return c.GetString(ctxKeyOrgID)
}
