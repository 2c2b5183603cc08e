package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/testutil"
)

func TestRequireOrg(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "require_org")
	_, err := client.Org.Create().
		SetID("org-1").
		SetName("Acme").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create org: %v", err)
	}

	router := gin.New()
	router.Use(RequireOrg(client))

	var resolved string
	router.GET("/", func(c *gin.Context) {
		resolved = OrgID(c)
		c.Status(http.StatusOK)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["code"] != apperrors.CodeOrgHeaderMissing {
			t.Errorf("code = %q, want %q", body["code"], apperrors.CodeOrgHeaderMissing)
		}
	})

	t.Run("unknown org", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(OrgIDHeader, "org-unknown")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["code"] != apperrors.CodeOrgNotFound {
			t.Errorf("code = %q, want %q", body["code"], apperrors.CodeOrgNotFound)
		}
	})

	t.Run("resolved org", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(OrgIDHeader, " org-1 ")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if resolved != "org-1" {
			t.Errorf("OrgID() = %q, want org-1", resolved)
		}
	})
}
