package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The router below carries no database middleware, so only paths that
// fail before touching the store are exercised here: input validation
// and the admin gate's missing-credentials branch.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/user", CreateUser)
	r.POST("/api/user/auth/login", Login)
	r.POST("/api/user/auth/first-admin", CreateFirstAdmin)
	r.GET("/api/user/:id", GetUser)
	r.PUT("/api/user/:id", UpdateUser)
	r.PATCH("/api/user/:id/disable", DisableUser)
	r.PATCH("/api/user/:id/make-admin", MakeUserAdmin)
	r.DELETE("/api/user/hard/:id", DeleteUser)
	r.POST("/api/event", CreateEvent)
	r.PUT("/api/event/:id", UpdateEvent)
	r.POST("/api/business", CreateBusiness)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validID = "507f1f77bcf86cd799439011"

func TestCreateUserValidation(t *testing.T) {
	r := newTestRouter()

	t.Run("Should reject a missing username", func(t *testing.T) {
		w := doJSON(r, "POST", "/api/user", `{"email":"ana@x.com","password":"secret1","birthday":"1990-01-01"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("Should reject a malformed email", func(t *testing.T) {
		w := doJSON(r, "POST", "/api/user", `{"username":"ana","email":"nope","password":"secret1","birthday":"1990-01-01"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("Should reject a short password", func(t *testing.T) {
		w := doJSON(r, "POST", "/api/user", `{"username":"ana","email":"ana@x.com","password":"p1","birthday":"1990-01-01"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginValidation(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "POST", "/api/user/auth/login", `{"username":"ana"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFirstAdminValidation(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "POST", "/api/user/auth/first-admin", `{"username":"root"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvalidObjectIDsAreBadRequests(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "GET", "/api/user/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminGateRequiresCredentials(t *testing.T) {
	r := newTestRouter()

	t.Run("Should return 401 for disable without credentials", func(t *testing.T) {
		w := doJSON(r, "PATCH", "/api/user/"+validID+"/disable", `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("Should return 401 for make-admin without credentials", func(t *testing.T) {
		w := doJSON(r, "PATCH", "/api/user/"+validID+"/make-admin", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("Should return 401 for hard delete without credentials", func(t *testing.T) {
		w := doJSON(r, "DELETE", "/api/user/hard/"+validID, `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("Should return 401 when only the username is supplied", func(t *testing.T) {
		w := doJSON(r, "PATCH", "/api/user/"+validID+"/disable", `{"adminUsername":"root"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateRejectsPasswordChanges(t *testing.T) {
	r := newTestRouter()

	t.Run("Should refuse a user patch carrying a password", func(t *testing.T) {
		w := doJSON(r, "PUT", "/api/user/"+validID, `{"email":"new@x.com","password":"sneaky1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Password")
	})
	t.Run("Should refuse a patch with no updatable fields", func(t *testing.T) {
		w := doJSON(r, "PUT", "/api/user/"+validID, `{"admin":true}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateEventValidation(t *testing.T) {
	r := newTestRouter()

	t.Run("Should require a schedule", func(t *testing.T) {
		w := doJSON(r, "POST", "/api/event", `{"name":"Conf"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("Should reject malformed participant ids", func(t *testing.T) {
		w := doJSON(r, "POST", "/api/event", `{"name":"Conf","schedule":"2024-01-15T10:00:00Z","participants":["nope"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateBusinessValidation(t *testing.T) {
	r := newTestRouter()

	t.Run("Should require a name", func(t *testing.T) {
		w := doJSON(r, "POST", "/api/business", `{"address":"5th Ave"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("Should reject a malformed contact email", func(t *testing.T) {
		w := doJSON(r, "POST", "/api/business", `{"name":"Acme","email":"nope"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
