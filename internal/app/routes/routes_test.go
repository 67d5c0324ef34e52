package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmusedu/erasmus-portal/internal/app/controllers"
	"github.com/erasmusedu/erasmus-portal/internal/app/services"
	"github.com/erasmusedu/erasmus-portal/internal/middleware"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/auth"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/genai"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
	"github.com/erasmusedu/erasmus-portal/internal/seed"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := registry.New()
	seed.Apply(reg)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})

	authService := services.NewAuthService(reg, jwtService, zerolog.Nop())
	navService := services.NewNavigationService()
	userService := services.NewUserService(reg)
	classService := services.NewClassService(reg, services.PolicyOrphan)
	studentService := services.NewStudentService(reg)
	financeService := services.NewFinanceService(reg)
	inventoryService := services.NewInventoryService(reg)
	siteService := services.NewSiteService(reg)
	parentService := services.NewParentService(reg)
	portalService := services.NewTeacherPortalService(reg, genai.NewClient("", "gemini-1.5-flash", ""))

	authMW := middleware.NewAuthMiddleware(jwtService, authService)

	router := gin.New()
	SetupRouter(
		router,
		controllers.NewAuthController(authService),
		controllers.NewNavigationController(navService, false, false),
		controllers.NewSiteController(siteService),
		controllers.NewUserController(userService),
		controllers.NewClassController(classService),
		controllers.NewStudentController(studentService),
		controllers.NewFinanceController(financeService),
		controllers.NewInventoryController(inventoryService),
		controllers.NewTeacherPortalController(portalService),
		controllers.NewParentController(parentService),
		authMW,
	)

	return router
}

func login(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": "1234"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestPublicSiteNeedsNoToken(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/site", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Complexo Erasmus")
}

func TestLoginRejectsUnknownEmailAndShortPassword(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		email    string
		password string
		code     string
	}{
		{"nobody@erasmus.com", "1234", "AUTH_001"},
		{"admin@erasmus.com", "123", "AUTH_002"},
	}

	for _, tc := range cases {
		body, _ := json.Marshal(map[string]string{"email": tc.email, "password": tc.password})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, tc.email)
		assert.Contains(t, w.Body.String(), tc.code, tc.email)
	}
}

func TestDashboardsRequireAuthentication(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/admin/users",
		"/api/v1/director/finance/summary",
		"/api/v1/teacher/classes",
		"/api/v1/staff/students",
		"/api/v1/parent/student",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRoleGateBlocksOtherDashboards(t *testing.T) {
	router := newTestRouter(t)
	teacherToken := login(t, router, "ricardo@erasmus.com")

	// A teacher's token opens the teacher dashboard only.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teacher/classes", nil)
	req.Header.Set("Authorization", "Bearer "+teacherToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+teacherToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNavigationResolve(t *testing.T) {
	router := newTestRouter(t)

	// Anonymous: a dashboard token collapses to home.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/navigation/resolve?view=admin", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"view":"home"`)

	// Authenticated: the role decides regardless of the requested token.
	adminToken := login(t, router, "admin@erasmus.com")
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/navigation/resolve?view=parent", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"view":"admin"`)
}

func TestDirectorStaffListIsReadOnlyAndExcludesParents(t *testing.T) {
	router := newTestRouter(t)
	directorToken := login(t, router, "direcao@erasmus.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/director/staff", nil)
	req.Header.Set("Authorization", "Bearer "+directorToken)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "secretaria@erasmus.com")
	assert.NotContains(t, w.Body.String(), "pai@email.com")

	// No write verbs exist on the director group.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/director/staff", nil)
	req.Header.Set("Authorization", "Bearer "+directorToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaffFinanceRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	staffToken := login(t, router, "secretaria@erasmus.com")

	body, _ := json.Marshal(map[string]interface{}{
		"type":        "income",
		"category":    "Propinas",
		"description": "Mensalidade Abril",
		"amount":      150000,
		"date":        "2024-04-01",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/staff/finance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+staffToken)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/staff/finance", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mensalidade Abril")
}
