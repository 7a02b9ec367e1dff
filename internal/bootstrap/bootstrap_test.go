package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolapi/internal/config"
	"github.com/yigit/schoolapi/internal/db"
)

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, mutate ...func(*config.Config)) *gin.Engine {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Mode = "test"
	cfg.Database.Driver = config.DriverSQLite
	for _, m := range mutate {
		m(cfg)
	}

	database, err := db.OpenSQLite(":memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, RunMigrations(context.Background(), database, zerolog.Nop()))

	deps, err := BuildDependencies(cfg, database, zerolog.Nop())
	require.NoError(t, err)
	return SetupRouter(cfg, deps, zerolog.Nop())
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func createTeacher(t *testing.T, router http.Handler, name string) int64 {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/teachers", map[string]interface{}{
		"first_name": "Grace", "last_name": "Hopper", "name": name,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return int64(decode[map[string]interface{}](t, rec)["id"].(float64))
}

func createStudent(t *testing.T, router http.Handler, studentID, email string) int64 {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/students", map[string]interface{}{
		"first_name": "Ada", "last_name": "Lovelace", "student_id": studentID, "email": email,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return int64(decode[map[string]interface{}](t, rec)["id"].(float64))
}

func TestStudentLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/students", map[string]string{
		"first_name": "Ada", "last_name": "Lovelace", "student_id": "S100", "email": "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "Ada", created["first_name"])
	assert.Equal(t, "Lovelace", created["last_name"])
	assert.Equal(t, "S100", created["student_id"])
	assert.Equal(t, "ada@example.com", created["email"])
	assert.NotNil(t, created["enrollment_date"])
	id, ok := created["id"].(float64)
	require.True(t, ok)
	path := fmt.Sprintf("/api/students/%d", int64(id))

	rec = doJSON(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[map[string]interface{}](t, rec))

	rec = doJSON(t, router, http.MethodGet, "/api/students", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]map[string]interface{}](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	rec = doJSON(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[errorBody](t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "RES_001", body.Error.Code)
	assert.Equal(t, "Student not found", body.Error.Message)
}

func TestCreateUserWithoutPassword(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{
		"username": "ada", "email": "ada@example.com",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Equal(t, "VAL_001", body.Error.Code)
	assert.Equal(t, "password", body.Error.Field)
	assert.Equal(t, "password is required", body.Error.Message)

	rec = doJSON(t, router, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateUserReturnsCollectionWithoutPasswords(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{
		"username": "ada", "email": "ada@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	users := decode[[]map[string]interface{}](t, rec)
	require.Len(t, users, 1)
	assert.Equal(t, "ada", users[0]["username"])
	assert.NotContains(t, users[0], "password")
	assert.NotContains(t, rec.Body.String(), "s3cret")

	rec = doJSON(t, router, http.MethodPost, "/api/users", map[string]string{
		"username": "ada", "email": "other@example.com", "password": "x",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "RES_002", decode[errorBody](t, rec).Error.Code)
}

func TestEnrollmentWithMissingReferences(t *testing.T) {
	router := newTestRouter(t)
	studentID := createStudent(t, router, "S100", "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/enrollments", map[string]interface{}{
		"student_id": studentID, "course_id": 999,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Equal(t, "RES_005", body.Error.Code)
	assert.Equal(t, "course_id", body.Error.Field)

	rec = doJSON(t, router, http.MethodGet, "/api/enrollments", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Enrollments not found", decode[errorBody](t, rec).Error.Message)
}

func TestEnrollmentDefaultsAndPatch(t *testing.T) {
	router := newTestRouter(t)
	teacherID := createTeacher(t, router, "G. Hopper")
	studentID := createStudent(t, router, "S100", "ada@example.com")
	rec := doJSON(t, router, http.MethodPost, "/api/courses", map[string]interface{}{
		"code": "CS101", "name": "Intro", "teacher_id": teacherID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	courseID := int64(decode[map[string]interface{}](t, rec)["id"].(float64))

	rec = doJSON(t, router, http.MethodPost, "/api/enrollments", map[string]interface{}{
		"student_id": studentID, "course_id": courseID, "grade": "B",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	enrollment := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "active", enrollment["status"])
	assert.NotNil(t, enrollment["enrollment_date"])
	path := fmt.Sprintf("/api/enrollments/%d", int64(enrollment["id"].(float64)))

	rec = doJSON(t, router, http.MethodPatch, path, map[string]interface{}{
		"student_id": studentID, "course_id": courseID, "status": "completed",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patched := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "completed", patched["status"])
	assert.Nil(t, patched["grade"])
	assert.Nil(t, patched["enrollment_date"])

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/courses/%d", courseID), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "RES_004", decode[errorBody](t, rec).Error.Code)
}

func TestInvalidUpdateLeavesRowUnchanged(t *testing.T) {
	router := newTestRouter(t)
	id := createTeacher(t, router, "G. Hopper")
	path := fmt.Sprintf("/api/teachers/%d", id)

	before := doJSON(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, before.Code)

	rec := doJSON(t, router, http.MethodPut, path, map[string]interface{}{
		"first_name": "Changed", "name": "Other",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "last_name", decode[errorBody](t, rec).Error.Field)

	rec = doJSON(t, router, http.MethodPut, path, map[string]interface{}{
		"first_name": "Changed", "last_name": "Hopper", "name": "Other", "hire_date": "2024-13-45",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "hire_date", decode[errorBody](t, rec).Error.Field)

	after := doJSON(t, router, http.MethodGet, path, nil)
	assert.JSONEq(t, before.Body.String(), after.Body.String())
}

func TestDeleteMissingKeepsCardinality(t *testing.T) {
	router := newTestRouter(t)
	createTeacher(t, router, "G. Hopper")

	rec := doJSON(t, router, http.MethodDelete, "/api/teachers/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/teachers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)
}

func TestInvalidPathID(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/courses/abc", "/api/courses/0", "/api/courses/-4"} {
		rec := doJSON(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, "id", decode[errorBody](t, rec).Error.Field, path)
	}
}

func TestEmptyListPolicyIsConfigurable(t *testing.T) {
	router := newTestRouter(t, func(cfg *config.Config) { cfg.API.EmptyListNotFound = false })

	rec := doJSON(t, router, http.MethodGet, "/api/fees", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCourseFormCreateAndFullOverwrite(t *testing.T) {
	router := newTestRouter(t)
	teacherID := createTeacher(t, router, "G. Hopper")

	form := url.Values{"code": {"CS101"}, "name": {"Intro"}, "credits": {"4"}, "teacher_id": {fmt.Sprint(teacherID)}}
	req := httptest.NewRequest(http.MethodPost, "/api/courses", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	course := decode[map[string]interface{}](t, rec)
	assert.Equal(t, float64(4), course["credits"])
	path := fmt.Sprintf("/api/courses/%d", int64(course["id"].(float64)))

	rec = doJSON(t, router, http.MethodPatch, path, map[string]interface{}{
		"code": "CS102", "name": "Intro II", "teacher_id": teacherID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(0), decode[map[string]interface{}](t, rec)["credits"])

	rec = doJSON(t, router, http.MethodPut, path, map[string]interface{}{
		"code": "CS102", "name": "Intro II", "teacher_id": 999,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "RES_005", decode[errorBody](t, rec).Error.Code)
}

func TestFeeLifecycle(t *testing.T) {
	router := newTestRouter(t)
	studentID := createStudent(t, router, "S100", "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/fees", map[string]interface{}{
		"student_id": studentID, "amount": 250.5, "due_date": "2024-10-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	fee := decode[map[string]interface{}](t, rec)
	assert.Equal(t, 250.5, fee["amount"])
	assert.Equal(t, false, fee["paid"])
	assert.Equal(t, "2024-10-01T00:00:00Z", fee["due_date"])

	rec = doJSON(t, router, http.MethodPost, "/api/fees", map[string]interface{}{
		"student_id": studentID, "amount": -3,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "RES_003", decode[errorBody](t, rec).Error.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/students/%d", studentID), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "RES_004", decode[errorBody](t, rec).Error.Code)
}

func TestDuplicateStudent(t *testing.T) {
	router := newTestRouter(t)
	createStudent(t, router, "S100", "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/students", map[string]string{
		"first_name": "Ada", "last_name": "Byron", "student_id": "S101", "email": "ada@example.com",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "RES_002", decode[errorBody](t, rec).Error.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = doJSON(t, router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `schoolapi_requests_total{method="GET",path="/api/health",status="2xx"} 1`)
	assert.Contains(t, rec.Body.String(), "go_sql_open_connections")

	rec = doJSON(t, router, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "RES_001", decode[errorBody](t, rec).Error.Code)
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)

	c := corsConfig([]string{"http://localhost:3000"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:3000"}, c.AllowOrigins)
}

func TestUserItemLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{
		"username": "ada", "email": "ada@example.com", "password": "first",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[[]map[string]interface{}](t, rec)[0]
	path := fmt.Sprintf("/api/users/%d", int64(created["id"].(float64)))

	rec = doJSON(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[map[string]interface{}](t, rec))

	rec = doJSON(t, router, http.MethodPatch, path, map[string]string{
		"username": "ada.l", "email": "ada@example.com", "password": "second",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patched := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "ada.l", patched["username"])
	assert.NotContains(t, patched, "password")
	assert.NotContains(t, rec.Body.String(), "second")

	rec = doJSON(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, patched, decode[map[string]interface{}](t, rec))
	assert.NotContains(t, rec.Body.String(), "password")

	rec = doJSON(t, router, http.MethodPatch, path, map[string]string{"username": "ada", "email": "ada@example.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "password", decode[errorBody](t, rec).Error.Field)

	rec = doJSON(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode[errorBody](t, rec).Error.Message)
}

func TestListEntriesMatchItems(t *testing.T) {
	router := newTestRouter(t)
	teacherID := createTeacher(t, router, "G. Hopper")
	studentID := createStudent(t, router, "S100", "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/courses", map[string]interface{}{
		"code": "CS101", "name": "Intro", "credits": 3, "teacher_id": teacherID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = doJSON(t, router, http.MethodPost, "/api/fees", map[string]interface{}{
		"student_id": studentID, "amount": 99.5, "description": "Lab", "paid": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	for _, resource := range []string{"teachers", "courses", "fees"} {
		t.Run(resource, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodGet, "/api/"+resource, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			list := decode[[]map[string]interface{}](t, rec)
			require.Len(t, list, 1)

			item := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/%s/%d", resource, int64(list[0]["id"].(float64))), nil)
			require.Equal(t, http.StatusOK, item.Code)
			assert.Equal(t, list[0], decode[map[string]interface{}](t, item))
		})
	}
}

func TestFormBlankNumberIsValidationError(t *testing.T) {
	router := newTestRouter(t)
	createTeacher(t, router, "G. Hopper")

	for _, body := range []string{"code=C1&name=n&teacher_id=", "code=abc&name=abc&teacher_id=abc"} {
		req := httptest.NewRequest(http.MethodPost, "/api/courses", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		errBody := decode[errorBody](t, rec)
		assert.Equal(t, "VAL_001", errBody.Error.Code, body)
		assert.Equal(t, "teacher_id", errBody.Error.Field, body)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/courses", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNonObjectJSONBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader("[]"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Equal(t, "VAL_001", body.Error.Code)
	assert.Equal(t, "request body must be a JSON object", body.Error.Message)
	assert.Empty(t, body.Error.Field)
}
