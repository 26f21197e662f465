package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cosmic-missions/database"
	"github.com/cosmic-missions/logging"
	"github.com/cosmic-missions/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := database.Connect("test", database.MemoryURL(uuid.NewString()), logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, conn.Migrate())

	return &testServer{
		t:      t,
		db:     conn.DB,
		router: NewRouter(conn.DB, RouterConfig{Logger: logging.Nop()}),
	}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *testServer) createScientist(name, field string) map[string]any {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/scientists", map[string]any{"name": name, "field_of_study": field})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[map[string]any](s.t, rec)
}

func (s *testServer) createPlanet(name string) models.Planet {
	s.t.Helper()
	planet := models.Planet{Name: name, DistanceFromEarth: 100, NearestStar: "Sun"}
	require.NoError(s.t, s.db.Create(&planet).Error)
	return planet
}

func TestHome(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, rec)["status"])

	rec = s.do(http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateScientistEmptyName(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/scientists", map[string]any{"name": "", "field_of_study": "astronomy"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["validation errors"]}`, rec.Body.String())

	var count int64
	require.NoError(t, s.db.Model(&models.Scientist{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateScientistBadBodies(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{`{`, `[]`, `{"name": 1, "field_of_study": "x"}`, `{"name": "Ada"}`} {
		rec := s.do(http.MethodPost, "/scientists", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"errors":["validation errors"]}`, rec.Body.String())
	}
}

func TestCreateScientist(t *testing.T) {
	s := newTestServer(t)

	body := s.createScientist("Mel T. Valent", "xenobiology")
	assert.NotZero(t, body["id"])
	assert.Equal(t, "Mel T. Valent", body["name"])
	assert.Equal(t, "xenobiology", body["field_of_study"])
	assert.Equal(t, []any{}, body["missions"])
	assert.Equal(t, []any{}, body["planets"])
}

func TestCreateScientistWhitespaceFields(t *testing.T) {
	s := newTestServer(t)

	body := s.createScientist("   ", " ")
	assert.NotZero(t, body["id"])
	assert.Equal(t, "   ", body["name"])
	assert.Equal(t, " ", body["field_of_study"])

	rec := s.do(http.MethodPatch, fmt.Sprintf("/scientists/%v", body["id"]), map[string]any{"name": "  "})
	assert.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
}

func TestListScientists(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/scientists", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	s.createScientist("Ada", "astronomy")
	s.createScientist("Mel", "biology")

	rec = s.do(http.MethodGet, "/scientists", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]map[string]any](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "Ada", list[0]["name"])
	assert.Equal(t, "Mel", list[1]["name"])
	for _, item := range list {
		assert.NotContains(t, item, "missions")
		assert.NotContains(t, item, "planets")
	}
}

func TestGetScientistRoundTrip(t *testing.T) {
	s := newTestServer(t)

	created := s.createScientist("Ada Nova", "astrophysics")
	rec := s.do(http.MethodGet, fmt.Sprintf("/scientists/%v", created["id"]), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "Ada Nova", body["name"])
	assert.Equal(t, "astrophysics", body["field_of_study"])
}

func TestGetScientistWithMissions(t *testing.T) {
	s := newTestServer(t)

	scientist := s.createScientist("Ada", "astronomy")
	mars := s.createPlanet("Mars")

	rec := s.do(http.MethodPost, "/missions", map[string]any{
		"name": "Red", "scientist_id": scientist["id"], "planet_id": mars.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, fmt.Sprintf("/scientists/%v", scientist["id"]), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)

	missions := body["missions"].([]any)
	require.Len(t, missions, 1)
	mission := missions[0].(map[string]any)
	assert.Equal(t, "Red", mission["name"])
	assert.NotContains(t, mission, "scientist")
	assert.Equal(t, "Mars", mission["planet"].(map[string]any)["name"])

	planets := body["planets"].([]any)
	require.Len(t, planets, 1)
	assert.NotContains(t, planets[0], "missions")
}

func TestGetScientistNotFound(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/scientists/99", "/scientists/abc", "/scientists/0"} {
		rec := s.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.JSONEq(t, `{"error":"Scientist not found"}`, rec.Body.String())
	}
}

func TestPatchScientist(t *testing.T) {
	s := newTestServer(t)
	created := s.createScientist("Ada", "astronomy")
	path := fmt.Sprintf("/scientists/%v", created["id"])

	rec := s.do(http.MethodPatch, path, map[string]any{"field_of_study": "cosmology"})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "Ada", body["name"])
	assert.Equal(t, "cosmology", body["field_of_study"])
	assert.NotContains(t, body, "missions")
	assert.NotContains(t, body, "planets")

	rec = s.do(http.MethodPatch, path, map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["validation errors"]}`, rec.Body.String())

	rec = s.do(http.MethodPatch, path, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPatch, path, `null`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["validation errors"]}`, rec.Body.String())

	rec = s.do(http.MethodGet, path, nil)
	assert.Equal(t, "cosmology", decode[map[string]any](t, rec)["field_of_study"])
}

func TestPatchScientistNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPatch, "/scientists/404", map[string]any{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Scientist not found"}`, rec.Body.String())

	rec = s.do(http.MethodPatch, "/scientists/404", `not json`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPatch, "/scientists/404", `null`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteScientistCascades(t *testing.T) {
	s := newTestServer(t)

	ada := s.createScientist("Ada", "astronomy")
	mel := s.createScientist("Mel", "biology")
	mars := s.createPlanet("Mars")

	for _, owner := range []any{ada["id"], ada["id"], mel["id"]} {
		rec := s.do(http.MethodPost, "/missions", map[string]any{
			"name": "m", "scientist_id": owner, "planet_id": mars.ID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := s.do(http.MethodDelete, fmt.Sprintf("/scientists/%v", ada["id"]), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = s.do(http.MethodGet, "/missions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	missions := decode[[]map[string]any](t, rec)
	require.Len(t, missions, 1)
	assert.Equal(t, mel["id"], missions[0]["scientist_id"])

	rec = s.do(http.MethodDelete, fmt.Sprintf("/scientists/%v", ada["id"]), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Scientist not found"}`, rec.Body.String())
}

func TestListPlanets(t *testing.T) {
	s := newTestServer(t)
	s.createPlanet("Mars")
	s.createPlanet("Venus")

	rec := s.do(http.MethodGet, "/planets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	planets := decode[[]map[string]any](t, rec)
	require.Len(t, planets, 2)
	assert.Equal(t, "Mars", planets[0]["name"])
	assert.Equal(t, 100.0, planets[0]["distance_from_earth"])
	assert.Equal(t, "Sun", planets[0]["nearest_star"])
	assert.NotContains(t, planets[0], "missions")
}

func TestCreateMission(t *testing.T) {
	s := newTestServer(t)
	scientist := s.createScientist("Ada", "astronomy")
	mars := s.createPlanet("Mars")

	rec := s.do(http.MethodPost, "/missions", map[string]any{
		"name": "Red", "scientist_id": scientist["id"], "planet_id": mars.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.NotZero(t, body["id"])
	assert.Equal(t, "Red", body["name"])
	assert.Equal(t, scientist["id"], body["scientist_id"])
	assert.Equal(t, "Ada", body["scientist"].(map[string]any)["name"])
	assert.NotContains(t, body["scientist"], "missions")
	assert.Equal(t, "Mars", body["planet"].(map[string]any)["name"])
	assert.NotContains(t, body["planet"], "missions")
}

func TestCreateMissionValidation(t *testing.T) {
	s := newTestServer(t)
	scientist := s.createScientist("Ada", "astronomy")
	mars := s.createPlanet("Mars")

	bodies := []any{
		map[string]any{"name": "m", "scientist_id": 999, "planet_id": mars.ID},
		map[string]any{"name": "m", "scientist_id": scientist["id"], "planet_id": 999},
		map[string]any{"name": "", "scientist_id": scientist["id"], "planet_id": mars.ID},
		map[string]any{"name": "m", "scientist_id": 0, "planet_id": mars.ID},
		map[string]any{"name": "m", "scientist_id": nil, "planet_id": mars.ID},
		map[string]any{"name": "m", "planet_id": mars.ID},
		map[string]any{"name": "m", "scientist_id": "one", "planet_id": mars.ID},
		map[string]any{"name": "m", "scientist_id": -1, "planet_id": mars.ID},
		`{`,
	}
	for _, body := range bodies {
		rec := s.do(http.MethodPost, "/missions", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "%v", body)
		assert.JSONEq(t, `{"errors":["validation errors"]}`, rec.Body.String())
	}

	rec := s.do(http.MethodGet, "/missions", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/planets", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
