package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"goa.design/clue/health"

	"marvelapi/internal/http/middleware"
	"marvelapi/internal/model"
	"marvelapi/internal/service"
	serviceMocks "marvelapi/internal/service/mocks"
)

type fakeChecker struct {
	h  *health.Health
	ok bool
}

func (f fakeChecker) Check(context.Context) (*health.Health, bool) {
	return f.h, f.ok
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(fakeChecker{
			h:  &health.Health{Version: "dev", Status: map[string]string{"mongo": "OK", "artwork": "OK"}},
			ok: true,
		}))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body health.Health
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "OK", body.Status["mongo"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(fakeChecker{
			h:  &health.Health{Status: map[string]string{"mongo": "NOT OK"}},
			ok: false,
		}))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body health.Health
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NOT OK", body.Status["mongo"])
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListCharacters(t *testing.T) {
	mockSvc := new(serviceMocks.MockQueryService)
	app := fiber.New()
	app.Get("/characters", ListCharacters(mockSvc))

	t.Run("success", func(t *testing.T) {
		want := service.CharacterSearch{Query: "hulk", Field: "wiki.real_name", Gender: "male", Reality: "Earth-616", Offset: 20}
		mockSvc.On("GetCharacters", mock.Anything, want).
			Return([]model.Character{{ID: 1009351, Name: "Hulk (Bruce Banner)"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/characters?query=hulk&field=wiki.real_name&gender=male&reality=Earth-616&offset=20", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result []model.Character
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result, 1)
		assert.Equal(t, "Hulk (Bruce Banner)", result[0].Name)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unparsable offset falls back to zero", func(t *testing.T) {
		mockSvc.On("GetCharacters", mock.Anything, service.CharacterSearch{}).
			Return([]model.Character{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/characters?offset=abc", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown field", func(t *testing.T) {
		mockSvc.On("GetCharacters", mock.Anything, service.CharacterSearch{Query: "x", Field: "$where"}).
			Return(nil, fmt.Errorf("%w: unknown search field", service.ErrInvalidInput)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/characters?query=x&field=$where", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_INPUT", body.Error.Code)
	})

	t.Run("store unavailable", func(t *testing.T) {
		mockSvc.On("GetCharacters", mock.Anything, service.CharacterSearch{Query: "down"}).
			Return(nil, fmt.Errorf("%w: timeout", service.ErrStoreUnavailable)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/characters?query=down", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "STORE_UNAVAILABLE", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "timeout")
	})
}

func TestGetCharacter(t *testing.T) {
	mockSvc := new(serviceMocks.MockQueryService)
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/characters/:id", GetCharacter(mockSvc))

	t.Run("success", func(t *testing.T) {
		detail := &model.CharacterDetail{
			Character:   model.Character{ID: 1009610, Name: "Spider-Man ", Subtitle: "(Peter Parker)"},
			Comics:      []model.Comic{{ID: 1, Title: "Amazing Fantasy"}},
			ComicsTotal: 1,
			Page:        2,
		}
		mockSvc.On("GetCharacter", mock.Anything, "1009610", "2").Return(detail, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/characters/1009610?page=2", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "(Peter Parker)", body["subtitle"])
		assert.Equal(t, float64(2), body["page"])
		assert.Len(t, body["comics"], 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("GetCharacter", mock.Anything, "404", "").
			Return(nil, fmt.Errorf("character 404: %w", service.ErrNotFound)).Once()

		req := httptest.NewRequest(http.MethodGet, "/characters/404", nil)
		req.Header.Set(middleware.RequestIDHeader, "rid-404")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "rid-404", body.RequestID)
	})

	t.Run("invalid id", func(t *testing.T) {
		mockSvc.On("GetCharacter", mock.Anything, "spider", "").
			Return(nil, service.ErrInvalidInput).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/characters/spider", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unexpected error", func(t *testing.T) {
		mockSvc.On("GetCharacter", mock.Anything, "1", "").Return(nil, errors.New("boom")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/characters/1", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	})
}

func TestListComics(t *testing.T) {
	mockSvc := new(serviceMocks.MockQueryService)
	app := fiber.New()
	app.Get("/comics", ListComics(mockSvc))

	mockSvc.On("GetComics", mock.Anything, service.ComicSearch{Query: "Stan Lee", Field: "creators.items.name", Offset: 40, Limit: 10}).
		Return([]model.Comic{{ID: 7, Title: "Hulk (2008)"}, {ID: 8, Title: "Hulk (2008)", IssueNumber: 2}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/comics?query=Stan%20Lee&field=creators.items.name&offset=40&limit=10", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result []model.Comic
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Len(t, result, 2)
	mockSvc.AssertExpectations(t)
}

func TestListComics_LimitLeftToService(t *testing.T) {
	mockSvc := new(serviceMocks.MockQueryService)
	app := fiber.New()
	app.Get("/comics", ListComics(mockSvc))

	mockSvc.On("GetComics", mock.Anything, service.ComicSearch{}).Return([]model.Comic{}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/comics?limit=lots", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestGetComic(t *testing.T) {
	mockSvc := new(serviceMocks.MockQueryService)
	app := fiber.New()
	app.Get("/comics/:id", GetComic(mockSvc))

	t.Run("success", func(t *testing.T) {
		detail := &model.ComicDetail{
			Comic:      model.Comic{ID: 42, Title: "Amazing", Subtitle: "Spider-Man"},
			Characters: []model.Character{},
		}
		mockSvc.On("GetComic", mock.Anything, "42").Return(detail, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/comics/42", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Spider-Man", body["subtitle"])
		assert.Equal(t, []any{}, body["characters"])
	})

	t.Run("store unavailable", func(t *testing.T) {
		mockSvc.On("GetComic", mock.Anything, "9").Return(nil, service.ErrStoreUnavailable).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/comics/9", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/characters", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{name: "unknown route", method: http.MethodGet, path: "/nope", status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "wrong method", method: http.MethodPost, path: "/characters", status: http.StatusMethodNotAllowed, code: "METHOD_NOT_ALLOWED"},
		{name: "plain error", method: http.MethodGet, path: "/boom", status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, resp.StatusCode)

			var body errorPayload
			json.NewDecoder(resp.Body).Decode(&body)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}
