package apiserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	catalogApp "github.com/vatika/v1/internal/application/catalog"
	recipeApp "github.com/vatika/v1/internal/application/recipe"
	"github.com/vatika/v1/internal/infrastructure/ai"
	"github.com/vatika/v1/internal/infrastructure/config"
	"github.com/vatika/v1/internal/infrastructure/monitoring"
	"github.com/vatika/v1/internal/infrastructure/persistence/memory"
	"github.com/vatika/v1/internal/infrastructure/seed"
)

// testMetrics is shared across the package: promauto registers into the
// default registry, which tolerates only one registration per name
var testMetrics = monitoring.NewMetrics()

type scriptedGenerator struct {
	name     string
	response string
	err      error
}

func (g *scriptedGenerator) Name() string { return g.name }

func (g *scriptedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

type ServerTestSuite struct {
	suite.Suite

	ctx       context.Context
	catalog   *catalogApp.Service
	generator *scriptedGenerator
	server    *Server
}

func (suite *ServerTestSuite) SetupTest() {
	suite.ctx = context.Background()

	cfg := &config.Config{
		App:    config.AppConfig{Name: "Vatika", Version: "test"},
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080, EnableCORS: true},
	}

	suite.catalog = catalogApp.NewService(
		memory.NewPlantRepository(),
		memory.NewBookmarkStore(),
		memory.NewFeaturedStore(),
		nil,
		zap.NewNop(),
	)

	suite.generator = &scriptedGenerator{
		name:     "openai",
		response: `{"recipes":[{"name":"Soothing Blend","ingredients":["Chamomile"],"instructions":["Steep"],"benefits":["Calm"]}]}`,
	}

	recipes := recipeApp.NewService(
		memory.NewRecipeRepository(),
		suite.catalog,
		suite.generator,
		memory.NewCacheRepository(),
		zap.NewNop(),
	)

	suite.server = NewServer(
		cfg,
		zap.NewNop(),
		suite.catalog,
		recipes,
		ai.NewHealthChecker(zap.NewNop(), suite.generator),
		testMetrics,
	)
}

// loadCatalog loads the built-in dataset into the catalog
func (suite *ServerTestSuite) loadCatalog() {
	plants, err := seed.Plants()
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), suite.catalog.Load(suite.ctx, plants))
}

func (suite *ServerTestSuite) do(method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	suite.server.Router().ServeHTTP(rec, req)
	return rec
}

// envelope mirrors the handlers' response shape for decoding
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func (suite *ServerTestSuite) decode(rec *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func (suite *ServerTestSuite) TestHealthCheck() {
	suite.Run("BeforeCatalogLoad_IsStarting", func() {
		rec := suite.do(http.MethodGet, "/health", nil)
		assert.Equal(suite.T(), http.StatusServiceUnavailable, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), `"status":"starting"`)
	})

	suite.Run("AfterCatalogLoad_IsHealthy", func() {
		suite.loadCatalog()

		rec := suite.do(http.MethodGet, "/health", nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), `"status":"healthy"`)
		assert.Contains(suite.T(), rec.Body.String(), `"catalog_ready":true`)
	})
}

func (suite *ServerTestSuite) TestAIHealthCheck() {
	suite.Run("HealthyProvider", func() {
		rec := suite.do(http.MethodGet, "/health/ai", nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), `"overall":"healthy"`)
	})

	suite.Run("AllProvidersDown_Is503", func() {
		suite.generator.err = errors.New("offline")

		rec := suite.do(http.MethodGet, "/health/ai", nil)
		assert.Equal(suite.T(), http.StatusServiceUnavailable, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), `"overall":"critical"`)
	})

	suite.Run("NoProviders_IsUnconfiguredNot503", func() {
		suite.server.aiHealth = ai.NewHealthChecker(zap.NewNop())

		rec := suite.do(http.MethodGet, "/health/ai", nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), `"overall":"unconfigured"`)
	})
}

func (suite *ServerTestSuite) TestPlantEndpoints() {
	suite.loadCatalog()

	suite.Run("ListPlants", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)

		env := suite.decode(rec)
		assert.True(suite.T(), env.Success)

		var plants []map[string]interface{}
		require.NoError(suite.T(), json.Unmarshal(env.Data, &plants))
		assert.Len(suite.T(), plants, 19)
	})

	suite.Run("GetPlant", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants/turmeric", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "Curcuma longa")
	})

	suite.Run("GetUnknownPlant_Is404", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants/bigfoot-fern", nil)
		assert.Equal(suite.T(), http.StatusNotFound, rec.Code)

		env := suite.decode(rec)
		assert.False(suite.T(), env.Success)
		assert.NotEmpty(suite.T(), env.Error)
	})

	suite.Run("Search", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants/search?q=mint", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "peppermint")
	})

	suite.Run("SearchWithoutQuery_IsEmptySuccess", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants/search", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)

		env := suite.decode(rec)
		assert.True(suite.T(), env.Success)
	})

	suite.Run("FacetValues", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants/facets/region", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "india")
	})

	suite.Run("UnknownFacetType_Is400", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants/facets/color", nil)
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})

	suite.Run("FilterByFacet", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants/facets/condition/insomnia", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "valerian-root")
	})

	suite.Run("Recommendations", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants/recommendations?condition=Insomnia", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)

		env := suite.decode(rec)
		var recs []map[string]interface{}
		require.NoError(suite.T(), json.Unmarshal(env.Data, &recs))
		require.NotEmpty(suite.T(), recs)
		assert.Equal(suite.T(), "valerian-root", recs[0]["plant_id"])
	})

	suite.Run("RecommendationsWithoutCondition_Is400", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants/recommendations", nil)
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})

	suite.Run("DailyPlant", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants/daily", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)

		env := suite.decode(rec)
		assert.True(suite.T(), env.Success)
	})

	suite.Run("ForceRotate", func() {
		before := suite.decode(suite.do(http.MethodGet, "/api/v1/plants/daily", nil))

		rec := suite.do(http.MethodPost, "/api/v1/plants/daily/rotate?force=true", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)

		after := suite.decode(rec)
		assert.Equal(suite.T(), "Daily plant rotated", after.Message)
		assert.NotEqual(suite.T(), string(before.Data), string(after.Data))
	})
}

func (suite *ServerTestSuite) TestBookmarkEndpoints() {
	suite.loadCatalog()

	suite.Run("AddListRemove", func() {
		rec := suite.do(http.MethodPost, "/api/v1/plants/bookmarks",
			[]byte(`{"user_id":"user-1","plant_id":"turmeric"}`))
		assert.Equal(suite.T(), http.StatusCreated, rec.Code)

		rec = suite.do(http.MethodGet, "/api/v1/plants/bookmarks?userId=user-1", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "turmeric")

		rec = suite.do(http.MethodDelete, "/api/v1/plants/bookmarks/turmeric?userId=user-1", nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)

		rec = suite.do(http.MethodGet, "/api/v1/plants/bookmarks?userId=user-1", nil)
		env := suite.decode(rec)
		assert.Equal(suite.T(), "[]", string(env.Data))
	})

	suite.Run("MissingField_Is400", func() {
		rec := suite.do(http.MethodPost, "/api/v1/plants/bookmarks",
			[]byte(`{"user_id":"user-1"}`))
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})

	suite.Run("UnknownPlant_Is404", func() {
		rec := suite.do(http.MethodPost, "/api/v1/plants/bookmarks",
			[]byte(`{"user_id":"user-1","plant_id":"bigfoot-fern"}`))
		assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	})

	suite.Run("ListWithoutUser_Is400", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants/bookmarks", nil)
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})
}

func (suite *ServerTestSuite) TestRecipeEndpoints() {
	suite.loadCatalog()

	suite.Run("Generate", func() {
		rec := suite.do(http.MethodPost, "/api/v1/recipes/generate",
			[]byte(`{"user_id":"user-1","symptoms":"trouble sleeping"}`))
		require.Equal(suite.T(), http.StatusOK, rec.Code)

		env := suite.decode(rec)
		assert.True(suite.T(), env.Success)
		assert.Contains(suite.T(), string(env.Data), `"provider":"openai"`)
		assert.Contains(suite.T(), string(env.Data), "Soothing Blend")
	})

	suite.Run("GenerateWithProviderDown_FallsBackToSamples", func() {
		suite.generator.err = errors.New("offline")
		defer func() { suite.generator.err = nil }()

		rec := suite.do(http.MethodPost, "/api/v1/recipes/generate",
			[]byte(`{"user_id":"user-1","symptoms":"stress"}`))
		require.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), `"provider":"sample"`)
	})

	suite.Run("SaveAndList", func() {
		body := []byte(`{
			"user_id": "user-2",
			"recipes": [{
				"name": "Ginger Decoction",
				"ingredients": ["Ginger root"],
				"instructions": ["Simmer for ten minutes"],
				"benefits": ["Eases nausea"]
			}]
		}`)

		rec := suite.do(http.MethodPost, "/api/v1/recipes", body)
		assert.Equal(suite.T(), http.StatusCreated, rec.Code)

		rec = suite.do(http.MethodGet, "/api/v1/recipes?userId=user-2", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "Ginger Decoction")
	})

	suite.Run("BookmarkToggle", func() {
		body := []byte(`{
			"user_id": "user-3",
			"recipes": [{
				"name": "Marked Tea",
				"ingredients": ["Herb"],
				"instructions": ["Steep"],
				"benefits": ["Calm"]
			}]
		}`)
		rec := suite.do(http.MethodPost, "/api/v1/recipes", body)
		require.Equal(suite.T(), http.StatusCreated, rec.Code)

		var saved struct {
			Data []struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &saved))
		require.Len(suite.T(), saved.Data, 1)

		rec = suite.do(http.MethodPatch, "/api/v1/recipes",
			[]byte(`{"recipe_id":"`+saved.Data[0].ID+`","bookmarked":true}`))
		require.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), `"is_bookmarked":true`)
	})

	suite.Run("BookmarkWithBadID_Is400", func() {
		rec := suite.do(http.MethodPatch, "/api/v1/recipes",
			[]byte(`{"recipe_id":"not-a-uuid","bookmarked":true}`))
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	})

	suite.Run("PlantInsights", func() {
		suite.generator.response = `{"traditionalUses":["Golden milk"],"preparation":{"methods":["Paste"],"dosage":"1 tsp"},"historicalUse":"Ayurvedic staple."}`

		rec := suite.do(http.MethodGet, "/api/v1/plants/turmeric/insights", nil)
		require.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "Golden milk")
	})
}

func (suite *ServerTestSuite) TestMiddleware() {
	suite.loadCatalog()

	suite.Run("NonJSONBody_Is415", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plants/bookmarks",
			bytes.NewReader([]byte("user_id=user-1")))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		suite.server.Router().ServeHTTP(rec, req)
		assert.Equal(suite.T(), http.StatusUnsupportedMediaType, rec.Code)
	})

	suite.Run("SecurityHeaders", func() {
		rec := suite.do(http.MethodGet, "/api/v1/plants", nil)
		assert.Equal(suite.T(), "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.Equal(suite.T(), "DENY", rec.Header().Get("X-Frame-Options"))
	})

	suite.Run("CORSPreflight", func() {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/plants", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "GET")

		rec := httptest.NewRecorder()
		suite.server.Router().ServeHTTP(rec, req)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.NotEmpty(suite.T(), rec.Header().Get("Access-Control-Allow-Origin"))
	})

	suite.Run("MetricsEndpoint", func() {
		rec := suite.do(http.MethodGet, "/metrics", nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "vatika_http_requests_total")
	})
}

func (suite *ServerTestSuite) TestShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(suite.T(), suite.server.Shutdown(ctx))
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
