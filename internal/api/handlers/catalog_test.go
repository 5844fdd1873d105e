package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shopdarven/storefront/internal/api/handlers"
	appErrors "github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/models"
	"github.com/shopdarven/storefront/internal/services/mocks"
	"github.com/shopdarven/storefront/internal/testutils"
)

func setupCatalogTest(t *testing.T) (*mocks.CatalogService, *handlers.CatalogHandler) {
	mockCatalog := mocks.NewCatalogService(t)
	return mockCatalog, handlers.NewCatalogHandler(mockCatalog)
}

func TestListReadyMade(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedFilter *models.CatalogFilter
		expectedStatus int
	}{
		{
			name:           "No filter",
			query:          "",
			expectedFilter: &models.CatalogFilter{},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Category, color and price range",
			query: "?category=Boski&color=Grey&min_price=5000&max_price=12000",
			expectedFilter: &models.CatalogFilter{
				FabricCategory: "Boski",
				Color:          "Grey",
				MinPrice:       5000,
				MaxPrice:       12000,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Non numeric price",
			query:          "?min_price=cheap",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Inverted price range",
			query:          "?min_price=9000&max_price=100",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockCatalog, catalogHandler := setupCatalogTest(t)

			if tt.expectedFilter != nil {
				mockCatalog.On("ListReadyMade", mock.Anything, *tt.expectedFilter).
					Return([]models.ReadyMadeProduct{{ID: 1, Name: "Classic Kurta"}}, nil).Once()
			}

			req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/catalog/ready-made"+tt.query, nil, nil)
			rr := httptest.NewRecorder()

			// Act
			catalogHandler.ListReadyMade().ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestGetReadyMade(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCatalog, catalogHandler := setupCatalogTest(t)
		mockCatalog.On("GetReadyMade", mock.Anything, int64(12)).
			Return(&models.ReadyMadeProduct{ID: 12, Name: "Wash n Wear Suit", Price: 8500}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/catalog/ready-made/12", nil, map[string]string{"id": "12"})
		rr := httptest.NewRecorder()

		// Act
		catalogHandler.GetReadyMade().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var product models.ReadyMadeProduct
		decodeData(t, decodeResponse(t, rr), &product)
		assert.Equal(t, int64(12), product.ID)
	})

	t.Run("Failure - Invalid id", func(t *testing.T) {
		// Arrange
		_, catalogHandler := setupCatalogTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/catalog/ready-made/abc", nil, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		// Act
		catalogHandler.GetReadyMade().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		// Arrange
		mockCatalog, catalogHandler := setupCatalogTest(t)
		mockCatalog.On("GetReadyMade", mock.Anything, int64(404)).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/catalog/ready-made/404", nil, map[string]string{"id": "404"})
		rr := httptest.NewRecorder()

		// Act
		catalogHandler.GetReadyMade().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCatalogListings(t *testing.T) {
	t.Run("Related products", func(t *testing.T) {
		mockCatalog, catalogHandler := setupCatalogTest(t)
		mockCatalog.On("RelatedReadyMade", mock.Anything, int64(5)).
			Return([]models.ReadyMadeProduct{{ID: 6}, {ID: 7}}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/catalog/ready-made/5/related", nil, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		catalogHandler.RelatedReadyMade().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var products []models.ReadyMadeProduct
		decodeData(t, decodeResponse(t, rr), &products)
		assert.Len(t, products, 2)
	})

	t.Run("Fabrics with material filter", func(t *testing.T) {
		mockCatalog, catalogHandler := setupCatalogTest(t)
		mockCatalog.On("ListFabrics", mock.Anything, models.CatalogFilter{Material: "cotton"}).
			Return([]models.Fabric{{ID: 2, Material: "Cotton"}}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/catalog/fabrics?material=cotton", nil, nil)
		rr := httptest.NewRecorder()

		catalogHandler.ListFabrics().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Fabric by id", func(t *testing.T) {
		mockCatalog, catalogHandler := setupCatalogTest(t)
		mockCatalog.On("GetFabric", mock.Anything, int64(2)).Return(&models.Fabric{ID: 2}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/catalog/fabrics/2", nil, map[string]string{"id": "2"})
		rr := httptest.NewRecorder()

		catalogHandler.GetFabric().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Custom fabrics", func(t *testing.T) {
		mockCatalog, catalogHandler := setupCatalogTest(t)
		mockCatalog.On("ListCustomFabrics", mock.Anything).Return([]models.CustomFabric{{ID: 4}}, nil).Once()
		mockCatalog.On("GetCustomFabric", mock.Anything, int64(4)).Return(&models.CustomFabric{ID: 4}, nil).Once()

		rr := httptest.NewRecorder()
		catalogHandler.ListCustomFabrics().ServeHTTP(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/catalog/custom-fabrics", nil, nil))
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		catalogHandler.GetCustomFabric().ServeHTTP(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/catalog/custom-fabrics/4", nil, map[string]string{"id": "4"}))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Landing images by category", func(t *testing.T) {
		mockCatalog, catalogHandler := setupCatalogTest(t)
		mockCatalog.On("ListLandingImages", mock.Anything, "hero").
			Return([]models.LandingImage{{ID: 1, Category: "hero"}}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/catalog/landing-images?category=hero", nil, nil)
		rr := httptest.NewRecorder()

		catalogHandler.ListLandingImages().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Shop API down", func(t *testing.T) {
		mockCatalog, catalogHandler := setupCatalogTest(t)
		mockCatalog.On("ListCustomFabrics", mock.Anything).Return(nil, appErrors.ThirdPartyError("Shop API request failed")).Once()

		rr := httptest.NewRecorder()
		catalogHandler.ListCustomFabrics().ServeHTTP(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/catalog/custom-fabrics", nil, nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, decodeResponse(t, rr).Error.Code)
	})
}
