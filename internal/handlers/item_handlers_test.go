package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"binsight/internal/models"
	"binsight/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockItemService mocks the ItemService interface for testing
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Lookup(ctx context.Context, itemName string) (*models.ItemDetails, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemDetails), args.Error(1)
}

func (m *MockItemService) Add(ctx context.Context, payload map[string]any) (*models.Item, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ItemHandlersTestSuite struct {
	suite.Suite
	mockService *MockItemService
	handlers    *ItemHandlers
	echo        *echo.Echo
}

func (suite *ItemHandlersTestSuite) SetupTest() {
	suite.mockService = &MockItemService{}
	suite.handlers = NewItemHandlers(suite.mockService)
	suite.echo = echo.New()
}

func (suite *ItemHandlersTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func TestItemHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlersTestSuite))
}

func (suite *ItemHandlersTestSuite) jsonRequest(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return suite.echo.NewContext(req, rec), rec
}

func (suite *ItemHandlersTestSuite) TestGetItem_Success() {
	details := &models.ItemDetails{
		Item:            models.Item{ItemID: "ITM001", ItemName: "Widget"},
		MovementHistory: []*models.MovementLog{},
	}
	suite.mockService.On("Lookup", mock.Anything, "Widget").Return(details, nil).Once()

	c, rec := suite.jsonRequest(http.MethodPost, "/api/item", `{"item_name": "Widget"}`)
	err := suite.handlers.GetItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), `"status":"success"`)
	assert.Contains(suite.T(), rec.Body.String(), `"item_name":"Widget"`)
	assert.Contains(suite.T(), rec.Body.String(), `"bin_details":null`)
}

func (suite *ItemHandlersTestSuite) TestGetItem_MissingName() {
	c, rec := suite.jsonRequest(http.MethodPost, "/api/item", `{}`)
	err := suite.handlers.GetItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Missing item_name parameter")
}

func (suite *ItemHandlersTestSuite) TestGetItem_NotFound() {
	suite.mockService.On("Lookup", mock.Anything, "Ghost").Return(nil, services.ErrItemNotFound).Once()

	c, rec := suite.jsonRequest(http.MethodPost, "/api/item", `{"item_name": "Ghost"}`)
	err := suite.handlers.GetItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Item not found")
}

func (suite *ItemHandlersTestSuite) TestAddItem_Success() {
	suite.mockService.On("Add", mock.Anything, mock.MatchedBy(func(payload map[string]any) bool {
		return payload["item_name"] == "Widget"
	})).Return(&models.Item{ItemName: "Widget"}, nil).Once()

	c, rec := suite.jsonRequest(http.MethodPost, "/api/item/add", `{"item_name": "Widget"}`)
	err := suite.handlers.AddItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Item added successfully")
}

func (suite *ItemHandlersTestSuite) TestAddItem_NonJSONRejected() {
	req := httptest.NewRequest(http.MethodPost, "/api/item/add", strings.NewReader("item_name=Widget"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)

	err := suite.handlers.AddItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Request must be JSON")
}

func (suite *ItemHandlersTestSuite) TestAddItem_ValidationErrorIs400() {
	suite.mockService.On("Add", mock.Anything, mock.Anything).
		Return(nil, &services.ValidationError{Field: "weight", Message: "Missing required field: weight"}).Once()

	c, rec := suite.jsonRequest(http.MethodPost, "/api/item/add", `{"item_name": "Widget"}`)
	err := suite.handlers.AddItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Missing required field: weight")
}

func (suite *ItemHandlersTestSuite) TestDeleteItem_JSONBody() {
	id := uuid.New()
	suite.mockService.On("Delete", mock.Anything, id).Return(nil).Once()

	c, rec := suite.jsonRequest(http.MethodPost, "/api/item/delete", `{"item_id": "`+id.String()+`"}`)
	err := suite.handlers.DeleteItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Item deleted")
}

func (suite *ItemHandlersTestSuite) TestDeleteItem_FormBody() {
	id := uuid.New()
	suite.mockService.On("Delete", mock.Anything, id).Return(nil).Once()

	form := url.Values{"item_id": {id.String()}}
	req := httptest.NewRequest(http.MethodPost, "/api/item/delete", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)

	err := suite.handlers.DeleteItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *ItemHandlersTestSuite) TestDeleteItem_MissingID() {
	c, rec := suite.jsonRequest(http.MethodPost, "/api/item/delete", `{}`)
	err := suite.handlers.DeleteItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Missing item_id parameter")
}

func (suite *ItemHandlersTestSuite) TestDeleteItem_MalformedID() {
	c, rec := suite.jsonRequest(http.MethodPost, "/api/item/delete", `{"item_id": "not-a-uuid"}`)
	err := suite.handlers.DeleteItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
}

func (suite *ItemHandlersTestSuite) TestDeleteItem_NotFound() {
	id := uuid.New()
	suite.mockService.On("Delete", mock.Anything, id).Return(services.ErrItemNotFound).Once()

	c, rec := suite.jsonRequest(http.MethodPost, "/api/item/delete", `{"item_id": "`+id.String()+`"}`)
	err := suite.handlers.DeleteItem(c)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Item not found")
}
