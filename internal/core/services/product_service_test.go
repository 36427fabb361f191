package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jainutkarshh/StockFlow-ERP/internal/apperrors"
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/core/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductService
	userID   string
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DefaultsMinStock() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:         "Cola",
		Brand:        "Fresca",
		Size:         "500ml",
		PurchaseRate: d("12"),
		SaleRate:     d("18.50"),
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Cola" &&
			p.OwnerUserID == suite.userID &&
			p.MinStock == 10 &&
			p.CurrentStock == 0 &&
			p.ProductID != ""
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.EqualValues(10, product.MinStock)
	suite.EqualValues(0, product.CurrentStock)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_ExplicitMinStock() {
	ctx := context.Background()
	minStock := int64(25)
	req := dto.CreateProductRequest{Name: "Soda", Brand: "Fresca", Size: "1L", MinStock: &minStock}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.MinStock == 25
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.EqualValues(25, product.MinStock)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_NeverTouchesStock() {
	ctx := context.Background()
	existing := &domain.Product{
		ProductID:    uuid.NewString(),
		OwnerUserID:  suite.userID,
		Name:         "Cola",
		CurrentStock: 42,
	}
	newName := "Cola Zero"
	req := dto.UpdateProductRequest{Name: &newName}

	suite.mockRepo.On("FindProductByID", ctx, suite.userID, existing.ProductID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == newName && p.CurrentStock == 42
	})).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, suite.userID, existing.ProductID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, product.Name)
	suite.EqualValues(42, product.CurrentStock)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_NoFieldsIsNoop() {
	ctx := context.Background()
	existing := &domain.Product{ProductID: uuid.NewString(), OwnerUserID: suite.userID, Name: "Cola"}

	suite.mockRepo.On("FindProductByID", ctx, suite.userID, existing.ProductID).Return(existing, nil).Once()

	product, err := suite.service.UpdateProduct(ctx, suite.userID, existing.ProductID, dto.UpdateProductRequest{})

	suite.Require().NoError(err)
	suite.Equal("Cola", product.Name)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_BlockedWhileReferenced() {
	ctx := context.Background()
	existing := &domain.Product{ProductID: uuid.NewString(), OwnerUserID: suite.userID}

	suite.mockRepo.On("FindProductByID", ctx, suite.userID, existing.ProductID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteProduct", ctx, suite.userID, existing.ProductID).Return(apperrors.ErrValidation).Once()

	err := suite.service.DeleteProduct(ctx, suite.userID, existing.ProductID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_NotFound() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockRepo.On("FindProductByID", ctx, suite.userID, productID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteProduct(ctx, suite.userID, productID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteProduct", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestListLowStockProducts_EmptyIsNotNil() {
	ctx := context.Background()
	var rows []domain.Product

	suite.mockRepo.On("ListLowStockProducts", ctx, suite.userID).Return(rows, nil).Once()

	products, err := suite.service.ListLowStockProducts(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(products)
	suite.NotNil(products)
}

// --- Run Suite ---
func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
