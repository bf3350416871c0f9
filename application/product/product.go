package product

import (
	"context"

	"github.com/mnmsi/Lara-api/constant"
	"github.com/mnmsi/Lara-api/model"
	productRepo "github.com/mnmsi/Lara-api/repository/product"
	"github.com/mnmsi/Lara-api/utils/errors"
	"github.com/mnmsi/Lara-api/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context) (*model.ProductListResponse, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

// ListProducts returns every product that is not soft deleted.
func (s *productAppImpl) ListProducts(ctx context.Context) (*model.ProductListResponse, error) {
	items, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgProductsLoadFailed)
	}

	return &model.ProductListResponse{
		BaseResponse: model.Success(constant.MsgProductsLoaded),
		Products:     items,
	}, nil
}
