package cart

import (
	"context"

	"github.com/mnmsi/Lara-api/constant"
	"github.com/mnmsi/Lara-api/model"
	cartrepo "github.com/mnmsi/Lara-api/repository/cart"
	txrepo "github.com/mnmsi/Lara-api/repository/tx"
	userrepo "github.com/mnmsi/Lara-api/repository/user"
	"github.com/mnmsi/Lara-api/utils/errors"
	"github.com/mnmsi/Lara-api/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CartApp interface {
	AddOrAdjust(ctx context.Context, userID uint64, req *model.AddToCartRequest) (*model.MessageResponse, error)
	CountOpenItems(ctx context.Context, userID uint64) (*model.CartCountResponse, error)
	ListCartItems(ctx context.Context, userID uint64) (*model.CartItemsResponse, error)
	UpdateQuantity(ctx context.Context, userID uint64, req *model.UpdateCartQtyRequest) (*model.MessageResponse, error)
	Remove(ctx context.Context, userID uint64, cartID uint64) (*model.MessageResponse, error)
}

type cartAppImpl struct {
	txRepo   txrepo.TxRepository
	cartRepo cartrepo.CartRepository
	userRepo userrepo.UserRepository
}

func NewCartApp(txRepo txrepo.TxRepository, cartRepo cartrepo.CartRepository, userRepo userrepo.UserRepository) CartApp {
	return &cartAppImpl{txRepo: txRepo, cartRepo: cartRepo, userRepo: userRepo}
}

// AddOrAdjust increments or decrements the user's open line for the product,
// or creates it with a contact snapshot when there is none.
//
// The lookup and the following write are separate statements, so two
// concurrent first adds for the same product can both insert a line.
func (s *cartAppImpl) AddOrAdjust(ctx context.Context, userID uint64, req *model.AddToCartRequest) (*model.MessageResponse, error) {
	if req.TotalPrice.IsNegative() || req.TotalDiscount.IsNegative() || req.TotalAmount.IsNegative() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	line, err := s.cartRepo.GetOpenLine(ctx, userID, req.ProductID)
	if err != nil {
		logger.Error("[AddOrAdjust] err cartRepo.GetOpenLine", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgCartAddFailed)
	}

	if req.Method == constant.CartMethodDecrement {
		if line == nil {
			return nil, errors.SetCustomError(constant.ErrCartLineNotFound)
		}
		if line.TotalQuantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrCartQuantityNegative)
		}
		if err := s.adjust(ctx, userID, line, line.TotalQuantity-1); err != nil {
			return nil, err
		}
		return model.NewMessageResponse(constant.MsgCartRemoved), nil
	}

	if line != nil {
		if err := s.adjust(ctx, userID, line, line.TotalQuantity+1); err != nil {
			return nil, err
		}
		return model.NewMessageResponse(constant.MsgCartAdded), nil
	}

	if err := s.insert(ctx, userID, req); err != nil {
		return nil, err
	}
	return model.NewMessageResponse(constant.MsgCartAdded), nil
}

// adjust always derives the amount from the stored unit price and applies it
// to every open line of the user for that product.
func (s *cartAppImpl) adjust(ctx context.Context, userID uint64, line *model.CartLine, quantity int64) error {
	amount := line.TotalPrice.Mul(decimal.NewFromInt(quantity))
	if _, err := s.cartRepo.UpdateOpenLine(ctx, userID, line.ProductID, quantity, amount); err != nil {
		logger.Error("[AddOrAdjust] err cartRepo.UpdateOpenLine", zap.Uint64("cart_id", line.ID), zap.String("error", err.Error()))
		return errors.NewCustomError(constant.ErrInternal, constant.MsgCartAddFailed)
	}
	return nil
}

func (s *cartAppImpl) insert(ctx context.Context, userID uint64, req *model.AddToCartRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[AddOrAdjust] err userRepo.Get", zap.String("error", err.Error()))
		return errors.NewCustomError(constant.ErrInternal, constant.MsgCartAddFailed)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	quantity := req.ProductQuantity
	if quantity <= 0 {
		quantity = constant.DefaultCartQuantity
	}
	amount := req.TotalAmount
	if amount.IsZero() {
		amount = req.TotalPrice.Mul(decimal.NewFromInt(quantity))
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddOrAdjust] begin tx", zap.String("error", err.Error()))
		return errors.NewCustomError(constant.ErrInternal, constant.MsgCartAddFailed)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	cartID, err := s.cartRepo.InsertCartTx(ctx, tx, &model.InsertCartTxItem{
		UserID:        userID,
		ProductID:     req.ProductID,
		TotalQuantity: quantity,
		TotalPrice:    req.TotalPrice,
		TotalDiscount: req.TotalDiscount,
		TotalAmount:   amount,
	})
	if err != nil {
		logger.Error("[AddOrAdjust] insert cart", zap.String("error", err.Error()))
		return errors.NewCustomError(constant.ErrInternal, constant.MsgCartAddFailed)
	}

	if err := s.cartRepo.InsertCartDetailTx(ctx, tx, &model.CartDetail{CartID: cartID, Contact: user.Contact()}); err != nil {
		logger.Error("[AddOrAdjust] insert cart detail", zap.String("error", err.Error()))
		return errors.NewCustomError(constant.ErrInternal, constant.MsgCartAddFailed)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddOrAdjust] commit tx", zap.String("error", err.Error()))
		return errors.NewCustomError(constant.ErrInternal, constant.MsgCartAddFailed)
	}
	committed = true
	return nil
}

func (s *cartAppImpl) CountOpenItems(ctx context.Context, userID uint64) (*model.CartCountResponse, error) {
	total, err := s.cartRepo.SumOpenQuantity(ctx, userID)
	if err != nil {
		logger.Error("[CountOpenItems] err cartRepo.SumOpenQuantity", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgCartCountFailed)
	}
	return &model.CartCountResponse{
		BaseResponse:  model.Success(constant.MsgCartCounted),
		NumCartedItem: total,
	}, nil
}

func (s *cartAppImpl) ListCartItems(ctx context.Context, userID uint64) (*model.CartItemsResponse, error) {
	items, err := s.cartRepo.ListOpenItems(ctx, userID)
	if err != nil {
		logger.Error("[ListCartItems] err cartRepo.ListOpenItems", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgCartLoadFailed)
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalAmount)
	}

	return &model.CartItemsResponse{
		BaseResponse: model.Success(constant.MsgCartLoaded),
		Products:     items,
		TotalPrice:   total,
	}, nil
}

// UpdateQuantity overwrites the quantity only; totalAmount keeps its old value.
func (s *cartAppImpl) UpdateQuantity(ctx context.Context, userID uint64, req *model.UpdateCartQtyRequest) (*model.MessageResponse, error) {
	if req.UpdateQuantity == nil || *req.UpdateQuantity < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	matched, err := s.cartRepo.UpdateQuantity(ctx, userID, req.ID, *req.UpdateQuantity)
	if err != nil {
		logger.Error("[UpdateQuantity] err cartRepo.UpdateQuantity", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgCartQtyFailed)
	}
	if matched == 0 {
		return nil, errors.NewCustomError(constant.ErrNotFound, constant.MsgCartQtyFailed)
	}

	return model.NewMessageResponse(constant.MsgCartQtyUpdated), nil
}

// Remove deletes a cart line and its detail. An unknown id succeeds without changes.
func (s *cartAppImpl) Remove(ctx context.Context, userID uint64, cartID uint64) (*model.MessageResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Remove] begin tx", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgCartDeleteFailed)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	deleted, err := s.cartRepo.DeleteCartTx(ctx, tx, userID, cartID)
	if err != nil {
		logger.Error("[Remove] delete cart", zap.Uint64("cart_id", cartID), zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgCartDeleteFailed)
	}

	// the detail is only touched when the line belonged to this user
	if deleted > 0 {
		if err := s.cartRepo.DeleteCartDetailTx(ctx, tx, cartID); err != nil {
			logger.Error("[Remove] delete cart detail", zap.Uint64("cart_id", cartID), zap.String("error", err.Error()))
			return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgCartDeleteFailed)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Remove] commit tx", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgCartDeleteFailed)
	}
	committed = true

	return model.NewMessageResponse(constant.MsgCartDeleted), nil
}
