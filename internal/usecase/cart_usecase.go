package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	repo "github.com/GreatJeff90/bookstore/internal/repository"

	"go.uber.org/zap"
)

// CartUsecase は /api/cart の業務ロジックです。
// 変更のたびに保存し、トーストを出します。
type CartUsecase struct {
	carts    repo.CartRepository
	notifier Notifier
	logger   *zap.Logger
}

func NewCartUsecase(carts repo.CartRepository, notifier Notifier, logger *zap.Logger) *CartUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartUsecase{
		carts:    carts,
		notifier: notifier,
		logger:   logger,
	}
}

// CartResponse はカートの中身と合計
type CartResponse struct {
	Items []model.CartLine `json:"items"`
	Count int              `json:"count"`
	Total float64          `json:"total"`
}

type AddCartInput struct {
	ID    string
	Title string
	Price float64
}

type UpdateCartItemInput struct {
	Change int
}

// GetCart はカート取得（無ければ空）
func (u *CartUsecase) GetCart(ctx context.Context, profileID string) (CartResponse, error) {
	cart, err := u.load(ctx, profileID)
	if err != nil {
		return CartResponse{}, err
	}
	return toCartResponse(cart), nil
}

// Count はナビのバッジ用
func (u *CartUsecase) Count(ctx context.Context, profileID string) (int, error) {
	cart, err := u.load(ctx, profileID)
	if err != nil {
		return 0, err
	}
	return cart.TotalItemCount(), nil
}

// AddToCart は同一idなら数量+1、無ければ追加。
func (u *CartUsecase) AddToCart(ctx context.Context, profileID string, in AddCartInput) (CartResponse, error) {
	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if !model.ValidPrice(in.Price) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	cart, err := u.load(ctx, profileID)
	if err != nil {
		return CartResponse{}, err
	}

	line := cart.Add(in.ID, in.Title, in.Price)
	if err := u.save(ctx, profileID, cart); err != nil {
		return CartResponse{}, err
	}

	u.notifier.Show(profileID, fmt.Sprintf("%s added to cart!", line.Title), model.SeveritySuccess)
	return toCartResponse(cart), nil
}

// RemoveFromCart は明細を削除。無いidでも成功扱い。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, profileID string, id string) (CartResponse, error) {
	id = strings.TrimSpace(id)

	cart, err := u.load(ctx, profileID)
	if err != nil {
		return CartResponse{}, err
	}

	cart.Remove(id)
	if err := u.save(ctx, profileID, cart); err != nil {
		return CartResponse{}, err
	}

	u.notifier.Show(profileID, "Item removed from cart", model.SeverityInfo)
	return toCartResponse(cart), nil
}

// UpdateQuantity は数量にChangeを足す。0以下なら削除と同じ扱い。
// 無いidは何もしない。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, profileID string, id string, in UpdateCartItemInput) (CartResponse, error) {
	id = strings.TrimSpace(id)

	cart, err := u.load(ctx, profileID)
	if err != nil {
		return CartResponse{}, err
	}

	found, removed := cart.AdjustQuantity(id, in.Change)
	if !found {
		return toCartResponse(cart), nil
	}

	if err := u.save(ctx, profileID, cart); err != nil {
		return CartResponse{}, err
	}

	if removed {
		u.notifier.Show(profileID, "Item removed from cart", model.SeverityInfo)
	}
	return toCartResponse(cart), nil
}

// ClearCart はキーごと消す
func (u *CartUsecase) ClearCart(ctx context.Context, profileID string) (CartResponse, error) {
	if profileID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.carts.Clear(ctx, profileID); err != nil {
		u.logger.Error("clear cart failed", zap.String("profile_id", profileID), zap.Error(err))
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	u.notifier.Show(profileID, "Cart cleared", model.SeverityInfo)
	return toCartResponse(model.Cart{}), nil
}

func (u *CartUsecase) load(ctx context.Context, profileID string) (model.Cart, error) {
	if profileID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.carts.Load(ctx, profileID)
	if err != nil {
		u.logger.Error("load cart failed", zap.String("profile_id", profileID), zap.Error(err))
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return cart, nil
}

func (u *CartUsecase) save(ctx context.Context, profileID string, cart model.Cart) error {
	if err := u.carts.Save(ctx, profileID, cart); err != nil {
		u.logger.Error("save cart failed", zap.String("profile_id", profileID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return nil
}

func toCartResponse(cart model.Cart) CartResponse {
	items := cart.Lines
	if items == nil {
		items = []model.CartLine{}
	}
	return CartResponse{
		Items: items,
		Count: cart.TotalItemCount(),
		Total: cart.TotalPrice(),
	}
}
