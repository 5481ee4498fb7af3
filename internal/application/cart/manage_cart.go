package cart

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/pkg/metrics"
)

// UpdateItemUseCase 修改购物车行项目数量用例
type UpdateItemUseCase struct {
	cartStore *cart.Store
}

// NewUpdateItemUseCase 创建修改数量用例
func NewUpdateItemUseCase(cartStore *cart.Store) *UpdateItemUseCase {
	return &UpdateItemUseCase{cartStore: cartStore}
}

// UpdateItemRequest 修改数量请求DTO
type UpdateItemRequest struct {
	BookID   string
	Quantity int // 绝对数量;<=0等价于移除
}

// Execute 执行修改数量用例
// 数量<=0等价于移除;图书不在购物车中时为空操作,均不报错
func (uc *UpdateItemUseCase) Execute(ctx context.Context, req UpdateItemRequest) *CartView {
	uc.cartStore.UpdateQuantity(ctx, req.BookID, req.Quantity)
	if req.Quantity <= 0 {
		metrics.RecordCartMutation("remove")
	} else {
		metrics.RecordCartMutation("update")
	}
	return newCartView(uc.cartStore)
}

// RemoveItemUseCase 移除购物车行项目用例
type RemoveItemUseCase struct {
	cartStore *cart.Store
}

// NewRemoveItemUseCase 创建移除用例
func NewRemoveItemUseCase(cartStore *cart.Store) *RemoveItemUseCase {
	return &RemoveItemUseCase{cartStore: cartStore}
}

// Execute 执行移除用例(图书不在购物车中时为空操作)
func (uc *RemoveItemUseCase) Execute(ctx context.Context, bookID string) *CartView {
	uc.cartStore.RemoveItem(ctx, bookID)
	metrics.RecordCartMutation("remove")
	return newCartView(uc.cartStore)
}

// ClearCartUseCase 清空购物车用例
type ClearCartUseCase struct {
	cartStore *cart.Store
}

// NewClearCartUseCase 创建清空用例
func NewClearCartUseCase(cartStore *cart.Store) *ClearCartUseCase {
	return &ClearCartUseCase{cartStore: cartStore}
}

// Execute 执行清空用例
func (uc *ClearCartUseCase) Execute(ctx context.Context) *CartView {
	uc.cartStore.Clear(ctx)
	metrics.RecordCartMutation("clear")
	return newCartView(uc.cartStore)
}
