package cart

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/cart"
	"github.com/xiebiao/storefront/pkg/metrics"
)

// AddItemUseCase 加入购物车用例
// 设计说明:
// 1. 先从目录仓储取图书快照,购物车内保存的是下单时刻的只读副本
// 2. 数量默认1;同一图书重复加入时数量累加(Store内部合并)
// 3. 不检查库存:购物车数量允许超过Stock,由下单环节做最终校验
type AddItemUseCase struct {
	bookRepo  book.Repository
	cartStore *cart.Store
}

// NewAddItemUseCase 创建加入购物车用例
func NewAddItemUseCase(bookRepo book.Repository, cartStore *cart.Store) *AddItemUseCase {
	return &AddItemUseCase{
		bookRepo:  bookRepo,
		cartStore: cartStore,
	}
}

// AddItemRequest 加入购物车请求DTO
type AddItemRequest struct {
	BookID   string
	Quantity int // <=0时按1处理
}

// Execute 执行加入购物车用例
// 图书不存在时返回book.ErrBookNotFound,购物车状态不变
func (uc *AddItemUseCase) Execute(ctx context.Context, req AddItemRequest) (*CartView, error) {
	// 1. 参数默认值
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	// 2. 查找图书(目录是图书数据的唯一来源)
	b, err := uc.bookRepo.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	// 3. 加入购物车(同步持久化后返回)
	uc.cartStore.AddItem(ctx, *b, req.Quantity)
	metrics.RecordCartMutation("add")

	return newCartView(uc.cartStore), nil
}
