package cart

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/cart"
)

// CartItemView 购物车行项目DTO
type CartItemView struct {
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Price    int64  `json:"price"` // 单价(分)
	CoverURL string `json:"cover_url"`
	Stock    int    `json:"stock"`
	Quantity int    `json:"quantity"`
	Subtotal int64  `json:"subtotal"` // 行小计(分)
}

// CartView 购物车视图DTO
type CartView struct {
	Items      []CartItemView `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalPrice int64          `json:"total_price"` // 总金额(分)
}

// ViewCartUseCase 购物车查看用例
type ViewCartUseCase struct {
	cartStore *cart.Store
}

// NewViewCartUseCase 创建购物车查看用例
func NewViewCartUseCase(cartStore *cart.Store) *ViewCartUseCase {
	return &ViewCartUseCase{
		cartStore: cartStore,
	}
}

// Execute 执行购物车查看用例
func (uc *ViewCartUseCase) Execute(ctx context.Context) *CartView {
	return newCartView(uc.cartStore)
}

// newCartView 从Store构建购物车视图
// 说明:Items/TotalItems/TotalPrice各自是一致快照,视图在单线程调用方下自洽
func newCartView(store *cart.Store) *CartView {
	items := store.Items()

	view := &CartView{
		Items: make([]CartItemView, len(items)),
	}
	for i, item := range items {
		view.Items[i] = CartItemView{
			BookID:   item.Book.ID,
			Title:    item.Book.Title,
			Author:   item.Book.Author,
			Price:    item.Book.Price,
			CoverURL: item.Book.CoverURL,
			Stock:    item.Book.Stock,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal(),
		}
		view.TotalItems += item.Quantity
		view.TotalPrice += item.Subtotal()
	}
	return view
}
