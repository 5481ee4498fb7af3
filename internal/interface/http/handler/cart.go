package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/storefront/internal/application/cart"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 设计说明：
// 1. 购物车变更操作本身不会失败(加购前的图书校验除外)
// 2. 每次变更都返回完整购物车视图,客户端无需再发一次查询
type CartHandler struct {
	viewCartUseCase   *appcart.ViewCartUseCase
	addItemUseCase    *appcart.AddItemUseCase
	updateItemUseCase *appcart.UpdateItemUseCase
	removeItemUseCase *appcart.RemoveItemUseCase
	clearCartUseCase  *appcart.ClearCartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	viewCartUseCase *appcart.ViewCartUseCase,
	addItemUseCase *appcart.AddItemUseCase,
	updateItemUseCase *appcart.UpdateItemUseCase,
	removeItemUseCase *appcart.RemoveItemUseCase,
	clearCartUseCase *appcart.ClearCartUseCase,
) *CartHandler {
	return &CartHandler{
		viewCartUseCase:   viewCartUseCase,
		addItemUseCase:    addItemUseCase,
		updateItemUseCase: updateItemUseCase,
		removeItemUseCase: removeItemUseCase,
		clearCartUseCase:  clearCartUseCase,
	}
}

// ViewCart 查看购物车
// @Summary      查看购物车
// @Tags         购物车
// @Produce      json
// @Success      200 {object} response.Response{data=dto.CartResponse}
// @Router       /api/v1/cart [get]
func (h *CartHandler) ViewCart(c *gin.Context) {
	view := h.viewCartUseCase.Execute(c.Request.Context())
	response.Success(c, toCartResponse(view))
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Description  已在车中的图书累加数量,不在则新增一行
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        request body dto.AddCartItemRequest true "加购信息"
// @Success      200 {object} response.Response{data=dto.CartResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	view, err := h.addItemUseCase.Execute(c.Request.Context(), appcart.AddItemRequest{
		BookID:   req.BookID,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toCartResponse(view))
}

// UpdateItem 修改数量
// @Summary      修改购物车中图书的数量
// @Description  数量是绝对值而非增量;数量<=0等同于删除该行
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        book_id path string true "图书ID"
// @Param        request body dto.UpdateCartItemRequest true "数量"
// @Success      200 {object} response.Response{data=dto.CartResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/cart/items/{book_id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	view := h.updateItemUseCase.Execute(c.Request.Context(), appcart.UpdateItemRequest{
		BookID:   c.Param("book_id"),
		Quantity: req.Quantity,
	})

	response.Success(c, toCartResponse(view))
}

// RemoveItem 移除图书
// @Summary      从购物车移除图书
// @Description  图书不在车中也返回成功(幂等)
// @Tags         购物车
// @Produce      json
// @Param        book_id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.CartResponse}
// @Router       /api/v1/cart/items/{book_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	view := h.removeItemUseCase.Execute(c.Request.Context(), c.Param("book_id"))
	response.Success(c, toCartResponse(view))
}

// ClearCart 清空购物车
// @Summary      清空购物车
// @Tags         购物车
// @Produce      json
// @Success      200 {object} response.Response{data=dto.CartResponse}
// @Router       /api/v1/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	view := h.clearCartUseCase.Execute(c.Request.Context())
	response.Success(c, toCartResponse(view))
}

// toCartResponse 应用层视图 → HTTP响应
func toCartResponse(view *appcart.CartView) *dto.CartResponse {
	items := make([]dto.CartItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = dto.CartItemResponse{
			BookID:       item.BookID,
			Title:        item.Title,
			Author:       item.Author,
			Price:        item.Price,
			PriceYuan:    dto.FormatPriceYuan(item.Price),
			CoverURL:     item.CoverURL,
			Stock:        item.Stock,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal,
			SubtotalYuan: dto.FormatPriceYuan(item.Subtotal),
		}
	}
	return &dto.CartResponse{
		Items:          items,
		TotalItems:     view.TotalItems,
		TotalPrice:     view.TotalPrice,
		TotalPriceYuan: dto.FormatPriceYuan(view.TotalPrice),
	}
}
