package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/storefront/internal/application/catalog"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/pkg/response"
)

// CatalogHandler 目录HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 搜索过滤排序逻辑全部在domain/catalog的查询管道里，这里只传参
type CatalogHandler struct {
	browseBooksUseCase    *appcatalog.BrowseBooksUseCase
	getBookUseCase        *appcatalog.GetBookUseCase
	listCategoriesUseCase *appcatalog.ListCategoriesUseCase
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(
	browseBooksUseCase *appcatalog.BrowseBooksUseCase,
	getBookUseCase *appcatalog.GetBookUseCase,
	listCategoriesUseCase *appcatalog.ListCategoriesUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		browseBooksUseCase:    browseBooksUseCase,
		getBookUseCase:        getBookUseCase,
		listCategoriesUseCase: listCategoriesUseCase,
	}
}

// ListBooks 浏览图书目录
// @Summary      浏览图书目录
// @Description  按关键词、分类、价格区间筛选并排序
// @Tags         目录
// @Produce      json
// @Param        keyword   query string false "搜索关键词(匹配书名、作者)"
// @Param        category  query string false "分类标签,all表示全部"
// @Param        price_min query int    false "价格下限(分)"
// @Param        price_max query int    false "价格上限(分),0表示不限"
// @Param        sort_by   query string false "排序方式" Enums(newest, price-low, price-high, rating, title)
// @Success      200 {object} response.Response{data=dto.ListBooksResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books [get]
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.browseBooksUseCase.Execute(c.Request.Context(), appcatalog.BrowseBooksRequest{
		Keyword:  req.Keyword,
		Category: req.Category,
		PriceMin: req.PriceMin,
		PriceMax: req.PriceMax,
		SortBy:   req.SortBy,
		Limit:    req.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.BookListItem, len(result.List))
	for i, item := range result.List {
		list[i] = dto.BookListItem{
			ID:        item.ID,
			Title:     item.Title,
			Author:    item.Author,
			Price:     item.Price,
			PriceYuan: dto.FormatPriceYuan(item.Price),
			CoverURL:  item.CoverURL,
			Category:  item.Category,
			ISBN:      item.ISBN,
			Stock:     item.Stock,
			Rating:    item.Rating,
			CreatedAt: item.CreatedAt,
		}
	}

	response.Success(c, &dto.ListBooksResponse{
		List:  list,
		Total: result.Total,
	})
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  根据ID查询单本图书
// @Tags         目录
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookDetailResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *CatalogHandler) GetBook(c *gin.Context) {
	id := c.Param("id")

	result, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookDetailResponse{
		ID:          result.ID,
		Title:       result.Title,
		Author:      result.Author,
		Description: result.Description,
		Price:       result.Price,
		PriceYuan:   dto.FormatPriceYuan(result.Price),
		CoverURL:    result.CoverURL,
		Category:    result.Category,
		ISBN:        result.ISBN,
		Stock:       result.Stock,
		Rating:      result.Rating,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	})
}

// ListCategories 分类列表
// @Summary      分类列表
// @Description  返回目录中出现过的分类标签(含all)
// @Tags         目录
// @Produce      json
// @Success      200 {object} response.Response{data=dto.CategoriesResponse}
// @Router       /api/v1/books/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.listCategoriesUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.CategoriesResponse{Categories: categories})
}
