package catalog

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/catalog"
	"github.com/xiebiao/storefront/pkg/metrics"
)

// BrowseBooksUseCase 目录浏览用例
// 设计说明:
// 1. 从目录仓储取数,在内存中执行查询管道(搜索、过滤、排序)
// 2. 列表查询不返回description字段(减少数据传输量)
// 3. 查询条件每次请求临时构造,不持久化
type BrowseBooksUseCase struct {
	bookRepo book.Repository
}

// NewBrowseBooksUseCase 创建目录浏览用例
func NewBrowseBooksUseCase(bookRepo book.Repository) *BrowseBooksUseCase {
	return &BrowseBooksUseCase{
		bookRepo: bookRepo,
	}
}

// BrowseBooksRequest 目录浏览请求DTO
type BrowseBooksRequest struct {
	Keyword  string // 搜索关键词(匹配书名、作者)
	Category string // 分类标签,空或"all"表示全部
	PriceMin int64  // 价格下限(分)
	PriceMax int64  // 价格上限(分),<=0表示不限
	SortBy   string // 排序方式(newest/price-low/price-high/rating/title)
	Limit    int    // 取数上限,<=0表示不限制
}

// BookListItem 列表项DTO(不含description)
type BookListItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Price     int64   `json:"price"` // 价格(分)
	CoverURL  string  `json:"cover_url"`
	Category  string  `json:"category"`
	ISBN      string  `json:"isbn"`
	Stock     int     `json:"stock"`
	Rating    float64 `json:"rating"`
	CreatedAt string  `json:"created_at"`
}

// BrowseBooksResponse 目录浏览响应DTO
type BrowseBooksResponse struct {
	List  []BookListItem `json:"list"`
	Total int            `json:"total"`
}

// Execute 执行目录浏览用例
func (uc *BrowseBooksUseCase) Execute(ctx context.Context, req BrowseBooksRequest) (*BrowseBooksResponse, error) {
	// 1. 取数(按上架时间降序,后续管道的稳定排序以此为底序)
	books, err := uc.bookRepo.List(ctx, book.ListParams{
		OrderBy:    "created_at",
		Descending: true,
		Limit:      req.Limit,
	})
	if err != nil {
		return nil, err
	}

	// 2. 执行查询管道
	spec := catalog.QuerySpec{
		Search:   req.Keyword,
		Category: req.Category,
		PriceMin: req.PriceMin,
		PriceMax: req.PriceMax,
		SortBy:   catalog.SortKey(req.SortBy),
	}
	if spec.SortBy == "" {
		spec.SortBy = catalog.SortNewest
	}
	result := catalog.Query(books, spec)

	metrics.RecordCatalogQuery(string(spec.SortBy))

	// 3. 转换为DTO
	list := make([]BookListItem, len(result))
	for i, b := range result {
		list[i] = BookListItem{
			ID:        b.ID,
			Title:     b.Title,
			Author:    b.Author,
			Price:     b.Price,
			CoverURL:  b.CoverURL,
			Category:  b.Category,
			ISBN:      b.ISBN,
			Stock:     b.Stock,
			Rating:    b.Rating,
			CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return &BrowseBooksResponse{
		List:  list,
		Total: len(list),
	}, nil
}
