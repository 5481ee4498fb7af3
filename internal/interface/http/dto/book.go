package dto

import "fmt"

// ListBooksRequest HTTP图书列表请求
// validator tag说明:
// - omitempty: 字段为空时跳过校验
// - oneof: 枚举校验,排序方式只接受这几种
type ListBooksRequest struct {
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"1984"`
	Category string `form:"category" binding:"omitempty,max=50" example:"Fiction"`
	PriceMin int64  `form:"price_min" binding:"omitempty,min=0" example:"1000"`  // 价格下限(分)
	PriceMax int64  `form:"price_max" binding:"omitempty,min=0" example:"3000"`  // 价格上限(分),0表示不限
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=newest price-low price-high rating title" example:"newest"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=500" example:"100"`
}

// BookListItem HTTP图书列表项
// 列表查询时不返回Description字段(减少数据传输量)
type BookListItem struct {
	ID        string  `json:"id" example:"1"`
	Title     string  `json:"title" example:"The Great Gatsby"`
	Author    string  `json:"author" example:"F. Scott Fitzgerald"`
	Price     int64   `json:"price" example:"1299"`       // 价格(分)
	PriceYuan string  `json:"price_yuan" example:"12.99"` // 价格(元),方便前端显示
	CoverURL  string  `json:"cover_url" example:"https://example.com/gatsby.jpg"`
	Category  string  `json:"category" example:"Fiction"`
	ISBN      string  `json:"isbn" example:"9780743273565"`
	Stock     int     `json:"stock" example:"25"`
	Rating    float64 `json:"rating" example:"4.5"`
	CreatedAt string  `json:"created_at" example:"2024-01-15 10:00:00"`
}

// ListBooksResponse HTTP图书列表响应
type ListBooksResponse struct {
	List  []BookListItem `json:"list"`
	Total int            `json:"total" example:"8"`
}

// BookDetailResponse HTTP图书详情响应
type BookDetailResponse struct {
	ID          string  `json:"id" example:"1"`
	Title       string  `json:"title" example:"The Great Gatsby"`
	Author      string  `json:"author" example:"F. Scott Fitzgerald"`
	Description string  `json:"description" example:"A classic American novel"`
	Price       int64   `json:"price" example:"1299"`
	PriceYuan   string  `json:"price_yuan" example:"12.99"`
	CoverURL    string  `json:"cover_url" example:"https://example.com/gatsby.jpg"`
	Category    string  `json:"category" example:"Fiction"`
	ISBN        string  `json:"isbn" example:"9780743273565"`
	Stock       int     `json:"stock" example:"25"`
	Rating      float64 `json:"rating" example:"4.5"`
	CreatedAt   string  `json:"created_at" example:"2024-01-15 10:00:00"`
	UpdatedAt   string  `json:"updated_at" example:"2024-01-15 10:00:00"`
}

// CategoriesResponse HTTP分类列表响应
type CategoriesResponse struct {
	Categories []string `json:"categories" example:"all,Fiction,Romance"`
}

// FormatPriceYuan 格式化价格(分→元)
// 例如:1299分 → "12.99"
func FormatPriceYuan(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
