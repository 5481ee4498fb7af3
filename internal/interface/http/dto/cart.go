package dto

// AddCartItemRequest HTTP加购请求
type AddCartItemRequest struct {
	BookID   string `json:"book_id" binding:"required" example:"1"`
	Quantity int    `json:"quantity" binding:"omitempty,min=1,max=999" example:"2"`
}

// UpdateCartItemRequest HTTP修改数量请求
// 数量可以为0(等同删除),所以不能用min=1
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"max=999" example:"3"`
}

// CartItemResponse 购物车行项目
type CartItemResponse struct {
	BookID       string `json:"book_id" example:"1"`
	Title        string `json:"title" example:"The Great Gatsby"`
	Author       string `json:"author" example:"F. Scott Fitzgerald"`
	Price        int64  `json:"price" example:"1299"`
	PriceYuan    string `json:"price_yuan" example:"12.99"`
	CoverURL     string `json:"cover_url" example:"https://example.com/gatsby.jpg"`
	Stock        int    `json:"stock" example:"25"`
	Quantity     int    `json:"quantity" example:"2"`
	Subtotal     int64  `json:"subtotal" example:"2598"`
	SubtotalYuan string `json:"subtotal_yuan" example:"25.98"`
}

// CartResponse HTTP购物车响应
type CartResponse struct {
	Items          []CartItemResponse `json:"items"`
	TotalItems     int                `json:"total_items" example:"3"`
	TotalPrice     int64              `json:"total_price" example:"3897"`
	TotalPriceYuan string             `json:"total_price_yuan" example:"38.97"`
}
