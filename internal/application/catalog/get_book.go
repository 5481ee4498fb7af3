package catalog

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/book"
)

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookRepo book.Repository
}

// NewGetBookUseCase 创建图书详情用例
func NewGetBookUseCase(bookRepo book.Repository) *GetBookUseCase {
	return &GetBookUseCase{
		bookRepo: bookRepo,
	}
}

// BookDetail 图书详情DTO(含description)
type BookDetail struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       int64   `json:"price"` // 价格(分)
	CoverURL    string  `json:"cover_url"`
	Category    string  `json:"category"`
	ISBN        string  `json:"isbn"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// Execute 执行图书详情用例
// 图书不存在时返回book.ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id string) (*BookDetail, error) {
	b, err := uc.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &BookDetail{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		CoverURL:    b.CoverURL,
		Category:    b.Category,
		ISBN:        b.ISBN,
		Stock:       b.Stock,
		Rating:      b.Rating,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
