package catalog

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/book"
	"github.com/xiebiao/storefront/internal/domain/catalog"
)

// ListCategoriesUseCase 分类列表用例
// 用于前端构建分类过滤器选项,首项固定为"all"
type ListCategoriesUseCase struct {
	bookRepo book.Repository
}

// NewListCategoriesUseCase 创建分类列表用例
func NewListCategoriesUseCase(bookRepo book.Repository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		bookRepo: bookRepo,
	}
}

// Execute 执行分类列表用例
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]string, error) {
	categories, err := uc.bookRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(categories)+1)
	result = append(result, catalog.CategoryAll)
	result = append(result, categories...)
	return result, nil
}
