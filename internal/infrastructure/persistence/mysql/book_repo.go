package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/book"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// bookRepository 目录仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的只读接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 搜索、过滤与多键排序在catalog查询管道内完成,这里只做取数
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建目录仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// List 查询图书列表
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, error) {
	query := r.db.WithContext(ctx).Model(&BookModel{})

	// 排序(底序,后续管道的稳定排序以此为基础)
	orderBy := params.OrderBy
	switch orderBy {
	case "price", "title", "created_at":
		// 白名单字段,防止拼接注入
	default:
		orderBy = "created_at"
	}
	direction := "ASC"
	if params.Descending {
		direction = "DESC"
	}
	query = query.Order(orderBy + " " + direction)

	// 取数上限
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}

	var models []BookModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Categories 查询目录中出现过的分类标签(去重,字典序)
func (r *bookRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&BookModel{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}
	return categories, nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Author:      model.Author,
		Description: model.Description,
		Price:       model.Price,
		CoverURL:    model.CoverURL,
		Category:    model.Category,
		ISBN:        model.ISBN,
		Stock:       model.Stock,
		Rating:      model.Rating,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
