package book

import (
	"context"
)

// Repository 目录仓储接口(只读消费)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(依赖倒置原则)
// 2. 店面只读取目录,不发布、不修改、不扣库存
// 3. 过滤与排序在内存中由catalog查询管道完成,仓储只负责取数
type Repository interface {
	// List 查询图书列表
	// 如果目录为空,返回空切片而非错误
	List(ctx context.Context, params ListParams) ([]*Book, error)

	// FindByID 根据ID查找图书
	// 如果不存在,返回ErrBookNotFound
	FindByID(ctx context.Context, id string) (*Book, error)

	// Categories 查询目录中出现过的所有分类标签(去重)
	Categories(ctx context.Context) ([]string, error)
}

// ListParams 列表查询参数
type ListParams struct {
	OrderBy    string // 排序字段(created_at/price/title),空值默认created_at
	Descending bool   // 是否降序
	Limit      int    // 返回条数上限,<=0表示不限制
}
