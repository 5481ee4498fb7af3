package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/xiebiao/storefront/internal/domain/book"
)

// SortKey 排序方式
type SortKey string

const (
	// SortNewest 最新上架(按创建时间降序,默认)
	SortNewest SortKey = "newest"
	// SortPriceLow 价格从低到高
	SortPriceLow SortKey = "price-low"
	// SortPriceHigh 价格从高到低
	SortPriceHigh SortKey = "price-high"
	// SortRating 评分从高到低(无评分视为0)
	SortRating SortKey = "rating"
	// SortTitle 书名字典序(按语言习惯比较)
	SortTitle SortKey = "title"
)

// CategoryAll 表示不做分类过滤
const CategoryAll = "all"

// QuerySpec 目录查询条件
// 说明:每次查询临时构造,不持久化
type QuerySpec struct {
	Search   string  // 搜索关键词(匹配书名或作者,忽略大小写),空表示不过滤
	Category string  // 分类标签,空或"all"表示不过滤
	PriceMin int64   // 价格下限(分),含
	PriceMax int64   // 价格上限(分),含;<=0表示不设上限
	SortBy   SortKey // 排序方式,未知值回退到newest
}

// Query 对图书集合执行查询管道:文本过滤 → 分类过滤 → 价格过滤 → 排序
// 设计说明:
// 1. 纯函数:不修改输入切片,相同输入总是产生相同的有序输出
// 2. 过滤条件相互独立,先后顺序不影响结果
// 3. 排序使用稳定排序,未被排序键区分的元素保持过滤后的相对顺序
func Query(books []*book.Book, spec QuerySpec) []*book.Book {
	result := make([]*book.Book, 0, len(books))

	search := strings.ToLower(spec.Search)
	for _, b := range books {
		if !matchSearch(b, search) {
			continue
		}
		if !matchCategory(b, spec.Category) {
			continue
		}
		if !matchPrice(b, spec.PriceMin, spec.PriceMax) {
			continue
		}
		result = append(result, b)
	}

	sortBooks(result, spec.SortBy)
	return result
}

// matchSearch 书名或作者包含关键词(忽略大小写)
func matchSearch(b *book.Book, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), search) ||
		strings.Contains(strings.ToLower(b.Author), search)
}

// matchCategory 分类标签精确匹配
func matchCategory(b *book.Book, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return b.Category == category
}

// matchPrice 价格落在[min,max]区间内(含边界)
func matchPrice(b *book.Book, min, max int64) bool {
	if b.Price < min {
		return false
	}
	if max > 0 && b.Price > max {
		return false
	}
	return true
}

// sortBooks 按排序键稳定排序
func sortBooks(books []*book.Book, sortBy SortKey) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].Price < books[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].Price > books[j].Price
		})
	case SortRating:
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].Rating > books[j].Rating
		})
	case SortTitle:
		// collate.Collator带内部缓冲,不能跨goroutine共享,每次排序新建
		c := collate.New(language.Und)
		sort.SliceStable(books, func(i, j int) bool {
			return c.CompareString(books[i].Title, books[j].Title) < 0
		})
	default:
		// 未知排序键回退到newest
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].CreatedAt.After(books[j].CreatedAt)
		})
	}
}
