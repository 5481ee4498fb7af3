package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/storefront/internal/domain/book"
)

// sampleBooks 测试数据,上架时间从旧到新:Gatsby最早,Dune最新
func sampleBooks() []*book.Book {
	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 10, 0, 0, 0, time.UTC)
	}
	return []*book.Book{
		{ID: "1", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Category: "Fiction", Price: 1299, Rating: 4.5, CreatedAt: day(1)},
		{ID: "2", Title: "1984", Author: "George Orwell", Category: "Fiction", Price: 1099, Rating: 4.8, CreatedAt: day(2)},
		{ID: "3", Title: "Pride and Prejudice", Author: "Jane Austen", Category: "Romance", Price: 1399, Rating: 4.7, CreatedAt: day(3)},
		{ID: "4", Title: "Dune", Author: "Frank Herbert", Category: "Science Fiction", Price: 1599, Rating: 0, CreatedAt: day(4)},
	}
}

func titles(books []*book.Book) []string {
	result := make([]string, len(books))
	for i, b := range books {
		result[i] = b.Title
	}
	return result
}

func TestQuery_Search(t *testing.T) {
	books := sampleBooks()

	t.Run("忽略大小写匹配书名", func(t *testing.T) {
		result := Query(books, QuerySpec{Search: "gatsby"})
		require.Len(t, result, 1)
		assert.Equal(t, "The Great Gatsby", result[0].Title)
	})

	t.Run("匹配作者", func(t *testing.T) {
		result := Query(books, QuerySpec{Search: "ORWELL"})
		require.Len(t, result, 1)
		assert.Equal(t, "1984", result[0].Title)
	})

	t.Run("空关键词不过滤", func(t *testing.T) {
		result := Query(books, QuerySpec{})
		assert.Len(t, result, 4)
	})

	t.Run("无匹配返回空集", func(t *testing.T) {
		result := Query(books, QuerySpec{Search: "nonexistent"})
		assert.Empty(t, result)
	})
}

func TestQuery_Category(t *testing.T) {
	books := sampleBooks()

	t.Run("精确匹配分类", func(t *testing.T) {
		result := Query(books, QuerySpec{Category: "Fiction"})
		assert.Len(t, result, 2)
	})

	t.Run("all表示不过滤", func(t *testing.T) {
		result := Query(books, QuerySpec{Category: CategoryAll})
		assert.Len(t, result, 4)
	})

	t.Run("分类不做前缀匹配", func(t *testing.T) {
		// "Fiction"不应匹配"Science Fiction"
		result := Query(books, QuerySpec{Category: "Science Fiction"})
		require.Len(t, result, 1)
		assert.Equal(t, "Dune", result[0].Title)
	})
}

func TestQuery_PriceRange(t *testing.T) {
	books := sampleBooks()

	t.Run("区间含边界", func(t *testing.T) {
		result := Query(books, QuerySpec{PriceMin: 1099, PriceMax: 1299, SortBy: SortPriceLow})
		assert.Equal(t, []string{"1984", "The Great Gatsby"}, titles(result))
	})

	t.Run("上限为0表示不限", func(t *testing.T) {
		result := Query(books, QuerySpec{PriceMin: 1400})
		require.Len(t, result, 1)
		assert.Equal(t, "Dune", result[0].Title)
	})
}

func TestQuery_Sort(t *testing.T) {
	books := sampleBooks()

	t.Run("默认按上架时间降序", func(t *testing.T) {
		result := Query(books, QuerySpec{})
		assert.Equal(t, []string{"Dune", "Pride and Prejudice", "1984", "The Great Gatsby"}, titles(result))
	})

	t.Run("价格从低到高", func(t *testing.T) {
		result := Query(books, QuerySpec{SortBy: SortPriceLow})
		assert.Equal(t, []string{"1984", "The Great Gatsby", "Pride and Prejudice", "Dune"}, titles(result))
	})

	t.Run("价格从高到低", func(t *testing.T) {
		result := Query(books, QuerySpec{SortBy: SortPriceHigh})
		assert.Equal(t, []string{"Dune", "Pride and Prejudice", "The Great Gatsby", "1984"}, titles(result))
	})

	t.Run("评分降序且无评分排最后", func(t *testing.T) {
		result := Query(books, QuerySpec{SortBy: SortRating})
		assert.Equal(t, []string{"1984", "Pride and Prejudice", "The Great Gatsby", "Dune"}, titles(result))
	})

	t.Run("书名字典序", func(t *testing.T) {
		result := Query(books, QuerySpec{SortBy: SortTitle})
		assert.Equal(t, []string{"1984", "Dune", "Pride and Prejudice", "The Great Gatsby"}, titles(result))
	})

	t.Run("未知排序键回退到默认", func(t *testing.T) {
		result := Query(books, QuerySpec{SortBy: SortKey("bogus")})
		assert.Equal(t, "Dune", result[0].Title)
	})

	t.Run("稳定排序保持同值元素的相对顺序", func(t *testing.T) {
		day := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
		same := []*book.Book{
			{ID: "a", Title: "A", Price: 1000, CreatedAt: day},
			{ID: "b", Title: "B", Price: 1000, CreatedAt: day},
			{ID: "c", Title: "C", Price: 1000, CreatedAt: day},
		}
		result := Query(same, QuerySpec{SortBy: SortPriceLow})
		assert.Equal(t, []string{"A", "B", "C"}, titles(result))
	})
}

func TestQuery_Purity(t *testing.T) {
	books := sampleBooks()
	original := titles(books)

	Query(books, QuerySpec{SortBy: SortPriceHigh})

	assert.Equal(t, original, titles(books), "查询不应修改输入切片")

	// 相同输入重复查询结果一致
	first := Query(books, QuerySpec{Search: "e", SortBy: SortTitle})
	second := Query(books, QuerySpec{Search: "e", SortBy: SortTitle})
	assert.Equal(t, titles(first), titles(second))
}

func TestQuery_CombinedFilters(t *testing.T) {
	books := sampleBooks()

	result := Query(books, QuerySpec{
		Search:   "e",
		Category: "Fiction",
		PriceMin: 1200,
		SortBy:   SortPriceLow,
	})

	// "e"匹配全部书名/作者;Fiction限定前两本;价格>=1200只剩Gatsby
	require.Len(t, result, 1)
	assert.Equal(t, "The Great Gatsby", result[0].Title)
}
