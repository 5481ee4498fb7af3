package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 目录模块集成测试
//
// 前置条件：服务以catalog.seed_on_empty=true启动,目录中有8本种子图书

// TestCatalogList 测试目录浏览
func TestCatalogList(t *testing.T) {
	t.Run("默认按上架时间降序", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books")
		require.Equal(t, 0, resp.Code, "查询失败: %s", resp.Message)

		var data BookListData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.NotEmpty(t, data.List, "种子目录不应为空")
		assert.Equal(t, len(data.List), data.Total)

		t.Logf("✓ 目录共%d本图书,最新: %s", data.Total, data.List[0].Title)
	})

	t.Run("关键词搜索忽略大小写", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books?keyword=GATSBY")
		require.Equal(t, 0, resp.Code)

		var data BookListData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Len(t, data.List, 1)
		assert.Equal(t, "The Great Gatsby", data.List[0].Title)
	})

	t.Run("价格升序排序", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books?sort_by=price-low")
		require.Equal(t, 0, resp.Code)

		var data BookListData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		for i := 1; i < len(data.List); i++ {
			assert.LessOrEqual(t, data.List[i-1].Price, data.List[i].Price, "价格应该单调不减")
		}
	})

	t.Run("分类过滤与价格区间组合", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books?category=Fiction&price_min=1200&price_max=1500")
		require.Equal(t, 0, resp.Code)

		var data BookListData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		for _, item := range data.List {
			assert.Equal(t, "Fiction", item.Category)
			assert.GreaterOrEqual(t, item.Price, int64(1200))
			assert.LessOrEqual(t, item.Price, int64(1500))
		}
	})

	t.Run("非法排序键被拒绝", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books?sort_by=bogus")
		assert.NotEqual(t, 0, resp.Code, "未知排序键应该返回参数错误")
	})
}

// TestCatalogDetail 测试图书详情
func TestCatalogDetail(t *testing.T) {
	t.Run("正常查询详情", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/1")
		require.Equal(t, 0, resp.Code, "查询失败: %s", resp.Message)

		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "1", data["id"])
		assert.NotEmpty(t, data["description"], "详情应包含description")
	})

	t.Run("图书不存在返回40402", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/not-a-book")
		assert.Equal(t, 40402, resp.Code)
	})
}

// TestCatalogCategories 测试分类列表
func TestCatalogCategories(t *testing.T) {
	resp := GetJSON(t, BaseURL+"/books/categories")
	require.Equal(t, 0, resp.Code, "查询失败: %s", resp.Message)

	var data CategoriesData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Categories)
	assert.Equal(t, "all", data.Categories[0], "分类列表应以all开头")
	assert.Contains(t, data.Categories, "Fiction")
}
