package book

import (
	"time"
)

// Book 图书目录记录
// 设计说明:
// 1. 目录数据由远程目录服务拥有,店面侧只持有只读副本,因此实体没有修改行为
// 2. ID是目录服务分配的稳定字符串标识(跨重启不变)
// 3. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 4. Rating为0表示暂无评分
type Book struct {
	ID          string
	Title       string  // 书名
	Author      string  // 作者
	Description string  // 图书描述
	Price       int64   // 价格(单位:分,1元=100分)
	CoverURL    string  // 封面图片URL
	Category    string  // 分类标签
	ISBN        string  // ISBN号(国际标准书号)
	Stock       int     // 库存数量
	Rating      float64 // 评分(0-5,0表示暂无评分)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
