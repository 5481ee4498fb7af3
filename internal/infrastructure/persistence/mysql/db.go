package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/storefront/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明:
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数(MaxOpenConns、MaxIdleConns、ConnMaxLifetime)
// 3. 开发环境开启SQL日志,生产环境关闭
// 4. 自动迁移表结构(AutoMigrate),可选写入目录示例数据
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构(开发环境)
	// 注意:生产环境应使用专门的迁移工具(如golang-migrate)
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	// 7. 目录表为空时写入示例数据(开发环境)
	if cfg.Catalog.SeedOnEmpty {
		if err := SeedBooks(db); err != nil {
			return nil, fmt.Errorf("写入目录示例数据失败: %w", err)
		}
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AccountModel{},
		&ProfileModel{},
		&BookModel{},
	)
}

// AccountModel GORM账号模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. 身份服务的账号与资料是两张表,资料缺失时认证视为失败
// 3. ID是UUID字符串,作为对外暴露的稳定用户标识
type AccountModel struct {
	ID        string         `gorm:"primaryKey;size:36"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (AccountModel) TableName() string {
	return "accounts"
}

// ProfileModel GORM用户资料模型
type ProfileModel struct {
	UserID    string    `gorm:"primaryKey;size:36;comment:用户ID"`
	Email     string    `gorm:"size:100;not null;comment:邮箱"`
	FullName  string    `gorm:"size:100;not null;comment:姓名"`
	Role      string    `gorm:"size:20;not null;default:customer;comment:角色(customer/admin)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ProfileModel) TableName() string {
	return "profiles"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. ID是目录服务分配的稳定字符串标识
// 3. 搜索与排序在店面内存中完成,这里只留常用索引
type BookModel struct {
	ID          string         `gorm:"primaryKey;size:36"`
	Title       string         `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author      string         `gorm:"index:idx_search;size:100;not null;comment:作者"`
	Description string         `gorm:"type:text;comment:图书描述"`
	Price       int64          `gorm:"index;not null;comment:价格(分)"`
	CoverURL    string         `gorm:"size:500;comment:封面图片URL"`
	Category    string         `gorm:"index;size:50;not null;comment:分类标签"`
	ISBN        string         `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Stock       int            `gorm:"default:0;comment:库存数量"`
	Rating      float64        `gorm:"comment:评分(0-5,0表示暂无评分)"`
	CreatedAt   time.Time      `gorm:"index;comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}
