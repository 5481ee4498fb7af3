package mysql

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// SeedBooks 目录表为空时写入内置示例数据
// 开发环境用:让前端在没有目录同步任务的情况下也能联调
func SeedBooks(db *gorm.DB) error {
	var count int64
	if err := db.Model(&BookModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(seedBooks()).Error; err != nil {
		return err
	}

	log.Printf("✓ 目录示例数据写入成功(%d本)", len(seedBooks()))
	return nil
}

// seedBooks 内置示例图书
func seedBooks() []BookModel {
	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 10, 0, 0, 0, time.UTC)
	}

	return []BookModel{
		{
			ID:          "1",
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			Description: "A classic American novel set in the Jazz Age, exploring themes of wealth, love, and the American Dream.",
			Price:       1299,
			CoverURL:    "https://images.pexels.com/photos/159866/books-book-pages-read-literature-159866.jpeg",
			Category:    "Fiction",
			ISBN:        "978-0-7432-7356-5",
			Stock:       15,
			Rating:      4.5,
			CreatedAt:   day(15),
			UpdatedAt:   day(15),
		},
		{
			ID:          "2",
			Title:       "To Kill a Mockingbird",
			Author:      "Harper Lee",
			Description: "A gripping tale of racial injustice and childhood innocence in the American South.",
			Price:       1499,
			CoverURL:    "https://images.pexels.com/photos/1370295/pexels-photo-1370295.jpeg",
			Category:    "Fiction",
			ISBN:        "978-0-06-112008-4",
			Stock:       20,
			Rating:      4.8,
			CreatedAt:   day(14),
			UpdatedAt:   day(14),
		},
		{
			ID:          "3",
			Title:       "1984",
			Author:      "George Orwell",
			Description: "A dystopian social science fiction novel about totalitarian control and surveillance.",
			Price:       1399,
			CoverURL:    "https://images.pexels.com/photos/256541/pexels-photo-256541.jpeg",
			Category:    "Science Fiction",
			ISBN:        "978-0-452-28423-4",
			Stock:       25,
			Rating:      4.7,
			CreatedAt:   day(13),
			UpdatedAt:   day(13),
		},
		{
			ID:          "4",
			Title:       "Pride and Prejudice",
			Author:      "Jane Austen",
			Description: "A romantic novel that critiques the British landed gentry at the end of the 18th century.",
			Price:       1199,
			CoverURL:    "https://images.pexels.com/photos/1029141/pexels-photo-1029141.jpeg",
			Category:    "Romance",
			ISBN:        "978-0-14-143951-8",
			Stock:       18,
			Rating:      4.6,
			CreatedAt:   day(12),
			UpdatedAt:   day(12),
		},
		{
			ID:          "5",
			Title:       "The Catcher in the Rye",
			Author:      "J.D. Salinger",
			Description: "A controversial novel about teenage rebellion and alienation in post-war America.",
			Price:       1599,
			CoverURL:    "https://images.pexels.com/photos/694740/pexels-photo-694740.jpeg",
			Category:    "Fiction",
			ISBN:        "978-0-316-76948-0",
			Stock:       12,
			Rating:      4.2,
			CreatedAt:   day(11),
			UpdatedAt:   day(11),
		},
		{
			ID:          "6",
			Title:       "Harry Potter and the Sorcerer's Stone",
			Author:      "J.K. Rowling",
			Description: "The first book in the beloved Harry Potter series about a young wizard's adventures.",
			Price:       1699,
			CoverURL:    "https://images.pexels.com/photos/1029141/pexels-photo-1029141.jpeg",
			Category:    "Fantasy",
			ISBN:        "978-0-439-70818-8",
			Stock:       30,
			Rating:      4.9,
			CreatedAt:   day(10),
			UpdatedAt:   day(10),
		},
		{
			ID:          "7",
			Title:       "The Lord of the Rings",
			Author:      "J.R.R. Tolkien",
			Description: "An epic high fantasy novel about the quest to destroy the One Ring.",
			Price:       2499,
			CoverURL:    "https://images.pexels.com/photos/256541/pexels-photo-256541.jpeg",
			Category:    "Fantasy",
			ISBN:        "978-0-544-00341-5",
			Stock:       22,
			Rating:      4.8,
			CreatedAt:   day(9),
			UpdatedAt:   day(9),
		},
		{
			ID:          "8",
			Title:       "Dune",
			Author:      "Frank Herbert",
			Description: "A science fiction epic set in a distant future amidst a feudal interstellar society.",
			Price:       1899,
			CoverURL:    "https://images.pexels.com/photos/694740/pexels-photo-694740.jpeg",
			Category:    "Science Fiction",
			ISBN:        "978-0-441-17271-9",
			Stock:       16,
			Rating:      4.4,
			CreatedAt:   day(8),
			UpdatedAt:   day(8),
		},
	}
}
