package database

import (
	"eldercare_booking/config"
	"eldercare_booking/constants"
	"eldercare_booking/helper"
	"eldercare_booking/logger"
	"eldercare_booking/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	seedAdmin(db)
	seedActivities(db)
}

// seedAdmin tạo tài khoản quản trị mặc định nếu ADMIN_EMAIL được cấu hình
func seedAdmin(db *gorm.DB) {
	email := helper.NormalizeEmail(config.Config("ADMIN_EMAIL"))
	password := config.Config("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Warning("ADMIN_EMAIL/ADMIN_PASSWORD chưa cấu hình, bỏ qua tạo tài khoản quản trị")
		return
	}

	hash, err := helper.HashPassword(password)
	if err != nil {
		logger.Error("failed to hash admin password", err)
		return
	}
	admin := model.User{
		Name:     "Administrator",
		Email:    email,
		Phone:    config.ConfigDefault("ADMIN_PHONE", "0900000000"),
		Password: hash,
		Role:     constants.ROLE_ADMIN,
	}
	// Tạo mới nếu không tồn tại
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		logger.Error("failed to seed admin account "+admin.Email, err)
	}
}

func seedActivities(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Activity{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	activities := []model.Activity{
		{
			Title:        "Dưỡng sinh buổi sáng",
			Description:  "Các bài tập dưỡng sinh nhẹ nhàng giúp cải thiện sức khỏe tim mạch và sự dẻo dai.",
			Image:        "https://res.cloudinary.com/demo/image/upload/sample.jpg",
			Date:         "Thứ 2 - Thứ 6",
			Time:         "06:00 - 07:00",
			Participants: "20 người",
			Category:     "sports",
			Format:       "offline",
			Package:      "standard",
			Price:        150000,
			PriceUnit:    "tháng",
			Location:     "Công viên Thống Nhất",
			Instructor:   "HLV Nguyễn Văn An",
			Features:     []string{"Khởi động nhẹ", "Hít thở sâu", "Giãn cơ"},
		},
		{
			Title:        "Lớp hát karaoke",
			Description:  "Cùng hát những bài hát xưa, kết nối bạn bè cùng trang lứa.",
			Image:        "https://res.cloudinary.com/demo/image/upload/sample.jpg",
			Date:         "Thứ 7",
			Time:         "15:00 - 17:00",
			Participants: "15 người",
			Category:     "music",
			Format:       "offline",
			Package:      "vip",
			Price:        300000,
			PriceUnit:    "tháng",
			Location:     "Nhà văn hóa phường",
			Features:     []string{"Phòng hát riêng", "Trà bánh"},
		},
		{
			Title:        "Lớp sử dụng điện thoại thông minh",
			Description:  "Hướng dẫn gọi video, nhắn tin và dùng mạng xã hội an toàn.",
			Image:        "https://res.cloudinary.com/demo/image/upload/sample.jpg",
			Date:         "Thứ 3, Thứ 5",
			Time:         "19:00 - 20:00",
			Participants: "30 người",
			Category:     "class",
			Format:       "online",
			Package:      "standard",
			Price:        0,
			PriceUnit:    "buổi",
			Instructor:   "Trần Thị Bình",
			Features:     []string{"Học qua Zoom", "Tài liệu miễn phí"},
		},
		{
			Title:        "Cờ tướng giao hữu",
			Description:  "Giao lưu cờ tướng hằng tuần, rèn luyện trí nhớ và tư duy.",
			Image:        "https://res.cloudinary.com/demo/image/upload/sample.jpg",
			Date:         "Chủ nhật",
			Time:         "08:00 - 11:00",
			Participants: "16 người",
			Category:     "games",
			Format:       "offline",
			Package:      "standard",
			Price:        50000,
			PriceUnit:    "buổi",
			Location:     "Câu lạc bộ hưu trí",
			Features:     []string{"Giải thưởng hằng tháng"},
		},
	}
	for i := range activities {
		activities[i].Slug = slug.Make(activities[i].Title)
		activities[i].IsActive = true
	}
	if err := db.Create(&activities).Error; err != nil {
		logger.Error("failed to seed activities", err)
		return
	}
	logger.Success("Seeded starter activities")
}
