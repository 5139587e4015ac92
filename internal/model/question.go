package model

type Question struct {
	BaseModel
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	Title     string `gorm:"size:255;not null" json:"title"`
	Details   string `gorm:"type:text;not null" json:"details"`
	Subject   string `gorm:"size:50;not null;index" json:"subject"`
	Grade     string `gorm:"size:20;not null;index" json:"grade"`
	Tags      string `gorm:"size:255" json:"-"` // 逗号分隔，响应中拆成数组
	LikeCount int    `gorm:"default:0" json:"like_count"`
}

func (Question) TableName() string {
	return "questions"
}

// Subjects 提问可选学科（与前端下拉框一致）
var Subjects = []string{
	"Mathematics", "Science", "English", "History", "Geography",
	"Computer Science", "Physics", "Chemistry", "Biology", "Economics",
}

// Grades 提问可选年级
var Grades = []string{"Grade 10", "Grade 11", "Grade 12"}

func ValidSubject(s string) bool {
	for _, v := range Subjects {
		if v == s {
			return true
		}
	}
	return false
}

func ValidGrade(g string) bool {
	for _, v := range Grades {
		if v == g {
			return true
		}
	}
	return false
}
