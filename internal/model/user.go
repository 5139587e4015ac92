package model

import "time"

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
)

// swagger:model User
type User struct {
	BaseModel
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"size:20;default:'student';index" json:"role"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	LastLogin time.Time `json:"last_login"`
}

func (User) TableName() string {
	return "users"
}

// StudentProfile 学生档案，与 User 一对一
type StudentProfile struct {
	BaseModel
	UserID     uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Grade      string `gorm:"size:20;not null" json:"grade"`
	SchoolName string `gorm:"size:255;not null" json:"school_name"`
}

func (StudentProfile) TableName() string {
	return "students"
}

// TeacherProfile 教师档案，与 User 一对一
type TeacherProfile struct {
	BaseModel
	UserID     uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	SchoolName string `gorm:"size:255;not null" json:"school_name"`
}

func (TeacherProfile) TableName() string {
	return "teachers"
}
