package model

// User account. Password holds the bcrypt hash, never the plaintext.
type User struct {
	BaseModel
	UserId    string `gorm:"column:user_id;uniqueIndex" json:"userId"`
	Email     string `gorm:"column:email;uniqueIndex" json:"email"`
	Password  string `gorm:"column:password" json:"-"`
	Name      string `gorm:"column:name" json:"name"`
	IsEnabled int    `gorm:"column:is_enabled;default:1" json:"isEnabled"` // 0: disabled, 1: enabled
}

func (User) TableName() string {
	return "t_user"
}

type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	UserId string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type LoginResp struct {
	UserInfo    UserInfo `json:"userInfo"`
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
}

func ToUserInfo(u *User) UserInfo {
	return UserInfo{
		UserId: u.UserId,
		Email:  u.Email,
		Name:   u.Name,
	}
}
