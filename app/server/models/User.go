package models

// User 的主键直接使用 GitHub 返回的数字 id ，
// 只会在首次登录时写入，之后的登录不会刷新资料字段
type User struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	Email    string `gorm:"column:email;uniqueIndex" json:"email"`       // 邮箱，全局唯一
	Username string `gorm:"column:username;uniqueIndex" json:"username"` // 用户名，全局唯一
	Nickname string `gorm:"column:nickname;default:''" json:"nickname"`  // 显示名称

	// 权限以 wra 区分（ writeable 、 readable 、 admin ），默认全部关闭，只能在库里手动调整
	Readable  bool `gorm:"column:readable;default:false" json:"readable"`   // 是否可以查看数据文件
	Writeable bool `gorm:"column:writeable;default:false" json:"writeable"` // 是否可以写（创建、修改）数据文件
	Admin     bool `gorm:"column:admin;default:false" json:"admin"`         // 是否可以管理（看其他用户，给权限等）
}

func (User) TableName() string {
	return "users"
}
