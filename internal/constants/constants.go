package constants

// 角色常量
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// 商品图片槽位常量
const (
	ImageSlotThumbnail = "thumbnail"
	ImageSlotMobile    = "mobile"
	ImageSlotTablet    = "tablet"
	ImageSlotDesktop   = "desktop"
)

// ImageSlots 商品图片槽位（表单字段名与存储列一一对应）
var ImageSlots = []string{
	ImageSlotThumbnail,
	ImageSlotMobile,
	ImageSlotTablet,
	ImageSlotDesktop,
}

// 默认管理员账号（可被环境变量覆盖）
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminName     = "admin"
	DefaultAdminPassword = "admin"
)
