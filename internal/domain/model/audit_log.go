package model

import "time"

// 管理者操作の種類
type AuditAction string

const (
	//在庫を更新した操作。
	AuditActionUpdateStock AuditAction = "UPDATE_STOCK"
	//注文ステータスを更新した操作。
	AuditActionUpdateOrderStatus AuditAction = "UPDATE_ORDER_STATUS"
	//商品を作成・更新・削除した操作。
	AuditActionUpdateProduct AuditAction = "UPDATE_PRODUCT"
	//ブログ記事を作成・更新・削除した操作。
	AuditActionUpdatePost AuditAction = "UPDATE_POST"
	//通知設定を変更した操作。
	AuditActionUpdateNotification AuditAction = "UPDATE_NOTIFICATION"
	//お客様の声を承認・非承認にした操作。
	AuditActionModerateTestimonial AuditAction = "MODERATE_TESTIMONIAL"
)

// 何に対する操作か
type AuditResourceType string

const (
	AuditResourceProduct      AuditResourceType = "product"
	AuditResourceOrder        AuditResourceType = "order"
	AuditResourceBlogPost     AuditResourceType = "blog_post"
	AuditResourceNotification AuditResourceType = "notification_setting"
	AuditResourceTestimonial  AuditResourceType = "testimonial"
)

// 監査ログ（管理者操作ログ）。
// 「誰が」「何を」「どの対象に」「どう変えたか」を残す。
type AuditLog struct {
	ID           int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorUserID  int64             `gorm:"not null;index" json:"actor_user_id"`
	Action       AuditAction       `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`
	ResourceID   int64             `gorm:"not null;index" json:"resource_id"`

	//変更前後の状態はJSON文字列で保存する。
	BeforeJSON string `gorm:"type:text" json:"before_json"`
	AfterJSON  string `gorm:"type:text" json:"after_json"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
