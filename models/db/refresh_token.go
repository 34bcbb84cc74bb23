package dbmodels

import "time"

// RefreshToken - непрозрачный токен сессии, хранится на сервере,
// при ротации старый токен отзывается со ссылкой на замену
type RefreshToken struct {
	BaseModel
	Token           string `gorm:"type:varchar(100);uniqueIndex"`
	AccountID       string `gorm:"index"`
	ExpiresAt       time.Time
	CreatedByIP     string `gorm:"type:varchar(45)"`
	UserAgent       string `gorm:"type:varchar(255)"`
	RevokedAt       *time.Time
	RevokedByIP     string `gorm:"type:varchar(45)"`
	ReplacedByToken string `gorm:"type:varchar(100)"`
}

func (r RefreshToken) IsExpired() bool {
	return time.Now().After(r.ExpiresAt)
}

func (r RefreshToken) IsRevoked() bool {
	return r.RevokedAt != nil
}

func (r RefreshToken) IsActive() bool {
	return !r.IsRevoked() && !r.IsExpired()
}
