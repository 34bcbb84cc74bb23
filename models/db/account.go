package dbmodels

import (
	"fmt"
	"time"

	"hr-portal-backend/models"
	accountapimodels "hr-portal-backend/models/api/account"
)

type Account struct {
	BaseModel
	Title               string `gorm:"type:varchar(20)"`
	FirstName           string `gorm:"type:varchar(150)"`
	LastName            string `gorm:"type:varchar(150)"`
	Email               string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash        string `gorm:"type:varchar(128)"`
	AcceptTerms         bool
	Role                models.AccountRole `gorm:"type:varchar(50)"`
	VerificationToken   string             `gorm:"type:varchar(100);index"`
	VerifiedAt          *time.Time
	ResetToken          string `gorm:"type:varchar(100);index"`
	ResetTokenExpiresAt *time.Time
	PasswordResetAt     *time.Time
	LastLogin           time.Time

	RefreshTokens []RefreshToken `gorm:"constraint:OnDelete:CASCADE"`
	Employee      *Employee      `gorm:"constraint:OnDelete:CASCADE"`
	// заявки, где аккаунт выступал согласующим, при удалении аккаунта ссылка зануляется
	ApprovedRequests []Request `gorm:"foreignKey:ApproverID;constraint:OnDelete:SET NULL"`
}

func (r Account) IsVerified() bool {
	return r.VerifiedAt != nil || r.PasswordResetAt != nil
}

func (r Account) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

func (r Account) ToModel() accountapimodels.AccountView {
	return accountapimodels.AccountView{
		ID:         r.ID,
		Title:      r.Title,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Role:       string(r.Role),
		RoleName:   r.Role.ToHuman(),
		IsVerified: r.IsVerified(),
		CreatedAt:  r.CreatedAt,
	}
}
