package tokenhandler

import (
	"time"

	log "github.com/sirupsen/logrus"

	"hr-portal-backend/config"
	"hr-portal-backend/lib/apperr"
	tokenstore "hr-portal-backend/lib/token/store"
	authutils "hr-portal-backend/lib/utils/auth-utils"
	dbmodels "hr-portal-backend/models/db"
)

const refreshTokenByteLen = 40

type Provider interface {
	IssueAccessToken(account dbmodels.Account) (string, error)
	IssueRefreshToken(account dbmodels.Account, ip, userAgent string) (*dbmodels.RefreshToken, error)
	Rotate(token, ip, userAgent string) (*dbmodels.RefreshToken, error)
	Revoke(token, ip string) error
	ListActive(accountID string) ([]dbmodels.RefreshToken, error)
}

func NewHandler(store tokenstore.Provider) Provider {
	return &impl{
		store: store,
	}
}

type impl struct {
	store tokenstore.Provider
}

func (i impl) IssueAccessToken(account dbmodels.Account) (string, error) {
	return authutils.GetAccessToken(account)
}

func (i impl) IssueRefreshToken(account dbmodels.Account, ip, userAgent string) (*dbmodels.RefreshToken, error) {
	rec, err := i.newToken(account.ID, ip, userAgent)
	if err != nil {
		return nil, err
	}
	if err = i.store.Create(*rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Rotate отзывает старый токен и выдает новый одной транзакцией.
// Повторное использование уже отозванного токена считается инцидентом:
// вся цепочка выданных по нему токенов отзывается
func (i impl) Rotate(token, ip, userAgent string) (newRec *dbmodels.RefreshToken, err error) {
	err = i.store.InTx(func(s tokenstore.Provider) error {
		rec, err := s.GetByTokenLocked(token)
		if err != nil {
			return err
		}
		if rec == nil {
			return apperr.ErrTokenInvalid
		}
		if rec.IsRevoked() {
			if chainErr := revokeDescendants(s, rec, ip); chainErr != nil {
				return chainErr
			}
			log.
				WithField("account_id", rec.AccountID).
				WithField("ip", ip).
				Warn("повторное использование отозванного refresh token, цепочка токенов отозвана")
			return apperr.ErrTokenInvalid
		}
		if rec.IsExpired() {
			return apperr.ErrTokenInvalid
		}
		newRec, err = i.newToken(rec.AccountID, ip, userAgent)
		if err != nil {
			return err
		}
		if err = s.Create(*newRec); err != nil {
			return err
		}
		return s.Update(rec.Token, map[string]interface{}{
			"revoked_at":        time.Now(),
			"revoked_by_ip":     ip,
			"replaced_by_token": newRec.Token,
		})
	})
	if err != nil {
		return nil, err
	}
	return newRec, nil
}

func (i impl) Revoke(token, ip string) error {
	rec, err := i.store.GetByToken(token)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperr.ErrTokenInvalid
	}
	if rec.IsRevoked() {
		// повторный отзыв не ошибка
		return nil
	}
	return i.store.Update(rec.Token, map[string]interface{}{
		"revoked_at":    time.Now(),
		"revoked_by_ip": ip,
	})
}

func (i impl) ListActive(accountID string) ([]dbmodels.RefreshToken, error) {
	return i.store.ListActiveByAccount(accountID)
}

func (i impl) newToken(accountID, ip, userAgent string) (*dbmodels.RefreshToken, error) {
	token, err := authutils.RandomTokenString(refreshTokenByteLen)
	if err != nil {
		return nil, err
	}
	return &dbmodels.RefreshToken{
		Token:       token,
		AccountID:   accountID,
		ExpiresAt:   time.Now().AddDate(0, 0, config.Conf.Auth.RefreshExpireInDays),
		CreatedByIP: ip,
		UserAgent:   userAgent,
	}, nil
}

func revokeDescendants(s tokenstore.Provider, rec *dbmodels.RefreshToken, ip string) error {
	cur := rec
	for cur.ReplacedByToken != "" {
		next, err := s.GetByToken(cur.ReplacedByToken)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		if !next.IsRevoked() {
			err = s.Update(next.Token, map[string]interface{}{
				"revoked_at":    time.Now(),
				"revoked_by_ip": ip,
			})
			if err != nil {
				return err
			}
		}
		cur = next
	}
	return nil
}
