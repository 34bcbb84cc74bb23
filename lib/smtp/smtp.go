package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"

	"hr-portal-backend/config"
)

type Provider interface {
	SendEMail(to, message, subject string) error
	IsConfigured() bool
}

func NewSender(cfg *config.Configuration) Provider {
	return &impl{
		user:       cfg.Smtp.User,
		password:   cfg.Smtp.Password,
		host:       cfg.Smtp.Host,
		port:       cfg.Smtp.Port,
		tlsEnabled: *cfg.Smtp.TLSEnabled,
		from:       cfg.Smtp.EmailSender,
	}
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
	from       string
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, message, subject string) (err error) {
	logger := log.WithField("sender", i.from)
	if !i.IsConfigured() {
		logger.Warn("Письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("Subject: HR Portal - %s\n%s\r\n Отправитель: %s\r\n %s\r\n", subject, mimeHeaders, i.from, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, body)
	}
	if err != nil {
		log.WithError(err).Error("Ошибка отправки сообщения")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}
