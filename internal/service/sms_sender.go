package service

import (
	"context"

	"github.com/sirupsen/logrus"
)

// logSMSSender writes codes to the application log instead of a real SMS
// channel. Stands in until an SMS provider is wired up.
type logSMSSender struct {
	log *logrus.Logger
}

func NewLogSMSSender(log *logrus.Logger) SMSSender {
	return &logSMSSender{log: log}
}

func (s *logSMSSender) SendCode(ctx context.Context, phone string, code string) error {
	s.log.WithFields(logrus.Fields{
		"phone": phone,
		"code":  code,
	}).Info("SMS delivery not configured, logging verification code")
	return nil
}
