// file: service/notifier.go

package service

import (
	"context"
	"fmt"

	"smartcity-portal/logger"
	"smartcity-portal/model"

	"github.com/sirupsen/logrus"
)

// Notifier informs an applicant about the decision taken on their registration.
type Notifier interface {
	NotifyDecision(ctx context.Context, reg *model.Registration, status model.RegistrationStatus) error
}

// DecisionEmail builds the subject and plain-text body of a decision email.
func DecisionEmail(reg *model.Registration, status model.RegistrationStatus) (subject, body string) {
	name := reg.DisplayName()
	if name == "" {
		name = reg.Email
	}
	if status == model.StatusApproved {
		subject = "Your Smart City Portal registration has been approved"
		body = fmt.Sprintf("Hello %s,\n\nYour %s account registration has been approved. "+
			"You can now sign in with %s and the password you chose.\n\nSmart City Portal", name, reg.AccountType, reg.Email)
		return subject, body
	}
	subject = "Your Smart City Portal registration was not approved"
	body = fmt.Sprintf("Hello %s,\n\nAfter review, your %s account registration could not be approved. "+
		"Please contact the city office if you believe this is a mistake.\n\nSmart City Portal", name, reg.AccountType)
	return subject, body
}

// LogNotifier writes decision emails to the log instead of sending them.
type LogNotifier struct{}

func (LogNotifier) NotifyDecision(_ context.Context, reg *model.Registration, status model.RegistrationStatus) error {
	subject, _ := DecisionEmail(reg, status)
	logger.Log.WithFields(logrus.Fields{
		"registration_id": reg.ID,
		"to":              reg.Email,
		"status":          status,
		"subject":         subject,
	}).Info("Decision email (log delivery)")
	return nil
}
