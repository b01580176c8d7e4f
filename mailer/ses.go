// Package mailer delivers decision emails through Amazon SES.
package mailer

import (
	"context"
	"fmt"

	"smartcity-portal/logger"
	"smartcity-portal/model"
	"smartcity-portal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/sirupsen/logrus"
)

// SESAPI is the subset of the SES client used by the notifier.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESNotifier implements service.Notifier on top of SES.
type SESNotifier struct {
	client SESAPI
	from   string
}

var _ service.Notifier = (*SESNotifier)(nil)

func NewSESNotifier(client SESAPI, from string) *SESNotifier {
	return &SESNotifier{client: client, from: from}
}

// NewSESNotifierFromEnv loads AWS credentials from the default chain.
func NewSESNotifierFromEnv(ctx context.Context, region, from string) (*SESNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewSESNotifier(ses.NewFromConfig(cfg), from), nil
}

func (n *SESNotifier) NotifyDecision(ctx context.Context, reg *model.Registration, status model.RegistrationStatus) error {
	subject, body := service.DecisionEmail(reg, status)

	out, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{reg.Email},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
			},
		},
		Source: aws.String(n.from),
	})
	if err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"registration_id": reg.ID,
		"message_id":      aws.ToString(out.MessageId),
	}).Info("Decision email sent")
	return nil
}
