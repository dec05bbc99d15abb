package mainconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	appconfig "github.com/nobug-il/leadgen/internal/config"
	"github.com/nobug-il/leadgen/internal/notify"
	"github.com/nobug-il/leadgen/pkg/logging"
)

// LoadAWSConfig builds the AWS SDK configuration for the configured region.
func LoadAWSConfig(ctx context.Context, cfg *appconfig.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
}

// BuildEmailSender selects the outbound email provider from configuration.
// A nil sender (no credential for the selected provider) is a valid result:
// the notification service degrades to its log-only fallback.
func BuildEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (notify.EmailSender, error) {
	switch cfg.EmailProvider {
	case "ses":
		awsCfg, err := LoadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}, logger)
		if sender == nil {
			return nil, nil
		}
		return sender, nil
	default:
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}, logger)
		if sender == nil {
			// No API key configured; callers fall back to the stub.
			return nil, nil
		}
		return sender, nil
	}
}
