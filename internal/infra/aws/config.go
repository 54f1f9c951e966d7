package aws

import (
	"context"

	"todo-api/pkg/resource"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// LoadConfig builds the AWS configuration from the app.cloud properties. When no
// static credentials are configured the SDK default chain applies (environment,
// IAM roles).
func LoadConfig(ctx context.Context) (aws.Config, error) {
	options := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	if accessKey := resource.GetString("app.cloud.aws-access-key-id"); accessKey != "" {
		if secretKey := resource.GetString("app.cloud.aws-secret-access-key"); secretKey != "" {
			options = append(options,
				config.WithCredentialsProvider(
					credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
		}
	}

	return config.LoadDefaultConfig(ctx, options...)
}
