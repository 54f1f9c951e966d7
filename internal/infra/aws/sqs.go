package aws

import (
	"todo-api/pkg/resource"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// NewSqsClient creates the SQS client, pointing it at a custom endpoint
// (LocalStack) when app.cloud.aws-endpoint is set.
func NewSqsClient(cfg aws.Config) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(options *sqs.Options) {
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
	})
}
