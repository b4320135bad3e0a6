package lambdautils

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LambdaMetaData stored details about the current lambda context.
type LambdaMetaData struct {
	FunctionName    string
	FunctionVersion string
	LogGroupName    string
	LogStreamName   string
	MemoryLimitInMB int
	Context         *lambdacontext.LambdaContext
}

// GetLambdaMetaData returns MetaData extracted from the current lambda context.
func GetLambdaMetaData(ctx context.Context) LambdaMetaData {
	lm := LambdaMetaData{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		LogGroupName:    lambdacontext.LogGroupName,
		LogStreamName:   lambdacontext.LogStreamName,
		MemoryLimitInMB: lambdacontext.MemoryLimitInMB,
	}

	lm.Context, _ = lambdacontext.FromContext(ctx)
	return lm
}

// RequestID returns the aws request id of the invocation, or "" outside of a
// lambda invocation.
func (lm LambdaMetaData) RequestID() string {
	if lm.Context == nil {
		return ""
	}
	return lm.Context.AwsRequestID
}

// Logger returns the global logger annotated with the function and request.
// Empty values are left out so local runs stay quiet.
func (lm LambdaMetaData) Logger() zerolog.Logger {
	c := log.Logger.With()

	if lm.FunctionName != "" {
		c = c.Str("function", lm.FunctionName)
	}
	if lm.FunctionVersion != "" {
		c = c.Str("version", lm.FunctionVersion)
	}
	if id := lm.RequestID(); id != "" {
		c = c.Str("request_id", id)
	}

	return c.Logger()
}

// WithLogger attaches the annotated logger to ctx for retrieval with
// zerolog.Ctx.
func WithLogger(ctx context.Context) context.Context {
	return GetLambdaMetaData(ctx).Logger().WithContext(ctx)
}
