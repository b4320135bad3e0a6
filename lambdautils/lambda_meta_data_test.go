package lambdautils

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prepareContext(fn, v, alias string) context.Context {
	lambdacontext.FunctionName = fn
	lambdacontext.FunctionVersion = v
	lambdacontext.LogGroupName = "logGroupName-test"
	lambdacontext.LogStreamName = "logStreamName-test"
	lambdacontext.MemoryLimitInMB = 100

	arn := []string{"arn:aws:lambda:us-east-1:xxxxx:function", fn}
	if alias != "" {
		arn = append(arn, alias)
	}

	lctx := lambdacontext.LambdaContext{
		AwsRequestID:       "req-" + v,
		InvokedFunctionArn: strings.Join(arn, ":"),
	}
	return lambdacontext.NewContext(context.Background(), &lctx)
}

func clearContext() {
	lambdacontext.FunctionName = os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
	lambdacontext.FunctionVersion = os.Getenv("AWS_LAMBDA_FUNCTION_VERSION")
	lambdacontext.LogGroupName = os.Getenv("AWS_LAMBDA_LOG_GROUP_NAME")
	lambdacontext.LogStreamName = os.Getenv("AWS_LAMBDA_LOG_STREAM_NAME")
	if limit, err := strconv.Atoi(os.Getenv("AWS_LAMBDA_FUNCTION_MEMORY_SIZE")); err != nil {
		lambdacontext.MemoryLimitInMB = 0
	} else {
		lambdacontext.MemoryLimitInMB = limit
	}
}

func TestLambdaMetaData(t *testing.T) {
	// NOTE: must set and unset the lambdacontext global vars. This is an
	// anti-pattern: https://dave.cheney.net/2017/06/11/go-without-package-scoped-variables
	defer clearContext()

	cases := []struct {
		fn          string
		v           string
		alias       string
		expectedArn string
	}{
		{"fname", "1", "PRODUCTION", "arn:aws:lambda:us-east-1:xxxxx:function:fname:PRODUCTION"},
		{"fname", "$LATEST", "$LATEST", "arn:aws:lambda:us-east-1:xxxxx:function:fname:$LATEST"},
		{"fname", "2", "DEV", "arn:aws:lambda:us-east-1:xxxxx:function:fname:DEV"},
		{"fname", "4", "", "arn:aws:lambda:us-east-1:xxxxx:function:fname"},
		{"fname2", "3", "PRODUCTION", "arn:aws:lambda:us-east-1:xxxxx:function:fname2:PRODUCTION"},
	}

	for _, c := range cases {
		ctx := prepareContext(c.fn, c.v, c.alias)
		meta := GetLambdaMetaData(ctx)

		assert.Equal(t, c.fn, meta.FunctionName)
		assert.Equal(t, c.v, meta.FunctionVersion)
		assert.Equal(t, 100, meta.MemoryLimitInMB)
		assert.Equal(t, "logGroupName-test", meta.LogGroupName)
		assert.Equal(t, "logStreamName-test", meta.LogStreamName)
		assert.Equal(t, c.expectedArn, meta.Context.InvokedFunctionArn)
		assert.Equal(t, "req-"+c.v, meta.RequestID())
	}
}

func TestLambdaMetaData_outsideLambda(t *testing.T) {
	defer clearContext()
	lambdacontext.FunctionName = ""
	lambdacontext.FunctionVersion = ""

	meta := GetLambdaMetaData(context.Background())

	assert.Nil(t, meta.Context)
	assert.Equal(t, "", meta.RequestID())
}

func TestWithLogger(t *testing.T) {
	defer clearContext()
	defer resetLogging()

	var buf bytes.Buffer
	require.NoError(t, SetupLogging(&buf, "debug"))

	ctx := WithLogger(prepareContext("lookup", "7", "PRODUCTION"))
	zerolog.Ctx(ctx).Info().Msg("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "lookup", line["function"])
	assert.Equal(t, "7", line["version"])
	assert.Equal(t, "req-7", line["request_id"])
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "info", line["level"])
}

func TestWithLogger_omitsEmptyFields(t *testing.T) {
	defer clearContext()
	defer resetLogging()

	lambdacontext.FunctionName = ""
	lambdacontext.FunctionVersion = ""

	var buf bytes.Buffer
	require.NoError(t, SetupLogging(&buf, "info"))

	zerolog.Ctx(WithLogger(context.Background())).Info().Msg("local")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.NotContains(t, line, "function")
	assert.NotContains(t, line, "request_id")
}
