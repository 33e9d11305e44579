package paramstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/require"
)

type fakeSSM struct {
	out     *ssm.GetParameterOutput
	err     error
	gotName string
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	if in != nil && in.Name != nil {
		f.gotName = *in.Name
	}
	return f.out, f.err
}

func paramOutput(value string) *ssm.GetParameterOutput {
	return &ssm.GetParameterOutput{
		Parameter: &ssmtypes.Parameter{Value: &value},
	}
}

func TestNewKeySource_Validation(t *testing.T) {
	_, err := NewKeySource(nil, "/helpdesk/gemini-api-key")
	require.Error(t, err)

	_, err = NewKeySource(&fakeSSM{}, "  ")
	require.Error(t, err)
}

func TestAPIKey_ReturnsParameterValue(t *testing.T) {
	api := &fakeSSM{out: paramOutput("gk-from-ssm")}
	src, err := NewKeySource(api, "/helpdesk/gemini-api-key")
	require.NoError(t, err)

	key, err := src.APIKey(context.Background())
	require.NoError(t, err)
	require.Equal(t, "gk-from-ssm", key)
	require.Equal(t, "/helpdesk/gemini-api-key", api.gotName)
}

func TestAPIKey_SSMError(t *testing.T) {
	src, err := NewKeySource(&fakeSSM{err: errors.New("access denied")}, "/helpdesk/gemini-api-key")
	require.NoError(t, err)

	_, err = src.APIKey(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "access denied")
}

func TestAPIKey_MissingValue(t *testing.T) {
	src, err := NewKeySource(&fakeSSM{out: &ssm.GetParameterOutput{}}, "/helpdesk/gemini-api-key")
	require.NoError(t, err)

	_, err = src.APIKey(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing value")
}
