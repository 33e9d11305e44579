// Package paramstore reads the Gemini API key from AWS SSM Parameter Store
// for deployments where the key is provisioned as a SecureString rather than
// an environment variable.
package paramstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ssmAPI is the minimal AWS SSM interface required by KeySource.
// *ssm.Client from aws-sdk-go-v2 satisfies this interface.
type ssmAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// KeySource resolves a single named parameter to an API key. It satisfies
// gemini.CredentialSource.
type KeySource struct {
	api  ssmAPI
	name string
}

// NewKeySource creates a KeySource for the given parameter name.
func NewKeySource(api ssmAPI, name string) (*KeySource, error) {
	if api == nil {
		return nil, errors.New("paramstore: api must not be nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("paramstore: parameter name is required")
	}
	return &KeySource{api: api, name: name}, nil
}

// APIKey fetches and decrypts the parameter value.
func (k *KeySource) APIKey(ctx context.Context) (string, error) {
	withDecryption := true
	out, err := k.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &k.name,
		WithDecryption: &withDecryption,
	})
	if err != nil {
		return "", fmt.Errorf("paramstore: get parameter %q: %w", k.name, err)
	}
	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return "", errors.New("paramstore: parameter missing value")
	}
	return *out.Parameter.Value, nil
}
