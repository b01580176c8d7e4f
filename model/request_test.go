package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequest_UnmarshalAccountType(t *testing.T) {
	tests := []struct {
		name string
		body string
		want AccountType
	}{
		{name: "camel case key", body: `{"accountType":"personal","email":"ada@example.com"}`, want: AccountPersonal},
		{name: "legacy snake case key", body: `{"account_type":"business"}`, want: AccountBusiness},
		{name: "camel case wins", body: `{"account_type":"business","accountType":"personal"}`, want: AccountPersonal},
		{name: "missing", body: `{"email":"ada@example.com"}`, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req SignupRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.want, req.AccountType)
		})
	}
}

func TestSignupRequest_MarshalUsesCamelCaseDiscriminator(t *testing.T) {
	raw, err := json.Marshal(SignupRequest{AccountType: AccountPersonal, Email: "ada@example.com"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "personal", got["accountType"])
	assert.NotContains(t, got, "account_type")
}

func TestSignupRequest_UnmarshalKeepsOtherFields(t *testing.T) {
	var req SignupRequest
	require.NoError(t, json.Unmarshal([]byte(`{"accountType":"personal","first_name":"Ada","nin_number":"12345678901"}`), &req))
	assert.Equal(t, "Ada", req.FirstName)
	assert.Equal(t, "12345678901", req.NINNumber)
}
