package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func TestBuildAccountUpdateQuery(t *testing.T) {
	username := "alice2"
	email := "alice2@x.com"

	tests := []struct {
		name     string
		update   models.AccountUpdate
		wantSQL  []string
		skipSQL  []string
		wantArgs []any
		wantErr  error
	}{
		{
			name:     "single field",
			update:   models.AccountUpdate{AccountID: 7, Email: &email},
			wantSQL:  []string{"UPDATE accounts", "email = $1", "account_id = $2", "RETURNING"},
			skipSQL:  []string{"username", "credential_hash", "role = "},
			wantArgs: []any{email, int64(7)},
		},
		{
			name:     "two fields keep declaration order",
			update:   models.AccountUpdate{AccountID: 7, Username: &username, Email: &email},
			wantSQL:  []string{"username = $1", "email = $2", "account_id = $3"},
			wantArgs: []any{username, email, int64(7)},
		},
		{
			name:    "no fields",
			update:  models.AccountUpdate{AccountID: 7},
			wantErr: ErrBuildingSQLQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildAccountUpdateQuery(tt.update)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			for _, fragment := range tt.wantSQL {
				assert.Contains(t, query, fragment)
			}
			for _, fragment := range tt.skipSQL {
				assert.NotContains(t, query, fragment)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildCredentialUpdateQuery_AlwaysStamps(t *testing.T) {
	secret := "rotated"

	query, args, err := buildCredentialUpdateQuery(models.CredentialUpdate{CredentialID: 1, SecretValue: &secret})
	require.NoError(t, err)

	assert.Contains(t, query, "last_modified_at = CURRENT_TIMESTAMP")
	assert.Contains(t, query, "secret_value = $1")
	assert.Contains(t, query, "RETURNING")
	// the stamp is an SQL expression, not a bound argument
	assert.Equal(t, []any{secret, int64(1)}, args)
}

func TestBuildCredentialUpdateQuery_EmptyUpdateStillStamps(t *testing.T) {
	query, args, err := buildCredentialUpdateQuery(models.CredentialUpdate{CredentialID: 1})
	require.NoError(t, err)

	assert.Contains(t, query, "last_modified_at = CURRENT_TIMESTAMP")
	assert.False(t, strings.Contains(query, "secret_value = "))
	assert.False(t, strings.Contains(query, "note = "))
	assert.Equal(t, []any{int64(1)}, args)
}

func TestBuildTagUpdateQuery(t *testing.T) {
	name := "personal"

	query, args, err := buildTagUpdateQuery(models.TagUpdate{TagID: 3, Name: &name})
	require.NoError(t, err)
	assert.Contains(t, query, "UPDATE tags")
	assert.Contains(t, query, "name = $1")
	assert.Contains(t, query, "tag_id = $2")
	assert.Equal(t, []any{name, int64(3)}, args)

	_, _, err = buildTagUpdateQuery(models.TagUpdate{TagID: 3})
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}
