// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

// psql builds queries with $N placeholders. Both backends accept them:
// PostgreSQL natively, sqlite3 as numbered parameter tokens.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildAccountUpdateQuery builds a partial UPDATE for the accounts table.
// Only non-nil fields of update are set; the row is returned via RETURNING
// so the caller receives the canonical post-update state.
//
// Returns [ErrBuildingSQLQuery] when no field is set: an empty update has no
// meaning and silently touching the row would be misleading.
func buildAccountUpdateQuery(update models.AccountUpdate) (string, []any, error) {
	b := psql.Update("accounts")

	set := false
	if update.Username != nil {
		b = b.Set("username", *update.Username)
		set = true
	}
	if update.Email != nil {
		b = b.Set("email", *update.Email)
		set = true
	}
	if update.CredentialHash != nil {
		b = b.Set("credential_hash", *update.CredentialHash)
		set = true
	}
	if update.Role != nil {
		b = b.Set("role", *update.Role)
		set = true
	}

	if !set {
		return "", nil, ErrBuildingSQLQuery
	}

	return b.
		Where(sq.Eq{"account_id": update.AccountID}).
		Suffix("RETURNING account_id, username, email, credential_hash, role, created_at").
		ToSql()
}

// buildCredentialUpdateQuery builds a partial UPDATE for the credentials
// table. last_modified_at is stamped unconditionally, even when the update
// carries no field values: every edit is a mutation as far as the audit
// trail is concerned.
func buildCredentialUpdateQuery(update models.CredentialUpdate) (string, []any, error) {
	b := psql.Update("credentials").
		Set("last_modified_at", sq.Expr("CURRENT_TIMESTAMP"))

	if update.SecretValue != nil {
		b = b.Set("secret_value", *update.SecretValue)
	}
	if update.Note != nil {
		b = b.Set("note", *update.Note)
	}

	return b.
		Where(sq.Eq{"credential_id": update.CredentialID}).
		Suffix("RETURNING credential_id, service_name, service_username, secret_value, created_at, last_modified_at, note, account_id").
		ToSql()
}

// buildTagUpdateQuery builds a partial UPDATE for the tags table.
func buildTagUpdateQuery(update models.TagUpdate) (string, []any, error) {
	b := psql.Update("tags")

	if update.Name == nil {
		return "", nil, ErrBuildingSQLQuery
	}
	b = b.Set("name", *update.Name)

	return b.
		Where(sq.Eq{"tag_id": update.TagID}).
		Suffix("RETURNING tag_id, name").
		ToSql()
}
