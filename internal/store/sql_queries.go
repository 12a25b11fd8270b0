// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createAccount = `INSERT INTO accounts (username, email, credential_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING account_id, username, email, credential_hash, role, created_at;`

	findAccountByID = `SELECT account_id, username, email, credential_hash, role, created_at
    FROM accounts
    WHERE account_id = $1;`

	findAccountByEmail = `SELECT account_id, username, email, credential_hash, role, created_at
    FROM accounts
    WHERE email = $1;`

	deleteAccount = `DELETE FROM accounts
    WHERE account_id = $1
    RETURNING account_id, username, email, credential_hash, role, created_at;`

	createSession = `INSERT INTO sessions (account_id, source_address)
    VALUES ($1, $2)
    RETURNING session_id, account_id, started_at, ended_at, source_address;`

	findSessionByID = `SELECT session_id, account_id, started_at, ended_at, source_address
    FROM sessions
    WHERE session_id = $1;`

	closeSession = `UPDATE sessions
    SET ended_at = CURRENT_TIMESTAMP
    WHERE session_id = $1 AND ended_at IS NULL
    RETURNING session_id, account_id, started_at, ended_at, source_address;`

	createCredential = `INSERT INTO credentials (service_name, service_username, secret_value, note, account_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING credential_id, service_name, service_username, secret_value, created_at, last_modified_at, note, account_id;`

	findCredentialByID = `SELECT credential_id, service_name, service_username, secret_value, created_at, last_modified_at, note, account_id
    FROM credentials
    WHERE credential_id = $1;`

	findCredentialsByAccount = `SELECT credential_id, service_name, service_username, secret_value, created_at, last_modified_at, note, account_id
    FROM credentials
    WHERE account_id = $1;`

	deleteCredential = `DELETE FROM credentials
    WHERE credential_id = $1;`

	deleteCredentialLinks = `DELETE FROM credential_tags
    WHERE credential_id = $1;`

	createTag = `INSERT INTO tags (name)
    VALUES ($1)
    RETURNING tag_id, name;`

	findTagByID = `SELECT tag_id, name
    FROM tags
    WHERE tag_id = $1;`

	deleteTag = `DELETE FROM tags
    WHERE tag_id = $1
    RETURNING tag_id, name;`

	createTagLink = `INSERT INTO credential_tags (credential_id, tag_id)
    VALUES ($1, $2)
    RETURNING link_id, credential_id, tag_id;`

	deleteTagLink = `DELETE FROM credential_tags
    WHERE link_id = $1
    RETURNING link_id, credential_id, tag_id;`
)
