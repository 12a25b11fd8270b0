// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const testHashKey = "test-hash-key"

func newTestAccountService(accounts *mockAccountRepository, sessions *mockSessionRepository) *accountService {
	return &accountService{
		accountRepository: accounts,
		sessionRepository: sessions,
		hashKey:           testHashKey,
		logger:            logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAccountService_Register_HashesCredential(t *testing.T) {
	var persisted models.Account
	accounts := &mockAccountRepository{
		createFn: func(_ context.Context, account models.Account) (models.Account, error) {
			persisted = account
			account.AccountID = 1
			return account, nil
		},
	}
	svc := newTestAccountService(accounts, &mockSessionRepository{})

	registered, err := svc.Register(context.Background(), models.Account{
		Username:       "alice",
		Email:          "alice@x.com",
		CredentialHash: "plain-credential",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.AccountID)
	assert.NotEqual(t, "plain-credential", persisted.CredentialHash)
	assert.Equal(t, utils.HashString("plain-credential", testHashKey), persisted.CredentialHash)
	assert.Equal(t, "user", persisted.Role)
}

func TestAccountService_Register_EmptyFields(t *testing.T) {
	svc := newTestAccountService(&mockAccountRepository{}, &mockSessionRepository{})

	for _, account := range []models.Account{
		{Email: "a@x.com", CredentialHash: "c"},
		{Username: "alice", CredentialHash: "c"},
		{Username: "alice", Email: "a@x.com"},
	} {
		_, err := svc.Register(context.Background(), account)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAccountService_Register_DuplicateKey(t *testing.T) {
	accounts := &mockAccountRepository{
		createFn: func(_ context.Context, _ models.Account) (models.Account, error) {
			return models.Account{}, store.ErrDuplicateKey
		},
	}
	svc := newTestAccountService(accounts, &mockSessionRepository{})

	_, err := svc.Register(context.Background(), models.Account{
		Username:       "alice",
		Email:          "taken@x.com",
		CredentialHash: "c",
	})

	require.ErrorIs(t, err, store.ErrDuplicateKey)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAccountService_Authenticate_Success(t *testing.T) {
	accounts := &mockAccountRepository{
		getByEmailFn: func(_ context.Context, email string) (models.Account, error) {
			return models.Account{
				AccountID:      7,
				Email:          email,
				CredentialHash: utils.HashString("correct", testHashKey),
			}, nil
		},
	}
	sessions := &mockSessionRepository{
		createFn: func(_ context.Context, accountID int64, sourceAddress string) (models.Session, error) {
			assert.Equal(t, int64(7), accountID)
			assert.Equal(t, "127.0.0.1", sourceAddress)
			return models.Session{SessionID: 100, AccountID: accountID, SourceAddress: sourceAddress}, nil
		},
	}
	svc := newTestAccountService(accounts, sessions)

	session, err := svc.Authenticate(context.Background(), "alice@x.com", "correct", "127.0.0.1")

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, int64(100), session.SessionID)
}

func TestAccountService_Authenticate_UnknownEmail(t *testing.T) {
	accounts := &mockAccountRepository{
		getByEmailFn: func(_ context.Context, _ string) (models.Account, error) {
			return models.Account{}, store.ErrNotFound
		},
	}
	svc := newTestAccountService(accounts, &mockSessionRepository{})

	session, err := svc.Authenticate(context.Background(), "ghost@x.com", "anything", "")

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestAccountService_Authenticate_WrongCredential(t *testing.T) {
	accounts := &mockAccountRepository{
		getByEmailFn: func(_ context.Context, email string) (models.Account, error) {
			return models.Account{
				AccountID:      7,
				Email:          email,
				CredentialHash: utils.HashString("correct", testHashKey),
			}, nil
		},
	}
	sessionOpened := false
	sessions := &mockSessionRepository{
		createFn: func(_ context.Context, _ int64, _ string) (models.Session, error) {
			sessionOpened = true
			return models.Session{}, nil
		},
	}
	svc := newTestAccountService(accounts, sessions)

	session, err := svc.Authenticate(context.Background(), "alice@x.com", "wrong", "")

	// a wrong credential is indistinguishable from an unknown email
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.False(t, sessionOpened)
}

func TestAccountService_Authenticate_EmptyInput(t *testing.T) {
	svc := newTestAccountService(&mockAccountRepository{}, &mockSessionRepository{})

	_, err := svc.Authenticate(context.Background(), "", "credential", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Authenticate(context.Background(), "alice@x.com", "", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// Lookups, Update, Delete
// ─────────────────────────────────────────────

func TestAccountService_GetByID_Absent(t *testing.T) {
	accounts := &mockAccountRepository{
		getByIDFn: func(_ context.Context, _ int64) (models.Account, error) {
			return models.Account{}, store.ErrNotFound
		},
	}
	svc := newTestAccountService(accounts, &mockSessionRepository{})

	account, err := svc.GetByID(context.Background(), 404)

	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestAccountService_GetByEmail_StorageError(t *testing.T) {
	accounts := &mockAccountRepository{
		getByEmailFn: func(_ context.Context, _ string) (models.Account, error) {
			return models.Account{}, errStorage
		},
	}
	svc := newTestAccountService(accounts, &mockSessionRepository{})

	_, err := svc.GetByEmail(context.Background(), "alice@x.com")

	require.ErrorIs(t, err, errStorage)
}

func TestAccountService_Update_HashesNewCredential(t *testing.T) {
	var received models.AccountUpdate
	accounts := &mockAccountRepository{
		updateFn: func(_ context.Context, update models.AccountUpdate) (models.Account, error) {
			received = update
			return models.Account{AccountID: update.AccountID}, nil
		},
	}
	svc := newTestAccountService(accounts, &mockSessionRepository{})

	plain := "rotated-credential"
	updated, err := svc.Update(context.Background(), models.AccountUpdate{AccountID: 7, CredentialHash: &plain})

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, received.CredentialHash)
	assert.Equal(t, utils.HashString("rotated-credential", testHashKey), *received.CredentialHash)
}

func TestAccountService_Update_Absent(t *testing.T) {
	accounts := &mockAccountRepository{
		updateFn: func(_ context.Context, _ models.AccountUpdate) (models.Account, error) {
			return models.Account{}, store.ErrNotFound
		},
	}
	svc := newTestAccountService(accounts, &mockSessionRepository{})

	email := "new@x.com"
	account, err := svc.Update(context.Background(), models.AccountUpdate{AccountID: 404, Email: &email})

	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestAccountService_Update_NoFields(t *testing.T) {
	svc := newTestAccountService(&mockAccountRepository{}, &mockSessionRepository{})

	_, err := svc.Update(context.Background(), models.AccountUpdate{AccountID: 7})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAccountService_Delete_Absent(t *testing.T) {
	accounts := &mockAccountRepository{
		deleteFn: func(_ context.Context, _ int64) (models.Account, error) {
			return models.Account{}, store.ErrNotFound
		},
	}
	svc := newTestAccountService(accounts, &mockSessionRepository{})

	account, err := svc.Delete(context.Background(), 404)

	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestAccountService_Delete_ReturnsSnapshot(t *testing.T) {
	accounts := &mockAccountRepository{
		deleteFn: func(_ context.Context, accountID int64) (models.Account, error) {
			return models.Account{AccountID: accountID, Username: "bob"}, nil
		},
	}
	svc := newTestAccountService(accounts, &mockSessionRepository{})

	account, err := svc.Delete(context.Background(), 5)

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "bob", account.Username)
}
