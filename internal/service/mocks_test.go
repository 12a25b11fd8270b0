package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// Mocks: store repositories
// ─────────────────────────────────────────────

type mockAccountRepository struct {
	createFn     func(ctx context.Context, account models.Account) (models.Account, error)
	getByIDFn    func(ctx context.Context, accountID int64) (models.Account, error)
	getByEmailFn func(ctx context.Context, email string) (models.Account, error)
	updateFn     func(ctx context.Context, update models.AccountUpdate) (models.Account, error)
	deleteFn     func(ctx context.Context, accountID int64) (models.Account, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return account, nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, accountID int64) (models.Account, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, accountID)
	}
	return models.Account{AccountID: accountID}, nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return models.Account{Email: email}, nil
}

func (m *mockAccountRepository) Update(ctx context.Context, update models.AccountUpdate) (models.Account, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.Account{AccountID: update.AccountID}, nil
}

func (m *mockAccountRepository) Delete(ctx context.Context, accountID int64) (models.Account, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, accountID)
	}
	return models.Account{AccountID: accountID}, nil
}

type mockSessionRepository struct {
	createFn  func(ctx context.Context, accountID int64, sourceAddress string) (models.Session, error)
	getByIDFn func(ctx context.Context, sessionID int64) (models.Session, error)
	closeFn   func(ctx context.Context, sessionID int64) (models.Session, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, accountID int64, sourceAddress string) (models.Session, error) {
	if m.createFn != nil {
		return m.createFn(ctx, accountID, sourceAddress)
	}
	return models.Session{AccountID: accountID, SourceAddress: sourceAddress}, nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, sessionID int64) (models.Session, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, sessionID)
	}
	return models.Session{SessionID: sessionID}, nil
}

func (m *mockSessionRepository) Close(ctx context.Context, sessionID int64) (models.Session, error) {
	if m.closeFn != nil {
		return m.closeFn(ctx, sessionID)
	}
	return models.Session{SessionID: sessionID}, nil
}

type mockCredentialRepository struct {
	createFn          func(ctx context.Context, credential models.StoredCredential) (models.StoredCredential, error)
	getByIDFn         func(ctx context.Context, credentialID int64) (models.StoredCredential, error)
	listByAccountFn   func(ctx context.Context, accountID int64) ([]models.StoredCredential, error)
	updateFn          func(ctx context.Context, update models.CredentialUpdate) (models.StoredCredential, error)
	deleteFn          func(ctx context.Context, credentialID int64) error
	deleteWithLinksFn func(ctx context.Context, credentialID int64) error
}

func (m *mockCredentialRepository) Create(ctx context.Context, credential models.StoredCredential) (models.StoredCredential, error) {
	if m.createFn != nil {
		return m.createFn(ctx, credential)
	}
	return credential, nil
}

func (m *mockCredentialRepository) GetByID(ctx context.Context, credentialID int64) (models.StoredCredential, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, credentialID)
	}
	return models.StoredCredential{CredentialID: credentialID}, nil
}

func (m *mockCredentialRepository) ListByAccount(ctx context.Context, accountID int64) ([]models.StoredCredential, error) {
	if m.listByAccountFn != nil {
		return m.listByAccountFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockCredentialRepository) Update(ctx context.Context, update models.CredentialUpdate) (models.StoredCredential, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.StoredCredential{CredentialID: update.CredentialID}, nil
}

func (m *mockCredentialRepository) Delete(ctx context.Context, credentialID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, credentialID)
	}
	return nil
}

func (m *mockCredentialRepository) DeleteWithLinks(ctx context.Context, credentialID int64) error {
	if m.deleteWithLinksFn != nil {
		return m.deleteWithLinksFn(ctx, credentialID)
	}
	return nil
}

type mockTagRepository struct {
	createFn  func(ctx context.Context, name string) (models.Tag, error)
	getByIDFn func(ctx context.Context, tagID int64) (models.Tag, error)
	updateFn  func(ctx context.Context, update models.TagUpdate) (models.Tag, error)
	deleteFn  func(ctx context.Context, tagID int64) (models.Tag, error)
}

func (m *mockTagRepository) Create(ctx context.Context, name string) (models.Tag, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name)
	}
	return models.Tag{Name: name}, nil
}

func (m *mockTagRepository) GetByID(ctx context.Context, tagID int64) (models.Tag, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, tagID)
	}
	return models.Tag{TagID: tagID}, nil
}

func (m *mockTagRepository) Update(ctx context.Context, update models.TagUpdate) (models.Tag, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.Tag{TagID: update.TagID}, nil
}

func (m *mockTagRepository) Delete(ctx context.Context, tagID int64) (models.Tag, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tagID)
	}
	return models.Tag{TagID: tagID}, nil
}

type mockTagLinkRepository struct {
	createFn func(ctx context.Context, credentialID, tagID int64) (models.CredentialTagLink, error)
	deleteFn func(ctx context.Context, linkID int64) (models.CredentialTagLink, error)
}

func (m *mockTagLinkRepository) Create(ctx context.Context, credentialID, tagID int64) (models.CredentialTagLink, error) {
	if m.createFn != nil {
		return m.createFn(ctx, credentialID, tagID)
	}
	return models.CredentialTagLink{CredentialID: credentialID, TagID: tagID}, nil
}

func (m *mockTagLinkRepository) Delete(ctx context.Context, linkID int64) (models.CredentialTagLink, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, linkID)
	}
	return models.CredentialTagLink{LinkID: linkID}, nil
}

var errStorage = errors.New("storage error")
