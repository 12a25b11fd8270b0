package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Services struct {
	Accounts    AccountService
	Sessions    SessionService
	Credentials CredentialService
	Tags        TagService
	TagLinks    TagLinkService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		Accounts:    NewAccountService(storages.Accounts, storages.Sessions, cfg, logger),
		Sessions:    NewSessionService(storages.Sessions, storages.Accounts, logger),
		Credentials: NewCredentialService(storages.Credentials, storages.Accounts, logger),
		Tags:        NewTagService(storages.Tags, logger),
		TagLinks:    NewTagLinkService(storages.TagLinks, storages.Credentials, storages.Tags, logger),
	}
}
