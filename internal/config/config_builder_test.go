package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultDBDriver, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultCredentialHashKey, cfg.App.CredentialHashKey)
}

func TestBuild_EarlierSourceWinsForNonZeroFields(t *testing.T) {
	// mergo.Merge keeps already-set fields, so the first config in the
	// list that sets a field wins.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&VaultConfig{Storage: Storage{DB: DB{DSN: "first.db"}}},
		&VaultConfig{Storage: Storage{DB: DB{DSN: "second.db", Driver: "pgx"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "first.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
}

func TestBuild_RejectsUnknownDriver(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&VaultConfig{Storage: Storage{DB: DB{Driver: "oracle", DSN: "x"}}},
	)

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_RejectsEmptyDSNForPostgres(t *testing.T) {
	// a pgx driver has no usable default DSN
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&VaultConfig{Storage: Storage{DB: DB{Driver: "pgx"}}},
	)

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	require.Error(t, err)
}
