package client

import (
	"storefront-checkout/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDBClientSqlite(t *testing.T) {
	db, err := InitDBClient("file::memory:?cache=shared")
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&model.NotificationLog{}))
}
