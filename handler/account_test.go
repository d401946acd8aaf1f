package handler

import (
	"testing"

	"pouchesitaly/constants"
	"pouchesitaly/database"
	"pouchesitaly/helper"
	"pouchesitaly/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountDefaultsToEditor(t *testing.T) {
	setupTestDB(t)

	account, err := createAccount(model.CreateAccountInput{
		Username: "giulia",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.ROLE_EDITOR, account.Role)
	assert.True(t, account.Active)
	assert.True(t, helper.CheckPasswordHash("secret-pass", account.Password))
}

func TestCreateAccountRejectsDuplicatesAndBadRoles(t *testing.T) {
	setupTestDB(t)

	_, err := createAccount(model.CreateAccountInput{Username: "giulia", Password: "secret-pass"})
	require.NoError(t, err)

	_, err = createAccount(model.CreateAccountInput{Username: "giulia", Password: "other-pass"})
	assert.ErrorContains(t, err, "already exists")

	_, err = createAccount(model.CreateAccountInput{Username: "marco", Password: "x-pass-123", Role: "SUPERUSER"})
	assert.ErrorContains(t, err, "unknown role")
}

func TestRemoveAccountKeepsLastAdmin(t *testing.T) {
	setupTestDB(t)

	admin, err := createAccount(model.CreateAccountInput{Username: "admin", Password: "admin-pass", Role: constants.ROLE_ADMIN})
	require.NoError(t, err)
	editor, err := createAccount(model.CreateAccountInput{Username: "editor", Password: "editor-pass"})
	require.NoError(t, err)

	assert.ErrorContains(t, removeAccount(admin.ID), "last admin")
	assert.NoError(t, removeAccount(editor.ID))

	// with a second admin the first one becomes removable
	_, err = createAccount(model.CreateAccountInput{Username: "admin2", Password: "admin2-pass", Role: constants.ROLE_ADMIN})
	require.NoError(t, err)
	assert.NoError(t, removeAccount(admin.ID))
}

func TestSetAccountPassword(t *testing.T) {
	setupTestDB(t)

	account, err := createAccount(model.CreateAccountInput{Username: "giulia", Password: "old-pass-1"})
	require.NoError(t, err)

	require.NoError(t, setAccountPassword(model.SetPasswordInput{
		AccountId:   account.ID,
		NewPassword: "new-pass-1",
	}))

	var got model.Account
	require.NoError(t, database.DB.First(&got, account.ID).Error)
	assert.True(t, helper.CheckPasswordHash("new-pass-1", got.Password))
	assert.False(t, helper.CheckPasswordHash("old-pass-1", got.Password))

	err = setAccountPassword(model.SetPasswordInput{AccountId: 9999, NewPassword: "whatever-1"})
	assert.ErrorContains(t, err, "not found")
}

func TestTableAllowed(t *testing.T) {
	assert.True(t, tableAllowed("products"))
	assert.True(t, tableAllowed("orders"))
	assert.False(t, tableAllowed("accounts"))
	assert.False(t, tableAllowed("pg_catalog.pg_tables"))
	assert.False(t, tableAllowed(""))
}
