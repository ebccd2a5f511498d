package cmd

import (
	"runtime"
	"testing"

	"github.com/MAPO-UPTC/mapo-cli/errors"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/MAPO-UPTC/mapo-cli/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saveSession persists a session with the given role in a temp config dir.
func saveSession(t *testing.T, role models.Role) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("user config dir isolation relies on XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	require.NoError(t, session.Save(&session.Session{
		AccessToken: "tok",
		TokenType:   "bearer",
		User:        models.User{ID: "u1", Name: "Ana", Role: role},
	}))
}

func TestRequireRoleAllowsPermittedRole(t *testing.T) {
	saveSession(t, models.RoleCashier)

	assert.NoError(t, requireRole(models.Role.CanManageInventory, "open bulk stock"))
}

func TestRequireRoleRejectsViewer(t *testing.T) {
	saveSession(t, models.RoleViewer)

	err := requireRole(models.Role.CanManageInventory, "open bulk stock")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeForbidden, errors.GetCode(err))
}

func TestRequireRoleCashierCannotManageSuppliers(t *testing.T) {
	saveSession(t, models.RoleCashier)

	err := requireRole(models.Role.CanManageUsers, "manage suppliers")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeForbidden, errors.GetCode(err))
}

func TestRequireRoleWithoutSession(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("user config dir isolation relies on XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	err := requireRole(models.Role.CanManageInventory, "open bulk stock")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSessionNotFound, errors.GetCode(err))
}
