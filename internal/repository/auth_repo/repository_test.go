package auth_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserBySessionQuery(t *testing.T) {
	sqlStr, args, err := userBySessionQuery("abc")
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT u.id, u.name, u.login, u.password_hash FROM sessions s JOIN users u ON s.user_id = u.id WHERE s.session_id = $1",
		sqlStr)
	assert.Equal(t, []interface{}{"abc"}, args)
}
