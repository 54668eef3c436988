package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmanager/pkg/utils"
)

const testSecret = "test-secret"

func TestIssueAndParseToken(t *testing.T) {
	token, err := utils.IssueToken(42, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := utils.ParseSubject(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseSubject_WrongSecret(t *testing.T) {
	token, err := utils.IssueToken(42, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseSubject(token, "another-secret")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestParseSubject_ExpiredToken(t *testing.T) {
	token, err := utils.IssueToken(42, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseSubject(token, testSecret)
	assert.ErrorIs(t, err, utils.ErrExpiredToken)
}

func TestParseSubject_Garbage(t *testing.T) {
	_, err := utils.ParseSubject("not.a.token", testSecret)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}
