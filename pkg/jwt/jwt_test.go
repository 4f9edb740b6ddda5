package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/gestor-ventas-api/pkg/jwt"
)

var sub = pkgjwt.Subject{UserID: 7, Email: "ana@example.com", Role: "AUDITOR"}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate("s3cret", sub, pkgjwt.TypeAccess, "gestor-test", 10)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "AUDITOR", claims.Role)
	assert.Equal(t, pkgjwt.TypeAccess, claims.Type)
	assert.Equal(t, "7", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestTokensHaveDistinctIDs(t *testing.T) {
	a, err := pkgjwt.Generate("s3cret", sub, pkgjwt.TypeAccess, "", 10)
	require.NoError(t, err)
	b, err := pkgjwt.Generate("s3cret", sub, pkgjwt.TypeAccess, "", 10)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate("s3cret", sub, pkgjwt.TypeAccess, "", 10)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	tok, err := pkgjwt.Generate("s3cret", sub, pkgjwt.TypeAccess, "", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("s3cret", tok)
	assert.Error(t, err)
}

func TestParseOfType(t *testing.T) {
	tok, err := pkgjwt.Generate("s3cret", sub, pkgjwt.TypeRefresh, "", 10)
	require.NoError(t, err)

	_, err = pkgjwt.ParseOfType("s3cret", tok, pkgjwt.TypeAccess)
	assert.ErrorIs(t, err, pkgjwt.ErrWrongTokenType)

	claims, err := pkgjwt.ParseOfType("s3cret", tok, pkgjwt.TypeRefresh)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresWithin(20*time.Minute))
	assert.False(t, claims.ExpiresWithin(5*time.Minute))
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", sub, pkgjwt.TypeAccess, "", 10)
	assert.Error(t, err)
}
