package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct-pw", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "correct-pw"))
	assert.False(t, CheckPassword(hash, "wrong-pw"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashPassword_LowCostFallsBackToDefault(t *testing.T) {
	hash, err := HashPassword("pw", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestHashPassword_CostTooHigh(t *testing.T) {
	_, err := HashPassword("pw", bcrypt.MaxCost+1)
	assert.Error(t, err)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "pw"))
}

func TestDecoy_UsesConfiguredCost(t *testing.T) {
	d := NewDecoy(bcrypt.MinCost + 1)
	d.Compare("anything")

	require.NotEmpty(t, d.hash)
	cost, err := bcrypt.Cost([]byte(d.hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
	assert.False(t, CheckPassword(d.hash, "anything"))
}

func TestDecoy_CostMatchesStoredHashes(t *testing.T) {
	stored, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)
	storedCost, err := bcrypt.Cost([]byte(stored))
	require.NoError(t, err)

	d := NewDecoy(storedCost)
	d.Compare("pw")

	decoyCost, err := bcrypt.Cost([]byte(d.hash))
	require.NoError(t, err)
	assert.Equal(t, storedCost, decoyCost)
}

func TestNewDecoy_OutOfRangeCost(t *testing.T) {
	assert.Equal(t, DefaultHashCost, NewDecoy(0).Cost())
	assert.Equal(t, DefaultHashCost, NewDecoy(bcrypt.MaxCost+1).Cost())
	assert.Equal(t, 11, NewDecoy(11).Cost())
}
