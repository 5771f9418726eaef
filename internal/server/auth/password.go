// Package auth holds the password hashing primitives used by the login
// check and by the hash tool that seeds the credential table.
package auth

import (
	"crypto/rand"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of raw at the given cost. Costs below
// bcrypt.MinCost are raised to bcrypt.DefaultCost.
func HashPassword(raw string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether raw matches hash. The comparison is constant
// time; a malformed hash never matches.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}

// DefaultHashCost is the cost of hashes seeded into the credential table,
// the bcrypt.gensalt() default of the tooling that created the existing rows.
const DefaultHashCost = 12

// Decoy spends the same work as CheckPassword against a random hash of a
// fixed cost. It is used when the user does not exist so the response time
// does not reveal which usernames are present. The cost should match the
// cost of the stored hashes.
type Decoy struct {
	cost int
	once sync.Once
	hash string
}

// NewDecoy returns a Decoy hashing at cost. Costs outside the bcrypt range
// fall back to DefaultHashCost. The hash itself is built on first use.
func NewDecoy(cost int) *Decoy {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	return &Decoy{cost: cost}
}

func (d *Decoy) Cost() int {
	return d.cost
}

// Compare burns one bcrypt comparison of raw against the decoy hash.
func (d *Decoy) Compare(raw string) {
	d.once.Do(func() {
		b := make([]byte, 32)
		_, _ = rand.Read(b)
		h, err := bcrypt.GenerateFromPassword(b, d.cost)
		if err == nil {
			d.hash = string(h)
		}
	})
	if d.hash != "" {
		_ = CheckPassword(d.hash, raw)
	}
}
