package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/argentum-labs/argentum/internal/application"
)

// BcryptHasher hashes passwords with bcrypt. The cost is fixed at
// construction; bcrypt encodes the cost and a fresh random salt into every
// hash, so Verify is self-contained.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher with the given work factor. Costs outside
// bcrypt's supported range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches hash. Malformed or foreign-format
// hashes compare as false rather than erroring.
func (h *BcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var _ application.PasswordHasher = (*BcryptHasher)(nil)
