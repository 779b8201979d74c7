// internal/round/token.go
//
// Stateless hidden-target rounds.
//
// A round token is an HS256 JWT whose "tgt" claim holds the target word sealed
// with XChaCha20-Poly1305, so the client can carry the round without being able
// to read the answer. The server keeps no per-round state; any replica holding
// the same secret can evaluate guesses for any round.

package round

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/wordventure/word-api/internal/config"
)

const issuer = "wordventure"

// ErrInvalidToken is returned for malformed, tampered or expired tokens.
var ErrInvalidToken = errors.New("round: invalid token")

// Claims carried by a round token.
type Claims struct {
	Sealed string `json:"tgt"`
	Length int    `json:"len"`
	jwt.RegisteredClaims
}

// Round is a freshly issued round.
type Round struct {
	ID        string    `json:"roundId"`
	Token     string    `json:"token"`
	Length    int       `json:"length"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Issuer signs and opens round tokens.
type Issuer struct {
	signKey []byte
	aead    cipher.AEAD
	ttl     time.Duration
	now     func() time.Time
}

// NewIssuer derives independent signing and sealing keys from secret.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	signKey, err := config.DeriveKey(secret, "round/sign", 32)
	if err != nil {
		return nil, err
	}
	sealKey, err := config.DeriveKey(secret, "round/seal", chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(sealKey)
	if err != nil {
		return nil, fmt.Errorf("round: cipher: %w", err)
	}
	return &Issuer{signKey: signKey, aead: aead, ttl: ttl, now: time.Now}, nil
}

// Issue creates a token for target.
func (i *Issuer) Issue(target string) (Round, error) {
	id := uuid.NewString()
	sealed, err := i.seal(id, target)
	if err != nil {
		return Round{}, err
	}

	now := i.now()
	exp := now.Add(i.ttl)
	length := len([]rune(target))
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Sealed: sealed,
		Length: length,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString(i.signKey)
	if err != nil {
		return Round{}, fmt.Errorf("round: sign: %w", err)
	}
	return Round{ID: id, Token: ss, Length: length, ExpiresAt: exp.UTC().Truncate(time.Second)}, nil
}

// Open verifies token and returns the round id and the hidden target.
func (i *Issuer) Open(token string) (id, target string, err error) {
	var c Claims
	_, err = jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return i.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	target, err = i.open(c.ID, c.Sealed)
	if err != nil {
		return "", "", err
	}
	return c.ID, target, nil
}

// seal encrypts target; the round id is bound as associated data so a sealed
// target cannot be moved into another round's token.
func (i *Issuer) seal(id, target string) (string, error) {
	nonce := make([]byte, i.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("round: nonce: %w", err)
	}
	out := i.aead.Seal(nonce, nonce, []byte(target), []byte(id))
	return base64.RawURLEncoding.EncodeToString(out), nil
}

func (i *Issuer) open(id, sealed string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil || len(raw) < i.aead.NonceSize() {
		return "", fmt.Errorf("%w: bad target", ErrInvalidToken)
	}
	ns := i.aead.NonceSize()
	plain, err := i.aead.Open(nil, raw[:ns], raw[ns:], []byte(id))
	if err != nil {
		return "", fmt.Errorf("%w: bad target", ErrInvalidToken)
	}
	return string(plain), nil
}
