// Package credential encrypts saved connection passwords at rest.
//
// Tokens are "<hex iv>:<hex ciphertext>" where the ciphertext is AES-256-CBC over the PKCS#7 padded plaintext.  The
// IV is drawn fresh from crypto/rand on every call, so encrypting the same password twice yields different tokens.
// A Cipher holds only its key and is safe for concurrent use.
package credential

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/c2fo/webftp"
)

// KeySize is the required key length in bytes.
const KeySize = 32

const separator = ":"

// Cipher encrypts and decrypts credential tokens.
type Cipher struct {
	key  []byte
	rand io.Reader
}

// New returns a Cipher for key.  The key is used as raw bytes, so a 32 character ASCII string is a valid key.
func New(key string) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be exactly %d bytes, got %d", webftp.ErrConfiguration, KeySize, len(key))
	}
	return &Cipher{key: []byte(key), rand: rand.Reader}, nil
}

// Encrypt returns a token for plaintext.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	block, err := c.block()
	if err != nil {
		return "", err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return hex.EncodeToString(iv) + separator + hex.EncodeToString(out), nil
}

// Decrypt returns the plaintext for a token produced by Encrypt.
func (c *Cipher) Decrypt(token string) (string, error) {
	block, err := c.block()
	if err != nil {
		return "", err
	}

	ivHex, ctHex, ok := strings.Cut(token, separator)
	if !ok {
		return "", fmt.Errorf("%w: missing separator", webftp.ErrFormat)
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return "", fmt.Errorf("%w: iv: %w", webftp.ErrFormat, err)
	}
	ct, err := hex.DecodeString(ctHex)
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext: %w", webftp.ErrFormat, err)
	}
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: iv must be %d bytes", webftp.ErrFormat, aes.BlockSize)
	}
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not a multiple of the block size", webftp.ErrFormat)
	}

	out := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ct)

	plain, err := unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func (c *Cipher) block() (cipher.Block, error) {
	if c == nil || len(c.key) != KeySize {
		return nil, webftp.ErrConfiguration
	}
	return aes.NewCipher(c.key)
}

func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

// unpad fails with ErrFormat on bad padding, which is also what a wrong key usually looks like.
func unpad(b []byte, size int) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, fmt.Errorf("%w: bad padding", webftp.ErrFormat)
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, fmt.Errorf("%w: bad padding", webftp.ErrFormat)
		}
	}
	return b[:len(b)-n], nil
}
