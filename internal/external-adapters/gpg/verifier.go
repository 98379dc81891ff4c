// Package gpg provides GPG signature verification for downloaded feeds.
package gpg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
)

const armoredSigPrefix = "-----BEGIN PGP SIGNATURE---"

// Verifier checks detached GPG signatures of feed documents against an
// imported keyring. Keys can come from keyservers, a published KEYS file
// URL, or a local key file.
type Verifier struct {
	keyring    openpgp.EntityList
	httpClient *http.Client
}

// NewVerifier creates a new GPG verifier
func NewVerifier() *Verifier {
	return &Verifier{
		keyring: make(openpgp.EntityList, 0),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ImportKeys imports GPG keys by ID from public keyservers, trying each
// server until one delivers a key whose fingerprint matches the request.
func (v *Verifier) ImportKeys(ctx context.Context, keyIDs []string) error {
	if len(keyIDs) == 0 {
		return fmt.Errorf("no key IDs provided")
	}

	keyservers := []string{
		"https://keys.openpgp.org",
		"https://keyserver.ubuntu.com",
	}

	for _, keyID := range keyIDs {
		if keyID == "" {
			continue
		}

		var lastErr error
		imported := false
		for _, keyserver := range keyservers {
			urls := []string{
				fmt.Sprintf("%s/vks/v1/by-fingerprint/%s", keyserver, keyID),
				fmt.Sprintf("%s/pks/lookup?op=get&search=0x%s", keyserver, keyID),
			}
			for _, url := range urls {
				keys, err := v.fetchArmoredKeys(ctx, url)
				if err != nil {
					lastErr = err
					continue
				}
				if !fingerprintMatches(keys, keyID) {
					lastErr = fmt.Errorf("no key matching fingerprint %s in response", keyID)
					continue
				}
				v.keyring = append(v.keyring, keys...)
				imported = true
				break
			}
			if imported {
				break
			}
		}
		if !imported {
			return fmt.Errorf("failed to import key %s from all keyservers: %w", keyID, lastErr)
		}
	}

	return nil
}

// ImportKeysFromURL imports all GPG keys from a published KEYS file
func (v *Verifier) ImportKeysFromURL(ctx context.Context, keysURL string) error {
	keys, err := v.fetchArmoredKeys(ctx, keysURL)
	if err != nil {
		return fmt.Errorf("failed to import KEYS file: %w", err)
	}
	v.keyring = append(v.keyring, keys...)
	return nil
}

// ImportKeyFromFile imports a GPG key from a local file, trying armored
// format first and falling back to binary.
func (v *Verifier) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is user-provided for GPG key import
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}

	keys, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	if err != nil {
		keys, err = openpgp.ReadKeyRing(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}
	if len(keys) == 0 {
		return fmt.Errorf("no keys found in file")
	}

	v.keyring = append(v.keyring, keys...)
	return nil
}

// VerifySignature verifies a feed against a local detached signature file
func (v *Verifier) VerifySignature(_ context.Context, feedPath, sigPath string) error {
	//nolint:gosec // G304: sigPath is user-provided for verification
	sigData, err := os.ReadFile(sigPath)
	if err != nil {
		return fmt.Errorf("failed to read signature file: %w", err)
	}
	return v.verify(feedPath, sigData)
}

// VerifySignatureURL downloads a detached signature and verifies the feed
// against it.
func (v *Verifier) VerifySignatureURL(ctx context.Context, feedPath, sigURL string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", sigURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create signature request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download signature: %w", err)
	}
	//nolint:errcheck // Defer close
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("signature download failed with status %d", resp.StatusCode)
	}

	// Detached signatures are tiny; cap the read to keep a bad server from
	// streaming unbounded data.
	sigData, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024))
	if err != nil {
		return fmt.Errorf("failed to read signature: %w", err)
	}

	return v.verify(feedPath, sigData)
}

func (v *Verifier) verify(feedPath string, sigData []byte) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no GPG keys imported, import keys first")
	}
	if len(sigData) < 10 {
		return fmt.Errorf("signature too small to be a valid GPG signature")
	}

	//nolint:gosec // G304: feedPath is user-provided for verification
	feed, err := os.Open(feedPath)
	if err != nil {
		return fmt.Errorf("failed to open feed: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer feed.Close()

	sig := bytes.NewReader(sigData)
	if bytes.HasPrefix(sigData, []byte(armoredSigPrefix)) {
		_, err = openpgp.CheckArmoredDetachedSignature(v.keyring, feed, sig, nil)
	} else {
		_, err = openpgp.CheckDetachedSignature(v.keyring, feed, sig, nil)
	}
	if err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}

	return nil
}

func (v *Verifier) fetchArmoredKeys(ctx context.Context, url string) (openpgp.EntityList, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("key download failed: %w", err)
	}
	//nolint:errcheck // Defer close
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("key download failed with status %d", resp.StatusCode)
	}

	// Some projects publish large keyring files; 10MB covers all of them.
	keys, err := openpgp.ReadArmoredKeyRing(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("failed to parse keys: %w", err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("no keys found in response")
	}
	return keys, nil
}

func fingerprintMatches(keys openpgp.EntityList, keyID string) bool {
	for _, key := range keys {
		fingerprint := fmt.Sprintf("%X", key.PrimaryKey.Fingerprint)
		if fingerprint == keyID {
			return true
		}
		// Short form: the last 16 hex chars of the fingerprint
		if len(fingerprint) >= 16 && fingerprint[len(fingerprint)-16:] == keyID {
			return true
		}
	}
	return false
}
