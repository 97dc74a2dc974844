// Package invitegrantkey generates the ed25519 key pair behind invite grant
// signing and verification.
package invitegrantkey

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain/invite"
)

// Run generates an invite grant key pair and writes exports.
func Run(out io.Writer, reader io.Reader) error {
	if out == nil {
		return errors.New("output is required")
	}
	if reader == nil {
		reader = rand.Reader
	}
	publicKey, privateKey, err := ed25519.GenerateKey(reader)
	if err != nil {
		return fmt.Errorf("generate invite grant key: %w", err)
	}
	if _, err := fmt.Fprintf(out, "export %s=%s\n", invite.EnvInvitePrivateKey, base64.RawStdEncoding.EncodeToString(privateKey)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "export %s=%s\n", invite.EnvInvitePublicKey, base64.RawStdEncoding.EncodeToString(publicKey)); err != nil {
		return err
	}
	return nil
}
