// Package main provides a one-shot utility for invite grant key generation.
//
// It emits the asymmetric keypair used to sign and verify guest invite
// grants.
package main

import (
	"os"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/config"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/tools/invitegrantkey"
)

func main() {
	if err := invitegrantkey.Run(os.Stdout, nil); err != nil {
		config.Exitf("generate invite grant key: %v", err)
	}
}
