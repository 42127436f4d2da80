package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mrrinformatica/inventario/pkg/cryptox"
	"github.com/mrrinformatica/inventario/pkg/idx"
	"github.com/mrrinformatica/inventario/pkg/jwtx"
)

// initSigningKey loads the Ed25519 signing key from cfg.KeyFile, or generates
// an ephemeral one when no path is configured. Ephemeral keys invalidate all
// sessions on restart, which is acceptable for dev and single-node setups.
func initSigningKey(cfg Config, logger *slog.Logger) (*jwtx.EdDSASigner, *jwtx.KeySet, error) {
	var (
		pemKey []byte
		err    error
	)

	switch {
	case cfg.KeyFile != "":
		pemKey, err = os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read signing key file: %w", err)
		}
		if _, err := cryptox.ParseEd25519Key(pemKey); err != nil {
			return nil, nil, fmt.Errorf("invalid signing key file %s: %w", cfg.KeyFile, err)
		}
		logger.Info("loaded signing key", "path", cfg.KeyFile)
	default:
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
		logger.Info("generated ephemeral signing key; sessions will not survive restarts")
	}

	kid := idx.New().String()
	signer, err := jwtx.NewEdDSASigner(kid, pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize signer: %w", err)
	}

	keys := jwtx.NewKeySet()
	keys.Add(kid, signer.Public())

	return signer, keys, nil
}
