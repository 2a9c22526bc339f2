package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/view"
	"github.com/goodnatureofminers/txdecoder7000-backend/internal/wire"
)

type config struct {
	Args struct {
		RawTx string `positional-arg-name:"raw-tx-hex" description:"hex encoded transaction"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	rendered, err := decode(cfg.Args.RawTx)
	if err != nil {
		logger.Fatal("failed to decode transaction", zap.Error(err))
	}

	fmt.Println(rendered)
}

// decode renders a hex encoded transaction as pretty printed JSON. Hex
// errors are reported apart from wire format errors.
func decode(rawHex string) (string, error) {
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return "", fmt.Errorf("hex decoding error: %w", err)
	}

	tx, err := wire.DecodeTransaction(raw)
	if err != nil {
		return "", err
	}

	rendered, err := json.MarshalIndent(view.NewTransaction(tx), "", "  ")
	if err != nil {
		return "", fmt.Errorf("render transaction: %w", err)
	}
	return string(rendered), nil
}
