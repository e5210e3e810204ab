// Command hdpverify verifies fixture files containing a nested MMR header
// inclusion proof and an MPT account (and optional storage) proof, per
// compose.Composer.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/HerodotusDev/hdp-verifier-go/compose"
	"github.com/HerodotusDev/hdp-verifier-go/digest"
	"github.com/HerodotusDev/hdp-verifier-go/fixture"
	"github.com/HerodotusDev/hdp-verifier-go/header"
)

func main() {
	app := &cli.App{
		Name:  "hdpverify",
		Usage: "verify nested MMR/MPT inclusion proof fixtures",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a TOML config file"},
			&cli.StringFlag{Name: "hash-domain", Usage: "override config's hash_domain (keccak or field)"},
		},
		Commands: []*cli.Command{
			verifyCommand(),
			validateFixtureCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*Config, *zap.Logger, error) {
	cfg, err := LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if domain := c.String("hash-domain"); domain != "" {
		cfg.HashDomain = domain
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, logger, nil
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return cfg.Build()
}

func hasherFor(domain string) digest.Hasher {
	if domain == "field" {
		return digest.NewFieldHasher()
	}
	return digest.NewKeccakHasher()
}

func codecFor(domain string) header.Codec {
	if domain == "field" {
		return header.FieldCodec{}
	}
	return header.RLPCodec{}
}

// loadFixture reads a JSON fixture for the keccak domain or a CBOR fixture
// for the field domain; the wire format and the hash domain travel
// together, since a field-domain deployment has no RLP header to decode.
func loadFixture(domain, path string) (fixture.Record, error) {
	if domain == "field" {
		return fixture.LoadCBOR(path)
	}
	loader, err := fixture.NewLoader()
	if err != nil {
		return fixture.Record{}, err
	}
	return loader.Load(path)
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "cryptographically verify every account (and storage) proof in a fixture",
		ArgsUsage: "<fixture.json>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("hdpverify verify: missing fixture path", 2)
			}

			cfg, logger, err := loadConfig(c)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			defer logger.Sync()

			rec, err := loadFixture(cfg.HashDomain, c.Args().First())
			if err != nil {
				return cli.Exit(fmt.Sprintf("load fixture: %v", err), 1)
			}
			logger = logger.With(zap.String("run_id", rec.RunID.String()))

			hasher := hasherFor(cfg.HashDomain)
			composer := compose.Composer{Hasher: hasher, Codec: codecFor(cfg.HashDomain)}

			commitment := rec.Commitment()
			headers := rec.HeaderEntries()
			headerIdx := rec.DesignatedHeaderIndex()

			allOK := true
			for i := range rec.Accounts {
				account := rec.AccountCheck(i)
				storages := rec.StorageChecks(i)

				var storagePtr *compose.StorageCheck
				if len(storages) > 0 {
					storagePtr = &storages[0]
				}
				for j := 1; j < len(storages); j++ {
					ok, err := composer.Compose(commitment, headers, headerIdx, account, &storages[j])
					if err != nil || !ok {
						logger.Error("storage verification failed", zap.Int("account_index", i), zap.Int("storage_index", j), zap.Error(err))
						allOK = false
					}
				}

				ok, err := composer.Compose(commitment, headers, headerIdx, account, storagePtr)
				if err != nil {
					logger.Error("verification error", zap.Int("account_index", i), zap.Error(err))
					allOK = false
					continue
				}
				logger.Info("account verdict", zap.Int("account_index", i), zap.Bool("ok", ok))
				allOK = allOK && ok
			}

			if !allOK {
				return cli.Exit("verification failed", 1)
			}
			fmt.Println("OK")
			return nil
		},
	}
}

func validateFixtureCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate-fixture",
		Usage:     "validate a fixture's wire format without cryptographic verification",
		ArgsUsage: "<fixture.json>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("hdpverify validate-fixture: missing fixture path", 2)
			}

			loader, err := fixture.NewLoader()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			rec, err := loader.Load(c.Args().First())
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid fixture: %v", err), 1)
			}

			fmt.Printf("run_id=%s headers=%d accounts=%d storages=%d\n",
				rec.RunID, len(rec.Headers), len(rec.Accounts), len(rec.Storages))
			return nil
		},
	}
}
