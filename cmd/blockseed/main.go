// Command blockseed copies block source documents into the configured blob
// store. It is how the sql blob driver gets populated.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mind-engage/netdefense-quiz/internal/config"
	"github.com/mind-engage/netdefense-quiz/internal/db"
	"github.com/mind-engage/netdefense-quiz/internal/logger"
	"github.com/mind-engage/netdefense-quiz/internal/quiz"
	"github.com/mind-engage/netdefense-quiz/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		from     string
		validate bool
	)
	cmd := &cobra.Command{
		Use:   "blockseed",
		Short: "Load blockN.json files into the blob store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			lg, err := logger.New(cfg)
			if err != nil {
				return err
			}
			defer lg.Sync() //nolint:errcheck

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			bs, closeStore, err := storage.Open(ctx, storage.Options{
				Driver:   cfg.BlobDriver,
				BasePath: cfg.BlobBasePath,
				DBDriver: db.Driver(cfg.DBDriver),
				DBDSN:    cfg.DBDSN,
			})
			if err != nil {
				return fmt.Errorf("blob store: %w", err)
			}
			defer closeStore() //nolint:errcheck

			n, err := seed(ctx, bs, os.DirFS(from), validate, lg)
			if err != nil {
				return err
			}
			lg.Info("seed complete", zap.Int("blocks", n), zap.String("driver", cfg.BlobDriver))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "./db/questions", "directory holding block1.json .. block6.json")
	cmd.Flags().BoolVar(&validate, "validate", true, "run each block through the normalizer before storing it")
	return cmd
}

// seed stores every block file found in src and returns how many were
// stored. Missing files are skipped.
func seed(ctx context.Context, bs storage.BlobStore, src fs.FS, validate bool, lg *zap.Logger) (int, error) {
	stored := 0
	for _, id := range quiz.Blocks {
		name := fmt.Sprintf("block%d.json", id)
		raw, err := fs.ReadFile(src, name)
		if errors.Is(err, fs.ErrNotExist) {
			lg.Warn("block file missing", zap.Int("block_id", id), zap.String("file", name))
			continue
		}
		if err != nil {
			return stored, fmt.Errorf("read %s: %w", name, err)
		}
		if validate {
			body, err := quiz.Transform(id, raw)
			if err != nil {
				return stored, fmt.Errorf("%s: %w", name, err)
			}
			if env, ok := body.(*quiz.Envelope); ok {
				lg.Info("block normalized", zap.Int("block_id", id), zap.Int("questions", env.Meta.TotalQuestions))
			}
		}
		if _, err := bs.Put(ctx, quiz.BlockKey(id), bytes.NewReader(raw)); err != nil {
			return stored, fmt.Errorf("store block %d: %w", id, err)
		}
		stored++
	}
	return stored, nil
}
