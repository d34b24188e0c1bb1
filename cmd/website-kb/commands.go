package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitcoach/website-kb/internal/httpapi"
	"github.com/fitcoach/website-kb/internal/kb"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the knowledge-base HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := setup(*configPath)
			if err != nil {
				return err
			}
			engine := httpapi.NewRouter(svc, cfg.Server.AdminToken)
			slog.Info("website-kb listening", slog.String("addr", cfg.Server.Addr))
			return engine.Run(cfg.Server.Addr)
		},
	}
}

func newReindexCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "rebuild the knowledge-base index from the current source text",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := setup(*configPath)
			if err != nil {
				return err
			}
			index, err := svc.BuildIndex(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("reindexed %d chunks at %s\n", index.Count, index.UpdatedAt.Format(time.RFC3339))
			return nil
		},
	}
}

func newSearchCommand(configPath *string) *cobra.Command {
	var topK int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "search the indexed knowledge base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := setup(*configPath)
			if err != nil {
				return err
			}
			results, err := svc.Search(context.Background(), args[0], topK)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("no results")
				return nil
			}
			for _, r := range results {
				fmt.Printf("#%d score=%.4f\n%s\n\n", r.ID, r.Score, r.Text)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&topK, "top-k", "k", kb.DefaultTopK, "number of results to return")
	return cmd
}

func newSourceCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source",
		Short: "manage the knowledge-base source document",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "print the current source text",
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, _, err := setup(*configPath)
				if err != nil {
					return err
				}
				text, err := svc.SourceText()
				if err != nil {
					return err
				}
				fmt.Println(text)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <file>",
			Short: "replace the source text from a file, or stdin when file is -",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, _, err := setup(*configPath)
				if err != nil {
					return err
				}
				var data []byte
				if args[0] == "-" {
					data, err = io.ReadAll(os.Stdin)
				} else {
					data, err = os.ReadFile(args[0])
				}
				if err != nil {
					return err
				}
				return svc.SaveSourceText(string(data))
			},
		},
	)
	return cmd
}
