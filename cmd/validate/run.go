package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validflow/pkg/logger"
	"github.com/dmitrymomot/validflow/pkg/result"
	"github.com/dmitrymomot/validflow/pkg/stream"
	"github.com/dmitrymomot/validflow/pkg/validator"
)

// ErrDocumentRejected is returned when the final result of a document is an error.
var ErrDocumentRejected = errors.New("validate: document rejected")

type runOptions struct {
	schema string
	input  string
}

func addRunCommand(parent *cobra.Command) {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Validate one document and stream the results",
		Long: `Validates a YAML document against a YAML schema.

Every time the result changes it is printed to stdout as one JSON line.
Fields marked remote answer after VALIDATE_REMOTE_DELAY and report an
inconclusive result until then. The exit code is 2 when the final result
is an error.`,
		Example: `  validate run --schema signup.yaml --input user.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}
	cmd.Flags().StringVar(&opts.schema, "schema", "", "path to the schema file")
	cmd.Flags().StringVar(&opts.input, "input", "", "path to the document file")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("input")

	parent.AddCommand(cmd)
}

func (o *runOptions) run(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg, cmd.ErrOrStderr())

	schemaData, err := os.ReadFile(o.schema)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	schema, err := parseSchema(schemaData)
	if err != nil {
		return err
	}
	v, err := schema.build(cfg.RemoteDelay)
	if err != nil {
		return err
	}

	docData, err := os.ReadFile(o.input)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	doc, err := parseDocument(docData)
	if err != nil {
		return err
	}

	ctx := context.WithValue(cmd.Context(), documentKey{}, o.input)
	enc := json.NewEncoder(cmd.OutOrStdout())
	final := result.Success()
	var writeErr error

	sub := stream.Subscribe(ctx, validator.Logged(log, filepath.Base(o.schema), v)(doc), stream.Observer[result.Result]{
		Next: func(r result.Result) {
			final = r
			if writeErr == nil {
				writeErr = enc.Encode(r)
			}
		},
	})
	if err := sub.Wait(); err != nil {
		return err
	}
	if writeErr != nil {
		return fmt.Errorf("write result: %w", writeErr)
	}

	for _, p := range final.Properties() {
		if !p.Result.IsSuccess() {
			log.DebugContext(ctx, "field not accepted",
				logger.Property(p.Name),
				logger.Severity(p.Result.Severity()),
			)
		}
	}
	log.InfoContext(ctx, "document validated", logger.Severity(final.Severity()))
	if final.IsError() {
		return ErrDocumentRejected
	}
	return nil
}
