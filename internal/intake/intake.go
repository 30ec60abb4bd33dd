// Package intake imports error records captured by the tutoring
// frontend. Input is a JSON batch validated against a schema before
// anything touches the database, so a malformed export never half-lands.
package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/matuskalis/speaksharp-engine/internal/store"
)

// batchSchema describes the expected shape of an error-record export.
const batchSchema = `{
	"type": "object",
	"required": ["learner_id", "errors"],
	"properties": {
		"learner_id": {"type": "string", "minLength": 1},
		"errors": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["error_type", "user_sentence", "corrected_sentence", "explanation"],
				"properties": {
					"error_type": {"type": "string", "minLength": 1},
					"user_sentence": {"type": "string", "minLength": 1},
					"corrected_sentence": {"type": "string", "minLength": 1},
					"explanation": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(batchSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://error-batch.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Batch is one error-record export from the frontend.
type Batch struct {
	LearnerID string       `json:"learner_id"`
	Errors    []BatchEntry `json:"errors"`
}

// BatchEntry is a single captured learner error.
type BatchEntry struct {
	ErrorType         string `json:"error_type"`
	UserSentence      string `json:"user_sentence"`
	CorrectedSentence string `json:"corrected_sentence"`
	Explanation       string `json:"explanation"`
}

// Importer loads validated error batches into the error log.
type Importer struct {
	errors store.ErrorRepo
	log    *slog.Logger
}

// NewImporter creates an importer over the given repository.
func NewImporter(errors store.ErrorRepo, log *slog.Logger) *Importer {
	if log == nil {
		log = slog.Default()
	}
	return &Importer{errors: errors, log: log}
}

// Import reads one JSON batch from r, validates it, and inserts every
// entry. Validation failures reject the whole batch before any insert.
func (im *Importer) Import(ctx context.Context, r io.Reader) ([]*store.ErrorRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", store.ErrInvalidInput, err)
	}
	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile batch schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidInput, err)
	}

	var batch Batch
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}

	created := make([]*store.ErrorRecord, 0, len(batch.Errors))
	for _, e := range batch.Errors {
		rec, err := im.errors.Create(ctx, &store.ErrorRecord{
			LearnerID:         batch.LearnerID,
			ErrorType:         e.ErrorType,
			UserSentence:      e.UserSentence,
			CorrectedSentence: e.CorrectedSentence,
			Explanation:       e.Explanation,
		})
		if err != nil {
			return created, fmt.Errorf("insert error record: %w", err)
		}
		created = append(created, rec)
	}

	im.log.Info("imported error batch",
		"learner_id", batch.LearnerID,
		"count", len(created))
	return created, nil
}
