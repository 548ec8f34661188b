package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	"github.com/mind-engage/netdefense-quiz/internal/storage"
)

// Blocks are the block ids served by the API.
var Blocks = []int{1, 2, 3, 4, 5, 6}

const (
	sourceAWSAcademy = "AWS Academy"
	formatVersion    = "1.0"
)

// format describes a block whose source document is not canonical.
type format struct {
	defaultTopic string
	flatten      func(doc gjson.Result) []Question
}

// Blocks 1-4 have no entry and are served as stored.
var formats = map[int]format{
	5: {defaultTopic: "AWS Academy Cloud Foundation", flatten: flattenModules},
	6: {defaultTopic: "AWS Academy Cloud Foundations Quiz", flatten: flattenQuestions},
}

// Source is the read side of the blob store.
type Source interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

type Dispatcher struct {
	src Source
}

func NewDispatcher(src Source) *Dispatcher { return &Dispatcher{src: src} }

func ValidBlock(id int) bool { return id >= 1 && id <= len(Blocks) }

// BlockKey is the storage key of a block's source document.
func BlockKey(id int) string { return fmt.Sprintf("questions/block%d.json", id) }

// Questions returns the response body for a block: the stored document for
// canonical blocks, an *Envelope otherwise. The result is built fresh on
// every call.
func (d *Dispatcher) Questions(ctx context.Context, blockID int) (any, error) {
	if !ValidBlock(blockID) {
		return nil, newError(ErrNotFound, "Block not found")
	}
	raw, err := d.read(ctx, blockID)
	if err != nil {
		return nil, err
	}
	return Transform(blockID, raw)
}

func (d *Dispatcher) read(ctx context.Context, blockID int) ([]byte, error) {
	rc, err := d.src.Get(ctx, BlockKey(blockID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, newError(ErrNotFound, "Questions file not found")
		}
		return nil, newError(ErrInternal, "Error reading file: %v", err)
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, newError(ErrInternal, "Error reading file: %v", err)
	}
	return raw, nil
}

// Transform applies the block's normalization path to an already loaded
// document.
func Transform(blockID int, raw []byte) (any, error) {
	if !gjson.ValidBytes(raw) {
		return nil, newError(ErrMalformedSource, "Invalid JSON file")
	}
	f, ok := formats[blockID]
	if !ok {
		return json.RawMessage(raw), nil
	}
	doc := gjson.ParseBytes(raw)
	qs := f.flatten(doc)
	topic := f.defaultTopic
	if t := doc.Get("title"); t.Exists() && t.Type != gjson.Null {
		topic = t.String()
	}
	return &Envelope{
		Meta: Meta{
			Topic:          topic,
			Source:         sourceAWSAcademy,
			Version:        formatVersion,
			TotalQuestions: len(qs),
		},
		Questions: qs,
	}, nil
}

// flattenModules numbers questions 1..n across all modules.
func flattenModules(doc gjson.Result) []Question {
	out := []Question{}
	for _, m := range items(doc.Get("modules")) {
		for _, q := range items(m.Get("questions")) {
			out = append(out, NormalizeBlock5(q, len(out)+1))
		}
	}
	return out
}

// flattenQuestions keeps a question's own numeric id and otherwise falls back
// to its 1-based position in the output.
func flattenQuestions(doc gjson.Result) []Question {
	out := []Question{}
	for _, q := range items(doc.Get("questions")) {
		id := len(out) + 1
		if v := q.Get("id"); v.Type == gjson.Number {
			id = int(v.Int())
		}
		out = append(out, NormalizeBlock6(q, id))
	}
	return out
}

// items returns the elements of a JSON array; anything else has none.
func items(v gjson.Result) []gjson.Result {
	if !v.IsArray() {
		return nil
	}
	return v.Array()
}
