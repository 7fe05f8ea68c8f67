package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/medquiz/ent"
	"github.com/abhisek/medquiz/ent/record"
)

// Record namespaces. Each subsystem keeps its keys under its own
// namespace so they never collide.
const (
	NSPerformance = "performance"
	NSTricky      = "tricky"
	NSProgression = "progression"
	NSSettings    = "settings"
)

// Records is a namespaced key-value store for JSON documents.
type Records interface {
	// Get returns the stored document, or (nil, nil) when the key is absent.
	Get(ctx context.Context, namespace, key string) (json.RawMessage, error)

	// Set writes the document, replacing any previous value.
	Set(ctx context.Context, namespace, key string, data json.RawMessage) error

	// Remove deletes one key. Removing an absent key is not an error.
	Remove(ctx context.Context, namespace, key string) error

	// MultiRemove deletes every key in a namespace.
	MultiRemove(ctx context.Context, namespace string) error

	// Keys lists all keys present in a namespace.
	Keys(ctx context.Context, namespace string) ([]string, error)
}

// entRecords implements Records using the ent client.
type entRecords struct {
	client *ent.Client
}

func (r *entRecords) Get(ctx context.Context, namespace, key string) (json.RawMessage, error) {
	rec, err := r.client.Record.Query().
		Where(record.Namespace(namespace), record.Key(key)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s/%s: %w", namespace, key, err)
	}
	return json.RawMessage(rec.Data), nil
}

func (r *entRecords) Set(ctx context.Context, namespace, key string, data json.RawMessage) error {
	rec, err := r.client.Record.Query().
		Where(record.Namespace(namespace), record.Key(key)).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err = r.client.Record.Create().
			SetNamespace(namespace).
			SetKey(key).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create record %s/%s: %w", namespace, key, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("set record %s/%s: %w", namespace, key, err)
	}

	_, err = rec.Update().SetData(data).Save(ctx)
	if err != nil {
		return fmt.Errorf("update record %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (r *entRecords) Remove(ctx context.Context, namespace, key string) error {
	_, err := r.client.Record.Delete().
		Where(record.Namespace(namespace), record.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove record %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (r *entRecords) MultiRemove(ctx context.Context, namespace string) error {
	_, err := r.client.Record.Delete().
		Where(record.Namespace(namespace)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear namespace %s: %w", namespace, err)
	}
	return nil
}

func (r *entRecords) Keys(ctx context.Context, namespace string) ([]string, error) {
	keys, err := r.client.Record.Query().
		Where(record.Namespace(namespace)).
		Select(record.FieldKey).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys in %s: %w", namespace, err)
	}
	return keys, nil
}
