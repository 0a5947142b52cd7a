package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/brandscope/research-hub/internal/config"
	"github.com/brandscope/research-hub/internal/research"
)

// Firestore persists research entries to a Cloud Firestore collection. It is
// the production implementation of research.Repository.
type Firestore struct {
	client     *firestore.Client
	collection string
}

// NewFirestore connects to Firestore for the configured project.
func NewFirestore(ctx context.Context, cfg *config.FirestoreConfig) (*Firestore, error) {
	if cfg.Project == "" {
		return nil, fmt.Errorf("firestore: GOOGLE_CLOUD_PROJECT is not set")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.Project, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &Firestore{
		client:     client,
		collection: cfg.Collection,
	}, nil
}

// Create writes one research entry, keyed by its generated ID.
func (f *Firestore) Create(ctx context.Context, entry *research.Entry) error {
	_, err := f.client.Collection(f.collection).Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to store research entry %s: %w", entry.ID, err)
	}
	return nil
}

// Close releases the underlying client.
func (f *Firestore) Close() error {
	return f.client.Close()
}
