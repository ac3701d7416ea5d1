package storage

import "context"

// ObjectStore abstracts the gallery bucket. Keys are slash-separated paths
// relative to the bucket root, e.g. "gallery/<userId>/<name>.jpg".
type ObjectStore interface {
	// Put stores an object under key. It fails if the key already exists.
	Put(ctx context.Context, key, contentType string, data []byte) error
	// Delete removes an object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// PublicURL returns the public URL under which the object is served.
	PublicURL(key string) string
}
