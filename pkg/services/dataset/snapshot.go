package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ev-tools/charge-atlas/pkg/adapters"
	"github.com/ev-tools/charge-atlas/pkg/models/domain"
	"github.com/ev-tools/charge-atlas/pkg/models/store"
)

// EncodeSnapshot writes a versioned textual snapshot of the dataset. The
// snapshot captures derived fields too, so DecodeSnapshot restores the
// dataset without re-running ingestion.
func EncodeSnapshot(d *Dataset, w io.Writer) error {
	snap := store.Snapshot{
		Version:  store.SnapshotVersion,
		Sessions: make([]store.SessionRecord, 0, d.Len()),
	}
	for _, s := range d.Sessions() {
		snap.Sessions = append(snap.Sessions, adapters.MapDomainSessionToStore(s))
	}
	if err := json.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot restores a dataset from an encoded snapshot. A version
// mismatch or malformed payload fails without producing a partial dataset.
func DecodeSnapshot(r io.Reader) (*Dataset, error) {
	var snap store.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != store.SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	sessions := make([]domain.Session, 0, len(snap.Sessions))
	for _, rec := range snap.Sessions {
		s, err := adapters.MapStoreSessionToDomain(rec)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return New(sessions), nil
}
