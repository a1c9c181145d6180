// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/klauspost/compress/zlib"

	"github.com/MKhiriev/go-exam-watermark/models"
)

// A snapshot row holds either one JSON-encoded snapshot or, once the attempt
// is compacted, a zlib-compressed JSON array of all its snapshots.

func encodeSnapshot(s models.Snapshot) ([]byte, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("error encoding snapshot: %w", err)
	}
	return payload, nil
}

func compressSnapshots(snapshots []models.Snapshot) ([]byte, error) {
	raw, err := json.Marshal(snapshots)
	if err != nil {
		return nil, fmt.Errorf("error encoding snapshots: %w", err)
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("error creating zlib writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("error compressing snapshots: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("error compressing snapshots: %w", err)
	}

	return buf.Bytes(), nil
}

// decodeSnapshotRow returns the snapshots stored in one row.
func decodeSnapshotRow(payload []byte, compact bool) ([]models.Snapshot, error) {
	if !compact {
		var s models.Snapshot
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
		}
		return []models.Snapshot{s}, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	var snapshots []models.Snapshot
	if err := json.Unmarshal(raw, &snapshots); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return snapshots, nil
}

func sortSnapshots(snapshots []models.Snapshot) {
	slices.SortStableFunc(snapshots, func(a, b models.Snapshot) int {
		return a.Time.Compare(b.Time)
	})
}
