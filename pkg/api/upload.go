/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"
)

const (
	// uploadChunkSize is the size of each binary part. The API
	// requires at least 5 MiB for all parts but the last.
	uploadChunkSize = 5 << 20

	// uploadConcurrency bounds how many parts are in flight at once.
	uploadConcurrency = 4
)

// FileHash returns the hex-encoded sha256 of the file at path along
// with its size.
func FileHash(path string) (hash string, size int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	size, err = io.Copy(h, f)
	if err != nil {
		return "", 0, fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), size, nil
}

// UploadBinaryContent uploads the file at path as the content of the
// binary: it creates one binary part per chunk, PUTs each chunk to
// its presigned URL with bounded concurrency, then transitions the
// binary to hashable. The returned binary reflects the final state
// transition.
func (s *BinariesService) UploadBinaryContent(ctx context.Context, binaryPrn, path string) (*Binary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	total := info.Size()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)

	// Chunks are read sequentially; uploads run concurrently.
	for index := 1; ; index++ {
		chunk := make([]byte, uploadChunkSize)
		n, readErr := io.ReadFull(f, chunk)
		if readErr == io.EOF {
			break
		}
		if readErr != nil && readErr != io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("failed to read %s: %w", path, readErr)
		}
		chunk = chunk[:n]

		g.Go(func() error {
			return s.uploadPart(ctx, binaryPrn, index, total, chunk)
		})

		if readErr == io.ErrUnexpectedEOF {
			break
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("binary content uploaded", "prn", binaryPrn, "size", total)

	return s.Update(ctx, binaryPrn, UpdateBinaryRequest{State: BinaryStateHashable})
}

func (s *BinariesService) uploadPart(ctx context.Context, binaryPrn string, index int, totalSize int64, chunk []byte) error {
	sum := sha256.Sum256(chunk)

	part, err := s.client.BinaryParts.Create(ctx, binaryPrn, CreateBinaryPartRequest{
		Index:              index,
		Hash:               hex.EncodeToString(sum[:]),
		Size:               int64(len(chunk)),
		ExpectedBinarySize: totalSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create binary part %d: %w", index, err)
	}
	if part.PresignedUploadURL == "" {
		return fmt.Errorf("binary part %d has no presigned upload url", index)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, part.PresignedUploadURL, bytes.NewReader(chunk))
	if err != nil {
		return fmt.Errorf("failed to build upload request for part %d: %w", index, err)
	}
	req.ContentLength = int64(len(chunk))

	resp, err := s.client.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload part %d: %w", index, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("upload of part %d rejected with status %d", index, resp.StatusCode)
	}

	slog.Debug("binary part uploaded", "prn", binaryPrn, "index", index, "size", len(chunk))
	return nil
}
