// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash computes BLAKE3 content digests of files.
//
// In binary mode the integration launches a bundled list server. The
// configuration check reports the digest of the resolved server binary
// so two installations can be compared without trusting paths or
// modification times.
//
//   - [HashFile] streams a file through BLAKE3 with constant memory
//   - [Digest.String] and [ParseDigest] convert to and from the
//     64-character hex form used in output
package binhash
