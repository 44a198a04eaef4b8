// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/anylist/lib/codec"
)

// Hash is a 32-byte BLAKE3 event digest.
type Hash [32]byte

// String returns the hex encoding of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// digestDomainKey is the BLAKE3 key for event digests: the ASCII
// domain name zero-padded to 32 bytes. Changing it changes every
// digest.
var digestDomainKey = [32]byte{
	'a', 'n', 'y', 'l', 'i', 's', 't', '.', 'e', 'v', 'e', 'n', 't', 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Digest returns the keyed BLAKE3 hash of the event name and the
// event's canonical encoding. Two events have the same digest exactly
// when their JSON encodings carry the same members, so an event keeps
// its digest across JSON and CBOR round trips and the digest
// identifies duplicate deliveries.
func Digest(e Event) (Hash, error) {
	data, err := canonicalEncoding(e)
	if err != nil {
		return Hash{}, fmt.Errorf("digesting %s event: %w", e.Name, err)
	}
	// NewKeyed fails only for keys that are not 32 bytes.
	hasher, err := blake3.NewKeyed(digestDomainKey[:])
	if err != nil {
		panic("event: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(e.Name))
	// The name never contains NUL, so the separator keeps name and
	// encoding unambiguous.
	hasher.Write([]byte{0})
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash, nil
}

// canonicalEncoding is the deterministic CBOR encoding of the event's
// JSON object. Going through JSON erases the Go types behind any-typed
// members: an int in a config snapshot and the float64 it decodes back
// as encode identically.
func canonicalEncoding(e Event) ([]byte, error) {
	data, err := e.MarshalJSON()
	if err != nil {
		return nil, err
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var object any
	if err := decoder.Decode(&object); err != nil {
		return nil, err
	}
	return codec.Marshal(canonicalNumbers(object))
}

// canonicalNumbers replaces every json.Number in a decoded JSON value
// with an int64 when it parses as one and a float64 otherwise. Both
// sides of a round trip carry the same JSON number text, so they make
// the same choice.
func canonicalNumbers(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, member := range v {
			v[key] = canonicalNumbers(member)
		}
		return v
	case []any:
		for i, element := range v {
			v[i] = canonicalNumbers(element)
		}
		return v
	case json.Number:
		if integer, err := v.Int64(); err == nil {
			return integer
		}
		if float, err := v.Float64(); err == nil {
			return float
		}
		return v.String()
	default:
		return v
	}
}
