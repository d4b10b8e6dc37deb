// Package blob defines the wire encoding of the parameters a merklize
// program reads from its input: the ordered list of leaves to fold into
// an MMR root.
package blob

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/forestrie/compactmmr/digest"
)

// Params is the CBOR-encoded payload handed to a merklize program, mirroring
// the MerklizeProgramParams struct the zkVM entrypoint reads from stdin.
type Params struct {
	Leaves []digest.Digest `cbor:"leaves"`
}

// Encode serializes p to its canonical CBOR form.
func Encode(p Params) ([]byte, error) {
	opts := cbor.CanonicalEncOptions()
	em, err := opts.EncMode()
	if err != nil {
		return nil, fmt.Errorf("building cbor encode mode: %w", err)
	}
	b, err := em.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding params: %w", err)
	}
	return b, nil
}

// Decode parses a CBOR-encoded Params blob.
func Decode(b []byte) (Params, error) {
	var p Params
	if err := cbor.Unmarshal(b, &p); err != nil {
		return Params{}, fmt.Errorf("decoding params: %w", err)
	}
	return p, nil
}
