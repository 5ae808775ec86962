package transport

import (
	"encoding/binary"
	"encoding/json"
	"io"

	"stayhub/internal/pkg/errs"
)

// Envelope is the wire frame shared by both directions. A request with a
// correlation id expects exactly one reply bearing the same id; without an id
// it is an event and no reply is ever sent. Replies carry either Data or Err.
type Envelope struct {
	ID      string          `json:"id,omitempty"`
	Pattern string          `json:"pattern,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Err     string          `json:"err,omitempty"`
}

// Frames are a 4-byte big-endian length followed by the JSON envelope.
const maxFrameSize = 4 << 20

func writeEnvelope(w io.Writer, env Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return errs.Wrap(err, "failed to marshal envelope")
	}
	if len(body) > maxFrameSize {
		return errs.Newf("frame too large: %d bytes", len(body))
	}

	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(body)))
	if _, err := w.Write(header[:]); err != nil {
		return errs.Wrap(err, "failed to write frame header")
	}
	if _, err := w.Write(body); err != nil {
		return errs.Wrap(err, "failed to write frame body")
	}
	return nil
}

func readEnvelope(r io.Reader) (Envelope, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Envelope{}, err
	}

	size := binary.BigEndian.Uint32(header[:])
	if size > maxFrameSize {
		return Envelope{}, errs.Newf("frame too large: %d bytes", size)
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return Envelope{}, err
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, errs.Wrap(err, "failed to unmarshal envelope")
	}
	return env, nil
}
