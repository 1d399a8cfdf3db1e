package mcrcon

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// RCON packet types
const (
	rconExecCommand  = 2
	rconAuthenticate = 3
)

// Size = ID (4) + Type (4) + Body (n) + null terminator (1) + padding (1)
const minPacketSize = 4 + 4 + 2

// ErrInvalidPacketSize is returned for a size field outside 10..4096.
var ErrInvalidPacketSize = errors.New("invalid packet size")

// Packet represents an RCON protocol packet
type Packet struct {
	Size int32
	ID   int32
	Type int32
	Body string
}

// writePacket encodes p and writes it with a single Write call.
func writePacket(w io.Writer, p *Packet) error {
	p.Size = int32(minPacketSize + len(p.Body))

	buf := make([]byte, 4+p.Size)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(p.Size))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(p.ID))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(p.Type))
	copy(buf[12:], p.Body)
	// Null terminators already zero in buffer

	_, err := w.Write(buf)
	return err
}

// readPacket reads one packet from r.
func readPacket(r io.Reader) (*Packet, error) {
	var size int32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, fmt.Errorf("failed to read packet size: %w", err)
	}

	if size < minPacketSize || size > dataBuffSize {
		return nil, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidPacketSize, size, minPacketSize, dataBuffSize)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("failed to read packet payload: %w", err)
	}

	// Body is from byte 8 to size-2 (excluding two null terminators)
	return &Packet{
		Size: size,
		ID:   int32(binary.LittleEndian.Uint32(payload[0:4])),
		Type: int32(binary.LittleEndian.Uint32(payload[4:8])),
		Body: string(payload[8 : size-2]),
	}, nil
}
