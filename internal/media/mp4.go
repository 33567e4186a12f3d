package media

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// maxProbeBytes bounds how far we read looking for the moov box, so a
	// non-faststart file degrades to the fallback instead of downloading
	// the whole resource.
	maxProbeBytes = 8 << 20
	maxMoovBytes  = 8 << 20
)

// MP4Dimensions scans box headers from r until it finds the moov box and
// returns the first video track's pixel dimensions from its tkhd. Only
// metadata is read.
func MP4Dimensions(r io.Reader) (w, h int, err error) {
	lr := &io.LimitedReader{R: r, N: maxProbeBytes}
	for {
		size, typ, hdrLen, err := readBoxHeader(lr)
		if err != nil {
			return 0, 0, fmt.Errorf("mp4: moov not found: %w", err)
		}
		payload := size - hdrLen
		if typ == "moov" {
			if payload > maxMoovBytes {
				return 0, 0, errors.New("mp4: moov box too large")
			}
			buf := make([]byte, payload)
			if _, err := io.ReadFull(lr, buf); err != nil {
				return 0, 0, fmt.Errorf("mp4: short moov: %w", err)
			}
			return moovDimensions(buf)
		}
		if _, err := io.CopyN(io.Discard, lr, payload); err != nil {
			return 0, 0, fmt.Errorf("mp4: skipping %q: %w", typ, err)
		}
	}
}

func readBoxHeader(r io.Reader) (size int64, typ string, hdrLen int64, err error) {
	var hdr [8]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		return
	}
	size = int64(binary.BigEndian.Uint32(hdr[:4]))
	typ = string(hdr[4:8])
	hdrLen = 8
	if size == 1 {
		var ext [8]byte
		if _, err = io.ReadFull(r, ext[:]); err != nil {
			return
		}
		size = int64(binary.BigEndian.Uint64(ext[:]))
		hdrLen = 16
	}
	if size < hdrLen {
		err = fmt.Errorf("mp4: invalid box size %d for %q", size, typ)
	}
	return
}

// moovDimensions walks trak children looking for a tkhd with nonzero
// width/height; audio tracks carry zeros and are skipped.
func moovDimensions(buf []byte) (int, int, error) {
	var w, h int
	walkBoxes(buf, func(typ string, payload []byte) bool {
		if typ != "trak" {
			return true
		}
		walkBoxes(payload, func(inner string, p []byte) bool {
			if inner != "tkhd" {
				return true
			}
			if tw, th := tkhdDimensions(p); tw > 0 && th > 0 {
				w, h = tw, th
				return false
			}
			return true
		})
		return w == 0
	})
	if w == 0 || h == 0 {
		return 0, 0, errors.New("mp4: no video track dimensions")
	}
	return w, h, nil
}

// walkBoxes calls fn for each box in buf. fn returning false stops the walk.
func walkBoxes(buf []byte, fn func(typ string, payload []byte) bool) {
	for len(buf) >= 8 {
		size := int64(binary.BigEndian.Uint32(buf[:4]))
		typ := string(buf[4:8])
		hdrLen := int64(8)
		if size == 1 {
			if len(buf) < 16 {
				return
			}
			size = int64(binary.BigEndian.Uint64(buf[8:16]))
			hdrLen = 16
		}
		if size < hdrLen || size > int64(len(buf)) {
			return
		}
		if !fn(typ, buf[hdrLen:size]) {
			return
		}
		buf = buf[size:]
	}
}

// tkhdDimensions reads the 16.16 fixed-point width/height at the end of a
// tkhd payload, handling both version 0 and 1 layouts.
func tkhdDimensions(b []byte) (int, int) {
	if len(b) < 4 {
		return 0, 0
	}
	off := 4 + 20 // version+flags, then v0 times/track/duration
	if b[0] == 1 {
		off = 4 + 32
	}
	off += 8 + 2 + 2 + 2 + 2 + 36 // reserved, layer, group, volume, reserved, matrix
	if len(b) < off+8 {
		return 0, 0
	}
	w := int(binary.BigEndian.Uint32(b[off:]) >> 16)
	h := int(binary.BigEndian.Uint32(b[off+4:]) >> 16)
	return w, h
}
