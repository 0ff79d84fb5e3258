// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Relay Authors

package pack

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	ObjectCommit byte = iota + 1
	ObjectData
)

var magic = []byte("RPCK")

// Writer emits a stream of typed objects. The stream starts with a
// four-byte magic and a version number, then one record per object: a type
// byte, the content length as an unsigned varint, and the content itself.
type Writer struct {
	w   io.Writer
	buf []byte
}

func NewWriter(w io.Writer) (*Writer, error) {
	pw := &Writer{
		w:   w,
		buf: make([]byte, binary.MaxVarintLen64),
	}
	if _, err := w.Write(magic); err != nil {
		return nil, err
	}
	binary.BigEndian.PutUint32(pw.buf[:4], 1)
	if _, err := w.Write(pw.buf[:4]); err != nil {
		return nil, err
	}
	return pw, nil
}

func (w *Writer) WriteObject(objType byte, b []byte) error {
	w.buf[0] = objType
	n := binary.PutUvarint(w.buf[1:], uint64(len(b)))
	if _, err := w.w.Write(w.buf[:n+1]); err != nil {
		return err
	}
	_, err := w.w.Write(b)
	return err
}

type Reader struct {
	r       *bufio.Reader
	Version int
}

func NewReader(r io.Reader) (*Reader, error) {
	pr := &Reader{
		r: bufio.NewReader(r),
	}
	b := make([]byte, 8)
	if _, err := io.ReadFull(pr.r, b); err != nil {
		return nil, err
	}
	if string(b[:4]) != string(magic) {
		return nil, fmt.Errorf("bad magic %q", b[:4])
	}
	pr.Version = int(binary.BigEndian.Uint32(b[4:]))
	return pr, nil
}

// ReadObject returns the next object in the stream, or io.EOF when the
// stream is exhausted.
func (r *Reader) ReadObject() (objType byte, b []byte, err error) {
	objType, err = r.r.ReadByte()
	if err != nil {
		return
	}
	n, err := binary.ReadUvarint(r.r)
	if err != nil {
		return
	}
	b = make([]byte, n)
	_, err = io.ReadFull(r.r, b)
	return
}
