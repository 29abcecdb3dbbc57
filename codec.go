package pickle

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Serialize encodes s as {"size":[w,h],"data":[r,g,b,a,...]}. Data bytes
// are written as a JSON array of integers, never base64.
func Serialize(s *Sprite) (string, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Deserialize decodes a payload produced by Serialize. The returned sprite
// has a fresh version token.
func Deserialize(payload string) (*Sprite, error) {
	s := &Sprite{}
	if err := s.UnmarshalJSON([]byte(payload)); err != nil {
		return nil, err
	}
	return s, nil
}

// MarshalJSON implements json.Marshaler.
func (s *Sprite) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 32+len(s.data)*4)
	buf = append(buf, `{"size":[`...)
	buf = strconv.AppendInt(buf, int64(s.width), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(s.height), 10)
	buf = append(buf, `],"data":[`...)
	for i, v := range s.data {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(v), 10)
	}
	buf = append(buf, "]}"...)
	return buf, nil
}

type spritePayload struct {
	Size json.RawMessage `json:"size"`
	Data json.RawMessage `json:"data"`
}

// UnmarshalJSON implements json.Unmarshaler. On error s is left unchanged.
func (s *Sprite) UnmarshalJSON(b []byte) error {
	var p spritePayload
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if p.Size == nil || p.Data == nil {
		return fmt.Errorf("%w: missing size or data", ErrMalformedPayload)
	}

	var size []int
	if err := json.Unmarshal(p.Size, &size); err != nil || len(size) != 2 {
		return fmt.Errorf("%w: size must be [width, height]", ErrMalformedPayload)
	}
	w, h := size[0], size[1]
	want, ok := bufferLen(w, h)
	if !ok {
		return fmt.Errorf("%w: invalid size %dx%d", ErrMalformedPayload, w, h)
	}

	var raw []int
	if err := json.Unmarshal(p.Data, &raw); err != nil || raw == nil {
		return fmt.Errorf("%w: data must be an array of bytes", ErrMalformedPayload)
	}
	if len(raw) != want {
		return fmt.Errorf("%w: data has %d bytes, want %d", ErrMalformedPayload, len(raw), want)
	}

	data := make([]uint8, len(raw))
	for i, v := range raw {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: byte %d out of range: %d", ErrMalformedPayload, i, v)
		}
		data[i] = uint8(v)
	}

	s.width = w
	s.height = h
	s.data = data
	s.version = newVersion()
	return nil
}
