package russian

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeMsgpack writes the forms as a map keyed by case name.
func (f CaseForms) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(f.Map())
}

func (f *CaseForms) DecodeMsgpack(dec *msgpack.Decoder) error {
	m := map[string]string{}
	if err := dec.Decode(&m); err != nil {
		return err
	}
	return f.fromMap(m)
}

// WriteDeclensionsMsgpack writes declensions in MessagePack format as an array stream.
func WriteDeclensionsMsgpack(w io.Writer, ds []Declension) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.EncodeArrayLen(len(ds)); err != nil {
		return err
	}
	for i := range ds {
		ds[i].Clean()
		if err := enc.Encode(&ds[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadDeclensionsMsgpack reads declensions encoded as an array.
func ReadDeclensionsMsgpack(r io.Reader, fn func(Declension) error) error {
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		var d Declension
		if err := dec.Decode(&d); err != nil {
			return err
		}
		d.Clean()
		if err := fn(d); err != nil {
			return err
		}
	}
	return nil
}
