package russian

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// WriteDeclensionsJSONL writes declensions as JSON lines.
func WriteDeclensionsJSONL(w io.Writer, ds []Declension) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i := range ds {
		ds[i].Clean()
		if err := enc.Encode(&ds[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadDeclensionsJSONL reads declensions from a JSON lines stream.
func ReadDeclensionsJSONL(r io.Reader, fn func(Declension) error) error {
	dec := json.NewDecoder(bufio.NewReader(r))
	for {
		var d Declension
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		d.Clean()
		if err := fn(d); err != nil {
			return err
		}
	}
}

var csvHeader = []string{"name", "gender", "nominative", "genitive", "dative", "accusative", "instrumental", "prepositional"}

// WriteDeclensionsCSV writes a header row followed by one row per declension.
func WriteDeclensionsCSV(w io.Writer, ds []Declension) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	rec := make([]string, len(csvHeader))
	for i := range ds {
		d := ds[i]
		d.Clean()
		rec[0] = d.Name
		rec[1] = string(d.Gender)
		for _, c := range Cases {
			rec[2+int(c)] = d.Cases[c]
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadDeclensionsCSV reads rows written by WriteDeclensionsCSV. Columns are
// located by header name; every case column must be present.
func ReadDeclensionsCSV(r io.Reader, fn func(Declension) error) error {
	cr := csv.NewReader(bufio.NewReader(r))
	header, err := cr.Read()
	if err != nil {
		return err
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[h] = i
	}
	for _, h := range csvHeader[2:] {
		if _, ok := idx[h]; !ok {
			return fmt.Errorf("csv: missing column %q", h)
		}
	}
	get := func(rec []string, key string) string {
		if p, ok := idx[key]; ok && p < len(rec) {
			return rec[p]
		}
		return ""
	}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		g, err := ParseGender(get(rec, "gender"))
		if err != nil {
			return err
		}
		d := Declension{Name: get(rec, "name"), Gender: g}
		for _, c := range Cases {
			d.Cases[c] = get(rec, c.String())
		}
		d.Clean()
		if err := fn(d); err != nil {
			return err
		}
	}
}
