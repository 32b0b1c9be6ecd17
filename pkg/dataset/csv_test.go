package dataset

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	in := "id,status\n1,ENABLED\n2,DISABLED\n"
	d, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if got := d.Columns(); !reflect.DeepEqual(got, []string{"id", "status"}) {
		t.Errorf("Columns() = %v", got)
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	// CSV values come in as strings
	if v, _ := d.Value(0, "id"); v != "1" {
		t.Errorf("Value(0, id) = %v, want \"1\"", v)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("ReadCSV() on empty input should fail")
	}
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	d, err := ReadCSV(strings.NewReader("id,status\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	in := "id,status\n1,ENABLED\n2,DISABLED\n"
	d, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := d.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if buf.String() != in {
		t.Errorf("WriteCSV() = %q, want %q", buf.String(), in)
	}
}

func TestWriteCSV_FormatsNonStrings(t *testing.T) {
	d := New("id", "active")
	if err := d.Append(1, true); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := d.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	want := "id,active\n1,true\n"
	if buf.String() != want {
		t.Errorf("WriteCSV() = %q, want %q", buf.String(), want)
	}
}
