package cleaning

import (
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestNewStrategy_Known(t *testing.T) {
	s, err := NewStrategy("remove_duplicates")
	if err != nil {
		t.Fatalf("NewStrategy() error = %v", err)
	}
	if s.Name() != "remove_duplicates" {
		t.Errorf("Name() = %q", s.Name())
	}
}

func TestNewStrategy_Unknown(t *testing.T) {
	_, err := NewStrategy("does_not_exist")
	if err == nil {
		t.Fatal("NewStrategy() should fail for unknown names")
	}
	if !strings.Contains(err.Error(), "available:") {
		t.Errorf("error %q should list available strategies", err)
	}
}

func TestAvailable_Sorted(t *testing.T) {
	names := Available()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Available() = %v, want sorted", names)
	}

	want := []string{
		"filter_valid_foreign_keys",
		"remove_columns",
		"remove_disabled",
		"remove_duplicates",
		"rename_headers",
	}
	for _, name := range want {
		found := false
		for _, got := range names {
			if got == name {
				found = true
			}
		}
		if !found {
			t.Errorf("Available() = %v, missing %q", names, name)
		}
	}
}

func TestRegister_Custom(t *testing.T) {
	Register("test_custom", func() Strategy {
		return stubStrategy{name: "test_custom"}
	})
	defer delete(registry, "test_custom")

	s, err := NewStrategy("test_custom")
	if err != nil {
		t.Fatalf("NewStrategy() error = %v", err)
	}
	if !reflect.DeepEqual(s, stubStrategy{name: "test_custom"}) {
		t.Errorf("NewStrategy() = %#v", s)
	}
}
