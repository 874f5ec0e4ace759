package types

import (
	"reflect"
	"testing"
)

func TestFieldMappingOrder(t *testing.T) {
	m := NewFieldMapping()
	m.Set("Full Name", "./details/name")
	m.Set("Age", "./details/age")
	m.Set("Email Address", "./contact/email")

	want := []string{"Full Name", "Age", "Email Address"}
	if got := m.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}

	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestFieldMappingSetReplacesWithoutReordering(t *testing.T) {
	m := NewFieldMapping()
	m.Set("A", "./a")
	m.Set("B", "./b")
	m.Set("A", "./a2")

	want := []string{"A", "B"}
	if got := m.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}

	loc, ok := m.Locator("A")
	if !ok || loc != "./a2" {
		t.Errorf("Locator(A) = %q, %v, want ./a2, true", loc, ok)
	}
}

func TestFieldMappingLocatorMissing(t *testing.T) {
	m := NewFieldMapping()
	m.Set("A", "./a")

	if _, ok := m.Locator("B"); ok {
		t.Error("Locator should report missing column")
	}
}

func TestFieldMappingEach(t *testing.T) {
	m := NewFieldMapping()
	m.Set("A", "./a")
	m.Set("B", "./b")

	var cols, locs []string
	m.Each(func(column, locator string) {
		cols = append(cols, column)
		locs = append(locs, locator)
	})

	if !reflect.DeepEqual(cols, []string{"A", "B"}) {
		t.Errorf("Each columns = %v", cols)
	}
	if !reflect.DeepEqual(locs, []string{"./a", "./b"}) {
		t.Errorf("Each locators = %v", locs)
	}
}

func TestFieldMappingNilSafe(t *testing.T) {
	var m *FieldMapping

	if m.Columns() != nil {
		t.Error("nil mapping should have no columns")
	}
	if m.Len() != 0 {
		t.Error("nil mapping should have zero length")
	}
	m.Each(func(string, string) {
		t.Error("Each should not visit pairs on a nil mapping")
	})
}

func TestUnionColumns(t *testing.T) {
	xml := NewFieldMapping()
	xml.Set("Full Name", "./details/name")
	xml.Set("Age", "./details/age")
	xml.Set("Email Address", "./contact/email")

	met := NewFieldMapping()
	met.Set("Full Name", "Full Name")
	met.Set("Age", "Age")
	met.Set("Department", "Dept")

	got := UnionColumns(xml, met)
	want := []string{"Full Name", "Age", "Email Address", "Department"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnionColumns = %v, want %v", got, want)
	}
}

func TestUnionColumnsEmpty(t *testing.T) {
	if got := UnionColumns(NewFieldMapping(), NewFieldMapping()); got != nil {
		t.Errorf("UnionColumns of empty mappings = %v, want nil", got)
	}
}

func TestUnionColumnsNilMapping(t *testing.T) {
	xml := NewFieldMapping()
	xml.Set("A", "./a")

	got := UnionColumns(xml, nil)
	want := []string{"A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnionColumns = %v, want %v", got, want)
	}
}
