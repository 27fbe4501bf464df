package scatterplot

import (
	"testing"
)

func TestStringSet(t *testing.T) {
	a := NewStringSet()
	a.Add("x")
	a.Add("y")
	a.Add("x")
	if len(a) != 2 || !a.Contains("x") || !a.Contains("y") {
		t.Errorf("Got a = %v", a)
	}

	b := NewStringSetFrom([]string{"slope", "intercept"})
	a.Join(b)
	if elems := a.Elements(); len(elems) != 4 || elems[0] != "intercept" || elems[3] != "y" {
		t.Errorf("Got elems = %v", elems)
	}

	a.Remove(b)
	if elems := a.Elements(); len(elems) != 2 || elems[0] != "x" || elems[1] != "y" {
		t.Errorf("Got elems = %v", elems)
	}
	if a.Contains("slope") {
		t.Errorf("a contains slope")
	}

	a.Remove(a)
	if len(a) != 0 || len(a.Elements()) != 0 {
		t.Errorf("Got a = %v", a)
	}
}
