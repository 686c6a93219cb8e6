package cmd

import (
	"testing"
)

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands {
		if _, ok := c.Sub[cmd.Name()]; !ok {
			t.Errorf("Completion() misses %q", cmd.Name())
		}
	}

	summary := c.Sub["summary"]
	for _, name := range []string{"years", "fx-sell", "ptax", "raw"} {
		if _, ok := summary.Flags[name]; !ok {
			t.Errorf("summary completion misses -%s", name)
		}
	}
	if got := summary.Flags["ptax"].Predict(""); len(got) != 0 {
		t.Errorf("-ptax is a boolean, it takes no value")
	}
	if _, ok := c.Sub["export"].Flags["o"]; !ok {
		t.Error("export completion misses -o")
	}
	if c.Sub["topic"].Args == nil {
		t.Fatal("topic completion has no topic names")
	}
	if got := c.Sub["topic"].Args.Predict("mo"); len(got) == 0 {
		t.Errorf("topic completion of %q = %v, want model", "mo", got)
	}
}
