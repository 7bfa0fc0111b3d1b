package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/apkgraph/apkgraph/pkg/depgraph"
)

func TestWriteGraphJSON(t *testing.T) {
	g := depgraph.New()
	if err := g.Add("a", []string{"b", "c"}); err != nil {
		t.Fatal(err)
	}
	if err := g.Add("b", nil); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeGraphJSON(&buf, g, "depends_on"); err != nil {
		t.Fatalf("writeGraphJSON() error: %v", err)
	}

	var out []struct {
		Package   string   `json:"package"`
		DependsOn []string `json:"depends_on"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	if out[0].Package != "a" || out[1].Package != "b" {
		t.Errorf("entry order = [%s, %s], want graph iteration order [a, b]", out[0].Package, out[1].Package)
	}
	if len(out[0].DependsOn) != 2 {
		t.Errorf("depends_on for a = %v, want [b c]", out[0].DependsOn)
	}
	if len(out[1].DependsOn) != 0 {
		t.Errorf("depends_on for b = %v, want empty", out[1].DependsOn)
	}
}
