package expr

import (
	"reflect"
	"testing"

	"oss-works/noticegen/pkg/expr/ast"
)

func TestParse(t *testing.T) {
	node := Parse("Apache-2.0 OR MIT AND BSD-3-Clause")

	or, ok := node.(*ast.Or)
	if !ok {
		t.Fatalf("Parse() = %T, want *ast.Or", node)
	}
	want := []string{"Apache-2.0", "MIT", "BSD-3-Clause"}
	if got := or.Licenses(); !reflect.DeepEqual(got, want) {
		t.Errorf("Licenses() = %v, want %v", got, want)
	}
}

func TestParse_NeverFails(t *testing.T) {
	node := Parse("not ) a ( valid expression")
	if _, ok := node.(*ast.Leaf); !ok {
		t.Errorf("Parse() = %T, want degraded *ast.Leaf", node)
	}
}
