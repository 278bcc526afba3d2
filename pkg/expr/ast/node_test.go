package ast

import (
	"reflect"
	"testing"
)

func TestNode_String(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"leaf", &Leaf{ID: "MIT"}, "MIT"},
		{"with", &With{Subject: &Leaf{ID: "GPL-2.0"}, ExceptionID: "Classpath-exception-2.0"},
			"GPL-2.0 WITH Classpath-exception-2.0"},
		{"and", &And{Left: &Leaf{ID: "MIT"}, Right: &Leaf{ID: "Apache-2.0"}},
			"MIT AND Apache-2.0"},
		{"nested or in and", &And{
			Left:  &Leaf{ID: "MIT"},
			Right: &Or{Left: &Leaf{ID: "Apache-2.0"}, Right: &Leaf{ID: "BSD-3-Clause"}},
		}, "MIT AND (Apache-2.0 OR BSD-3-Clause)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNode_Licenses(t *testing.T) {
	node := &Or{
		Left: &And{Left: &Leaf{ID: "MIT"}, Right: &Leaf{ID: "Apache-2.0"}},
		Right: &With{
			Subject:     &Leaf{ID: "GPL-2.0"},
			ExceptionID: "Classpath-exception-2.0",
		},
	}

	want := []string{"MIT", "Apache-2.0", "GPL-2.0", "Classpath-exception-2.0"}
	if got := node.Licenses(); !reflect.DeepEqual(got, want) {
		t.Errorf("Licenses() = %v, want %v", got, want)
	}
}

func TestLeaf_IsOthers(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"others", true},
		{"Others", true},
		{"OTHERS", true},
		{"MIT", false},
		{"others-ish", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			leaf := &Leaf{ID: tt.id}
			if got := leaf.IsOthers(); got != tt.want {
				t.Errorf("IsOthers() = %v, want %v", got, tt.want)
			}
		})
	}
}
