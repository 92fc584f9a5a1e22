package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCasify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		identifier string
		want       string
	}{
		{"FooBarTask", "Foo_Bar_Task"},
		{"ABCFoo", "A_B_C_Foo"},
		{"", ""},
		{"Foo", "Foo"},
		{"X", "X"},
		{"DryRun", "Dry_Run"},
		{"HTTPServer", "H_T_T_P_Server"},
		// A lowercase anchor never absorbs; each character stands alone.
		{"foo", "f_o_o"},
		// Digits end the lowercase run and anchor their own segment.
		{"Foo2Bar", "Foo_2_Bar"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.identifier, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Casify(tt.identifier))
		})
	}
}
