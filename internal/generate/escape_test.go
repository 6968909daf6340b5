package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeClass(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "text-pf-blue", want: "text-pf-blue"},
		{name: "text-[#0066CC]", want: `text-\[\#0066CC\]`},
		{name: "font-[Red_Hat_Mono]", want: `font-\[Red_Hat_Mono\]`},
		{name: "bg-[rgb(0,0,0)]", want: `bg-\[rgb\(0\,0\,0\)\]`},
		{name: "w-1/2", want: `w-1\/2`},
		{name: "hover:p-1.5", want: `hover\:p-1\.5`},
		{name: "w-50%", want: `w-50\%`},
		{name: "2xl", want: `\32 xl`},
		{name: "-1", want: `-\31 `},
		{name: "-", want: `\-`},
		{name: "héllo", want: "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeClass(tt.name))
		})
	}
}
