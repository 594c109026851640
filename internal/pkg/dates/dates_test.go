package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "already normalized", in: "2025-07", want: "2025-07"},
		{name: "single digit month", in: "2025-7", want: "2025-07"},
		{name: "surrounding spaces", in: " 2025-7 ", want: "2025-07"},
		{name: "december", in: "2025-12", want: "2025-12"},
		{name: "month zero", in: "2025-00", wantErr: true},
		{name: "month thirteen", in: "2025-13", wantErr: true},
		{name: "missing month", in: "2025", wantErr: true},
		{name: "not a date", in: "juillet", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "full date rejected", in: "2025-07-15", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMonth(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
