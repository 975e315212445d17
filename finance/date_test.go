package finance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fintrack/go-finance-client/finance"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "canonical", input: "2025-03-09", want: "2025-03-09"},
		{name: "rfc3339", input: "2025-03-09T14:30:00Z", want: "2025-03-09"},
		{name: "slashed", input: "09/03/2025", want: "2025-03-09"},
		{name: "short month name", input: "9 Mar 2025", want: "2025-03-09"},
		{name: "us style", input: "Mar 9, 2025", want: "2025-03-09"},
		{name: "empty", input: "", wantErr: true},
		{name: "nonsense", input: "not-a-date", wantErr: true},
		{name: "impossible day", input: "2025-02-31", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := finance.NormalizeDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
