package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{in: `{"project_id": 12}`, want: 12},
		{in: `{"project_id": "12"}`, want: 12},
		{in: `{"project_id": null}`, want: 0},
		{in: `{}`, want: 0},
		{in: `{"project_id": "abc"}`, wantErr: true},
		{in: `{"project_id": 1.5}`, wantErr: true},
	}

	for _, tt := range tests {
		var req SendMessageRequest
		err := json.Unmarshal([]byte(tt.in), &req)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, req.ProjectID, tt.in)
	}
}
