package pterodactyl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pterodeploy/pteroctl/pkg/pterodactyl"
)

func Test_ParsePowerSignal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    pterodactyl.PowerSignal
		wantErr bool
	}{
		{
			name:  "start",
			input: "start",
			want:  pterodactyl.SignalStart,
		},
		{
			name:  "stop",
			input: "stop",
			want:  pterodactyl.SignalStop,
		},
		{
			name:  "restart",
			input: "restart",
			want:  pterodactyl.SignalRestart,
		},
		{
			name:  "kill",
			input: "kill",
			want:  pterodactyl.SignalKill,
		},
		{
			name:    "unknown",
			input:   "reboot",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			signal, err := pterodactyl.ParsePowerSignal(test.input)

			if test.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want, signal)
		})
	}
}
