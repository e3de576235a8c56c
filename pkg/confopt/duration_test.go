// SPDX-License-Identifier: GPL-3.0-or-later

package confopt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_UnmarshalYAML(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		"duration string":  {input: "300ms", want: 300 * time.Millisecond},
		"compound string":  {input: "1m30s", want: 90 * time.Second},
		"integer seconds":  {input: "10", want: 10 * time.Second},
		"float seconds":    {input: "1.5", want: 1500 * time.Millisecond},
		"negative seconds": {input: "-1", want: -time.Second},
		"garbage":          {input: "soon", wantErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var d Duration
			err := yaml.Unmarshal([]byte(test.input), &d)

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, d.Duration())
		})
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var v struct {
		Timeout Duration `json:"timeout"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"timeout": 2}`), &v))
	assert.Equal(t, 2*time.Second, v.Timeout.Duration())
}

func TestDuration_MarshalYAML(t *testing.T) {
	bs, err := yaml.Marshal(Duration(1500 * time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, "1.5\n", string(bs))
}
