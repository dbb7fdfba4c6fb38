// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/pkg/convert"
)

/*
TestBool_UnmarshalJSON checks that booleans, 0/1 and their quoted forms all decode.
*/
func TestBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{"json_true", `true`, true, false},
		{"json_false", `false`, false, false},
		{"number_one", `1`, true, false},
		{"number_zero", `0`, false, false},
		{"string_one", `"1"`, true, false},
		{"string_true", `"TRUE"`, true, false},
		{"garbage", `"yes please"`, false, true},
		{"two", `2`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b convert.Bool
			err := json.Unmarshal([]byte(tt.input), &b)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, bool(b))
		})
	}
}

/*
TestBool_Value verifies the SQL driver receives a plain bool.
*/
func TestBool_Value(t *testing.T) {
	v, err := convert.Bool(true).Value()
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

/*
TestTimestamp_Layouts verifies date-only and RFC 3339 inputs are both accepted.
*/
func TestTimestamp_Layouts(t *testing.T) {
	var ts convert.Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &ts))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ts.Time())

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15T10:30:00Z"`), &ts))
	assert.Equal(t, 10, ts.Time().Hour())

	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12`), &ts))
}

/*
TestToIntD ensures lenient parsing falls back to the default.
*/
func TestToIntD(t *testing.T) {
	assert.Equal(t, 3, convert.ToIntD("3", 1))
	assert.Equal(t, 1, convert.ToIntD("abc", 1))
	assert.Equal(t, 1, convert.ToIntD("", 1))
	assert.Equal(t, 0, convert.ToInt("x"))
}
