package reconcile

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_RejectsNonArrayPayloads(t *testing.T) {
	for _, payload := range []string{``, `null`, `{}`, `"x"`, `42`, `[{"Ref":"a"`} {
		_, err := Decode[testItemRecord](kindItem, []byte(payload))

		var decodeErr *DecodeError
		require.Error(t, err, "payload %q", payload)
		require.True(t, errors.As(err, &decodeErr), "payload %q", payload)
		assert.Equal(t, -1, decodeErr.Index)
		assert.Equal(t, kindItem, decodeErr.Kind)
	}
}

func TestDecode_ReportsRecordIndex(t *testing.T) {
	_, err := Decode[testItemRecord](kindItem, []byte(`[{"Ref":"a"},{"Ref":12}]`))

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 1, decodeErr.Index)
}

func TestDecode_CaseInsensitiveAndLenient(t *testing.T) {
	payload := `[{"ref":"a","NAME":"Bolt","unknown":true}, {"Ref":"b"}]`

	records, err := Decode[testItemRecord](kindItem, []byte(payload))

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Ref)
	assert.Equal(t, "Bolt", records[0].Name)
	assert.Equal(t, "", records[1].Name)
	assert.False(t, records[1].IsPhysicallyDeleted)
}

func TestDecode_EmptyArray(t *testing.T) {
	records, err := Decode[testItemRecord](kindItem, []byte(` [] `))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecode_ExactDecimals(t *testing.T) {
	records, err := Decode[testStockRecord](kindStock, []byte(`[{"Site":"s","Sku":"p","Qty":0.1},{"Site":"s","Sku":"q","Qty":"12.3456"}]`))

	require.NoError(t, err)
	assert.True(t, records[0].Qty.Equal(decimal.RequireFromString("0.1")))
	assert.True(t, records[1].Qty.Equal(decimal.RequireFromString("12.3456")))
}

func TestCountRecords(t *testing.T) {
	assert.Equal(t, 3, CountRecords([]byte(`[1,{"a":2},null]`)))
	assert.Equal(t, 0, CountRecords([]byte(`[]`)))
	assert.Equal(t, 0, CountRecords([]byte(`null`)))
	assert.Equal(t, 0, CountRecords([]byte(`{"a":1}`)))
	assert.Equal(t, 0, CountRecords([]byte(`not json`)))
}

func TestValidateAll_MissingRef(t *testing.T) {
	records := []testItemRecord{{Ref: "a"}, {Name: "no ref"}}

	err := validateAll(kindItem, records)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 1, decodeErr.Index)
	assert.Contains(t, err.Error(), "Ref")
}

func TestTimestamp_Formats(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{input: `"2024-03-01T10:20:30Z"`, want: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{input: `"2024-03-01T12:20:30+02:00"`, want: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{input: `"2024-03-01T10:20:30"`, want: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{input: `"2024-03-01T10:20:30.5"`, want: time.Date(2024, 3, 1, 10, 20, 30, 500000000, time.UTC)},
		{input: `"2024-03-01 10:20:30"`, want: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{input: `"2024-03-01"`, want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(tc.input), &ts), tc.input)
		assert.True(t, tc.want.Equal(ts.Time), "%s parsed as %s", tc.input, ts.Time)
	}
}

func TestTimestamp_NullAndEmpty(t *testing.T) {
	for _, input := range []string{`null`, `""`, `"  "`} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(input), &ts))
		assert.True(t, ts.IsZero())
	}
}

func TestTimestamp_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"01/03/2024"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`20240301`), &ts))
}

func TestTimestamp_MarshalUTC(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 2*3600))}

	out, err := json.Marshal(ts)

	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T10:00:00Z"`, string(out))
}
