package req

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID    string  `json:"id"`
	Count int     `json:"count"`
	Bet   float64 `json:"bet"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](io.NopCloser(strings.NewReader(`{"id":"x","count":3}`)))
	require.NoError(t, err)
	assert.Equal(t, payload{ID: "x", Count: 3}, got)

	_, err = Decode[payload](io.NopCloser(strings.NewReader(`{"id":1}`)))
	assert.Error(t, err)

	_, err = Decode[payload](io.NopCloser(strings.NewReader(`{"unknown":true}`)))
	assert.Error(t, err)

	_, err = Decode[payload](nil)
	assert.Error(t, err)

	_, err = Decode[payload](io.NopCloser(strings.NewReader("")))
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecodeOptional(t *testing.T) {
	for _, body := range []io.ReadCloser{nil, http.NoBody, io.NopCloser(strings.NewReader(""))} {
		got, err := DecodeOptional[payload](body)
		require.NoError(t, err)
		assert.Zero(t, got)
	}

	got, err := DecodeOptional[payload](io.NopCloser(strings.NewReader(`{"bet":25}`)))
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.Bet)

	_, err = DecodeOptional[payload](io.NopCloser(strings.NewReader(`{"bet":`)))
	assert.Error(t, err)

	_, err = DecodeOptional[payload](io.NopCloser(strings.NewReader(`{"unknown":true}`)))
	assert.Error(t, err)
}
